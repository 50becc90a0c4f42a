package semanticscholar

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"journal-brief/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		SemanticScholarBaseURL: baseURL,
		MailTo:                 "researcher@example.com",
		EnrichTimeoutSec:       5,
	}
}

func TestAbstractByDOI(t *testing.T) {
	var gotPath, gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Write([]byte(`{"paperId": "abc", "abstract": "Recovered abstract."}`))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(srv.URL), zap.NewNop())
	abstract, err := f.AbstractByDOI("10.1037/apl0001234")
	if err != nil {
		t.Fatalf("AbstractByDOI returned error: %v", err)
	}
	if abstract != "Recovered abstract." {
		t.Errorf("abstract = %q", abstract)
	}
	if gotPath != "/graph/v1/paper/DOI:10.1037/apl0001234" {
		t.Errorf("path = %q", gotPath)
	}
	if gotFields != "abstract" {
		t.Errorf("fields = %q", gotFields)
	}
}

func TestAbstractByDOINullAbstract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"paperId": "abc", "abstract": null}`))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(srv.URL), zap.NewNop())
	abstract, err := f.AbstractByDOI("10.1037/apl0001234")
	if err != nil {
		t.Fatalf("AbstractByDOI returned error: %v", err)
	}
	if abstract != "" {
		t.Errorf("abstract = %q, want empty", abstract)
	}
}

func TestAbstractByDOIEmptyDOI(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(srv.URL), zap.NewNop())
	abstract, err := f.AbstractByDOI("")
	if err != nil || abstract != "" {
		t.Errorf("AbstractByDOI(\"\") = %q, %v; want empty, nil", abstract, err)
	}
	if called {
		t.Error("empty DOI must not hit the API")
	}
}

func TestAbstractByDOIErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": "Paper not found"}`, http.StatusNotFound)
		}))
		defer srv.Close()

		f := NewFetcher(testConfig(srv.URL), zap.NewNop())
		if _, err := f.AbstractByDOI("10.1/missing"); err == nil {
			t.Fatal("expected error for status 404")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"abstract": `))
		}))
		defer srv.Close()

		f := NewFetcher(testConfig(srv.URL), zap.NewNop())
		if _, err := f.AbstractByDOI("10.1/x"); err == nil {
			t.Fatal("expected error for malformed body")
		}
	})
}
