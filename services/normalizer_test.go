package services

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"journal-brief/models"
	"journal-brief/providers/crossref"
)

// fakeAbstracts ist ein AbstractProvider für Tests: liefert pro DOI ein
// festes Abstract und zählt die Aufrufe.
type fakeAbstracts struct {
	byDOI map[string]string
	err   error
	calls int
}

func (f *fakeAbstracts) AbstractByDOI(doi string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.byDOI[doi], nil
}

func (f *fakeAbstracts) Name() string { return "fake" }

func parted(parts ...int) *crossref.PartedDate {
	return &crossref.PartedDate{DateParts: [][]int{parts}}
}

func testNormalizer(abstracts *fakeAbstracts) *Normalizer {
	tagger := NewTagger(testTaxonomy())
	if abstracts == nil {
		return NewNormalizer(tagger, nil, 90*24*time.Hour, zap.NewNop())
	}
	return NewNormalizer(tagger, abstracts, 90*24*time.Hour, zap.NewNop())
}

var testJournal = models.Journal{Name: "Journal of Applied Psychology", Publisher: "APA", ISSN: "0021-9010", Color: "#0066CC"}

func TestNormalizeDatePrecedence(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	n := testNormalizer(nil)

	tests := []struct {
		name string
		work crossref.Work
		want time.Time
	}{
		{
			name: "online wins over published and print",
			work: crossref.Work{
				Title:           []string{"x"},
				PublishedOnline: parted(2024, 3, 1),
				Published:       parted(2024, 2, 1),
				PublishedPrint:  parted(2024, 1, 1),
			},
			want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "published wins over print",
			work: crossref.Work{
				Title:          []string{"x"},
				Published:      parted(2024, 2, 1),
				PublishedPrint: parted(2024, 1, 1),
			},
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "print as last resort",
			work: crossref.Work{
				Title:          []string{"x"},
				PublishedPrint: parted(2024, 1, 15),
			},
			want: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "year only defaults month and day to one",
			work: crossref.Work{
				Title:           []string{"x"},
				PublishedOnline: parted(2024),
			},
			want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := n.Normalize(tt.work, testJournal, now)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if !article.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", article.Date, tt.want)
			}
		})
	}
}

func TestNormalizeRejections(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	n := testNormalizer(nil)

	t.Run("no date at all", func(t *testing.T) {
		_, err := n.Normalize(crossref.Work{Title: []string{"x"}}, testJournal, now)
		if !errors.Is(err, ErrNoDate) {
			t.Errorf("err = %v, want ErrNoDate", err)
		}
	})

	t.Run("empty date-parts", func(t *testing.T) {
		work := crossref.Work{Title: []string{"x"}, PublishedOnline: &crossref.PartedDate{}}
		_, err := n.Normalize(work, testJournal, now)
		if !errors.Is(err, ErrNoDate) {
			t.Errorf("err = %v, want ErrNoDate", err)
		}
	})

	t.Run("older than the window", func(t *testing.T) {
		// 400 Tage alt, Fenster ist 90 Tage
		work := crossref.Work{Title: []string{"x"}, PublishedPrint: parted(2023, 2, 4)}
		_, err := n.Normalize(work, testJournal, now)
		if !errors.Is(err, ErrStale) {
			t.Errorf("err = %v, want ErrStale", err)
		}
	})

	t.Run("exactly on the window boundary survives", func(t *testing.T) {
		midnight := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		work := crossref.Work{Title: []string{"x"}, PublishedOnline: parted(2023, 12, 11)}
		if _, err := n.Normalize(work, testJournal, midnight); err != nil {
			t.Errorf("err = %v, want nil", err)
		}
	})
}

func TestNormalizeTitleAndLink(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	n := testNormalizer(nil)

	tests := []struct {
		name      string
		work      crossref.Work
		wantTitle string
		wantLink  string
	}{
		{
			name:      "doi builds doi.org link",
			work:      crossref.Work{DOI: "10.1/x", Title: []string{"A Study"}, URL: "https://publisher.example/a", PublishedOnline: parted(2024, 3, 1)},
			wantTitle: "A Study",
			wantLink:  "https://doi.org/10.1/x",
		},
		{
			name:      "url used when doi missing",
			work:      crossref.Work{Title: []string{"A Study"}, URL: "https://publisher.example/a", PublishedOnline: parted(2024, 3, 1)},
			wantTitle: "A Study",
			wantLink:  "https://publisher.example/a",
		},
		{
			name:      "no doi no url",
			work:      crossref.Work{Title: []string{"A Study"}, PublishedOnline: parted(2024, 3, 1)},
			wantTitle: "A Study",
			wantLink:  "",
		},
		{
			name:      "missing title placeholder",
			work:      crossref.Work{PublishedOnline: parted(2024, 3, 1)},
			wantTitle: "No title",
			wantLink:  "",
		},
		{
			name:      "first title entry wins",
			work:      crossref.Work{Title: []string{"First", "Second"}, PublishedOnline: parted(2024, 3, 1)},
			wantTitle: "First",
			wantLink:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := n.Normalize(tt.work, testJournal, now)
			if err != nil {
				t.Fatalf("Normalize returned error: %v", err)
			}
			if article.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", article.Title, tt.wantTitle)
			}
			if article.Link != tt.wantLink {
				t.Errorf("Link = %q, want %q", article.Link, tt.wantLink)
			}
		})
	}
}

func TestFormatAuthors(t *testing.T) {
	tests := []struct {
		name    string
		authors []crossref.Author
		want    string
	}{
		{"empty", nil, ""},
		{
			"given and family",
			[]crossref.Author{{Given: "Ada", Family: "Lovelace"}},
			"Ada Lovelace",
		},
		{
			"family only",
			[]crossref.Author{{Family: "Lovelace"}},
			"Lovelace",
		},
		{
			"five authors listed in full",
			[]crossref.Author{
				{Given: "A", Family: "One"}, {Given: "B", Family: "Two"},
				{Given: "C", Family: "Three"}, {Given: "D", Family: "Four"},
				{Given: "E", Family: "Five"},
			},
			"A One, B Two, C Three, D Four, E Five",
		},
		{
			"six authors get et al",
			[]crossref.Author{
				{Given: "A", Family: "One"}, {Given: "B", Family: "Two"},
				{Given: "C", Family: "Three"}, {Given: "D", Family: "Four"},
				{Given: "E", Family: "Five"}, {Given: "F", Family: "Six"},
			},
			"A One, B Two, C Three, D Four, E Five, et al.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAuthors(tt.authors); got != tt.want {
				t.Errorf("formatAuthors = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOpenAccess(t *testing.T) {
	tests := []struct {
		name string
		work crossref.Work
		want bool
	}{
		{"neither", crossref.Work{}, false},
		{
			"text-mining link",
			crossref.Work{Link: []crossref.ContentURL{{URL: "https://x", IntendedApplication: "text-mining"}}},
			true,
		},
		{
			"similarity-checking link is not enough",
			crossref.Work{Link: []crossref.ContentURL{{URL: "https://x", IntendedApplication: "similarity-checking"}}},
			false,
		},
		{
			"any license entry",
			crossref.Work{License: []crossref.License{{URL: "https://creativecommons.org/licenses/by/4.0/"}}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOpenAccess(tt.work); got != tt.want {
				t.Errorf("isOpenAccess = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAbstractFallback(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("existing abstract skips the fallback", func(t *testing.T) {
		fake := &fakeAbstracts{byDOI: map[string]string{"10.1/x": "from fallback"}}
		n := testNormalizer(fake)
		work := crossref.Work{
			DOI:             "10.1/x",
			Title:           []string{"x"},
			Abstract:        "<jats:p>Original abstract.</jats:p>",
			PublishedOnline: parted(2024, 3, 1),
		}
		article, err := n.Normalize(work, testJournal, now)
		if err != nil {
			t.Fatalf("Normalize returned error: %v", err)
		}
		if article.Abstract != "Original abstract." {
			t.Errorf("Abstract = %q, want cleaned original", article.Abstract)
		}
		if fake.calls != 0 {
			t.Errorf("fallback called %d times, want 0", fake.calls)
		}
	})

	t.Run("missing abstract uses the fallback", func(t *testing.T) {
		fake := &fakeAbstracts{byDOI: map[string]string{"10.1/x": "Recovered abstract."}}
		n := testNormalizer(fake)
		work := crossref.Work{DOI: "10.1/x", Title: []string{"x"}, PublishedOnline: parted(2024, 3, 1)}
		article, err := n.Normalize(work, testJournal, now)
		if err != nil {
			t.Fatalf("Normalize returned error: %v", err)
		}
		if article.Abstract != "Recovered abstract." {
			t.Errorf("Abstract = %q, want %q", article.Abstract, "Recovered abstract.")
		}
		if fake.calls != 1 {
			t.Errorf("fallback called %d times, want 1", fake.calls)
		}
	})

	t.Run("fallback error degrades to empty abstract", func(t *testing.T) {
		fake := &fakeAbstracts{err: errors.New("boom")}
		n := testNormalizer(fake)
		work := crossref.Work{DOI: "10.1/x", Title: []string{"x"}, PublishedOnline: parted(2024, 3, 1)}
		article, err := n.Normalize(work, testJournal, now)
		if err != nil {
			t.Fatalf("Normalize returned error: %v", err)
		}
		if article.Abstract != "" {
			t.Errorf("Abstract = %q, want empty", article.Abstract)
		}
	})

	t.Run("no doi means no fallback call", func(t *testing.T) {
		fake := &fakeAbstracts{byDOI: map[string]string{}}
		n := testNormalizer(fake)
		work := crossref.Work{Title: []string{"x"}, URL: "https://x", PublishedOnline: parted(2024, 3, 1)}
		if _, err := n.Normalize(work, testJournal, now); err != nil {
			t.Fatalf("Normalize returned error: %v", err)
		}
		if fake.calls != 0 {
			t.Errorf("fallback called %d times, want 0", fake.calls)
		}
	})
}

// Szenario aus der Praxis: ein frischer Online-Artikel landet mit Topics,
// doi.org-Link und Wochen-Einstufung im Briefing.
func TestNormalizeFreshArticleScenario(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	n := testNormalizer(nil)

	work := crossref.Work{
		DOI:             "10.1/x",
		Title:           []string{"Remote work and well-being"},
		Author:          []crossref.Author{{Given: "Jane", Family: "Doe"}},
		PublishedOnline: parted(2024, 3, 1),
	}

	article, err := n.Normalize(work, testJournal, now)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if article.Link != "https://doi.org/10.1/x" {
		t.Errorf("Link = %q, want doi.org link", article.Link)
	}
	if article.DateDisplay != "March 01, 2024" {
		t.Errorf("DateDisplay = %q, want %q", article.DateDisplay, "March 01, 2024")
	}
	wantTopics := []string{"well-being", "remote work"}
	if len(article.Topics) != len(wantTopics) {
		t.Fatalf("Topics = %v, want %v", article.Topics, wantTopics)
	}
	for i := range wantTopics {
		if article.Topics[i] != wantTopics[i] {
			t.Errorf("Topics[%d] = %q, want %q", i, article.Topics[i], wantTopics[i])
		}
	}
	if article.Journal != testJournal.Name || article.JournalColor != testJournal.Color {
		t.Errorf("journal attribution = %q/%q, want %q/%q",
			article.Journal, article.JournalColor, testJournal.Name, testJournal.Color)
	}
}

func TestCleanAbstract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{
			"jats markup stripped",
			"<jats:p>Leadership <jats:italic>matters</jats:italic>.</jats:p>",
			"Leadership matters .",
		},
		{
			"entities decoded",
			"Effort&#8211;reward imbalance &amp; strain",
			"Effort–reward imbalance & strain",
		},
		{
			"ligatures replaced",
			"The ﬁrst eﬀect", // U+FB01, U+FB00 mitten im Wort
			"The first effect",
		},
		{
			"whitespace collapsed",
			"  a \n\t b  ",
			"a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanAbstract(tt.in); got != tt.want {
				t.Errorf("CleanAbstract(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
