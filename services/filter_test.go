package services

import (
	"testing"
	"time"

	"journal-brief/models"
)

func dateAt(day int) *time.Time {
	t := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func filterFixture() []*models.Article {
	return []*models.Article{
		{Title: "Alpha study on burnout", Journal: "Journal A", Topics: []string{"well-being"}, OpenAccess: true, Date: dateAt(5)},
		{Title: "Beta study on teams", Journal: "Journal B", Topics: []string{"teams", "leadership"}, OpenAccess: false, Date: dateAt(8)},
		{Title: "Gamma review", Journal: "Journal A", Topics: nil, OpenAccess: false, Date: dateAt(2)},
		{Title: "Delta meta-analysis", Journal: "Journal C", Topics: []string{"leadership"}, OpenAccess: true, Date: nil},
	}
}

func titles(articles []*models.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func assertTitles(t *testing.T, got []*models.Article, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("got %v, want %v", gotTitles, want)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("got %v, want %v", gotTitles, want)
		}
	}
}

func TestApplyFilterMatching(t *testing.T) {
	articles := filterFixture()

	t.Run("all passes everything, newest first", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{Journal: models.FilterAll, Topic: models.FilterAll})
		assertTitles(t, got, "Beta study on teams", "Alpha study on burnout", "Gamma review", "Delta meta-analysis")
	})

	t.Run("journal filter", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{Journal: "Journal A"})
		assertTitles(t, got, "Alpha study on burnout", "Gamma review")
	})

	t.Run("topic filter", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{Topic: "leadership"})
		assertTitles(t, got, "Beta study on teams", "Delta meta-analysis")
	})

	t.Run("search is case-insensitive on the title", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{Search: "BURNOUT"})
		assertTitles(t, got, "Alpha study on burnout")
	})

	t.Run("open access only", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{OpenAccessOnly: true})
		assertTitles(t, got, "Alpha study on burnout", "Delta meta-analysis")
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{
			Journal:        "Journal C",
			Topic:          "leadership",
			Search:         "delta",
			OpenAccessOnly: true,
		})
		assertTitles(t, got, "Delta meta-analysis")
	})

	t.Run("AND combination can be empty", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{Journal: "Journal A", OpenAccessOnly: true, Topic: "teams"})
		assertTitles(t, got)
	})
}

func TestApplyFilterSorting(t *testing.T) {
	articles := filterFixture()

	t.Run("date newest is the default, dateless last", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{})
		assertTitles(t, got, "Beta study on teams", "Alpha study on burnout", "Gamma review", "Delta meta-analysis")
	})

	t.Run("date oldest, dateless first", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{SortBy: models.SortDateOldest})
		assertTitles(t, got, "Delta meta-analysis", "Gamma review", "Alpha study on burnout", "Beta study on teams")
	})

	t.Run("journal name ascending", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{SortBy: models.SortJournal})
		assertTitles(t, got, "Alpha study on burnout", "Gamma review", "Beta study on teams", "Delta meta-analysis")
	})

	t.Run("title ascending", func(t *testing.T) {
		got := ApplyFilter(articles, models.FilterState{SortBy: models.SortTitle})
		assertTitles(t, got, "Alpha study on burnout", "Beta study on teams", "Delta meta-analysis", "Gamma review")
	})
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	articles := filterFixture()
	before := titles(articles)

	ApplyFilter(articles, models.FilterState{SortBy: models.SortTitle})

	after := titles(articles)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input order changed: %v -> %v", before, after)
		}
	}
}
