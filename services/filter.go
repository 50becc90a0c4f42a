package services

import (
	"sort"
	"strings"

	"journal-brief/models"
)

// ApplyFilter wendet einen FilterState auf eine Artikelliste an und gibt die
// gefilterte, sortierte Liste zurück. Die Funktion ist die serverseitige
// Referenz für die im Briefing eingebettete Client-Logik: alle aktiven Filter
// werden UND-verknüpft, sortiert wird stabil.
func ApplyFilter(articles []*models.Article, state models.FilterState) []*models.Article {
	out := make([]*models.Article, 0, len(articles))
	for _, a := range articles {
		if matchesFilter(a, state) {
			out = append(out, a)
		}
	}
	sortArticles(out, state.SortBy)
	return out
}

// matchesFilter prüft einen einzelnen Artikel gegen alle aktiven Filter.
func matchesFilter(a *models.Article, state models.FilterState) bool {
	if state.Journal != "" && state.Journal != models.FilterAll && a.Journal != state.Journal {
		return false
	}

	if state.Topic != "" && state.Topic != models.FilterAll {
		// Membership-Test gegen die Space-separierte Topic-Liste, wie im
		// data-topics-Attribut des Briefings.
		tokens := strings.Split(strings.Join(a.Topics, " "), " ")
		found := false
		for _, tok := range tokens {
			if tok == state.Topic {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if state.Search != "" {
		if !strings.Contains(strings.ToLower(a.Title), strings.ToLower(state.Search)) {
			return false
		}
	}

	if state.OpenAccessOnly && !a.OpenAccess {
		return false
	}
	return true
}

// sortArticles sortiert in place gemäß SortOrder. Artikel ohne Datum zählen
// als Timestamp 0, genau wie das data-date-Attribut im Briefing.
func sortArticles(articles []*models.Article, order models.SortOrder) {
	switch order {
	case models.SortDateOldest:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Timestamp() < articles[j].Timestamp()
		})
	case models.SortJournal:
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Journal < articles[j].Journal
		})
	case models.SortTitle:
		sort.SliceStable(articles, func(i, j int) bool {
			return strings.ToLower(articles[i].Title) < strings.ToLower(articles[j].Title)
		})
	default:
		// date-newest ist die Voreinstellung des Briefings
		sort.SliceStable(articles, func(i, j int) bool {
			return articles[i].Timestamp() > articles[j].Timestamp()
		})
	}
}
