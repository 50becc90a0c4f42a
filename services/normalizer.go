package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"journal-brief/models"
	"journal-brief/providers"
	"journal-brief/providers/crossref"
)

// Fehler, mit denen der Normalizer einen Rohdatensatz ablehnt.
var (
	ErrNoDate = errors.New("record has no publication date")
	ErrStale  = errors.New("record is older than the retention window")
)

// maxAuthors begrenzt die Zahl der namentlich gelisteten Autoren.
const maxAuthors = 5

// Normalizer konvertiert CrossRef-Rohdatensätze in kanonische Artikel.
type Normalizer struct {
	Tagger    *Tagger
	Abstracts providers.AbstractProvider
	Window    time.Duration
	Logger    *zap.Logger
}

// NewNormalizer erstellt einen Normalizer. abstracts darf nil sein, dann
// entfällt der Abstract-Fallback.
func NewNormalizer(tagger *Tagger, abstracts providers.AbstractProvider, window time.Duration, logger *zap.Logger) *Normalizer {
	return &Normalizer{Tagger: tagger, Abstracts: abstracts, Window: window, Logger: logger}
}

// Normalize baut aus einem Rohdatensatz einen Artikel. Datensätze ohne
// brauchbares Publikationsdatum oder außerhalb des Retention-Fensters
// werden mit ErrNoDate bzw. ErrStale abgelehnt. Der zurückgegebene Artikel
// wird danach nicht mehr verändert.
func (n *Normalizer) Normalize(work crossref.Work, journal models.Journal, now time.Time) (*models.Article, error) {
	// Datumspräzedenz: published-online > published > published-print
	pubDate := work.PublishedOnline.Date()
	if pubDate == nil {
		pubDate = work.Published.Date()
	}
	if pubDate == nil {
		pubDate = work.PublishedPrint.Date()
	}
	if pubDate == nil {
		return nil, ErrNoDate
	}
	if pubDate.Before(now.Add(-n.Window)) {
		return nil, ErrStale
	}

	title := ""
	if len(work.Title) > 0 {
		title = work.Title[0]
	}
	if title == "" {
		title = "No title"
	}

	link := ""
	switch {
	case work.DOI != "":
		link = "https://doi.org/" + work.DOI
	case work.URL != "":
		link = work.URL
	}

	abstract := CleanAbstract(work.Abstract)
	if abstract == "" && work.DOI != "" && n.Abstracts != nil {
		abstract = n.enrichAbstract(work.DOI)
	}

	return &models.Article{
		Title:        title,
		Link:         link,
		Authors:      formatAuthors(work.Author),
		Abstract:     abstract,
		Date:         pubDate,
		DateDisplay:  pubDate.Format("January 02, 2006"),
		Journal:      journal.Name,
		JournalColor: journal.Color,
		OpenAccess:   isOpenAccess(work),
		Topics:       n.Tagger.Topics(title, abstract),
	}, nil
}

// enrichAbstract holt das Abstract über den AbstractProvider nach.
// Jeder Fehler degradiert zu einem leeren Abstract.
func (n *Normalizer) enrichAbstract(doi string) string {
	abstract, err := n.Abstracts.AbstractByDOI(doi)
	if err != nil {
		n.Logger.Warn("Abstract-Fallback fehlgeschlagen",
			zap.String("provider", n.Abstracts.Name()),
			zap.String("doi", doi),
			zap.Error(err))
		return ""
	}
	if abstract != "" {
		n.Logger.Debug("Abstract über Fallback gefunden", zap.String("doi", doi))
		abstractsEnriched.Inc()
	}
	return CleanAbstract(abstract)
}

// formatAuthors baut den Anzeige-String: "Given Family" bzw. nur "Family",
// maximal fünf Namen, bei mehr Autoren mit angehängtem "et al.".
func formatAuthors(authors []crossref.Author) string {
	var names []string
	for i, a := range authors {
		if i == maxAuthors {
			break
		}
		switch {
		case a.Given != "" && a.Family != "":
			names = append(names, fmt.Sprintf("%s %s", a.Given, a.Family))
		case a.Family != "":
			names = append(names, a.Family)
		}
	}
	if len(authors) > maxAuthors {
		names = append(names, "et al.")
	}
	return strings.Join(names, ", ")
}

// isOpenAccess prüft die Open-Access-Heuristik: ein Text-Mining-Link oder
// ein beliebiger Lizenzeintrag genügt.
func isOpenAccess(work crossref.Work) bool {
	for _, l := range work.Link {
		if l.IntendedApplication == "text-mining" {
			return true
		}
	}
	return len(work.License) > 0
}
