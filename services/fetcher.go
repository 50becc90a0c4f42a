package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"journal-brief/config"
	"journal-brief/models"
	"journal-brief/providers/crossref"
)

// WorksProvider ist das Interface zur Katalog-API, die Rohdatensätze für
// ein Journal liefert.
type WorksProvider interface {
	Works(ctx context.Context, journal models.Journal, since time.Time) ([]crossref.Work, error)
	Name() string
}

// JournalResult ist das explizite Ergebnis eines Journal-Abrufs. Err
// unterscheidet "Abruf fehlgeschlagen" von "keine Artikel gefunden";
// im aggregierten Briefing degradieren beide zu einer leeren Liste.
type JournalResult struct {
	Journal  models.Journal
	Articles []*models.Article
	Err      error
}

// FetchService orchestriert den sequentiellen Abruf aller Journals.
type FetchService struct {
	Config     *config.Config
	Logger     *zap.Logger
	Works      WorksProvider
	Normalizer *Normalizer
}

// NewFetchService erstellt eine neue Instanz des FetchService.
func NewFetchService(cfg *config.Config, logger *zap.Logger, works WorksProvider, normalizer *Normalizer) *FetchService {
	return &FetchService{Config: cfg, Logger: logger, Works: works, Normalizer: normalizer}
}

// RunForAllJournals ruft alle Journals nacheinander ab, mit einer festen
// Pause zwischen zwei Abfragen. Ein fehlgeschlagenes Journal blockiert die
// übrigen nicht; sein Result trägt den Fehler und eine leere Artikelliste.
func (f *FetchService) RunForAllJournals(ctx context.Context, journals []models.Journal) []JournalResult {
	results := make([]JournalResult, 0, len(journals))
	for i, journal := range journals {
		if i > 0 {
			// Höflichkeitspause gegenüber der API
			select {
			case <-ctx.Done():
				return results
			case <-time.After(f.Config.FetchDelay()):
			}
		}
		results = append(results, f.RunForJournal(ctx, journal, time.Now().UTC()))
	}
	return results
}

// RunForJournal holt und normalisiert die Artikel eines einzelnen Journals.
func (f *FetchService) RunForJournal(ctx context.Context, journal models.Journal, now time.Time) JournalResult {
	log := f.Logger.With(zap.String("journal", journal.Name))
	log.Info("Starte Abruf für Journal.")

	since := now.Add(-f.Config.Window())
	works, err := f.Works.Works(ctx, journal, since)
	if err != nil {
		log.Error("Journal-Abruf fehlgeschlagen", zap.String("provider", f.Works.Name()), zap.Error(err))
		journalFetchFailures.Inc()
		return JournalResult{Journal: journal, Err: err}
	}

	var articles []*models.Article
	for _, work := range works {
		article, err := f.Normalizer.Normalize(work, journal, now)
		if err != nil {
			if !errors.Is(err, ErrNoDate) && !errors.Is(err, ErrStale) {
				log.Warn("Datensatz verworfen", zap.String("doi", work.DOI), zap.Error(err))
			}
			continue
		}
		articles = append(articles, article)
	}

	articlesCollected.Add(float64(len(articles)))
	log.Info("Abruf für Journal abgeschlossen", zap.Int("articles", len(articles)))
	return JournalResult{Journal: journal, Articles: articles}
}
