package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"journal-brief/config"
	"journal-brief/models"
)

// Fetcher holt Rohdatensätze für ein Journal von der CrossRef-Works-API.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	client *http.Client
}

// NewFetcher erstellt einen neuen CrossRef-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		Config: cfg,
		Logger: logger,
		client: &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second},
	}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "crossref"
}

// Works holt die jüngsten Works eines Journals, gefiltert auf Online-
// Publikationsdatum >= since, absteigend nach Publikationsdatum sortiert
// und auf MaxRows begrenzt.
func (f *Fetcher) Works(ctx context.Context, journal models.Journal, since time.Time) ([]Work, error) {
	log := f.Logger.With(zap.String("journal", journal.Name), zap.String("issn", journal.ISSN))

	params := url.Values{}
	params.Set("rows", fmt.Sprintf("%d", f.Config.MaxRows))
	params.Set("filter", "from-online-pub-date:"+since.Format("2006-01-02"))
	params.Set("sort", "published")
	params.Set("order", "desc")
	worksURL := fmt.Sprintf("%s/journals/%s/works?%s", f.Config.CrossrefBaseURL, journal.ISSN, params.Encode())
	log.Debug("Rufe CrossRef API auf", zap.String("url", worksURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worksURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.Config.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crossref request failed with status: %d", resp.StatusCode)
	}

	var worksResp WorksResponse
	if err := json.NewDecoder(resp.Body).Decode(&worksResp); err != nil {
		return nil, fmt.Errorf("crossref response parse failed: %w", err)
	}

	log.Debug("CrossRef-Abfrage abgeschlossen", zap.Int("items", len(worksResp.Message.Items)))
	return worksResp.Message.Items, nil
}
