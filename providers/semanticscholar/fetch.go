package semanticscholar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"journal-brief/config"
)

// Response repräsentiert die JSON-Antwort der Semantic-Scholar-Graph-API.
type Response struct {
	Abstract string `json:"abstract"`
}

// Fetcher kapselt den Abstract-Fallback über Semantic Scholar.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
	client *http.Client
}

// NewFetcher erstellt einen neuen Semantic-Scholar-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		Config: cfg,
		Logger: logger,
		client: &http.Client{Timeout: time.Duration(cfg.EnrichTimeoutSec) * time.Second},
	}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "semanticscholar"
}

// AbstractByDOI holt das Abstract zu einer DOI. Eine leere DOI liefert
// einen leeren String ohne Fehler.
func (f *Fetcher) AbstractByDOI(doi string) (string, error) {
	if doi == "" {
		return "", nil
	}

	lookupURL := fmt.Sprintf("%s/graph/v1/paper/DOI:%s?fields=abstract", f.Config.SemanticScholarBaseURL, doi)
	log := f.Logger.With(zap.String("doi", doi))
	log.Debug("Rufe Semantic Scholar API auf", zap.String("url", lookupURL))

	req, err := http.NewRequest(http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.Config.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("semantic scholar request failed with status: %d", resp.StatusCode)
	}

	var r Response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", err
	}

	if r.Abstract != "" {
		log.Debug("Abstract über Semantic Scholar gefunden.")
	}
	return r.Abstract, nil
}
