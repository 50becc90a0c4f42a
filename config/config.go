package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	OutputPath  string `envconfig:"OUTPUT_PATH" default:"research_feed.html"`
	ReportTitle string `envconfig:"REPORT_TITLE" default:"I/O Psychology Research Briefing"`

	CrossrefBaseURL        string `envconfig:"CROSSREF_BASE_URL" default:"https://api.crossref.org"`
	SemanticScholarBaseURL string `envconfig:"SEMANTIC_SCHOLAR_BASE_URL" default:"https://api.semanticscholar.org"`
	// Kontaktadresse für den Polite-Pool der CrossRef-API (bessere Rate-Limits)
	MailTo string `envconfig:"MAILTO" default:"researcher@example.com"`

	MaxRows          int `envconfig:"MAX_ROWS" default:"100"`
	WindowDays       int `envconfig:"WINDOW_DAYS" default:"90"`
	FreshDays        int `envconfig:"FRESH_DAYS" default:"7"`
	FetchDelayMs     int `envconfig:"FETCH_DELAY_MS" default:"1000"`
	FetchTimeoutSec  int `envconfig:"FETCH_TIMEOUT_SEC" default:"30"`
	EnrichTimeoutSec int `envconfig:"ENRICH_TIMEOUT_SEC" default:"10"`

	// Optionale YAML-Datei, die Journal-Liste und Taxonomie überschreibt
	SourcesFile string `envconfig:"SOURCES_FILE"`

	// Serve-Modus: Briefing per HTTP ausliefern und per Cron neu erzeugen
	Serve        bool   `envconfig:"SERVE" default:"false"`
	HTTPPort     string `envconfig:"HTTP_PORT" default:"4242"`
	CronSchedule string `envconfig:"CRON_SCHEDULE" default:"0 6 * * *"`

	// Optionaler S3-Upload des gerenderten Briefings (aktiv, sobald Bucket gesetzt)
	PublishS3URL    string `envconfig:"PUBLISH_S3_URL"`
	PublishS3Key    string `envconfig:"PUBLISH_S3_KEY"`
	PublishS3Secret string `envconfig:"PUBLISH_S3_SECRET"`
	PublishS3Region string `envconfig:"PUBLISH_S3_REGION" default:"eu-central-1"`
	PublishS3Bucket string `envconfig:"PUBLISH_S3_BUCKET"`
}

// FetchDelay gibt die Wartezeit zwischen zwei Journal-Abfragen zurück.
func (c *Config) FetchDelay() time.Duration {
	return time.Duration(c.FetchDelayMs) * time.Millisecond
}

// Window gibt das Retention-Fenster als Duration zurück.
func (c *Config) Window() time.Duration {
	return time.Duration(c.WindowDays) * 24 * time.Hour
}

// FreshWindow gibt das "This Week"-Fenster als Duration zurück.
func (c *Config) FreshWindow() time.Duration {
	return time.Duration(c.FreshDays) * 24 * time.Hour
}

// PublishEnabled meldet, ob das Briefing zusätzlich nach S3 hochgeladen wird.
func (c *Config) PublishEnabled() bool {
	return c.PublishS3Bucket != ""
}

// UserAgent baut den Polite-Pool-User-Agent für alle API-Aufrufe.
func (c *Config) UserAgent() string {
	return "journal-brief/1.0 (mailto:" + c.MailTo + ")"
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
