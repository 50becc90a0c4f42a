package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"journal-brief/config"
	"journal-brief/models"
	"journal-brief/providers/crossref"
	"journal-brief/providers/semanticscholar"
	"journal-brief/report"
	"journal-brief/services"
	"journal-brief/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	sources := config.DefaultSources()
	if cfg.SourcesFile != "" {
		sources, err = config.LoadSources(cfg.SourcesFile)
		if err != nil {
			logging.Fatal("Sources load error", zap.String("path", cfg.SourcesFile), zap.Error(err))
		}
	}
	if err := sources.Validate(); err != nil {
		logging.Fatal("Invalid sources", zap.Error(err))
	}
	logging.Info("Sources loaded",
		zap.Int("journals", len(sources.Journals)),
		zap.Int("topics", len(sources.Taxonomy)))

	// Setup Services
	crossrefFetcher := crossref.NewFetcher(cfg, logging)
	abstractFetcher := semanticscholar.NewFetcher(cfg, logging)
	tagger := services.NewTagger(sources.Taxonomy)
	normalizer := services.NewNormalizer(tagger, abstractFetcher, cfg.Window(), logging)
	fetchService := services.NewFetchService(cfg, logging, crossrefFetcher, normalizer)
	renderer := report.NewRenderer(cfg, logging)

	if !cfg.Serve {
		if err := generateBriefing(context.Background(), cfg, fetchService, renderer, sources.Journals, logging); err != nil {
			logging.Fatal("Briefing generation failed", zap.Error(err))
		}
		return
	}

	// Serve-Modus: das Briefing wird im Speicher gehalten, per Cron neu
	// erzeugt und über gin ausgeliefert.
	var mu sync.RWMutex
	var current []byte

	regenerate := func() error {
		results := fetchService.RunForAllJournals(context.Background(), sources.Journals)
		html, err := renderer.Render(results, sources.Journals, time.Now().UTC())
		if err != nil {
			return err
		}
		mu.Lock()
		current = html
		mu.Unlock()
		if err := renderer.WriteFile(cfg.OutputPath, html); err != nil {
			logging.Warn("Briefing file write failed", zap.Error(err))
		}
		publishBriefing(context.Background(), cfg, html, logging)
		return nil
	}

	if err := regenerate(); err != nil {
		logging.Fatal("Initial briefing generation failed", zap.Error(err))
	}

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/", func(c *gin.Context) {
		mu.RLock()
		html := current
		mu.RUnlock()
		c.Data(http.StatusOK, "text/html; charset=utf-8", html)
	})

	// Setup Cron
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled briefing job...")
		if err := regenerate(); err != nil {
			logging.Error("Cron job failed", zap.Error(err))
		} else {
			logging.Info("Cron job completed")
		}
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// generateBriefing ist der Einmal-Lauf: alle Journals abrufen, Briefing
// rendern, Datei schreiben und optional nach S3 hochladen.
func generateBriefing(ctx context.Context, cfg *config.Config, fetchService *services.FetchService, renderer *report.Renderer, journals []models.Journal, logging *zap.Logger) error {
	results := fetchService.RunForAllJournals(ctx, journals)

	failed := 0
	total := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		total += len(res.Articles)
	}
	logging.Info("Fetch abgeschlossen",
		zap.Int("journals", len(journals)),
		zap.Int("failed", failed),
		zap.Int("articles", total))

	html, err := renderer.Render(results, journals, time.Now().UTC())
	if err != nil {
		return err
	}
	if err := renderer.WriteFile(cfg.OutputPath, html); err != nil {
		return err
	}
	publishBriefing(ctx, cfg, html, logging)
	return nil
}

// publishBriefing lädt das Briefing nach S3 hoch, sofern ein Bucket
// konfiguriert ist. Fehler beim Publish sind nicht fatal.
func publishBriefing(ctx context.Context, cfg *config.Config, html []byte, logging *zap.Logger) {
	if !cfg.PublishEnabled() {
		return
	}
	client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Error("S3 client creation failed", zap.Error(err))
		return
	}
	link, err := storage.UploadReport(ctx, client, cfg.PublishS3Bucket, "latest.html", html, cfg)
	if err != nil {
		logging.Error("Briefing publish failed", zap.Error(err))
		return
	}
	logging.Info("Briefing published", zap.String("link", link))
}
