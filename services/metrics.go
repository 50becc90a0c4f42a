package services

import "github.com/prometheus/client_golang/prometheus"

var (
	articlesCollected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_collected_total",
			Help: "Total number of articles that passed normalization.",
		},
	)
	journalFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_fetch_failures_total",
			Help: "Total number of failed journal fetches.",
		},
	)
	abstractsEnriched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "abstracts_enriched_total",
			Help: "Total number of abstracts recovered via the fallback provider.",
		},
	)
)

func init() {
	prometheus.MustRegister(articlesCollected, journalFetchFailures, abstractsEnriched)
}
