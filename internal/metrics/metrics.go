package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// JobsInFlight is the number of background jobs currently running, by kind.
	JobsInFlight = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lead_scraper",
		Subsystem: "jobs",
		Name:      "in_flight",
		Help:      "Background jobs currently running.",
	}, []string{"job"})

	// JobDurationSeconds is wall time per background job, labeled by outcome.
	JobDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lead_scraper",
		Subsystem: "jobs",
		Name:      "duration_seconds",
		Help:      "Duration of background jobs.",
		Buckets:   []float64{0.5, 1, 5, 15, 30, 60, 120, 300, 600, 1800},
	}, []string{"job", "result"})

	// SearchTermsTotal counts scraped search terms by final status.
	SearchTermsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "scrape",
		Name:      "search_terms_total",
		Help:      "Search terms scraped, labeled by final status.",
	}, []string{"status"})

	StagedLeadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "scrape",
		Name:      "staged_leads_total",
		Help:      "Raw places written to the staging area.",
	})

	ScrapeTimeoutsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "scrape",
		Name:      "timeouts_total",
		Help:      "Scrape runs force-failed by the guard timer.",
	})

	// LeadsProcessedTotal counts staged leads by processing outcome:
	// linked, duplicate or error.
	LeadsProcessedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "processing",
		Name:      "leads_total",
		Help:      "Staged leads handled by the processing job, labeled by outcome.",
	}, []string{"outcome"})

	UniqueLeadsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "processing",
		Name:      "unique_leads_created_total",
		Help:      "Unique leads created on first sighting.",
	})

	// EmailLookupsTotal counts email discovery attempts by result:
	// found or not_found.
	EmailLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lead_scraper",
		Subsystem: "email",
		Name:      "lookups_total",
		Help:      "Email discovery attempts, labeled by result and source.",
	}, []string{"result", "source"})
)

// Register registers collectors with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			JobsInFlight,
			JobDurationSeconds,
			SearchTermsTotal,
			StagedLeadsTotal,
			ScrapeTimeoutsTotal,
			LeadsProcessedTotal,
			UniqueLeadsCreatedTotal,
			EmailLookupsTotal,
		)
	})
}
