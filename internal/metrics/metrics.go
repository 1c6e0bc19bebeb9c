// Package metrics exposes Prometheus counters for the discovery pipeline.
// The API server publishes them on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsScraped counts events extracted per source across discovery runs.
	EventsScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventscout_events_scraped_total",
		Help: "Number of events extracted, labeled by source tag.",
	}, []string{"source"})

	// FetchFailures counts exhausted fetch attempts per source.
	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventscout_fetch_failures_total",
		Help: "Number of fetches that exhausted all retries, labeled by source tag.",
	}, []string{"source"})

	// CacheHits counts discovery requests answered from the cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventscout_cache_hits_total",
		Help: "Discovery requests served from the event cache.",
	})

	// CacheMisses counts discovery requests that triggered a live pass.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventscout_cache_misses_total",
		Help: "Discovery requests that required a fresh scrape.",
	})

	// DiscoveryDuration tracks wall time of full discovery passes.
	DiscoveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventscout_discovery_duration_seconds",
		Help:    "Duration of full discovery passes.",
		Buckets: prometheus.DefBuckets,
	})
)

// Handler returns the HTTP handler serving the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
