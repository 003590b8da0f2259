// Package metrics defines the Prometheus collectors of the search and
// analytics services and the handler that exposes them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "namesearch"

var (
	requestBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
	searchBuckets  = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
	resultBuckets  = []float64{0, 1, 5, 10, 25, 50, 100}
)

type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Template searches.
	SearchQueriesTotal *prometheus.CounterVec
	SearchLatency      *prometheus.HistogramVec
	SearchResultsCount prometheus.Histogram
	CacheHitsTotal     prometheus.Counter
	CacheMissesTotal   prometheus.Counter

	// Index lifecycle, labelled by index name.
	DocsIndexedTotal  *prometheus.CounterVec
	DocsDeletedTotal  *prometheus.CounterVec
	IndexCommitsTotal *prometheus.CounterVec
	IndexReopensTotal *prometheus.CounterVec
	IndexGeneration   *prometheus.GaugeVec
	OpenSnapshots     *prometheus.GaugeVec
	OpenIndexes       prometheus.Gauge

	BatchJobsTotal      *prometheus.CounterVec
	CircuitBreakerState *prometheus.GaugeVec
}

// New creates every collector on reg and panics if any is already
// registered there. Tests pass a fresh prometheus.NewRegistry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return f.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}
	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return f.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}

	return &Metrics{
		HTTPRequestsTotal: counter("http_requests_total", "HTTP requests by method, route and status.", "method", "path", "status"),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   requestBuckets,
		}, []string{"method", "path"}),
		HTTPRequestsInFlight: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),

		SearchQueriesTotal: counter("search_queries_total", "Template searches by outcome (hit, zero_result, error).", "template", "outcome"),
		SearchLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_latency_seconds",
			Help:      "Search latency in seconds.",
			Buckets:   searchBuckets,
		}, []string{"cache_status"}),
		SearchResultsCount: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results_count",
			Help:      "Results returned per search.",
			Buckets:   resultBuckets,
		}),
		CacheHitsTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_hits_total",
			Help:      "Result cache hits.",
		}),
		CacheMissesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_cache_misses_total",
			Help:      "Result cache misses.",
		}),

		DocsIndexedTotal:  counter("docs_indexed_total", "Documents added or updated.", "index"),
		DocsDeletedTotal:  counter("docs_deleted_total", "Delete requests applied.", "index"),
		IndexCommitsTotal: counter("index_commits_total", "Index commits by status.", "index", "status"),
		IndexReopensTotal: counter("index_reopens_total", "Reader reopens by kind (forced, dirty, skipped).", "index", "kind"),
		IndexGeneration:   gauge("index_generation", "Current mutation generation.", "index"),
		OpenSnapshots:     gauge("index_open_snapshots", "Reader snapshots currently acquired.", "index"),
		OpenIndexes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_indexes",
			Help:      "Indexes opened by the searcher context factory.",
		}),

		BatchJobsTotal:      counter("person_batch_jobs_total", "Batch person search jobs by final status.", "status"),
		CircuitBreakerState: gauge("circuit_breaker_state", "Circuit breaker state (0=closed, 1=open, 2=half-open).", "name"),
	}
}

// Handler serves the collectors gathered by g in the Prometheus exposition
// format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
