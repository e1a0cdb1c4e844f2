package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the explorer
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Dataset Metrics
	DatasetRows        *prometheus.GaugeVec
	DatasetSkippedRows *prometheus.GaugeVec

	// Aggregation Metrics
	AggregationDuration      *prometheus.HistogramVec
	UnresolvedAirportsTotal  *prometheus.CounterVec
	RateLimitedRequestsTotal prometheus.Counter
}

// NewMetricsRegistry registers all metrics with reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics, or a fresh
// prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "explorer_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "explorer_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Dataset Metrics
		DatasetRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "explorer_dataset_rows",
				Help: "Rows loaded into the in-memory dataset by table",
			},
			[]string{"table"},
		),
		DatasetSkippedRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "explorer_dataset_skipped_rows",
				Help: "Malformed rows skipped while loading by table",
			},
			[]string{"table"},
		),

		// Aggregation Metrics
		AggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "explorer_aggregation_duration_seconds",
				Help:    "Time spent aggregating routes for one origin",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"operation"},
		),
		UnresolvedAirportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "explorer_unresolved_airports_total",
				Help: "Airports skipped on the map because no coordinates were found",
			},
			[]string{"role"},
		),
		RateLimitedRequestsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "explorer_rate_limited_requests_total",
				Help: "Requests rejected by the rate limiter",
			},
		),
	}
}
