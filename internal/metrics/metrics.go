// Package metrics defines Prometheus metrics for genenet.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "genenet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genenet_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genenet_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genenet_upstream_requests_total",
			Help: "Requests to upstream web services by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	LookupCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genenet_lookup_cache_hits_total",
			Help: "Annotation lookups served from cache",
		},
		[]string{"source"},
	)

	InteractionsFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "genenet_interactions_fetched_total",
			Help: "Interactions kept after threshold filtering and dedup",
		},
	)

	NetworksBuilt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "genenet_networks_built_total",
			Help: "Networks produced by the builder",
		},
	)

	NetworkSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genenet_network_size_genes",
			Help:    "Number of genes per built network",
			Buckets: []float64{2, 3, 5, 10, 20, 50, 100},
		},
	)

	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "genenet_run_duration_seconds",
			Help:    "End-to-end pipeline run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		UpstreamRequests, LookupCacheHits,
		InteractionsFetched, NetworksBuilt, NetworkSize, RunDuration,
	)
}
