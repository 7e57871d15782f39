package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Quartermaster
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Upstream Metrics
	UpstreamFetchesTotal  prometheus.CounterVec
	UpstreamFetchDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	RosterRefreshesTotal prometheus.CounterVec
	SyncMembersTotal     prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quartermaster_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "quartermaster_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Upstream Metrics
		UpstreamFetchesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_upstream_fetches_total",
				Help: "Total external source fetches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		UpstreamFetchDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quartermaster_upstream_fetch_duration_seconds",
				Help:    "External source fetch latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"source"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		RosterRefreshesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_roster_refreshes_total",
				Help: "Total roster cache refreshes by trigger (stale or forced)",
			},
			[]string{"trigger"},
		),
		SyncMembersTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quartermaster_sync_members_total",
				Help: "Total memberships added and removed by confirmed syncs",
			},
			[]string{"operation"},
		),
	}
}
