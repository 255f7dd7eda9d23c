package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus series for the API.
type Metrics struct {
	ReportsCreated prometheus.Counter

	// Geocoding proxy metrics.
	GeocodeRequests         *prometheus.CounterVec   // labels: provider, outcome={success,error}
	GeocodeCache            *prometheus.CounterVec   // labels: result={hit,miss}
	GeocodeProviderDuration *prometheus.HistogramVec // labels: provider
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smartwayz",
			Name:      "reports_created_total",
			Help:      "Total reports accepted and persisted.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smartwayz",
			Name:      "geocode_requests_total",
			Help:      "Reverse-geocoding provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smartwayz",
			Name:      "geocode_cache_total",
			Help:      "Reverse-geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "smartwayz",
			Name:      "geocode_provider_duration_seconds",
			Help:      "Reverse-geocoding provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
	}
}

// NewMetrics creates and registers all API metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsCreated,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeProviderDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so
// tests can construct as many instances as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
