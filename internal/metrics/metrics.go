package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the planner.
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Store Metrics
	StoreTxTotal    prometheus.CounterVec
	StoreTxDuration prometheus.Histogram

	// Band Metrics
	AdvancesTotal         prometheus.Counter
	VehiclesFinishedTotal prometheus.Counter
	QueueLength           prometheus.Gauge
	BandOccupancy         prometheus.Gauge
}

var (
	registry     *MetricsRegistry
	registryOnce sync.Once
)

// NewMetricsRegistry returns the process-wide MetricsRegistry, building it on
// first use. Collectors register against the default registerer exactly once.
func NewMetricsRegistry() *MetricsRegistry {
	registryOnce.Do(func() {
		registry = buildRegistry()
	})
	return registry
}

func buildRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "planner_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		StoreTxTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planner_store_tx_total",
				Help: "Total store transactions by outcome",
			},
			[]string{"outcome"},
		),
		StoreTxDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "planner_store_tx_duration_seconds",
				Help:    "Store transaction execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		AdvancesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "planner_band_advances_total",
				Help: "Total band advance transitions",
			},
		),
		VehiclesFinishedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "planner_vehicles_finished_total",
				Help: "Vehicles archived to history from station 10",
			},
		),
		QueueLength: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "planner_queue_length",
				Help: "Current number of vehicles waiting in the intake queue",
			},
		),
		BandOccupancy: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "planner_band_occupancy",
				Help: "Current number of occupied band stations",
			},
		),
	}
}
