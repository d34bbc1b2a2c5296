package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var _ Store = (*storeMetrics)(nil)

type storeMetrics struct {
	operationCounter  *prometheus.CounterVec
	durationHistogram *prometheus.HistogramVec
}

func newStoreMetrics(registry *promRegistry) *storeMetrics {
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of inventory operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_compute_duration_seconds",
			Help:    "Duration of derived-analytics computations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	registry.registry.MustRegister(operations, duration)

	return &storeMetrics{
		operationCounter:  operations,
		durationHistogram: duration,
	}
}

func (m *storeMetrics) Operation(op string, outcome string) {
	m.operationCounter.WithLabelValues(op, outcome).Add(1)
}

func (m *storeMetrics) ObserveDuration(op string, duration time.Duration) {
	m.durationHistogram.WithLabelValues(op).Observe(duration.Seconds())
}
