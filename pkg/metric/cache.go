package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var _ Cache = (*cacheMetrics)(nil)

type cacheMetrics struct {
	hitCounter      *prometheus.CounterVec
	missCounter     *prometheus.CounterVec
	evictionCounter *prometheus.CounterVec
}

func newCacheMetrics(registry *promRegistry) *cacheMetrics {
	hits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits by cache type",
		},
		[]string{"type"},
	)

	misses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses by cache type",
		},
		[]string{"type"},
	)

	evictions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Total number of cache evictions by cache type and reason",
		},
		[]string{"type", "reason"},
	)

	registry.registry.MustRegister(hits, misses, evictions)

	return &cacheMetrics{
		hitCounter:      hits,
		missCounter:     misses,
		evictionCounter: evictions,
	}
}

func (m *cacheMetrics) Hit(cacheType string) {
	m.hitCounter.WithLabelValues(cacheType).Add(1)
}

func (m *cacheMetrics) Miss(cacheType string) {
	m.missCounter.WithLabelValues(cacheType).Add(1)
}

func (m *cacheMetrics) Eviction(cacheType string, reason string) {
	m.evictionCounter.WithLabelValues(cacheType, reason).Add(1)
}
