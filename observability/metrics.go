package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// coreMetrics tracks operation counts and latency for every vault-core
// operation dispatched through native/vault and native/rewards.
type coreMetrics struct {
	operations *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	supply     prometheus.Gauge
}

var (
	coreMetricsOnce sync.Once
	coreRegistry    *coreMetrics
)

// CoreMetrics returns the lazily-initialised metrics registry used to record
// vault-core operation activity.
func CoreMetrics() *coreMetrics {
	coreMetricsOnce.Do(func() {
		coreRegistry = &coreMetrics{
			operations: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "vaultmint",
				Subsystem: "core",
				Name:      "operations_total",
				Help:      "Total core operations segmented by operation name and outcome.",
			}, []string{"operation", "outcome"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "vaultmint",
				Subsystem: "core",
				Name:      "operation_duration_seconds",
				Help:      "Latency distribution for vault-core operation handlers.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"operation"}),
			supply: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "vaultmint",
				Subsystem: "core",
				Name:      "receipt_supply",
				Help:      "Last observed receipt token supply as tracked by the core.",
			}),
		}
		prometheus.MustRegister(coreRegistry.operations, coreRegistry.latency, coreRegistry.supply)
	})
	return coreRegistry
}

// Observe records the outcome of a dispatched operation.
func (m *coreMetrics) Observe(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.latency.WithLabelValues(operation).Observe(seconds)
}

// SetReceiptSupply records the last known receipt supply for dashboards.
func (m *coreMetrics) SetReceiptSupply(amount uint64) {
	if m == nil {
		return
	}
	m.supply.Set(float64(amount))
}
