// Package pagingmetrics exposes Prometheus instrumentation for the paging
// subsystem: queue depth, add/drop outcomes, and block-generation latency
// by format.
//
// Grounded on internal/metrics/prometheus.go's CounterVec/Gauge/Histogram
// field layout and register() pattern, retargeted from KV-store counters
// to paging counters.
package pagingmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the paging subsystem's Prometheus collectors.
type Metrics struct {
	AddTotal        *prometheus.CounterVec
	GenerateTotal   *prometheus.CounterVec
	GenerateSeconds *prometheus.HistogramVec
	QueueLength     prometheus.Gauge
	RetiredTotal    prometheus.Counter
	RequeuedTotal   prometheus.Counter
}

// NewMetrics builds and registers the paging collectors against the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AddTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paging_add_total",
			Help: "The total number of paging Add attempts, by outcome",
		}, []string{"outcome"}),
		GenerateTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paging_generate_total",
			Help: "The total number of paging blocks generated, by format",
		}, []string{"format"}),
		GenerateSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "paging_generate_seconds",
			Help:    "Duration of paging block generation",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),
		QueueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "paging_queue_length",
			Help: "The current total number of queued paging records",
		}),
		RetiredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paging_retired_total",
			Help: "The total number of paging records retired after a generate pass",
		}),
		RequeuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paging_requeued_total",
			Help: "The total number of paging records re-queued after a generate pass",
		}),
	}
	m.register()
	return m
}

func (m *Metrics) register() {
	prometheus.MustRegister(m.AddTotal)
	prometheus.MustRegister(m.GenerateTotal)
	prometheus.MustRegister(m.GenerateSeconds)
	prometheus.MustRegister(m.QueueLength)
	prometheus.MustRegister(m.RetiredTotal)
	prometheus.MustRegister(m.RequeuedTotal)
}

// RecordAdd records the outcome of a single Add call: "ok", "duplicate",
// "full", "too_big", or "bad_group".
func (m *Metrics) RecordAdd(outcome string) {
	m.AddTotal.WithLabelValues(outcome).Inc()
}

// RecordGenerate records one Generate call's format and duration.
func (m *Metrics) RecordGenerate(format string, seconds float64) {
	m.GenerateTotal.WithLabelValues(format).Inc()
	m.GenerateSeconds.WithLabelValues(format).Observe(seconds)
}

// SetQueueLength updates the queue-depth gauge.
func (m *Metrics) SetQueueLength(n float64) {
	m.QueueLength.Set(n)
}

// RecordRetireRequeue accumulates one Generate pass's retire/requeue split.
func (m *Metrics) RecordRetireRequeue(retired, requeued int) {
	m.RetiredTotal.Add(float64(retired))
	m.RequeuedTotal.Add(float64(requeued))
}
