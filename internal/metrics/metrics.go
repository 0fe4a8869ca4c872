package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "arithmos"

// Evaluation status labels.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusOverflow = "overflow"
	StatusCanceled = "canceled"
)

// Metrics holds the collectors for one process. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	resultWords *prometheus.HistogramVec
	verifyCases *prometheus.CounterVec
}

// New creates the collectors and registers them, together with heap
// gauges backed by a MemoryCollector, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Number of evaluated operations by outcome.",
			},
			[]string{"op", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Wall time spent evaluating an operation.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
			},
			[]string{"op"},
		),
		resultWords: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "result_words",
				Help:      "Size of big-integer results in 64-bit words.",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"op"},
		),
		verifyCases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verify_cases_total",
				Help:      "Verify cases checked per backend and outcome.",
			},
			[]string{"backend", "outcome"},
		),
	}

	mc := NewMemoryCollector()
	heap := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of allocated heap objects.",
		},
		func() float64 { return float64(mc.Snapshot().HeapAlloc) },
	)
	gcs := prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gc_cycles_total",
			Help:      "Completed garbage collection cycles.",
		},
		func() float64 { return float64(mc.Snapshot().NumGC) },
	)

	m.registry.MustRegister(m.evaluations, m.duration, m.resultWords, m.verifyCases, heap, gcs)
	return m
}

// Registry exposes the underlying registry, for example to serve it.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveEvaluation records one operation. words is the size of a
// big-integer result, or 0 when the operation produced none.
func (m *Metrics) ObserveEvaluation(op, status string, elapsed time.Duration, words int) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	if words > 0 {
		m.resultWords.WithLabelValues(op).Observe(float64(words))
	}
}

// ObserveVerify records the outcome of one verify case for backend.
func (m *Metrics) ObserveVerify(backend string, match bool) {
	if m == nil {
		return
	}
	outcome := "match"
	if !match {
		outcome = "mismatch"
	}
	m.verifyCases.WithLabelValues(backend, outcome).Inc()
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
