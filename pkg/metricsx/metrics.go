// Package metricsx records validation batch runs as Prometheus metrics and
// writes them in the text exposition format for a node exporter textfile
// collector.
package metricsx

import (
	"time"

	"github.com/Abraxas-365/formkit/pkg/errx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check results used as the "result" label.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultTimeout = "timeout"
)

// KindUnknown labels checks whose kind is not recognized.
const KindUnknown = "unknown"

// Metrics provides observability for batch validation. A nil *Metrics
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Checks by kind and result
	Checks *prometheus.CounterVec

	// Check latency by kind, including retries
	CheckLatency *prometheus.HistogramVec

	// Retries scheduled after a timed out attempt
	Retries prometheus.Counter

	// Attempts that hit the per-check timeout
	Timeouts prometheus.Counter
}

// New creates a Metrics instance on its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "formkit_checks_total",
			Help: "Total checks by kind and result",
		}, []string{"kind", "result"}),

		CheckLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "formkit_check_duration_seconds",
			Help:    "Duration of a single check including retries",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"kind"}),

		Retries: factory.NewCounter(prometheus.CounterOpts{
			Name: "formkit_check_retries_total",
			Help: "Retries scheduled after a timed out check",
		}),

		Timeouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "formkit_check_timeouts_total",
			Help: "Check attempts that exceeded the timeout",
		}),
	}
}

// ObserveCheck records one finished check.
func (m *Metrics) ObserveCheck(kind, result string, d time.Duration) {
	if m != nil {
		m.Checks.WithLabelValues(kind, result).Inc()
		m.CheckLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// IncRetry records a scheduled retry.
func (m *Metrics) IncRetry() {
	if m != nil {
		m.Retries.Inc()
	}
}

// IncTimeout records an attempt that timed out.
func (m *Metrics) IncTimeout() {
	if m != nil {
		m.Timeouts.Inc()
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errx.Wrap(err, "write metrics", errx.TypeInternal).WithDetail("path", path)
	}
	return nil
}
