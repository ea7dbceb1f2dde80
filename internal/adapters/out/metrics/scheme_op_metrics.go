// Package metrics provides prometheus instrumentation for password scheme
// operations. The interactive tool itself serves no scrape endpoint; a
// service embedding the registry wraps its managers with
// NewInstrumentedManager (or builds them via app.BuildInstrumentedRegistry)
// and registers a SchemeOpMetrics with its own prometheus registerer.
package metrics

import (
	"principal-passwd/internal/app/config"
	"principal-passwd/internal/app/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type SchemeOpMetrics struct {
	cfg                 config.MetricsContext
	BuildInfo           *prometheus.GaugeVec
	OpDurationHistogram *prometheus.HistogramVec
	OpsTotal            *prometheus.CounterVec
}

// Enforce compile-time conformance to the interface
var _ ports.OpMetrics = (*SchemeOpMetrics)(nil)

func NewSchemeOpMetrics(programName, programVersion string, cfg config.MetricsContext, reg prometheus.Registerer) (*SchemeOpMetrics, error) {
	constLabels := prometheus.Labels{
		"environment":     cfg.Environment,
		"program_name":    programName,
		"program_version": programVersion,
	}

	var opLabels = []string{string(ports.MOLabelOp), string(ports.MOLabelScheme), string(ports.MOLabelResult)}
	pa := promauto.With(reg)
	m := &SchemeOpMetrics{
		cfg: cfg,
		BuildInfo: pa.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   cfg.Namespace,
				Name:        "build_info",
				Help:        "Build information for this binary; constant value 1.",
				ConstLabels: constLabels,
			},
			[]string{}, // no dynamic labels
		),

		// Adaptive-cost schemes are deliberately slow, so durations spread
		// over several orders of magnitude.
		OpDurationHistogram: pa.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   cfg.Namespace,
				Name:        "scheme_op_duration_seconds",
				Help:        "Distribution of password scheme operation durations in seconds.",
				Buckets:     []float64{0.0001, 0.001, 0.010, 0.100, 0.500, 1.0, 3.0, 5.0},
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			opLabels,
		),

		OpsTotal: pa.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   cfg.Namespace,
				Name:        "scheme_ops_total",
				Help:        "Total number of password scheme operations partitioned by op, scheme and result.",
				ConstLabels: prometheus.Labels{"environment": cfg.Environment},
			},
			opLabels,
		),
	}

	m.BuildInfo.With(nil).Set(1)
	return m, nil
}

// OnOpDone updates all metrics for a single scheme operation.
func (m *SchemeOpMetrics) OnOpDone(op ports.MeasuredOp) {
	mol := op.Labels()
	labels := prometheus.Labels{
		string(ports.MOLabelOp):     mol[ports.MOLabelOp],
		string(ports.MOLabelScheme): mol[ports.MOLabelScheme],
		string(ports.MOLabelResult): mol[ports.MOLabelResult],
	}
	m.OpDurationHistogram.With(labels).Observe(op.Duration())
	m.OpsTotal.With(labels).Inc()
}
