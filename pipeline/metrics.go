package pipeline

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of a pipeline.
// A nil *Metrics records nothing.
type Metrics struct {
	// SelectionDuration tracks selector latency by algorithm and stage.
	SelectionDuration *prometheus.HistogramVec

	// SelectionCoverage holds the coverage of the latest selection by algorithm and stage.
	SelectionCoverage *prometheus.GaugeVec

	// StageFailures counts failed stages.
	StageFailures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SelectionDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "assortment_selection_duration_seconds",
				Help: "Duration of greedy product selection in seconds",
				// Buckets from sub-millisecond toy matrices to minute-long full scans.
				Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60},
			},
			[]string{"algorithm", "stage"},
		),
		SelectionCoverage: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "assortment_selection_coverage",
				Help: "Coverage of existing plus selected products",
			},
			[]string{"algorithm", "stage"},
		),
		StageFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assortment_stage_failures_total",
				Help: "Total number of failed pipeline stages",
			},
			[]string{"stage"},
		),
	}
}

func (m *Metrics) observeSelection(algorithm, stage string, d time.Duration, coverage float64) {
	if m == nil {
		return
	}
	m.SelectionDuration.WithLabelValues(algorithm, stage).Observe(d.Seconds())
	m.SelectionCoverage.WithLabelValues(algorithm, stage).Set(coverage)
}

func (m *Metrics) stageFailed(stage string) {
	if m == nil {
		return
	}
	m.StageFailures.WithLabelValues(stage).Inc()
}
