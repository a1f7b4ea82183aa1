// Package metrics records indicator outcomes as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome label values.
const (
	OutcomeFlagged       = "flagged"
	OutcomeClear         = "clear"
	OutcomeNotApplicable = "not_applicable"
	OutcomeError         = "error"
)

// Metrics holds the indicator collectors on a private registry, so several
// instances can coexist (e.g. in tests).
type Metrics struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	percentDiff *prometheus.HistogramVec
	lastRun     prometheus.Gauge
}

// New creates the collectors and registers them with Go runtime metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redflags_evaluations_total",
			Help: "Indicator evaluations by indicator and outcome.",
		}, []string{"indicator", "outcome"}),
		percentDiff: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "redflags_price_relative_difference",
			Help:    "Relative difference between estimated price and winning bid.",
			Buckets: []float64{0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1},
		}, []string{"indicator"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "redflags_last_run_timestamp_seconds",
			Help: "Unix time of the last evaluation.",
		}),
	}
	m.registry.MustRegister(
		m.evaluations,
		m.percentDiff,
		m.lastRun,
		collectors.NewGoCollector(),
	)
	return m
}

// RecordOutcome counts one evaluation and stamps the last-run gauge.
func (m *Metrics) RecordOutcome(indicator, outcome string) {
	m.evaluations.WithLabelValues(indicator, outcome).Inc()
	m.lastRun.SetToCurrentTime()
}

// ObservePercentDiff records the relative price difference of an applicable evaluation.
func (m *Metrics) ObservePercentDiff(indicator string, diff float64) {
	m.percentDiff.WithLabelValues(indicator).Observe(diff)
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all metrics to path in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

