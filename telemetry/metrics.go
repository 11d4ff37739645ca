package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/search"
)

// Namespace for all metrics
const metricsNamespace = "lvsearch"

// Outcome labels.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Outcome classifies a finished run.
func Outcome(st search.Stats, err error) string {
	switch {
	case err != nil:
		return OutcomeError
	case st.Found:
		return OutcomeFound
	default:
		return OutcomeExhausted
	}
}

// Metrics holds the Prometheus collectors for search runs.
type Metrics struct {
	// RunsTotal counts finished runs.
	// Labels: strategy, outcome (found, exhausted, error)
	RunsTotal *prometheus.CounterVec

	// NodesGeneratedTotal counts generated nodes.
	// Labels: strategy
	NodesGeneratedTotal *prometheus.CounterVec

	// NodesExpandedTotal counts expanded nodes.
	// Labels: strategy
	NodesExpandedTotal *prometheus.CounterVec

	// RunDurationSeconds measures wall time per run.
	// Labels: strategy
	RunDurationSeconds *prometheus.HistogramVec

	// Ramification records Expanded/Generated per run.
	// Labels: strategy
	Ramification *prometheus.HistogramVec
}

var _ search.Observer = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg.
// Panics if they are already registered with reg (promauto semantics).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Total number of search runs by strategy and outcome",
			},
			[]string{"strategy", "outcome"},
		),
		NodesGeneratedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "nodes_generated_total",
				Help:      "Total nodes generated by strategy",
			},
			[]string{"strategy"},
		),
		NodesExpandedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "nodes_expanded_total",
				Help:      "Total nodes expanded by strategy",
			},
			[]string{"strategy"},
		),
		RunDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "run_duration_seconds",
				Help:      "Search run duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"strategy"},
		),
		Ramification: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "ramification",
				Help:      "Ratio of expanded to generated nodes per run",
				Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
			},
			[]string{"strategy"},
		),
	}
}

// SearchStarted implements search.Observer.
func (m *Metrics) SearchStarted(ctx context.Context, _ search.Strategy) context.Context {
	return ctx
}

// SearchFinished implements search.Observer.
func (m *Metrics) SearchFinished(_ context.Context, st search.Stats, err error) {
	s := st.Strategy.String()
	m.RunsTotal.WithLabelValues(s, Outcome(st, err)).Inc()
	m.NodesGeneratedTotal.WithLabelValues(s).Add(float64(st.Generated))
	m.NodesExpandedTotal.WithLabelValues(s).Add(float64(st.Expanded))
	m.RunDurationSeconds.WithLabelValues(s).Observe(st.Elapsed.Seconds())
	m.Ramification.WithLabelValues(s).Observe(st.Ramification)
}
