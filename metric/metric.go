// SPDX-License-Identifier: MIT

// Package metric exposes Prometheus instrumentation for layout runs.
// All observation methods are nil-safe, so components can take an optional
// *Metrics without guarding every call site.
package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "armviz"

// Metrics contains the layout pipeline metrics.
type Metrics struct {
	OptimizerRuns         *prometheus.CounterVec
	PermutationsEvaluated *prometheus.CounterVec
	SamplingAttempts      *prometheus.CounterVec
	BestCrossings         *prometheus.HistogramVec
	OptimizeDuration      *prometheus.HistogramVec
	RulesDropped          *prometheus.CounterVec
	GraphNodes            prometheus.Gauge
}

// NewMetrics creates an unregistered Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		OptimizerRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "optimizer",
				Name:      "runs_total",
				Help:      "Total number of axis optimizer runs",
			},
			[]string{"axes", "exhaustive"},
		),
		PermutationsEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "optimizer",
				Name:      "permutations_evaluated_total",
				Help:      "Distinct entity permutations scored by the crossing counter",
			},
			[]string{"axes"},
		),
		SamplingAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "optimizer",
				Name:      "sampling_attempts_total",
				Help:      "Random permutations drawn, including duplicates",
			},
			[]string{"axes"},
		),
		BestCrossings: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "optimizer",
				Name:      "best_crossings",
				Help:      "Crossing count of the selected permutation",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"axes"},
		),
		OptimizeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "optimizer",
				Name:      "duration_seconds",
				Help:      "Axis optimizer wall time in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"axes"},
		),
		RulesDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bucket",
				Name:      "rules_dropped_total",
				Help:      "Rules excluded from axis layouts",
			},
			[]string{"reason"},
		),
		GraphNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "graph",
				Name:      "nodes",
				Help:      "Node count of the last built rule graph",
			},
		),
	}
}

// Collectors lists every collector for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.OptimizerRuns,
		m.PermutationsEvaluated,
		m.SamplingAttempts,
		m.BestCrossings,
		m.OptimizeDuration,
		m.RulesDropped,
		m.GraphNodes,
	}
}

// Register registers all collectors with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveOptimization records one optimizer run.
func (m *Metrics) ObserveOptimization(axes, attempts, evaluated, best int, exhaustive bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	k := strconv.Itoa(axes)
	m.OptimizerRuns.WithLabelValues(k, strconv.FormatBool(exhaustive)).Inc()
	m.PermutationsEvaluated.WithLabelValues(k).Add(float64(evaluated))
	m.SamplingAttempts.WithLabelValues(k).Add(float64(attempts))
	m.BestCrossings.WithLabelValues(k).Observe(float64(best))
	m.OptimizeDuration.WithLabelValues(k).Observe(elapsed.Seconds())
}

// ObserveDrop records one rule excluded from bucketing.
func (m *Metrics) ObserveDrop(reason string) {
	if m == nil {
		return
	}
	m.RulesDropped.WithLabelValues(reason).Inc()
}

// ObserveGraph records the size of a built rule graph.
func (m *Metrics) ObserveGraph(nodes int) {
	if m == nil {
		return
	}
	m.GraphNodes.Set(float64(nodes))
}
