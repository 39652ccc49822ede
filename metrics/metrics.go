// Package metrics exposes Prometheus collectors for throughput analyses.
// Collectors register with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis counters and histograms, partitioned by strategy.

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sadf",
		Subsystem: "throughput",
		Name:      "analyses_total",
		Help:      "Total throughput analyses by outcome",
	}, []string{"strategy", "outcome"})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sadf",
		Subsystem: "throughput",
		Name:      "analysis_duration_seconds",
		Help:      "Wall time of one throughput analysis",
		Buckets:   []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	}, []string{"strategy"})

	ExploredStates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sadf",
		Subsystem: "explore",
		Name:      "states_total",
		Help:      "Total nodes of the graphs handed to the cycle-ratio engine",
	}, []string{"strategy"})

	CycleRatioRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sadf",
		Subsystem: "mcm",
		Name:      "runs_total",
		Help:      "Total maximum cycle ratio computations",
	}, []string{"strategy"})
)

// Outcome labels of AnalysesTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
