// FILE: metrics.go
// Package metrics — Prometheus observability, relabeled from the teacher's
// bot_* metrics for the research engine: equity, walk-forward fold IC,
// drift severity, and fill/decision counters.
package metrics

import (
	"quantcore/internal/types"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Equity reports the current backtest equity snapshot in USD.
	Equity = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quantcore_equity_usd",
			Help: "Current backtest equity in USD.",
		},
	)

	// FoldIC reports the most recently computed walk-forward fold IC.
	FoldIC = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "quantcore_fold_ic",
			Help: "Most recent walk-forward fold information coefficient.",
		},
	)

	// WalkForwardFolds counts walk-forward folds evaluated.
	WalkForwardFolds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quantcore_walkforward_folds_total",
			Help: "Number of walk-forward folds evaluated.",
		},
	)

	// DriftEvents counts per-feature drift detections by severity.
	DriftEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_drift_events_total",
			Help: "Feature drift detections, labeled by severity.",
		},
		[]string{"severity"},
	)

	// Decisions counts strategy signals by direction (long|short).
	Decisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_decisions_total",
			Help: "Strategy signals emitted, labeled by direction.",
		},
		[]string{"direction"},
	)

	// Fills counts executed fills by side (buy|sell).
	Fills = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quantcore_fills_total",
			Help: "Backtest fills executed, labeled by side.",
		},
		[]string{"side"},
	)
)

func init() {
	prometheus.MustRegister(Equity, FoldIC, WalkForwardFolds, DriftEvents, Decisions, Fills)
}

// SetEquity records the current equity gauge.
func SetEquity(v float64) { Equity.Set(v) }

// ObserveFold records one walk-forward fold's IC and increments the fold
// counter.
func ObserveFold(ic float64) {
	FoldIC.Set(ic)
	WalkForwardFolds.Inc()
}

// ObserveDrift increments the drift counter for a detection's severity.
func ObserveDrift(severity types.Severity) {
	DriftEvents.WithLabelValues(severity.String()).Inc()
}

// ObserveDecision increments the decision counter for a signal's direction.
func ObserveDecision(d types.Direction) {
	switch d {
	case types.DirectionLong:
		Decisions.WithLabelValues("long").Inc()
	case types.DirectionShort:
		Decisions.WithLabelValues("short").Inc()
	}
}

// ObserveFill increments the fill counter for a fill's side.
func ObserveFill(side types.Side) {
	if side == types.SideBuy {
		Fills.WithLabelValues("buy").Inc()
	} else if side == types.SideSell {
		Fills.WithLabelValues("sell").Inc()
	}
}
