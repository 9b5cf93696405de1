// FILE: perf.go
// Package perf — pure performance-ratio functions over return and equity
// series (spec §4.7.3): Sharpe, Sortino, Calmar, max drawdown, win rate,
// and profit factor.
package perf

import (
	"math"

	"quantcore/internal/kernel"
)

// BarsPerYear is the bar count used to scale per-bar statistics to an
// annual basis: 252, i.e. each bar is treated as one trading day.
const BarsPerYear = 252.0

// TotalReturn is (final/initial - 1) over an equity series.
func TotalReturn(equity []float64) float64 {
	if len(equity) < 2 || equity[0] == 0 {
		return math.NaN()
	}
	return equity[len(equity)-1]/equity[0] - 1
}

// AnnualizedReturn compounds TotalReturn to a BarsPerYear-bar annual basis.
func AnnualizedReturn(equity []float64) float64 {
	if len(equity) < 2 || equity[0] <= 0 || equity[len(equity)-1] <= 0 {
		return math.NaN()
	}
	n := float64(len(equity) - 1)
	if n == 0 {
		return math.NaN()
	}
	total := equity[len(equity)-1] / equity[0]
	return math.Pow(total, BarsPerYear/n) - 1
}

// Returns converts an equity series to simple per-bar returns.
func Returns(equity []float64) []float64 {
	if len(equity) < 2 {
		return nil
	}
	out := make([]float64, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		if equity[i-1] == 0 {
			out[i-1] = math.NaN()
			continue
		}
		out[i-1] = equity[i]/equity[i-1] - 1
	}
	return out
}

// Sharpe is the annualized mean-over-std ratio of per-bar returns.
func Sharpe(returns []float64) float64 {
	m := kernel.Mean(returns)
	sd := kernel.StdDev(returns)
	if sd == 0 || math.IsNaN(sd) {
		return math.NaN()
	}
	return m / sd * math.Sqrt(BarsPerYear)
}

// Sortino is Sharpe with the denominator replaced by the downside
// deviation (population std of the negative returns only, taken around
// their own mean; NaN with fewer than two negative returns).
func Sortino(returns []float64) float64 {
	m := kernel.Mean(returns)
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	if len(downside) < 2 {
		return math.NaN()
	}
	dsd := kernel.StdDev(downside)
	if dsd == 0 || math.IsNaN(dsd) {
		return math.NaN()
	}
	return m / dsd * math.Sqrt(BarsPerYear)
}

// DrawdownSeries returns, for every index, the fractional drawdown from
// the running peak equity seen so far: (peak - equity[i]) / peak.
func DrawdownSeries(equity []float64) []float64 {
	out := make([]float64, len(equity))
	if len(equity) == 0 {
		return out
	}
	peak := equity[0]
	for i, e := range equity {
		if e > peak {
			peak = e
		}
		if peak <= 0 {
			out[i] = 0
			continue
		}
		out[i] = (peak - e) / peak
	}
	return out
}

// MaxDrawdown is the largest peak-to-trough decline in the equity series,
// expressed as a fraction in [0, 1].
func MaxDrawdown(equity []float64) float64 {
	dd := DrawdownSeries(equity)
	var max float64
	for _, d := range dd {
		if d > max {
			max = d
		}
	}
	return max
}

// Calmar is annualized return divided by max drawdown.
func Calmar(equity []float64) float64 {
	maxDD := MaxDrawdown(equity)
	if maxDD == 0 {
		return math.NaN()
	}
	return AnnualizedReturn(equity) / maxDD
}

// WinRate is the fraction of non-zero trade PnLs that are positive.
func WinRate(tradePnLs []float64) float64 {
	var wins, total float64
	for _, p := range tradePnLs {
		if p == 0 {
			continue
		}
		total++
		if p > 0 {
			wins++
		}
	}
	if total == 0 {
		return math.NaN()
	}
	return wins / total
}

// ProfitFactor is sum(wins) / |sum(losses)|.
func ProfitFactor(tradePnLs []float64) float64 {
	var wins, losses float64
	for _, p := range tradePnLs {
		if p > 0 {
			wins += p
		} else if p < 0 {
			losses += p
		}
	}
	if losses == 0 {
		return math.NaN()
	}
	return wins / math.Abs(losses)
}
