package perf_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/perf"
)

// TestMaxDrawdown_ScenarioS4 reproduces the spec's worked example: equity
// = [100,105,110,100,95,105,115,110] -> max_dd = (110-95)/110.
func TestMaxDrawdown_ScenarioS4(t *testing.T) {
	equity := []float64{100, 105, 110, 100, 95, 105, 115, 110}
	maxDD := perf.MaxDrawdown(equity)
	assert.InDelta(t, (110.0-95.0)/110.0, maxDD, 1e-9)
}

// TestDrawdownSeries_BoundedNonNegative checks property #11: every
// drawdown value is in [0, 1] for a representative equity path.
func TestDrawdownSeries_BoundedNonNegative(t *testing.T) {
	equity := []float64{100, 90, 120, 60, 150, 10, 200}
	for _, d := range perf.DrawdownSeries(equity) {
		assert.GreaterOrEqual(t, d, 0.0)
		assert.LessOrEqual(t, d, 1.0)
	}
}

// TestSharpe_ZeroVarianceReturnsIsNaN checks the degenerate all-flat
// returns series does not divide by zero silently into +-Inf.
func TestSharpe_ZeroVarianceReturnsIsNaN(t *testing.T) {
	flat := []float64{0.01, 0.01, 0.01, 0.01}
	assert.True(t, math.IsNaN(perf.Sharpe(flat)))
}

// TestWinRate_ProfitFactor_SimpleLedger checks the basic win-rate and
// profit-factor arithmetic on a small trade ledger.
func TestWinRate_ProfitFactor_SimpleLedger(t *testing.T) {
	pnls := []float64{10, -5, 20, -5, 0}
	assert.InDelta(t, 2.0/4.0, perf.WinRate(pnls), 1e-9)
	assert.InDelta(t, 30.0/10.0, perf.ProfitFactor(pnls), 1e-9)
}

// TestTotalReturn_SimpleGrowth checks total return arithmetic.
func TestTotalReturn_SimpleGrowth(t *testing.T) {
	equity := []float64{100, 110}
	assert.InDelta(t, 0.10, perf.TotalReturn(equity), 1e-9)
}
