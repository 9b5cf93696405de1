package backtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/backtest"
	"quantcore/internal/types"
)

// TestFill_BuyUsesAskPlusSlippageAndImpact checks the fill model's
// base-price, slippage, and impact formulas for a buy with no limit price.
func TestFill_BuyUsesAskPlusSlippageAndImpact(t *testing.T) {
	cfg := backtest.Config{SlippageBps: 10, ImpactCoef: 0.1, PerShareFee: 0.001, MinCommission: 1}
	sig := types.Signal{Direction: types.DirectionLong, Size: 1000}

	exec, commission, err := cfg.Fill(sig, 99.9, 100.1)
	require.NoError(t, err)

	base := 100.1
	wantSlippage := base * 10 / 1e4
	wantImpact := 0.1 * 1.0 * base / 100.0 // sqrt(1000/1000) == 1
	assert.InDelta(t, base+wantSlippage+wantImpact, exec, 1e-9)
	assert.InDelta(t, 1.0, commission, 1e-9) // max(1000*0.001, 1) == 1
}

// TestFill_SellUsesBidAndNegativeSlippage checks a sell quotes off the bid
// and slippage/impact reduce the executed price (seller receives less).
func TestFill_SellUsesBidAndNegativeSlippage(t *testing.T) {
	cfg := backtest.Config{SlippageBps: 10, ImpactCoef: 0, PerShareFee: 0.001, MinCommission: 1}
	sig := types.Signal{Direction: types.DirectionShort, Size: 100}

	exec, _, err := cfg.Fill(sig, 99.9, 100.1)
	require.NoError(t, err)
	assert.Less(t, exec, 99.9)
}

// TestFill_MinCommissionFloor checks the commission floor applies for
// small orders.
func TestFill_MinCommissionFloor(t *testing.T) {
	cfg := backtest.Config{SlippageBps: 0, ImpactCoef: 0, PerShareFee: 0.001, MinCommission: 5}
	sig := types.Signal{Direction: types.DirectionLong, Size: 10}
	_, commission, err := cfg.Fill(sig, 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 5.0, commission)
}
