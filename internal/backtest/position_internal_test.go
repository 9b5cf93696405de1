package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/types"
)

// TestApplyFill_AddToLong checks the simple add-to-long branch.
func TestApplyFill_AddToLong(t *testing.T) {
	port := types.PortfolioState{Cash: 10000}
	applyFill(&port, types.DirectionLong, 10, 100, 1)
	assert.Equal(t, 10.0, port.Position)
	assert.Equal(t, 100.0, port.AvgCost)
	assert.InDelta(t, 10000-10*100-1, port.Cash, 1e-9)

	applyFill(&port, types.DirectionLong, 10, 110, 1)
	assert.Equal(t, 20.0, port.Position)
	assert.InDelta(t, 105.0, port.AvgCost, 1e-9)
}

// TestApplyFill_CoverShortThenOpenLong checks the cover-then-residual-open
// branch: buying more than the existing short flips to long at the fill
// price.
func TestApplyFill_CoverShortThenOpenLong(t *testing.T) {
	port := types.PortfolioState{Cash: 10000, Position: -10, AvgCost: 100}
	realized := applyFill(&port, types.DirectionLong, 15, 90, 0)
	assert.InDelta(t, 10*(100-90), realized, 1e-9)
	assert.Equal(t, 5.0, port.Position)
	assert.Equal(t, 90.0, port.AvgCost)
}

// TestApplyFill_CloseLongThenOpenShort checks the symmetric sell-side
// close-then-residual-open branch.
func TestApplyFill_CloseLongThenOpenShort(t *testing.T) {
	port := types.PortfolioState{Cash: 10000, Position: 10, AvgCost: 100}
	realized := applyFill(&port, types.DirectionShort, 15, 110, 0)
	assert.InDelta(t, 10*(110-100), realized, 1e-9)
	assert.Equal(t, -5.0, port.Position)
	assert.Equal(t, 110.0, port.AvgCost)
}

// TestApplyFill_PartialCoverStaysShort checks that covering less than the
// full short leaves the position short with the original avg cost.
func TestApplyFill_PartialCoverStaysShort(t *testing.T) {
	port := types.PortfolioState{Cash: 10000, Position: -10, AvgCost: 100}
	realized := applyFill(&port, types.DirectionLong, 4, 90, 0)
	assert.InDelta(t, 4*(100-90), realized, 1e-9)
	assert.Equal(t, -6.0, port.Position)
	assert.Equal(t, 100.0, port.AvgCost)
}
