package strategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/backtest"
	"quantcore/internal/strategy"
	"quantcore/internal/types"
)

var simpleSchema = []string{"mid", "spread_bps", "imbalance_l5"}

// TestSimpleStrategy_LongAboveThreshold checks a long entry fires when
// imbalance exceeds +tau and the position is below the long cap.
func TestSimpleStrategy_LongAboveThreshold(t *testing.T) {
	cfg := strategy.SimpleConfig{Tau: 0.3, MaxLong: 500, MaxShort: 500, TradeSize: 100}
	s := strategy.NewSimpleStrategy(cfg, simpleSchema)

	state := backtest.MarketState{Features: types.FeatureVector{100, 10, 0.5}}
	sig, err := s.OnMarketData(state)
	require.NoError(t, err)
	require.NotNil(t, sig)
	assert.Equal(t, types.DirectionLong, sig.Direction)
	assert.Equal(t, 100.0, sig.Size)
}

// TestSimpleStrategy_NoSignalBelowThreshold checks no signal fires inside
// the +-tau band.
func TestSimpleStrategy_NoSignalBelowThreshold(t *testing.T) {
	cfg := strategy.DefaultSimpleConfig()
	s := strategy.NewSimpleStrategy(cfg, simpleSchema)

	state := backtest.MarketState{Features: types.FeatureVector{100, 10, 0.05}}
	sig, err := s.OnMarketData(state)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

// TestSimpleStrategy_RespectsMaxLongCap checks that a long signal stops
// firing once the position reaches the max long cap.
func TestSimpleStrategy_RespectsMaxLongCap(t *testing.T) {
	cfg := strategy.SimpleConfig{Tau: 0.3, MaxLong: 100, MaxShort: 100, TradeSize: 100}
	s := strategy.NewSimpleStrategy(cfg, simpleSchema)

	state := backtest.MarketState{
		Features:  types.FeatureVector{100, 10, 0.5},
		Portfolio: types.PortfolioState{Position: 100},
	}
	sig, err := s.OnMarketData(state)
	require.NoError(t, err)
	assert.Nil(t, sig)
}

// TestSimpleStrategy_MissingFeatureIsNoOp checks that an unresolved schema
// index (imbalance_l5 absent) never panics or signals.
func TestSimpleStrategy_MissingFeatureIsNoOp(t *testing.T) {
	s := strategy.NewSimpleStrategy(strategy.DefaultSimpleConfig(), []string{"mid", "spread_bps"})
	sig, err := s.OnMarketData(backtest.MarketState{Features: types.FeatureVector{100, 10}})
	require.NoError(t, err)
	assert.Nil(t, sig)
}
