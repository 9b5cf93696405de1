package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/feature"
	"quantcore/internal/pipeline"
)

// TestStateBuilder_SnapshotTracksLatestLadderAndGrowsHistory checks that
// the depth ladder always reflects only the most recent quote while mid
// history accumulates across ticks.
func TestStateBuilder_SnapshotTracksLatestLadderAndGrowsHistory(t *testing.T) {
	b := pipeline.NewStateBuilder()
	b.PushQuote(99, 5, 101, 6, 100, 10)
	b.PushQuote(99.5, 4, 101.5, 7, 100.5, 12)

	snap := b.Snapshot()
	require.Len(t, snap.BidPrices, 1)
	assert.InDelta(t, 99.5, snap.BidPrices[0], 1e-9)
	assert.InDelta(t, 101.5, snap.AskPrices[0], 1e-9)

	require.Len(t, snap.MidPrices, 2)
	assert.InDelta(t, 100.0, snap.MidPrices[0], 1e-9)
	assert.InDelta(t, 100.5, snap.MidPrices[1], 1e-9)
	require.Len(t, snap.Returns, 2)
	assert.True(t, snap.Returns[0] != snap.Returns[0]) // NaN: no prior mid yet
}

// TestStateBuilder_FeedsOrderBookGeneratorWithoutPanicking exercises the
// full builder-to-generator path end to end on a short quote sequence.
func TestStateBuilder_FeedsOrderBookGeneratorWithoutPanicking(t *testing.T) {
	b := pipeline.NewStateBuilder()
	gen := feature.OrderBookFeatures{}

	for i := 0; i < 10; i++ {
		bid := 100.0 - float64(i)*0.01
		ask := 100.0 + float64(i)*0.01
		b.PushQuote(bid, 5+float64(i), ask, 6+float64(i), (bid+ask)/2, float64(i))
		out := gen.Compute(b.Snapshot())
		assert.Len(t, out, len(gen.Names()))
	}
}

// TestStateBuilder_FeedsVolatilityGeneratorAcrossHistory checks the
// tick-as-bar history feeds VolatilityFeatures without panicking once
// enough ticks have accumulated.
func TestStateBuilder_FeedsVolatilityGeneratorAcrossHistory(t *testing.T) {
	b := pipeline.NewStateBuilder()
	gen := feature.VolatilityFeatures{}

	mid := 100.0
	for i := 0; i < 150; i++ {
		mid += 0.01
		b.PushQuote(mid-0.01, 5, mid+0.01, 5, mid, 1)
	}
	out := gen.Compute(b.Snapshot())
	assert.Len(t, out, len(gen.Names()))
}

// TestStateBuilder_TradeMidsBackfillOnHorizon checks that a trade's
// mid_prices_before is resolved immediately from the prevailing quote,
// while mid_prices_after and future_mid_prices stay NaN until the quote
// stream advances far enough past the trade to resolve them.
func TestStateBuilder_TradeMidsBackfillOnHorizon(t *testing.T) {
	b := pipeline.NewStateBuilder()

	b.PushQuote(99, 5, 101, 5, 100, 10)
	b.PushTrade(100.2, 1, 1, 1)

	snap := b.Snapshot()
	require.Len(t, snap.MidPricesBefore, 1)
	assert.InDelta(t, 100.0, snap.MidPricesBefore[0], 1e-9)
	assert.True(t, snap.MidPricesAfter[0] != snap.MidPricesAfter[0])   // NaN: no quote past the trade yet
	assert.True(t, snap.FutureMidPrices[0] != snap.FutureMidPrices[0]) // NaN: horizon not reached

	b.PushQuote(99.1, 5, 101.1, 5, 100.1, 10)
	snap = b.Snapshot()
	assert.InDelta(t, 100.1, snap.MidPricesAfter[0], 1e-9) // afterHorizon == 1 tick past the trade
	assert.True(t, snap.FutureMidPrices[0] != snap.FutureMidPrices[0])

	for i := 0; i < 19; i++ {
		b.PushQuote(99.2, 5, 101.2, 5, 100.2, 10)
	}
	snap = b.Snapshot()
	assert.InDelta(t, 100.2, snap.FutureMidPrices[0], 1e-9) // futureHorizon == 20 ticks past the trade
}
