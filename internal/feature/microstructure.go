// FILE: microstructure.go
// Package feature — MicrostructureFeatures generator (11 outputs, spec §4.2).
package feature

import (
	"math"

	"quantcore/internal/kernel"
	"quantcore/internal/types"
)

var microstructureNames = []string{
	"kyles_lambda_100",
	"kyles_lambda_500",
	"effective_spread_bps",
	"realized_spread_bps",
	"price_impact",
	"roll_spread",
	"amihud",
	"of_autocorr_lag1",
	"of_autocorr_lag5",
	"adverse_selection_proxy",
	"composite_liquidity_score",
}

// MicrostructureFeatures derives liquidity and adverse-selection features
// from price changes, signed trade volumes, and book depth.
type MicrostructureFeatures struct{}

func (MicrostructureFeatures) Names() []string { return microstructureNames }

func (MicrostructureFeatures) Compute(s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, len(microstructureNames))

	pc100 := tailF(s.PriceChanges, 100)
	pc500 := tailF(s.PriceChanges, 500)
	sv100 := tailF(s.SignedVolumes, 100)
	sv500 := tailF(s.SignedVolumes, 500)

	lambda100 := kernel.KylesLambda(pc100, sv100)
	lambda500 := kernel.KylesLambda(pc500, sv500)
	out[0] = lambda100
	out[1] = lambda500

	effSpread := effectiveSpreadBps(s)
	realSpread := realizedSpreadBps(s)
	out[2] = effSpread
	out[3] = realSpread

	out[4] = signedPriceImpact(s, 500)

	out[5] = kernel.RollSpread(pc500)
	out[6] = kernel.Amihud(tailF(s.Returns, 500), tailF(s.Volumes, 500))

	sides500 := tailF(s.TradeSides, 500)
	out[7] = kernel.OrderFlowAutocorr(sides500, 1)
	out[8] = kernel.OrderFlowAutocorr(sides500, 5)

	out[9] = effSpread - realSpread

	liqLambda := 1.0 / (1.0 + math.Abs(safe(lambda100)))
	liqSpread := 1.0 / (1.0 + safe(effSpread))
	liqAmihud := 1.0 / (1.0 + 1e6*safe(out[6]))
	out[10] = (liqLambda + liqSpread + liqAmihud) / 3.0

	return out
}

// effectiveSpreadBps is the mean distance of recent trade prices from the
// prevailing mid, doubled and expressed in bps: the cost an aggressor pays
// relative to the quoted midpoint at the moment of the trade.
func effectiveSpreadBps(s *types.State) float64 {
	prices := tailF(s.TradePrices, 100)
	mids := tailF(s.MidPricesBefore, 100)
	n := len(prices)
	if n > len(mids) {
		n = len(mids)
	}
	if n == 0 {
		return math.NaN()
	}
	var total float64
	var count int
	for i := 0; i < n; i++ {
		if math.IsNaN(mids[i]) || mids[i] <= 0 {
			continue
		}
		total += 2 * math.Abs(prices[i]-mids[i]) / mids[i] * 1e4
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}

// realizedSpreadBps compares the trade price to the future mid some bars
// after the trade (a later, more settled mark than the immediate
// mid_prices_after snapshot price_impact uses), signed by aggressor side:
// it nets out the part of the effective spread that reverses (adverse
// selection) from the part that persists.
func realizedSpreadBps(s *types.State) float64 {
	prices := tailF(s.TradePrices, 100)
	mids := tailF(s.MidPricesBefore, 100)
	future := tailF(s.FutureMidPrices, 100)
	sides := tailF(s.TradeSides, 100)
	n := minLen4(len(prices), len(mids), len(future), len(sides))
	if n == 0 {
		return math.NaN()
	}
	var total float64
	var count int
	for i := 0; i < n; i++ {
		if math.IsNaN(mids[i]) || mids[i] <= 0 || math.IsNaN(future[i]) {
			continue
		}
		total += 2 * sides[i] * (prices[i] - future[i]) / mids[i] * 1e4
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}

// signedPriceImpact averages side * (mid_after - mid_before) over the last
// window trades: the signed, trade-driven permanent impact on the mid
// immediately following each trade (spec §6's mid_prices_before/
// mid_prices_after engine inputs), as distinct from the book-depth-walk
// PriceImpact kernel orderbook.go uses for its own price_impact_bid/ask
// slots.
func signedPriceImpact(s *types.State, window int) float64 {
	sides := tailF(s.TradeSides, window)
	before := tailF(s.MidPricesBefore, window)
	after := tailF(s.MidPricesAfter, window)
	n := minLen3(len(sides), len(before), len(after))
	if n == 0 {
		return math.NaN()
	}
	var total float64
	var count int
	for i := 0; i < n; i++ {
		if math.IsNaN(before[i]) || math.IsNaN(after[i]) {
			continue
		}
		total += sides[i] * (after[i] - before[i])
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}

func minLen3(a, b, c int) int {
	n := a
	if b < n {
		n = b
	}
	if c < n {
		n = c
	}
	return n
}

func minLen4(a, b, c, d int) int {
	n := a
	if b < n {
		n = b
	}
	if c < n {
		n = c
	}
	if d < n {
		n = d
	}
	return n
}

func safe(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
