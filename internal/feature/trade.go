// FILE: trade.go
// Package feature — TradeFeatures generator (16 outputs, spec §4.2).
//
// The spec enumerates 15 distinct metrics under "16 outputs"; trade_count_100
// (a plain trade-tape density diagnostic, the same kind of count the teacher
// tracks via i%100==0 progress logging in backtest.go) fills the 16th slot —
// see DESIGN.md for the reconciliation.
package feature

import (
	"quantcore/internal/kernel"
	"quantcore/internal/types"
)

var tradeNames = []string{
	"trade_imbalance_100",
	"trade_imbalance_500",
	"signed_volume_100",
	"signed_volume_500",
	"vwap_100",
	"vwap_500",
	"vwap_deviation_bps_100",
	"vwap_deviation_bps_500",
	"flow_toxicity_100",
	"flow_toxicity_500",
	"trade_arrival_rate_1s",
	"avg_trade_size_100",
	"trade_size_std_100",
	"last_trade_side",
	"last_trade_size",
	"trade_count_100",
}

// TradeFeatures derives trade-tape features from recent trade prints.
type TradeFeatures struct{}

func (TradeFeatures) Names() []string { return tradeNames }

func (TradeFeatures) Compute(s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, len(tradeNames))

	p100, sz100, sd100 := tailF(s.TradePrices, 100), tailF(s.TradeSizes, 100), tailF(s.TradeSides, 100)
	p500, sz500, sd500 := tailF(s.TradePrices, 500), tailF(s.TradeSizes, 500), tailF(s.TradeSides, 500)

	out[0] = kernel.TradeImbalance(sz100, sd100)
	out[1] = kernel.TradeImbalance(sz500, sd500)
	out[2] = kernel.SignedVolume(sz100, sd100)
	out[3] = kernel.SignedVolume(sz500, sd500)

	vwap100 := kernel.VWAP(p100, sz100)
	vwap500 := kernel.VWAP(p500, sz500)
	out[4] = vwap100
	out[5] = vwap500

	lastPrice := last(s.TradePrices)
	out[6] = kernel.VWAPDeviationBps(p100, sz100, lastPrice)
	out[7] = kernel.VWAPDeviationBps(p500, sz500, lastPrice)

	out[8] = kernel.FlowToxicity(sz100, sd100)
	out[9] = kernel.FlowToxicity(sz500, sd500)

	var now int64
	if n := len(s.TradeTimeNS); n > 0 {
		now = s.TradeTimeNS[n-1]
	}
	out[10] = kernel.TradeArrivalRate(tailI(s.TradeTimeNS, 100), now, int64(1e9))

	avg, std := kernel.AvgAndStdSize(sz100)
	out[11] = avg
	out[12] = std

	out[13] = last(s.TradeSides)
	out[14] = last(s.TradeSizes)
	out[15] = float64(len(sz100))

	return out
}
