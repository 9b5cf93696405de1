// FILE: orderbook.go
// Package feature — OrderBookFeatures generator (17 outputs, spec §4.2).
package feature

import (
	"quantcore/internal/kernel"
	"quantcore/internal/types"
)

var orderBookNames = []string{
	"mid",
	"spread_bps",
	"weighted_mid",
	"imbalance_l1",
	"imbalance_l5",
	"imbalance_l10",
	"weighted_imbalance",
	"book_pressure",
	"depth_ratio",
	"bid_depth_5",
	"bid_depth_10",
	"ask_depth_5",
	"ask_depth_10",
	"price_impact_bid_100",
	"price_impact_bid_1000",
	"price_impact_ask_100",
	"price_impact_ask_1000",
}

// OrderBookFeatures derives top-of-book and depth features from the
// current snapshot's bid/ask ladders.
type OrderBookFeatures struct{}

func (OrderBookFeatures) Names() []string { return orderBookNames }

func (OrderBookFeatures) Compute(s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, len(orderBookNames))

	var bestBid, bestAsk, bestBidQty, bestAskQty float64
	if len(s.BidPrices) > 0 {
		bestBid = s.BidPrices[0]
	}
	if len(s.AskPrices) > 0 {
		bestAsk = s.AskPrices[0]
	}
	if len(s.BidSizes) > 0 {
		bestBidQty = s.BidSizes[0]
	}
	if len(s.AskSizes) > 0 {
		bestAskQty = s.AskSizes[0]
	}

	mid := kernel.Mid(bestBid, bestAsk)

	out[0] = mid
	out[1] = kernel.SpreadBps(bestBid, bestAsk)
	out[2] = kernel.WeightedMid(bestBid, bestAsk, bestBidQty, bestAskQty)
	out[3] = kernel.Imbalance(s.BidSizes, s.AskSizes, 1)
	out[4] = kernel.Imbalance(s.BidSizes, s.AskSizes, 5)
	out[5] = kernel.Imbalance(s.BidSizes, s.AskSizes, 10)
	out[6] = kernel.WeightedImbalance(s.BidPrices, s.BidSizes, s.AskPrices, s.AskSizes, mid)
	out[7] = kernel.BookPressure(s.BidPrices, s.BidSizes, s.AskPrices, s.AskSizes, mid)

	bidDepth10 := kernel.SumDepth(s.BidSizes, 10)
	askDepth10 := kernel.SumDepth(s.AskSizes, 10)
	if askDepth10 > 0 {
		out[8] = bidDepth10 / askDepth10
	} else {
		out[8] = 0
	}
	out[9] = kernel.SumDepth(s.BidSizes, 5)
	out[10] = bidDepth10
	out[11] = kernel.SumDepth(s.AskSizes, 5)
	out[12] = askDepth10

	out[13] = kernel.PriceImpact(s.BidPrices, s.BidSizes, 100)
	out[14] = kernel.PriceImpact(s.BidPrices, s.BidSizes, 1000)
	out[15] = kernel.PriceImpact(s.AskPrices, s.AskSizes, 100)
	out[16] = kernel.PriceImpact(s.AskPrices, s.AskSizes, 1000)

	return out
}
