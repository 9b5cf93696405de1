// FILE: statebuilder.go
// Package pipeline — StateBuilder replays a tick stream into the rolling
// types.State snapshot feature.Generator.Compute expects: a current
// best-first depth ladder plus bounded histories of price, return, and
// trade series, using the same incremental-buffer idiom as
// internal/window across every series a generator reads.
package pipeline

import (
	"math"

	"quantcore/internal/types"
	"quantcore/internal/window"
)

// historyCapacity bounds how many ticks of price/trade history are
// retained for feature computation; generators only ever read tails up to
// 500.
const historyCapacity = 1024

// afterHorizon and futureHorizon are how many quote ticks past a trade
// StateBuilder waits before it considers mid_prices_after (the immediate
// post-trade mark) and future_mid_prices (a more settled later mark,
// matching the 20-lag horizon internal/alpha's decay profile already
// uses elsewhere in this module) resolved.
const (
	afterHorizon  = 1
	futureHorizon = 20
)

// StateBuilder maintains the current book ladder and rolling price/trade
// history, and replays both as a *types.State snapshot on every tick.
//
// Quote rows carry only a best bid/ask (no multi-level depth), so the
// ladder fields always have length <= 1; depth-level features beyond L1
// (imbalance_l5/l10, the 1000-share price-impact slots) degrade to their
// L1-only values rather than faulting, the same "insufficient data"
// convention NaN-bearing kernels use elsewhere.
type StateBuilder struct {
	bidPrice, bidSize float64
	askPrice, askSize float64
	haveQuote         bool

	mids      *window.Window[float64]
	volumes   *window.Window[float64]
	returns   *window.Window[float64]
	priceChg  *window.Window[float64]
	opens     *window.Window[float64]
	highs     *window.Window[float64]
	lows      *window.Window[float64]
	closes    *window.Window[float64]

	tradePrices   *window.Window[float64]
	tradeSizes    *window.Window[float64]
	tradeSides    *window.Window[float64]
	tradeTimeNS   *window.Window[int64]
	signedVolumes *window.Window[float64]

	// midBefore/midAfter/futureMid are trade-aligned with tradePrices
	// (one entry appended per PushTrade, trimmed to the same
	// historyCapacity), but need random-access backfill once a later
	// PushQuote resolves them, which window.Window's FIFO-only API can't
	// do — so they're held as plain slices instead.
	quoteSeq          int
	midBefore         []float64
	midAfter          []float64
	futureMid         []float64
	tradeQuoteSeq     []int
	pendingAfterHead  int
	pendingFutureHead int
}

// NewStateBuilder constructs a StateBuilder with the default history
// capacity shared across all tracked series.
func NewStateBuilder() *StateBuilder {
	return &StateBuilder{
		mids:          window.New[float64](historyCapacity),
		volumes:       window.New[float64](historyCapacity),
		returns:       window.New[float64](historyCapacity),
		priceChg:      window.New[float64](historyCapacity),
		opens:         window.New[float64](historyCapacity),
		highs:         window.New[float64](historyCapacity),
		lows:          window.New[float64](historyCapacity),
		closes:        window.New[float64](historyCapacity),
		tradePrices:   window.New[float64](historyCapacity),
		tradeSizes:    window.New[float64](historyCapacity),
		tradeSides:    window.New[float64](historyCapacity),
		tradeTimeNS:   window.New[int64](historyCapacity),
		signedVolumes: window.New[float64](historyCapacity),
	}
}

// PushQuote updates the current best bid/ask ladder and extends the
// price/volume history by one tick. Each tick is treated as its own bar
// (open == high == low == close == mid), since a flat bid/ask feed carries
// no intrabar aggregation.
func (b *StateBuilder) PushQuote(bid, bidSize, ask, askSize, mid, volume float64) {
	b.bidPrice, b.bidSize = bid, bidSize
	b.askPrice, b.askSize = ask, askSize
	b.haveQuote = true

	if prev, ok := b.lastMid(); ok && prev > 0 && mid > 0 {
		b.returns.Append(math.Log(mid / prev))
		b.priceChg.Append(mid - prev)
	} else {
		b.returns.Append(math.NaN())
		b.priceChg.Append(math.NaN())
	}

	b.mids.Append(mid)
	b.volumes.Append(volume)
	b.opens.Append(mid)
	b.highs.Append(mid)
	b.lows.Append(mid)
	b.closes.Append(mid)

	b.quoteSeq++
	for b.pendingAfterHead < len(b.midAfter) && b.quoteSeq-b.tradeQuoteSeq[b.pendingAfterHead] >= afterHorizon {
		b.midAfter[b.pendingAfterHead] = mid
		b.pendingAfterHead++
	}
	for b.pendingFutureHead < len(b.futureMid) && b.quoteSeq-b.tradeQuoteSeq[b.pendingFutureHead] >= futureHorizon {
		b.futureMid[b.pendingFutureHead] = mid
		b.pendingFutureHead++
	}
}

func (b *StateBuilder) lastMid() (float64, bool) {
	tail := b.mids.Tail(1)
	if len(tail) == 0 {
		return 0, false
	}
	return tail[0], true
}

// PushTrade appends one trade print (price, size, side in {-1,+1}, and
// event time in nanoseconds) to the rolling trade tape. mid_prices_before
// is resolved immediately from the last known quote; mid_prices_after and
// future_mid_prices are filled in once PushQuote observes afterHorizon and
// futureHorizon ticks later, respectively.
func (b *StateBuilder) PushTrade(price, size, side float64, timeNS int64) {
	b.tradePrices.Append(price)
	b.tradeSizes.Append(size)
	b.tradeSides.Append(side)
	b.tradeTimeNS.Append(timeNS)
	b.signedVolumes.Append(side * size)

	before, ok := b.lastMid()
	if !ok {
		before = math.NaN()
	}
	b.midBefore = append(b.midBefore, before)
	b.midAfter = append(b.midAfter, math.NaN())
	b.futureMid = append(b.futureMid, math.NaN())
	b.tradeQuoteSeq = append(b.tradeQuoteSeq, b.quoteSeq)
	b.trimTradeMidHistory()
}

// trimTradeMidHistory keeps the trade-aligned mid slices no longer than
// historyCapacity, matching the FIFO eviction of the window.Window-backed
// trade tape so the two stay positionally aligned.
func (b *StateBuilder) trimTradeMidHistory() {
	n := len(b.midBefore)
	if n <= historyCapacity {
		return
	}
	drop := n - historyCapacity
	b.midBefore = b.midBefore[drop:]
	b.midAfter = b.midAfter[drop:]
	b.futureMid = b.futureMid[drop:]
	b.tradeQuoteSeq = b.tradeQuoteSeq[drop:]
	b.pendingAfterHead -= drop
	if b.pendingAfterHead < 0 {
		b.pendingAfterHead = 0
	}
	b.pendingFutureHead -= drop
	if b.pendingFutureHead < 0 {
		b.pendingFutureHead = 0
	}
}

// Snapshot materializes the current ladder and history as a *types.State
// ready for Pipeline.Compute.
func (b *StateBuilder) Snapshot() *types.State {
	s := &types.State{
		Prices:    b.mids.Tail(b.mids.Len()),
		MidPrices: b.mids.Tail(b.mids.Len()),
		Volumes:   b.volumes.Tail(b.volumes.Len()),
		Returns:   b.returns.Tail(b.returns.Len()),

		PriceChanges: b.priceChg.Tail(b.priceChg.Len()),
		Opens:        b.opens.Tail(b.opens.Len()),
		Highs:        b.highs.Tail(b.highs.Len()),
		Lows:         b.lows.Tail(b.lows.Len()),
		Closes:       b.closes.Tail(b.closes.Len()),

		TradePrices:   b.tradePrices.Tail(b.tradePrices.Len()),
		TradeSizes:    b.tradeSizes.Tail(b.tradeSizes.Len()),
		TradeSides:    b.tradeSides.Tail(b.tradeSides.Len()),
		TradeTimeNS:   b.tradeTimeNS.Tail(b.tradeTimeNS.Len()),
		SignedVolumes: b.signedVolumes.Tail(b.signedVolumes.Len()),

		MidPricesBefore: copyF(b.midBefore),
		MidPricesAfter:  copyF(b.midAfter),
		FutureMidPrices: copyF(b.futureMid),
	}

	if b.haveQuote {
		s.BidPrices = []float64{b.bidPrice}
		s.BidSizes = []float64{b.bidSize}
		s.AskPrices = []float64{b.askPrice}
		s.AskSizes = []float64{b.askSize}
	}

	return s
}

func copyF(x []float64) []float64 {
	if len(x) == 0 {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
