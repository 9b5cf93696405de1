// FILE: book.go
// Package kernel — order-book kernels (spec §4.1).
package kernel

import "math"

// Mid returns (bid+ask)/2, or NaN if either price is <= 0.
func Mid(bid, ask float64) float64 {
	if bid <= 0 || ask <= 0 {
		return math.NaN()
	}
	return (bid + ask) / 2
}

// SpreadBps returns (ask-bid)/mid * 1e4, or NaN on invalid prices.
func SpreadBps(bid, ask float64) float64 {
	m := Mid(bid, ask)
	if math.IsNaN(m) || m == 0 {
		return math.NaN()
	}
	return (ask - bid) / m * 1e4
}

// WeightedMid returns the size-weighted mid price. It degenerates to the
// present side if the other side has zero quantity, and is NaN if both
// sides are zero.
func WeightedMid(bid, ask, bidQty, askQty float64) float64 {
	total := bidQty + askQty
	if total <= 0 {
		return math.NaN()
	}
	if bidQty == 0 {
		return ask
	}
	if askQty == 0 {
		return bid
	}
	return (bidQty*ask + askQty*bid) / total
}

const imbalanceEps = 1e-12

// Imbalance returns (sum(bidSizes[0:L]) - sum(askSizes[0:L])) / total,
// clamped to [-1,1] by construction, returning 0 when total < eps. L is
// clamped to each side's length independently.
func Imbalance(bidSizes, askSizes []float64, l int) float64 {
	bl := l
	if bl > len(bidSizes) {
		bl = len(bidSizes)
	}
	al := l
	if al > len(askSizes) {
		al = len(askSizes)
	}
	bidSum := sum(bidSizes[:bl])
	askSum := sum(askSizes[:al])
	total := bidSum + askSum
	if total < imbalanceEps {
		return 0
	}
	return (bidSum - askSum) / total
}

// WeightedImbalance is Imbalance with per-level weight 1/(1+|mid-price|)
// applied to each level's size before summing.
func WeightedImbalance(bidPrices, bidSizes, askPrices, askSizes []float64, mid float64) float64 {
	n := len(bidPrices)
	if n > len(bidSizes) {
		n = len(bidSizes)
	}
	var bidSum float64
	for i := 0; i < n; i++ {
		w := 1.0 / (1.0 + math.Abs(mid-bidPrices[i]))
		bidSum += w * bidSizes[i]
	}
	m := len(askPrices)
	if m > len(askSizes) {
		m = len(askSizes)
	}
	var askSum float64
	for i := 0; i < m; i++ {
		w := 1.0 / (1.0 + math.Abs(mid-askPrices[i]))
		askSum += w * askSizes[i]
	}
	total := bidSum + askSum
	if total < imbalanceEps {
		return 0
	}
	return (bidSum - askSum) / total
}

const bookPressureFloor = 1e-6

// BookPressure sums bid_size/|mid-bid_price| over bid levels minus
// ask_size/|ask_price-mid| over ask levels, with denominators floored.
func BookPressure(bidPrices, bidSizes, askPrices, askSizes []float64, mid float64) float64 {
	n := len(bidPrices)
	if n > len(bidSizes) {
		n = len(bidSizes)
	}
	var p float64
	for i := 0; i < n; i++ {
		denom := math.Abs(mid - bidPrices[i])
		if denom < bookPressureFloor {
			denom = bookPressureFloor
		}
		p += bidSizes[i] / denom
	}
	m := len(askPrices)
	if m > len(askSizes) {
		m = len(askSizes)
	}
	for i := 0; i < m; i++ {
		denom := math.Abs(askPrices[i] - mid)
		if denom < bookPressureFloor {
			denom = bookPressureFloor
		}
		p -= askSizes[i] / denom
	}
	return p
}

// SumDepth returns the sum of the first n sizes (levels clamped to
// available length). Used for total bid/ask depth features.
func SumDepth(sizes []float64, n int) float64 {
	if n > len(sizes) {
		n = len(sizes)
	}
	if n <= 0 {
		return 0
	}
	return sum(sizes[:n])
}

// PriceImpact walks one side of the book (prices/sizes ordered best-first)
// accumulating filled quantity until targetQty is reached (or the side is
// exhausted), then returns the VWAP of the filled portion versus the best
// price on that side, in bps, as an absolute value.
func PriceImpact(prices, sizes []float64, targetQty float64) float64 {
	if len(prices) == 0 || len(prices) != len(sizes) || targetQty <= 0 {
		return math.NaN()
	}
	best := prices[0]
	if best <= 0 {
		return math.NaN()
	}
	var filledQty, filledNotional float64
	for i := range prices {
		remaining := targetQty - filledQty
		if remaining <= 0 {
			break
		}
		take := sizes[i]
		if take > remaining {
			take = remaining
		}
		filledQty += take
		filledNotional += take * prices[i]
	}
	if filledQty <= 0 {
		return math.NaN()
	}
	vwap := filledNotional / filledQty
	return math.Abs((vwap-best)/best) * 1e4
}
