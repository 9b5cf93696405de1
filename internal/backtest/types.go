// FILE: types.go
package backtest

import (
	"quantcore/internal/types"
)

// Row is one time-ordered market data input: spec §6 requires at least
// TimeNS, Bid, Ask; BidSize/AskSize/LastPrice/Volume/MidPrice are optional
// (zero value means absent). Mid is derived from Bid/Ask when MidPrice is
// not supplied.
type Row struct {
	TimeNS     int64
	Bid        float64
	Ask        float64
	BidSize    float64
	AskSize    float64
	LastPrice  float64
	Volume     float64
	MidPrice   float64
}

// Mid returns the row's explicit mid if set, else (bid+ask)/2.
func (r Row) Mid() float64 {
	if r.MidPrice > 0 {
		return r.MidPrice
	}
	return (r.Bid + r.Ask) / 2
}

// MarketState is passed to Strategy.OnMarketData: the current row, its
// derived mid, any precomputed feature vector for this row, and the
// portfolio state as of just before this event.
type MarketState struct {
	Row       Row
	Mid       float64
	Features  types.FeatureVector
	Portfolio types.PortfolioState
}

// Strategy is the callback protocol the simulator drives, per spec §4.8.
type Strategy interface {
	// OnMarketData may return a nil signal to mean "no action this tick".
	OnMarketData(state MarketState) (*types.Signal, error)
	OnFill(fill types.Fill)
	OnDayStart(day string)
	OnDayEnd(day string)
	Reset()
}
