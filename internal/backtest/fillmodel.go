// FILE: fillmodel.go
package backtest

import (
	"errors"
	"math"

	"quantcore/internal/types"
)

// ErrRejectedFill is returned when the fill model computes a non-positive
// executed price; spec §4.7.3 treats this as a rejection, not a fault.
var ErrRejectedFill = errors.New("backtest: fill rejected, executed price <= 0")

// Fill computes the executed price and commission for a signal against the
// prevailing bid/ask, per spec §4.7.1. side is derived from sig.Direction:
// +1 buys at (or near) the ask, -1 sells at (or near) the bid.
func (cfg Config) Fill(sig types.Signal, bid, ask float64) (execPrice, commission float64, err error) {
	d := float64(sig.Direction)

	base := sig.LimitPrice
	if base <= 0 {
		if sig.Direction == types.DirectionLong {
			base = ask
		} else {
			base = bid
		}
	}

	slippage := d * base * cfg.SlippageBps / 1e4
	impact := d * cfg.ImpactCoef * math.Sqrt(math.Abs(sig.Size)/1000.0) * base / 100.0
	execPrice = base + slippage + impact

	commission = math.Abs(sig.Size) * cfg.PerShareFee
	if commission < cfg.MinCommission {
		commission = cfg.MinCommission
	}

	if execPrice <= 0 {
		return 0, 0, ErrRejectedFill
	}
	return execPrice, commission, nil
}
