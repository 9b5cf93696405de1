// FILE: simple.go
package strategy

import (
	"quantcore/internal/backtest"
	"quantcore/internal/types"
)

// SimpleStrategy is the fixed-threshold imbalance rule of spec §4.8: it
// goes long above +tau while below the max long cap, short below -tau
// while above the max short cap, trading a fixed size each time.
//
// imbalanceIndex is resolved once at construction against the caller's
// feature schema, which names the multi-level order-book imbalance at the
// 5-level depth "imbalance_l5".
type SimpleStrategy struct {
	cfg            SimpleConfig
	imbalanceIndex int
}

// NewSimpleStrategy resolves "imbalance_l5" in featureNames; imbalanceIndex
// is -1 (every tick a no-op) if the schema does not carry that feature.
func NewSimpleStrategy(cfg SimpleConfig, featureNames []string) *SimpleStrategy {
	idx := -1
	for i, name := range featureNames {
		if name == "imbalance_l5" {
			idx = i
			break
		}
	}
	return &SimpleStrategy{cfg: cfg, imbalanceIndex: idx}
}

func (s *SimpleStrategy) OnMarketData(state backtest.MarketState) (*types.Signal, error) {
	if s.imbalanceIndex < 0 || s.imbalanceIndex >= len(state.Features) {
		return nil, nil
	}
	imbalance := state.Features[s.imbalanceIndex]
	if imbalance != imbalance { // NaN: insufficient data, stay flat
		return nil, nil
	}

	switch {
	case imbalance > s.cfg.Tau && state.Portfolio.Position < s.cfg.MaxLong:
		return &types.Signal{TimeNS: state.Row.TimeNS, Direction: types.DirectionLong, Size: s.cfg.TradeSize}, nil
	case imbalance < -s.cfg.Tau && state.Portfolio.Position > -s.cfg.MaxShort:
		return &types.Signal{TimeNS: state.Row.TimeNS, Direction: types.DirectionShort, Size: s.cfg.TradeSize}, nil
	default:
		return nil, nil
	}
}

func (s *SimpleStrategy) OnFill(types.Fill)  {}
func (s *SimpleStrategy) OnDayStart(string)  {}
func (s *SimpleStrategy) OnDayEnd(string)    {}
func (s *SimpleStrategy) Reset()             {}
