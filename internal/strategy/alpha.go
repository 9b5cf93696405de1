// FILE: alpha.go
package strategy

import (
	"math"

	"quantcore/internal/backtest"
	"quantcore/internal/types"
)

// Predictor is the subset of *alpha.AlphaModel that AlphaStrategy needs;
// satisfied directly by alpha.AlphaModel.PredictOne.
type Predictor interface {
	PredictOne(row []float64) (float64, error)
}

// AlphaStrategy sizes entries proportional to |alpha|/SizeScale, capped at
// MaxPosition, and flattens when |alpha| falls below ExitThreshold (spec
// §4.8). A predict failure is caught and treated as alpha = 0 for that
// tick rather than failing the run.
type AlphaStrategy struct {
	cfg       AlphaConfig
	predictor Predictor
}

// NewAlphaStrategy wraps predictor with the sizing/exit rule in cfg.
func NewAlphaStrategy(cfg AlphaConfig, predictor Predictor) *AlphaStrategy {
	return &AlphaStrategy{cfg: cfg, predictor: predictor}
}

func (s *AlphaStrategy) OnMarketData(state backtest.MarketState) (*types.Signal, error) {
	alpha, err := s.predictor.PredictOne(state.Features)
	if err != nil {
		alpha = 0
	}

	target := s.targetPosition(alpha)
	delta := target - state.Portfolio.Position
	if delta == 0 {
		return nil, nil
	}

	direction := types.DirectionLong
	if delta < 0 {
		direction = types.DirectionShort
	}
	return &types.Signal{
		TimeNS:        state.Row.TimeNS,
		Direction:     direction,
		Size:          math.Abs(delta),
		ExpectedAlpha: alpha,
	}, nil
}

func (s *AlphaStrategy) targetPosition(alpha float64) float64 {
	if math.Abs(alpha) < s.cfg.ExitThreshold {
		return 0
	}
	magnitude := s.cfg.MaxPosition * math.Abs(alpha) / s.cfg.SizeScale
	if magnitude > s.cfg.MaxPosition {
		magnitude = s.cfg.MaxPosition
	}
	if alpha < 0 {
		return -magnitude
	}
	return magnitude
}

func (s *AlphaStrategy) OnFill(types.Fill)  {}
func (s *AlphaStrategy) OnDayStart(string)  {}
func (s *AlphaStrategy) OnDayEnd(string)    {}
func (s *AlphaStrategy) Reset()             {}
