// FILE: simulator.go
package backtest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"quantcore/internal/engineerr"
	"quantcore/internal/metrics"
	"quantcore/internal/perf"
	"quantcore/internal/types"
)

// Result is the backtest's recorded series plus the spec §4.7.3 summary
// metrics.
type Result struct {
	Timestamps []int64
	Equity     []float64
	Positions  []float64
	Drawdown   []float64
	Trades     []types.Fill
	TradePnLs  []float64

	TotalReturn      float64
	AnnualizedReturn float64
	Sharpe           float64
	Sortino          float64
	MaxDrawdown      float64
	Calmar           float64
	WinRate          float64
	ProfitFactor     float64
}

// Simulator drives a Strategy over a time-ordered row stream per spec
// §4.7: build state, invoke the strategy, apply the fill model and
// position machine on any signal, mark to market, and record.
type Simulator struct {
	cfg Config
	// ProgressEvery logs a coarse progress line every N rows; 0 disables
	// it. Mirrors the teacher's i%100==0 backtest progress logging,
	// generalized to a configurable cadence.
	ProgressEvery int
}

// NewSimulator builds a Simulator with the given fill model configuration.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg, ProgressEvery: 1000}
}

// Run replays rows (and, if non-nil, one precomputed feature vector per
// row) against strategy, starting from an all-zero portfolio with the
// given initial cash. The strategy is reset before the run begins.
// A panic or error from OnMarketData fails the run immediately, per spec
// §4.7.3 ("no silent swallow").
func (s *Simulator) Run(ctx context.Context, rows []Row, features []types.FeatureVector, strategy Strategy, initialCash float64) (result Result, err error) {
	strategy.Reset()
	port := types.PortfolioState{Cash: initialCash}

	result.Timestamps = make([]int64, 0, len(rows))
	result.Equity = make([]float64, 0, len(rows))
	result.Positions = make([]float64, 0, len(rows))

	var currentDay string
	for i, row := range rows {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		day := dayKey(row.TimeNS)
		if day != currentDay {
			if currentDay != "" {
				strategy.OnDayEnd(currentDay)
			}
			strategy.OnDayStart(day)
			currentDay = day
		}

		var fv types.FeatureVector
		if features != nil && i < len(features) {
			fv = features[i]
		}

		sig, sigErr := invokeStrategy(strategy, MarketState{Row: row, Mid: row.Mid(), Features: fv, Portfolio: port})
		if sigErr != nil {
			return result, fmt.Errorf("backtest: strategy fault at row %d: %w: %w", i, engineerr.ErrStrategyFault, sigErr)
		}

		if sig != nil && sig.Size > 0 {
			metrics.ObserveDecision(sig.Direction)
			execPrice, commission, fillErr := s.cfg.Fill(*sig, row.Bid, row.Ask)
			if fillErr == nil {
				before := port.RealizedPnL
				applyFill(&port, sig.Direction, sig.Size, execPrice, commission)
				delta := port.RealizedPnL - before
				if delta != 0 {
					result.TradePnLs = append(result.TradePnLs, delta)
				}
				fill := types.Fill{
					TimeNS:     row.TimeNS,
					OrderID:    uuid.Must(uuid.NewV7()).String(),
					Side:       types.Side(sig.Direction),
					Price:      execPrice,
					Quantity:   sig.Size,
					Commission: commission,
				}
				result.Trades = append(result.Trades, fill)
				metrics.ObserveFill(fill.Side)
				strategy.OnFill(fill)
			}
		}

		mid := row.Mid()
		equity := port.Equity(mid)
		metrics.SetEquity(equity)
		result.Timestamps = append(result.Timestamps, row.TimeNS)
		result.Equity = append(result.Equity, equity)
		result.Positions = append(result.Positions, port.Position)

		if s.ProgressEvery > 0 && i > 0 && i%s.ProgressEvery == 0 {
			log.Printf("[backtest] row=%d/%d equity=%.2f position=%.4f", i, len(rows), equity, port.Position)
		}
	}

	result.Drawdown = perf.DrawdownSeries(result.Equity)
	result.TotalReturn = perf.TotalReturn(result.Equity)
	result.AnnualizedReturn = perf.AnnualizedReturn(result.Equity)
	returns := perf.Returns(result.Equity)
	result.Sharpe = perf.Sharpe(returns)
	result.Sortino = perf.Sortino(returns)
	result.MaxDrawdown = perf.MaxDrawdown(result.Equity)
	result.Calmar = perf.Calmar(result.Equity)
	result.WinRate = perf.WinRate(result.TradePnLs)
	result.ProfitFactor = perf.ProfitFactor(result.TradePnLs)

	if currentDay != "" {
		strategy.OnDayEnd(currentDay)
	}

	log.Printf("[backtest] done: rows=%d trades=%d total_return=%.4f sharpe=%.4f max_dd=%.4f",
		len(rows), len(result.Trades), result.TotalReturn, result.Sharpe, result.MaxDrawdown)
	return result, nil
}

func dayKey(timeNS int64) string {
	return time.Unix(0, timeNS).UTC().Format("2006-01-02")
}

// invokeStrategy recovers a panic from OnMarketData and converts it into
// an error, so a faulting strategy fails the run via the normal error path
// instead of crashing the caller.
func invokeStrategy(strategy Strategy, state MarketState) (sig *types.Signal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return strategy.OnMarketData(state)
}
