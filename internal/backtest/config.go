// FILE: config.go
// Package backtest — event-driven backtest simulator: fill model,
// position/cash state machine, and performance summary (spec §4.7).
package backtest

import "quantcore/internal/config"

// Config holds the fill model's cost parameters (spec §4.7.1).
type Config struct {
	SlippageBps   float64
	ImpactCoef    float64
	PerShareFee   float64
	MinCommission float64
}

// DefaultConfig picks modest, documented-as-defaults transaction cost
// parameters: 5bps of slippage, a small square-root impact coefficient, a
// per-share fee, and a minimum ticket commission.
func DefaultConfig() Config {
	return Config{
		SlippageBps:   5.0,
		ImpactCoef:    0.1,
		PerShareFee:   0.0005,
		MinCommission: 1.0,
	}
}

// FromEnv reads BACKTEST_SLIPPAGE_BPS, BACKTEST_IMPACT_COEF,
// BACKTEST_PER_SHARE_FEE, BACKTEST_MIN_COMMISSION.
func FromEnv() Config {
	d := DefaultConfig()
	return Config{
		SlippageBps:   config.GetEnvFloat("BACKTEST_SLIPPAGE_BPS", d.SlippageBps),
		ImpactCoef:    config.GetEnvFloat("BACKTEST_IMPACT_COEF", d.ImpactCoef),
		PerShareFee:   config.GetEnvFloat("BACKTEST_PER_SHARE_FEE", d.PerShareFee),
		MinCommission: config.GetEnvFloat("BACKTEST_MIN_COMMISSION", d.MinCommission),
	}
}
