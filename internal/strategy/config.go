// FILE: config.go
// Package strategy — reference Strategy implementations (spec §4.8):
// SimpleStrategy (a fixed-threshold imbalance rule) and AlphaStrategy (an
// alpha-model-driven sizing rule).
package strategy

import "quantcore/internal/config"

// SimpleConfig parameterizes SimpleStrategy.
type SimpleConfig struct {
	Tau       float64
	MaxLong   float64
	MaxShort  float64
	TradeSize float64
}

// DefaultSimpleConfig mirrors a conservative imbalance-threshold setup.
func DefaultSimpleConfig() SimpleConfig {
	return SimpleConfig{Tau: 0.3, MaxLong: 1000, MaxShort: 1000, TradeSize: 100}
}

// SimpleConfigFromEnv reads STRATEGY_SIMPLE_TAU, STRATEGY_SIMPLE_MAX_LONG,
// STRATEGY_SIMPLE_MAX_SHORT, STRATEGY_SIMPLE_TRADE_SIZE.
func SimpleConfigFromEnv() SimpleConfig {
	d := DefaultSimpleConfig()
	return SimpleConfig{
		Tau:       config.GetEnvFloat("STRATEGY_SIMPLE_TAU", d.Tau),
		MaxLong:   config.GetEnvFloat("STRATEGY_SIMPLE_MAX_LONG", d.MaxLong),
		MaxShort:  config.GetEnvFloat("STRATEGY_SIMPLE_MAX_SHORT", d.MaxShort),
		TradeSize: config.GetEnvFloat("STRATEGY_SIMPLE_TRADE_SIZE", d.TradeSize),
	}
}

// AlphaConfig parameterizes AlphaStrategy.
type AlphaConfig struct {
	MaxPosition   float64
	ExitThreshold float64
	SizeScale     float64 // alpha magnitude that maps to one full MaxPosition unit
}

// DefaultAlphaConfig mirrors spec §4.8's "|alpha|/0.05" sizing rule.
func DefaultAlphaConfig() AlphaConfig {
	return AlphaConfig{MaxPosition: 1000, ExitThreshold: 0.01, SizeScale: 0.05}
}

// AlphaConfigFromEnv reads STRATEGY_ALPHA_MAX_POSITION,
// STRATEGY_ALPHA_EXIT_THRESHOLD, STRATEGY_ALPHA_SIZE_SCALE.
func AlphaConfigFromEnv() AlphaConfig {
	d := DefaultAlphaConfig()
	return AlphaConfig{
		MaxPosition:   config.GetEnvFloat("STRATEGY_ALPHA_MAX_POSITION", d.MaxPosition),
		ExitThreshold: config.GetEnvFloat("STRATEGY_ALPHA_EXIT_THRESHOLD", d.ExitThreshold),
		SizeScale:     config.GetEnvFloat("STRATEGY_ALPHA_SIZE_SCALE", d.SizeScale),
	}
}
