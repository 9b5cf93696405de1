// FILE: config.go
// Package alpha — the alpha signal wrapper (spec §4.5): wraps an opaque
// learner with a fit/predict protocol, schema alignment, feature
// importance, signal-decay, and IC-stability analysis.
package alpha

import "quantcore/internal/config"

// Config controls AlphaModel's fit protocol and post-fit analyses.
type Config struct {
	ValidationPct float64
	DecayLags     int
	RollingWindow int
	RollingStep   int
	RidgeLambda   float64
}

// DefaultConfig mirrors the spec's stated defaults: a 20% temporal
// validation holdout, a 20-lag decay profile, and a modest ridge penalty
// for the reference learner.
func DefaultConfig() Config {
	return Config{
		ValidationPct: 0.2,
		DecayLags:     20,
		RollingWindow: 50,
		RollingStep:   10,
		RidgeLambda:   1.0,
	}
}

// FromEnv reads ALPHA_VALIDATION_PCT, ALPHA_DECAY_LAGS,
// ALPHA_ROLLING_WINDOW, ALPHA_ROLLING_STEP, ALPHA_RIDGE_LAMBDA.
func FromEnv() Config {
	d := DefaultConfig()
	return Config{
		ValidationPct: config.GetEnvFloat("ALPHA_VALIDATION_PCT", d.ValidationPct),
		DecayLags:     config.GetEnvInt("ALPHA_DECAY_LAGS", d.DecayLags),
		RollingWindow: config.GetEnvInt("ALPHA_ROLLING_WINDOW", d.RollingWindow),
		RollingStep:   config.GetEnvInt("ALPHA_ROLLING_STEP", d.RollingStep),
		RidgeLambda:   config.GetEnvFloat("ALPHA_RIDGE_LAMBDA", d.RidgeLambda),
	}
}
