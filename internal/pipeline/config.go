// FILE: config.go
// Package pipeline — PipelineConfig (spec §6).
package pipeline

import "quantcore/internal/config"

// Config controls normalization behavior of a Pipeline.
type Config struct {
	Normalize    bool
	ClipOutliers bool
	OutlierStd   float64
}

// DefaultConfig mirrors the spec's documented defaults: normalization on,
// clipping off, a 5-sigma clip threshold ready to use if clipping is
// enabled later.
func DefaultConfig() Config {
	return Config{
		Normalize:    true,
		ClipOutliers: false,
		OutlierStd:   5.0,
	}
}

// FromEnv reads PIPELINE_NORMALIZE, PIPELINE_CLIP_OUTLIERS, and
// PIPELINE_OUTLIER_STD, falling back to DefaultConfig's values.
func FromEnv() Config {
	d := DefaultConfig()
	return Config{
		Normalize:    config.GetEnvBool("PIPELINE_NORMALIZE", d.Normalize),
		ClipOutliers: config.GetEnvBool("PIPELINE_CLIP_OUTLIERS", d.ClipOutliers),
		OutlierStd:   config.GetEnvFloat("PIPELINE_OUTLIER_STD", d.OutlierStd),
	}
}
