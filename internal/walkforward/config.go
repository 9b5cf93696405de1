// FILE: config.go
// Package walkforward — strictly causal out-of-sample evaluation over
// expanding or sliding temporal windows (spec §4.4).
package walkforward

import "quantcore/internal/config"

// Config controls fold generation for Evaluate/EvaluateParallel.
type Config struct {
	TrainWindow     int
	TestWindow      int
	Step            int
	MinTrainSamples int
	Expanding       bool
}

// DefaultConfig mirrors the S5 scenario's shape: a sliding 100/20 split
// stepping by 20, requiring at least 50 cleaned training rows per fold.
func DefaultConfig() Config {
	return Config{
		TrainWindow:     100,
		TestWindow:      20,
		Step:            20,
		MinTrainSamples: 50,
		Expanding:       false,
	}
}

// FromEnv reads WALKFORWARD_TRAIN_WINDOW, WALKFORWARD_TEST_WINDOW,
// WALKFORWARD_STEP, WALKFORWARD_MIN_TRAIN_SAMPLES, WALKFORWARD_EXPANDING,
// falling back to DefaultConfig's values.
func FromEnv() Config {
	d := DefaultConfig()
	return Config{
		TrainWindow:     config.GetEnvInt("WALKFORWARD_TRAIN_WINDOW", d.TrainWindow),
		TestWindow:      config.GetEnvInt("WALKFORWARD_TEST_WINDOW", d.TestWindow),
		Step:            config.GetEnvInt("WALKFORWARD_STEP", d.Step),
		MinTrainSamples: config.GetEnvInt("WALKFORWARD_MIN_TRAIN_SAMPLES", d.MinTrainSamples),
		Expanding:       config.GetEnvBool("WALKFORWARD_EXPANDING", d.Expanding),
	}
}
