// FILE: learner.go
package walkforward

// Learner is the external predictor evaluated by a walk-forward run. It is
// fit once per fold on that fold's cleaned training rows and then asked to
// predict the fold's cleaned test rows; no state is expected to survive
// across folds. internal/alpha's AlphaModel satisfies this interface.
type Learner interface {
	Fit(trainX [][]float64, trainY []float64) error
	Predict(testX [][]float64) ([]float64, error)
}

// Factory constructs an independent Learner instance, one per fold, so that
// EvaluateParallel can run folds concurrently without sharing learner state
// (spec §4.9: "no state is shared between fold workers").
type Factory func() Learner
