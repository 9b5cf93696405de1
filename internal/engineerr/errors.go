// Package engineerr defines the sentinel error taxonomy shared by every
// quantcore package. Most numerical faults are not errors at all — a kernel
// short on samples returns NaN, and a predictor asked for an unseen column
// fills it with zero — only the kinds below surface to the caller as an
// error value.
package engineerr

import "errors"

var (
	// ErrNotFitted is returned when Predict, Score, or an evaluation method
	// is called on a learner or alpha model before Fit has succeeded.
	ErrNotFitted = errors.New("quantcore: not fitted")

	// ErrInvalidInput is returned by AlphaModel.FitReport when no row
	// survives NaN cleaning. Prices, sizes and book ordering are not
	// validated against it; the simulator ignores a signal with size <= 0
	// and drops a fill whose executed price is <= 0 without returning it.
	ErrInvalidInput = errors.New("quantcore: invalid input")

	// ErrStrategyFault wraps a panic/error raised by caller-supplied
	// strategy code inside the backtest event loop. It terminates the run.
	ErrStrategyFault = errors.New("quantcore: strategy fault")

	// ErrLearnerFault wraps a failure from the underlying Fit/Predict
	// contract of an external learner.
	ErrLearnerFault = errors.New("quantcore: learner fault")
)
