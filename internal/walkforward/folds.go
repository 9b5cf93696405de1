// FILE: folds.go
package walkforward

import "quantcore/internal/types"

// GenerateFolds yields successive (train, test) index splits over n rows,
// starting at 0 and advancing by cfg.Step each time: train is [0,
// start+TrainWindow) when cfg.Expanding, else [start, start+TrainWindow);
// test is [train_end, min(train_end+TestWindow, n)). Generation stops once
// train_end would reach n or no test rows remain. Row-level NaN cleaning
// and the MinTrainSamples cutoff are applied later, by Evaluate, since they
// need the feature/target matrices this function does not see.
func GenerateFolds(n int, cfg Config) []types.Fold {
	var folds []types.Fold
	for start := 0; ; start += cfg.Step {
		trainStart := 0
		if !cfg.Expanding {
			trainStart = start
		}
		trainEnd := start + cfg.TrainWindow
		if trainEnd >= n {
			break
		}
		testStart := trainEnd
		testEnd := trainEnd + cfg.TestWindow
		if testEnd > n {
			testEnd = n
		}
		if testStart >= testEnd {
			break
		}
		folds = append(folds, types.Fold{
			TrainStart: trainStart,
			TrainEnd:   trainEnd,
			TestStart:  testStart,
			TestEnd:    testEnd,
		})
	}
	return folds
}
