// FILE: evaluate.go
package walkforward

import (
	"fmt"
	"log"
	"math"

	"quantcore/internal/engineerr"
	"quantcore/internal/kernel"
	"quantcore/internal/metrics"
	"quantcore/internal/types"
)

// annualization for fold Sharpe, per spec §4.4 ("· sqrt(252)").
var annualization = math.Sqrt(252)

// FoldResult holds one fold's cleaned sample counts and the four per-fold
// metrics defined in spec §4.4.
type FoldResult struct {
	Fold         types.Fold
	NTrain       int
	NTest        int
	IC           float64
	SignAccuracy float64
	HitRate      float64
	Sharpe       float64
}

// Result is the aggregate walk-forward report over every qualifying fold.
type Result struct {
	NFolds           int
	MeanIC           float64
	StdIC            float64
	MinIC            float64
	MaxIC            float64
	MeanSignAccuracy float64
	MeanHitRate      float64
	MeanSharpe       float64
	StdSharpe        float64
	ICPositiveRate   float64
	Folds            []FoldResult
}

// cleanRows drops any row index where any feature column or the target is
// NaN, returning the surviving rows in original order.
func cleanRows(features [][]float64, target []float64, lo, hi int) ([][]float64, []float64) {
	x := make([][]float64, 0, hi-lo)
	y := make([]float64, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if math.IsNaN(target[i]) {
			continue
		}
		row := features[i]
		ok := true
		for _, v := range row {
			if math.IsNaN(v) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		x = append(x, row)
		y = append(y, target[i])
	}
	return x, y
}

// evaluateFold fits learner on the fold's cleaned train rows, predicts the
// cleaned test rows, and computes IC/sign accuracy/hit rate/Sharpe. It
// returns ok=false with a nil error if the fold's cleaned train count is
// below cfg.MinTrainSamples or either cleaned split is empty — an
// "insufficient data" skip, not a fault. A non-nil error, wrapping
// engineerr.ErrLearnerFault, means the fold had enough data but the
// learner's Fit/Predict contract itself failed; callers surface that
// distinctly rather than dropping it silently like the data-skip case.
func evaluateFold(learner Learner, features [][]float64, target []float64, fold types.Fold, cfg Config) (FoldResult, bool, error) {
	trainX, trainY := cleanRows(features, target, fold.TrainStart, fold.TrainEnd)
	if len(trainY) < cfg.MinTrainSamples {
		return FoldResult{}, false, nil
	}
	testX, testY := cleanRows(features, target, fold.TestStart, fold.TestEnd)
	if len(testY) == 0 {
		return FoldResult{}, false, nil
	}
	if err := learner.Fit(trainX, trainY); err != nil {
		return FoldResult{}, false, fmt.Errorf("walkforward: fold [%d:%d) fit: %w: %w", fold.TrainStart, fold.TrainEnd, engineerr.ErrLearnerFault, err)
	}
	pred, err := learner.Predict(testX)
	if err != nil {
		return FoldResult{}, false, fmt.Errorf("walkforward: fold [%d:%d) predict: %w: %w", fold.TestStart, fold.TestEnd, engineerr.ErrLearnerFault, err)
	}
	if len(pred) != len(testY) {
		return FoldResult{}, false, fmt.Errorf("walkforward: fold [%d:%d) predict: %w: got %d predictions for %d rows", fold.TestStart, fold.TestEnd, engineerr.ErrLearnerFault, len(pred), len(testY))
	}

	product := make([]float64, len(pred))
	var signMatches, hits float64
	for i := range pred {
		product[i] = pred[i] * testY[i]
		if sign(pred[i]) == sign(testY[i]) {
			signMatches++
		}
		if product[i] > 0 {
			hits++
		}
	}
	n := float64(len(pred))

	return FoldResult{
		Fold:         fold,
		NTrain:       len(trainY),
		NTest:        len(testY),
		IC:           kernel.Pearson(pred, testY),
		SignAccuracy: signMatches / n,
		HitRate:      hits / n,
		Sharpe:       kernel.Mean(product) / kernel.StdDev(product) * annualization,
	}, true, nil
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Evaluate generates folds over len(target) rows and evaluates each one in
// sequence with a freshly constructed learner, per spec §4.4. A learner
// fault on one fold is logged and that fold is dropped from the
// aggregate; it does not abort the remaining folds.
func Evaluate(features [][]float64, target []float64, cfg Config, newLearner Factory) Result {
	folds := GenerateFolds(len(target), cfg)
	results := make([]FoldResult, 0, len(folds))
	for _, f := range folds {
		r, ok, err := evaluateFold(newLearner(), features, target, f, cfg)
		if err != nil {
			log.Printf("[walkforward] %v", err)
			continue
		}
		if !ok {
			continue
		}
		metrics.ObserveFold(r.IC)
		log.Printf("[walkforward] fold train=[%d:%d) test=[%d:%d) ic=%.4f sharpe=%.4f",
			f.TrainStart, f.TrainEnd, f.TestStart, f.TestEnd, r.IC, r.Sharpe)
		results = append(results, r)
	}
	return aggregate(results)
}

func aggregate(results []FoldResult) Result {
	res := Result{Folds: results, NFolds: len(results)}
	if len(results) == 0 {
		res.MeanIC, res.StdIC, res.MinIC, res.MaxIC = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		res.MeanSignAccuracy, res.MeanHitRate = math.NaN(), math.NaN()
		res.MeanSharpe, res.StdSharpe = math.NaN(), math.NaN()
		res.ICPositiveRate = math.NaN()
		return res
	}

	ics := make([]float64, len(results))
	sharpes := make([]float64, len(results))
	var signAccSum, hitSum, icPositive float64
	res.MinIC, res.MaxIC = math.Inf(1), math.Inf(-1)
	for i, r := range results {
		ics[i] = r.IC
		sharpes[i] = r.Sharpe
		signAccSum += r.SignAccuracy
		hitSum += r.HitRate
		if !math.IsNaN(r.IC) {
			if r.IC < res.MinIC {
				res.MinIC = r.IC
			}
			if r.IC > res.MaxIC {
				res.MaxIC = r.IC
			}
			if r.IC > 0 {
				icPositive++
			}
		}
	}
	n := float64(len(results))
	res.MeanIC = kernel.Mean(ics)
	res.StdIC = kernel.StdDev(ics)
	res.MeanSignAccuracy = signAccSum / n
	res.MeanHitRate = hitSum / n
	res.MeanSharpe = kernel.Mean(sharpes)
	res.StdSharpe = kernel.StdDev(sharpes)
	res.ICPositiveRate = icPositive / n
	return res
}
