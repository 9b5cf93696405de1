package walkforward_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/walkforward"
)

// identityLearner predicts feature column 0 verbatim, letting tests control
// the exact prediction/target relationship through the input feature.
type identityLearner struct{}

func (identityLearner) Fit(trainX [][]float64, trainY []float64) error { return nil }
func (identityLearner) Predict(testX [][]float64) ([]float64, error) {
	out := make([]float64, len(testX))
	for i, row := range testX {
		out[i] = row[0]
	}
	return out, nil
}

func newIdentityLearner() walkforward.Learner { return identityLearner{} }

// failingLearner always errors on Fit, exercising the "learner fault drops
// the fold" path.
type failingLearner struct{}

func (failingLearner) Fit(trainX [][]float64, trainY []float64) error {
	return errors.New("fit failed")
}
func (failingLearner) Predict(testX [][]float64) ([]float64, error) {
	return nil, errors.New("predict failed")
}

func newFailingLearner() walkforward.Learner { return failingLearner{} }

func buildPerfectSeries(n int) ([][]float64, []float64) {
	features := make([][]float64, n)
	target := make([]float64, n)
	for i := 0; i < n; i++ {
		v := math.Sin(float64(i) * 0.1)
		features[i] = []float64{v}
		target[i] = v
	}
	return features, target
}

// TestEvaluate_PerfectPredictionYieldsICOne checks the IC-perfect-prediction
// property: a learner that reproduces the target exactly must score IC ~ 1
// and sign accuracy / hit rate of 1 on every qualifying fold.
func TestEvaluate_PerfectPredictionYieldsICOne(t *testing.T) {
	features, target := buildPerfectSeries(200)
	cfg := walkforward.Config{TrainWindow: 100, TestWindow: 20, Step: 20, MinTrainSamples: 50, Expanding: false}

	res := walkforward.Evaluate(features, target, cfg, newIdentityLearner)

	require.Greater(t, res.NFolds, 0)
	assert.InDelta(t, 1.0, res.MeanIC, 1e-6)
	assert.Equal(t, 1.0, res.MeanSignAccuracy)
	assert.Equal(t, 1.0, res.MeanHitRate)
	assert.Equal(t, 1.0, res.ICPositiveRate)
}

// TestEvaluate_DropsNaNRows checks that rows with a NaN feature or target
// are excluded from both the train and test cleaning, and do not panic the
// learner or count toward NTrain/NTest.
func TestEvaluate_DropsNaNRows(t *testing.T) {
	features, target := buildPerfectSeries(200)
	features[10][0] = math.NaN()
	target[150] = math.NaN()

	cfg := walkforward.Config{TrainWindow: 100, TestWindow: 20, Step: 20, MinTrainSamples: 50, Expanding: false}
	res := walkforward.Evaluate(features, target, cfg, newIdentityLearner)

	require.Greater(t, res.NFolds, 0)
	fullSize := (cfg.TrainWindow + cfg.TestWindow) * res.NFolds
	total := 0
	for _, f := range res.Folds {
		total += f.NTrain + f.NTest
	}
	assert.Less(t, total, fullSize)
}

// TestEvaluate_MinTrainSamplesExcludesShortFolds checks that a fold whose
// cleaned train count falls below MinTrainSamples contributes nothing to
// the aggregate.
func TestEvaluate_MinTrainSamplesExcludesShortFolds(t *testing.T) {
	features, target := buildPerfectSeries(60)
	cfg := walkforward.Config{TrainWindow: 50, TestWindow: 10, Step: 10, MinTrainSamples: 1000, Expanding: false}

	res := walkforward.Evaluate(features, target, cfg, newIdentityLearner)
	assert.Equal(t, 0, res.NFolds)
	assert.True(t, math.IsNaN(res.MeanIC))
}

// TestEvaluate_LearnerFaultDropsFold checks that a learner erroring on
// Fit/Predict drops that fold rather than panicking the run.
func TestEvaluate_LearnerFaultDropsFold(t *testing.T) {
	features, target := buildPerfectSeries(200)
	cfg := walkforward.DefaultConfig()

	res := walkforward.Evaluate(features, target, cfg, newFailingLearner)
	assert.Equal(t, 0, res.NFolds)
}

// TestEvaluateParallel_MatchesSequential checks that EvaluateParallel's
// aggregate for a given (features, target, cfg) matches Evaluate's,
// confirming folds are independent and order does not affect the result.
func TestEvaluateParallel_MatchesSequential(t *testing.T) {
	features, target := buildPerfectSeries(300)
	cfg := walkforward.Config{TrainWindow: 100, TestWindow: 20, Step: 20, MinTrainSamples: 50, Expanding: false}

	seq := walkforward.Evaluate(features, target, cfg, newIdentityLearner)
	par, err := walkforward.EvaluateParallel(context.Background(), features, target, cfg, newIdentityLearner)

	require.NoError(t, err)
	assert.Equal(t, seq.NFolds, par.NFolds)
	assert.InDelta(t, seq.MeanIC, par.MeanIC, 1e-9)
}
