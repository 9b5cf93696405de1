package walkforward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/walkforward"
)

// TestGenerateFolds_SlidingSplit mirrors scenario S5: N=200, train=100,
// test=20, step=20 must yield at least one fold, and every fold must
// satisfy train_end <= test_start with disjoint train/test ranges.
func TestGenerateFolds_SlidingSplit(t *testing.T) {
	cfg := walkforward.Config{TrainWindow: 100, TestWindow: 20, Step: 20, MinTrainSamples: 50, Expanding: false}
	folds := walkforward.GenerateFolds(200, cfg)

	assert.NotEmpty(t, folds)
	for _, f := range folds {
		assert.LessOrEqual(t, f.TrainEnd, f.TestStart, "train_end must not exceed test_start")
		assert.Less(t, f.TrainStart, f.TrainEnd)
		assert.Less(t, f.TestStart, f.TestEnd)
		assert.LessOrEqual(t, f.TestEnd, 200)
	}
}

// TestGenerateFolds_NonOverlap checks train and test index ranges never
// intersect for a sliding-window configuration.
func TestGenerateFolds_NonOverlap(t *testing.T) {
	cfg := walkforward.Config{TrainWindow: 50, TestWindow: 10, Step: 10, MinTrainSamples: 10, Expanding: false}
	folds := walkforward.GenerateFolds(120, cfg)
	require := assert.New(t)
	require.NotEmpty(folds)
	for _, f := range folds {
		require.True(f.TrainEnd <= f.TestStart)
	}
}

// TestGenerateFolds_Expanding checks that an expanding configuration always
// starts training at index 0, growing the train window each fold.
func TestGenerateFolds_Expanding(t *testing.T) {
	cfg := walkforward.Config{TrainWindow: 50, TestWindow: 10, Step: 10, MinTrainSamples: 10, Expanding: true}
	folds := walkforward.GenerateFolds(120, cfg)
	assert.NotEmpty(t, folds)
	for _, f := range folds {
		assert.Equal(t, 0, f.TrainStart)
	}
	for i := 1; i < len(folds); i++ {
		assert.Greater(t, folds[i].TrainEnd, folds[i-1].TrainEnd)
	}
}

// TestGenerateFolds_TooShortYieldsNone checks that an n smaller than a
// single train window produces no folds at all rather than panicking.
func TestGenerateFolds_TooShortYieldsNone(t *testing.T) {
	cfg := walkforward.DefaultConfig()
	folds := walkforward.GenerateFolds(10, cfg)
	assert.Empty(t, folds)
}
