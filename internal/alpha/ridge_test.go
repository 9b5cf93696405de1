package alpha_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/alpha"
)

// TestRidgeRegression_RecoversLinearRelationship checks that a ridge fit
// with a small penalty recovers a known linear coefficient closely on
// noiseless synthetic data.
func TestRidgeRegression_RecoversLinearRelationship(t *testing.T) {
	n := 200
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i%17) - 8
		x[i] = []float64{v}
		y[i] = 3*v + 1
	}

	r := alpha.NewRidgeRegression(1e-6)
	require.NoError(t, r.Fit(x, y))

	pred, err := r.Predict(x)
	require.NoError(t, err)
	score, err := r.Score(x, y)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, score, 1e-3)
	assert.Len(t, pred, n)
}

// TestRidgeRegression_PredictBeforeFit checks the not-fitted fault path.
func TestRidgeRegression_PredictBeforeFit(t *testing.T) {
	r := alpha.NewRidgeRegression(1.0)
	_, err := r.Predict([][]float64{{1, 2}})
	assert.Error(t, err)
}
