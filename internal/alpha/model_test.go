package alpha_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantcore/internal/alpha"
	"quantcore/internal/engineerr"
)

func newTestLearner() alpha.Learner { return alpha.NewRidgeRegression(1e-3) }

func buildLinearSeries(n int) ([][]float64, []float64) {
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		v := math.Sin(float64(i) * 0.05)
		x[i] = []float64{v, -v}
		y[i] = 2*v + 0.01*float64(i%3)
	}
	return x, y
}

// TestAlphaModel_FitReportPopulatesMetrics checks that FitReport produces
// finite train/val IC and R^2, and importances that sum to 1.
func TestAlphaModel_FitReportPopulatesMetrics(t *testing.T) {
	x, y := buildLinearSeries(300)
	cfg := alpha.DefaultConfig()
	m := alpha.NewAlphaModel(cfg, []string{"f0", "f1"}, newTestLearner)

	require.NoError(t, m.FitReport(x, y))
	assert.False(t, math.IsNaN(m.TrainIC))
	assert.False(t, math.IsNaN(m.ValIC))

	var sum float64
	for _, v := range m.Importances {
		assert.GreaterOrEqual(t, v, 0.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	assert.Len(t, m.DecayProfile, cfg.DecayLags)
	assert.GreaterOrEqual(t, m.HalfLife, 1)
	assert.LessOrEqual(t, m.HalfLife, cfg.DecayLags)
}

// TestAlphaModel_PredictBeforeFitFaults checks the not-fitted error path.
func TestAlphaModel_PredictBeforeFitFaults(t *testing.T) {
	m := alpha.NewAlphaModel(alpha.DefaultConfig(), []string{"f0"}, newTestLearner)
	_, err := m.Predict([][]float64{{1}})
	assert.ErrorIs(t, err, engineerr.ErrNotFitted)
}

// TestAlphaModel_PredictAlignedFillsMissingColumns checks that a training
// column absent from the caller's columns is filled with 0 rather than
// erroring.
func TestAlphaModel_PredictAlignedFillsMissingColumns(t *testing.T) {
	x, y := buildLinearSeries(200)
	m := alpha.NewAlphaModel(alpha.DefaultConfig(), []string{"f0", "f1"}, newTestLearner)
	require.NoError(t, m.FitReport(x, y))

	pred, err := m.PredictAligned([]string{"f0"}, [][]float64{{0.5}, {-0.5}})
	require.NoError(t, err)
	assert.Len(t, pred, 2)
}

// TestRollingIC_WindowCount checks the number of windows produced matches
// the expected stepped-window count.
func TestRollingIC_WindowCount(t *testing.T) {
	n := 100
	pred := make([]float64, n)
	target := make([]float64, n)
	for i := 0; i < n; i++ {
		pred[i] = float64(i)
		target[i] = float64(i) * 2
	}
	out := alpha.RollingIC(pred, target, 20, 10)
	assert.Len(t, out, 9)
	for _, ic := range out {
		assert.InDelta(t, 1.0, ic, 1e-9)
	}
}
