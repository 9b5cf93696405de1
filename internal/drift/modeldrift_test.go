package drift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/drift"
)

// TestRollingPerformance_PerfectPredictionHasICOne checks that a
// perfectly aligned prediction/target pair yields IC 1, sign accuracy 1,
// and MAE 0 in every window.
func TestRollingPerformance_PerfectPredictionHasICOne(t *testing.T) {
	n := 100
	pred := make([]float64, n)
	target := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i%11) - 5
		pred[i] = v
		target[i] = v
	}

	windows := drift.RollingPerformance(pred, target, 20, 10)
	assert.NotEmpty(t, windows)
	for _, w := range windows {
		assert.InDelta(t, 1.0, w.IC, 1e-9)
		assert.Equal(t, 1.0, w.SignAccuracy)
		assert.InDelta(t, 0.0, w.MAE, 1e-9)
	}
}
