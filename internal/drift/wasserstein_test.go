package drift_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/drift"
)

// TestWasserstein1_IdenticalSamplesZero checks that comparing a sample
// against itself yields distance 0.
func TestWasserstein1_IdenticalSamplesZero(t *testing.T) {
	src := rand.New(rand.NewSource(5))
	ref := deterministicSeries(200, src, 0, 1)
	assert.InDelta(t, 0.0, drift.Wasserstein1(ref, ref), 1e-9)
}

// TestWasserstein1_ConstantShiftMatchesOffset checks that shifting every
// point in a distribution by a constant c yields a Wasserstein-1 distance
// of exactly c.
func TestWasserstein1_ConstantShiftMatchesOffset(t *testing.T) {
	ref := []float64{1, 2, 3, 4, 5}
	cur := []float64{3, 4, 5, 6, 7}
	assert.InDelta(t, 2.0, drift.Wasserstein1(ref, cur), 1e-9)
}
