package drift_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/drift"
)

// deterministicSeries avoids math/rand's global Seed side effects by using
// a locally seeded source.
func deterministicSeries(n int, source *rand.Rand, mean, spread float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + spread*(source.Float64()*2-1)
	}
	return out
}

// TestPSI_IdenticalDistributionsNearZero checks the PSI-identity property:
// comparing a sample against itself yields PSI close to 0.
func TestPSI_IdenticalDistributionsNearZero(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	ref := deterministicSeries(500, src, 0, 1)
	psi := drift.PSI(ref, ref, 10)
	assert.InDelta(t, 0.0, psi, 1e-9)
}

// TestPSI_ShiftedDistributionIsPositive checks that a clearly shifted
// current sample produces a materially positive PSI.
func TestPSI_ShiftedDistributionIsPositive(t *testing.T) {
	src := rand.New(rand.NewSource(2))
	ref := deterministicSeries(500, src, 0, 1)
	cur := deterministicSeries(500, src, 5, 1)
	psi := drift.PSI(ref, cur, 10)
	assert.Greater(t, psi, 0.5)
}

// TestPSI_ShortSampleYieldsNaN checks the documented NaN-below-10 cutoff.
func TestPSI_ShortSampleYieldsNaN(t *testing.T) {
	ref := []float64{1, 2, 3, 4, 5}
	cur := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	assert.True(t, math.IsNaN(drift.PSI(ref, cur, 10)))
}
