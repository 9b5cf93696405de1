package drift_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantcore/internal/drift"
)

// TestKS_IdenticalSamplesStatisticZero checks the KS-identity property:
// comparing a sample against itself yields statistic 0 and p-value 1.
func TestKS_IdenticalSamplesStatisticZero(t *testing.T) {
	src := rand.New(rand.NewSource(3))
	ref := deterministicSeries(300, src, 0, 1)
	stat, p := drift.KS(ref, ref)
	assert.InDelta(t, 0.0, stat, 1e-9)
	assert.InDelta(t, 1.0, p, 1e-9)
}

// TestKS_ShiftedSamplesRejectNull checks that two clearly separated
// samples reject the null hypothesis (low p-value, high statistic).
func TestKS_ShiftedSamplesRejectNull(t *testing.T) {
	src := rand.New(rand.NewSource(4))
	ref := deterministicSeries(300, src, 0, 1)
	cur := deterministicSeries(300, src, 10, 1)
	stat, p := drift.KS(ref, cur)
	assert.Equal(t, 1.0, stat)
	assert.Less(t, p, 0.01)
}
