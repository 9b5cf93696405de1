// FILE: psi.go
package drift

import "math"

const psiEps = 1e-6

// dropNaN returns x with NaN entries removed.
func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// PSI is the Population Stability Index between a reference and current
// sample, using an equal-width histogram of bins bins whose edges are
// derived from reference alone (matching the original's
// np.histogram(reference, bins=self.n_bins)); current is then counted
// into that fixed grid, clamping out-of-range values into the nearest
// edge bin rather than excluding them as numpy would, so a current value
// beyond reference's range still registers as a shift in the outermost
// bin instead of vanishing from both proportions. Additive smoothing eps
// is applied per bin (total eps*bins in each proportion's denominator).
// Returns NaN if either cleaned sample has fewer than 10 points.
func PSI(reference, current []float64, bins int) float64 {
	ref := dropNaN(reference)
	cur := dropNaN(current)
	if len(ref) < 10 || len(cur) < 10 {
		return math.NaN()
	}
	if bins <= 0 {
		bins = 10
	}

	lo, hi := referenceRange(ref)
	if hi <= lo {
		return 0
	}
	width := (hi - lo) / float64(bins)

	refCounts := histogram(ref, lo, width, bins)
	curCounts := histogram(cur, lo, width, bins)

	refDenom := float64(len(ref)) + psiEps*float64(bins)
	curDenom := float64(len(cur)) + psiEps*float64(bins)

	var psi float64
	for i := 0; i < bins; i++ {
		pRef := (float64(refCounts[i]) + psiEps) / refDenom
		pCur := (float64(curCounts[i]) + psiEps) / curDenom
		psi += (pCur - pRef) * math.Log(pCur/pRef)
	}
	return psi
}

func referenceRange(ref []float64) (lo, hi float64) {
	lo, hi = ref[0], ref[0]
	for _, v := range ref {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func histogram(x []float64, lo, width float64, bins int) []int {
	counts := make([]int, bins)
	for _, v := range x {
		idx := int((v - lo) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}
