// FILE: wasserstein.go
package drift

import (
	"math"
	"sort"
)

// Wasserstein1 returns the 1-Wasserstein (earth mover's) distance between
// two empirical distributions: the integral of |CDF_ref(x) - CDF_cur(x)|
// over the combined support, computed exactly via a merge-sweep over the
// sorted union of both samples. Returns NaN if either cleaned sample is
// empty.
func Wasserstein1(reference, current []float64) float64 {
	ref := dropNaN(reference)
	cur := dropNaN(current)
	n1, n2 := len(ref), len(cur)
	if n1 == 0 || n2 == 0 {
		return math.NaN()
	}

	a := append([]float64(nil), ref...)
	b := append([]float64(nil), cur...)
	sort.Float64s(a)
	sort.Float64s(b)

	var i, j int
	var area, prevX float64
	started := false
	for i < n1 || j < n2 {
		var x float64
		switch {
		case i >= n1:
			x = b[j]
		case j >= n2:
			x = a[i]
		default:
			x = math.Min(a[i], b[j])
		}
		if started {
			cdfA := float64(i) / float64(n1)
			cdfB := float64(j) / float64(n2)
			area += math.Abs(cdfA-cdfB) * (x - prevX)
		}
		for i < n1 && a[i] <= x {
			i++
		}
		for j < n2 && b[j] <= x {
			j++
		}
		prevX = x
		started = true
	}
	return area
}
