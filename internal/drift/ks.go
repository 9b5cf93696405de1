// FILE: ks.go
package drift

import (
	"math"
	"sort"
)

// KS returns the two-sample Kolmogorov-Smirnov statistic and its
// asymptotic p-value between cleaned reference and current samples.
// Returns NaN, NaN if either cleaned sample is empty.
func KS(reference, current []float64) (stat, pvalue float64) {
	ref := dropNaN(reference)
	cur := dropNaN(current)
	n1, n2 := len(ref), len(cur)
	if n1 == 0 || n2 == 0 {
		return math.NaN(), math.NaN()
	}

	a := append([]float64(nil), ref...)
	b := append([]float64(nil), cur...)
	sort.Float64s(a)
	sort.Float64s(b)

	var i, j int
	var cdfA, cdfB float64
	d := 0.0
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
		for i < n1 && a[i] <= x {
			i++
		}
		for j < n2 && b[j] <= x {
			j++
		}
		cdfA = float64(i) / float64(n1)
		cdfB = float64(j) / float64(n2)
		if diff := math.Abs(cdfA - cdfB); diff > d {
			d = diff
		}
	}

	ne := float64(n1*n2) / float64(n1+n2)
	return d, ksPValue(d, ne)
}

// ksPValue is the Kolmogorov asymptotic p-value (Numerical Recipes'
// probks), evaluating the alternating series Q(lambda) = 2 * sum_{k=1..inf}
// (-1)^(k-1) exp(-2 k^2 lambda^2) with lambda the effective-sample-size
// scaled statistic.
func ksPValue(d, ne float64) float64 {
	if ne <= 0 {
		return math.NaN()
	}
	lambda := (math.Sqrt(ne) + 0.12 + 0.11/math.Sqrt(ne)) * d
	if lambda < 0.2 {
		return 1.0
	}
	var sum float64
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-10 {
			break
		}
		sign = -sign
	}
	p := 2 * sum
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}
