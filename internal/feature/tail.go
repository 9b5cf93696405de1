// FILE: tail.go
// Package feature — small tail-clamping helpers shared by the generators.
// Kernels themselves clamp internally where it matters (e.g. book.go's
// PriceImpact walks until a target quantity is filled); generators use
// these to hand kernels a bounded window tail per spec §4.1's "k clamped to
// window length" rule before calling in.
package feature

import "math"

func tailF(x []float64, k int) []float64 {
	if k > len(x) {
		k = len(x)
	}
	if k <= 0 {
		return nil
	}
	return x[len(x)-k:]
}

func tailI(x []int64, k int) []int64 {
	if k > len(x) {
		k = len(x)
	}
	if k <= 0 {
		return nil
	}
	return x[len(x)-k:]
}

func last(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return x[len(x)-1]
}
