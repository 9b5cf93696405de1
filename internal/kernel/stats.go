// FILE: stats.go
// Package kernel — pure numerical kernels over bounded tails of rolling
// windows. Every kernel is pure and total: it never panics on short or
// empty input, returning math.NaN() once the sample count falls below its
// documented minimum (see spec §4.1). This file holds the small shared
// statistics helpers the kernels in book.go/trade.go/vol.go/micro.go build
// on; none of them allocate beyond their own return value.
package kernel

import "math"

func mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	var s float64
	for _, v := range x {
		s += v
	}
	return s / float64(len(x))
}

func variance(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return math.NaN()
	}
	m := mean(x)
	var s float64
	for _, v := range x {
		d := v - m
		s += d * d
	}
	return s / float64(n)
}

func stddev(x []float64) float64 {
	return math.Sqrt(variance(x))
}

// covariance returns the population covariance of two equal-length series.
func covariance(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return math.NaN()
	}
	mx, my := mean(x), mean(y)
	var s float64
	for i := range x {
		s += (x[i] - mx) * (y[i] - my)
	}
	return s / float64(n)
}

// Mean is the exported form of mean, for callers outside this package that
// need a plain arithmetic mean (walkforward fold aggregation, drift window
// statistics).
func Mean(x []float64) float64 { return mean(x) }

// StdDev is the exported form of stddev (population standard deviation,
// NaN under two samples).
func StdDev(x []float64) float64 { return stddev(x) }

// Covariance is the exported form of covariance (population covariance of
// two equal-length series).
func Covariance(x, y []float64) float64 { return covariance(x, y) }

// Pearson returns the Pearson correlation coefficient of two equal-length
// series, used throughout the walk-forward and alpha-model packages as the
// information coefficient between a model's predictions and realized
// outcomes. Returns NaN if the series differ in length, have fewer than 2
// points, or either has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) || n < 2 {
		return math.NaN()
	}
	sx, sy := stddev(x), stddev(y)
	if sx == 0 || sy == 0 || math.IsNaN(sx) || math.IsNaN(sy) {
		return math.NaN()
	}
	return covariance(x, y) / (sx * sy)
}

func sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

func sumAbs(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += math.Abs(v)
	}
	return s
}
