// FILE: micro.go
// Package kernel — microstructure kernels (spec §4.1).
package kernel

import "math"

// KylesLambda returns cov(priceChanges, signedVolumes) / var(signedVolumes).
// Minimum 10 paired samples; NaN if the variance is below 1e-10.
func KylesLambda(priceChanges, signedVolumes []float64) float64 {
	n := minLen(priceChanges, signedVolumes)
	if n < 10 {
		return math.NaN()
	}
	dp := priceChanges[:n]
	sv := signedVolumes[:n]
	v := variance(sv)
	if v < 1e-10 {
		return math.NaN()
	}
	return covariance(dp, sv) / v
}

// RollSpread returns 2*sqrt(-cov(dP_t, dP_{t-1})) when that first-order
// autocovariance is negative, else 0. Requires at least 2 price changes.
func RollSpread(priceChanges []float64) float64 {
	n := len(priceChanges)
	if n < 2 {
		return math.NaN()
	}
	lead := priceChanges[1:]
	lag := priceChanges[:n-1]
	c := covariance(lead, lag)
	if c >= 0 {
		return 0
	}
	return 2 * math.Sqrt(-c)
}

// Amihud returns mean(|return|/volume) over observations where volume > 0.
func Amihud(returns, volumes []float64) float64 {
	n := minLen(returns, volumes)
	if n == 0 {
		return math.NaN()
	}
	var s float64
	var count int
	for i := 0; i < n; i++ {
		if volumes[i] > 0 {
			s += math.Abs(returns[i]) / volumes[i]
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return s / float64(count)
}

// OrderFlowAutocorr returns the Pearson autocorrelation of a trade-side
// sequence at the given lag, 0 if the underlying variance is below 1e-10.
func OrderFlowAutocorr(sides []float64, lag int) float64 {
	n := len(sides)
	if lag <= 0 || n <= lag {
		return math.NaN()
	}
	lead := sides[lag:]
	lag0 := sides[:n-lag]
	vLead := variance(lead)
	vLag := variance(lag0)
	if vLead < 1e-10 || vLag < 1e-10 {
		return 0
	}
	c := covariance(lead, lag0)
	return c / math.Sqrt(vLead*vLag)
}
