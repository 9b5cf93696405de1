// FILE: decay.go
package alpha

import (
	"math"

	"quantcore/internal/kernel"
)

// decayProfile computes, for lags 1..L, the IC of the model's fixed
// predictions over x against target shifted by -lag (pred[i] compared to
// y[i+lag]), normalized by the lag-1 IC. halfLife is the smallest lag
// whose normalized IC falls below 0.5, or L if none does.
func decayProfile(learner Learner, x [][]float64, y []float64, lags int) ([]float64, int) {
	normalized := make([]float64, lags)
	for i := range normalized {
		normalized[i] = math.NaN()
	}
	halfLife := lags
	if lags <= 0 {
		return normalized, halfLife
	}

	pred, err := learner.Predict(x)
	if err != nil {
		return normalized, halfLife
	}
	n := len(pred)

	raw := make([]float64, lags)
	for lag := 1; lag <= lags; lag++ {
		if lag >= n {
			raw[lag-1] = math.NaN()
			continue
		}
		raw[lag-1] = kernel.Pearson(pred[:n-lag], y[lag:])
	}

	lag1 := raw[0]
	found := false
	for i, v := range raw {
		if lag1 == 0 || math.IsNaN(lag1) || math.IsNaN(v) {
			continue
		}
		nv := v / lag1
		normalized[i] = nv
		if !found && nv < 0.5 {
			halfLife = i + 1
			found = true
		}
	}
	return normalized, halfLife
}

// RollingIC computes IC over successive, possibly overlapping windows of
// size window stepping by step across aligned prediction/target series,
// used for the IC-stability analysis of spec §4.5.
func RollingIC(pred, target []float64, window, step int) []float64 {
	n := len(pred)
	if n != len(target) || window <= 0 || step <= 0 {
		return nil
	}
	var out []float64
	for start := 0; start+window <= n; start += step {
		out = append(out, kernel.Pearson(pred[start:start+window], target[start:start+window]))
	}
	return out
}
