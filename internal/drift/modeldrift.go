// FILE: modeldrift.go
package drift

import (
	"math"

	"quantcore/internal/kernel"
)

// PerformanceWindow is one rolling window's worth of prediction-quality
// metrics, used to detect degrading model performance over time (spec
// §4.6's "rolling windows over aligned (prediction, actual) sequences").
type PerformanceWindow struct {
	Start        int
	End          int
	IC           float64
	SignAccuracy float64
	MAE          float64
}

// RollingPerformance computes IC, sign accuracy, and mean absolute error
// over successive windows of size window stepping by step across aligned
// prediction/target series.
func RollingPerformance(pred, target []float64, window, step int) []PerformanceWindow {
	n := len(pred)
	if n != len(target) || window <= 0 || step <= 0 {
		return nil
	}
	var out []PerformanceWindow
	for start := 0; start+window <= n; start += step {
		p := pred[start : start+window]
		y := target[start : start+window]

		var signMatches, mae float64
		for i := range p {
			if sign(p[i]) == sign(y[i]) {
				signMatches++
			}
			mae += math.Abs(p[i] - y[i])
		}
		out = append(out, PerformanceWindow{
			Start:        start,
			End:          start + window,
			IC:           kernel.Pearson(p, y),
			SignAccuracy: signMatches / float64(window),
			MAE:          mae / float64(window),
		})
	}
	return out
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
