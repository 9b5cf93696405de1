// FILE: volatility.go
// Package feature — VolatilityFeatures generator (11 outputs, spec §4.2).
package feature

import (
	"math"

	"quantcore/internal/kernel"
	"quantcore/internal/types"
)

var volatilityNames = []string{
	"realized_vol_100",
	"realized_vol_500",
	"parkinson_vol_100",
	"garman_klass_vol_100",
	"yang_zhang_vol_100",
	"vol_of_vol_20",
	"skewness_100",
	"excess_kurtosis_100",
	"log_return_max_100",
	"log_return_min_100",
	"log_return_range_100",
}

// VolatilityFeatures derives realized/parametric volatility and
// return-distribution-shape features from OHLC bars and a log-return
// series.
type VolatilityFeatures struct{}

func (VolatilityFeatures) Names() []string { return volatilityNames }

func (VolatilityFeatures) Compute(s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, len(volatilityNames))
	ann := kernel.DefaultAnnualization

	ret100 := tailF(s.Returns, 100)
	ret500 := tailF(s.Returns, 500)
	out[0] = kernel.RealizedVol(ret100, ann)
	out[1] = kernel.RealizedVol(ret500, ann)

	highs100 := tailF(s.Highs, 100)
	lows100 := tailF(s.Lows, 100)
	opens100 := tailF(s.Opens, 100)
	closes100 := tailF(s.Closes, 100)
	out[2] = kernel.ParkinsonVol(highs100, lows100, ann)
	out[3] = kernel.GarmanKlassVol(opens100, highs100, lows100, closes100, ann)

	// Yang-Zhang additionally needs the close preceding each bar in the
	// window, so it works over one fewer bar than the other 100-window
	// estimators whenever fewer than 101 closes are available.
	effK := 100
	if n := len(s.Closes); n-1 < effK {
		if n < 2 {
			effK = 0
		} else {
			effK = n - 1
		}
	}
	prevCloses := tailF(s.Closes, effK+1)
	var prevClosesWin, currOpens, currHighs, currLows, currCloses []float64
	if len(prevCloses) >= 2 {
		prevClosesWin = prevCloses[:len(prevCloses)-1]
		currOpens = tailF(s.Opens, effK)
		currHighs = tailF(s.Highs, effK)
		currLows = tailF(s.Lows, effK)
		currCloses = prevCloses[1:]
	}
	out[4] = kernel.YangZhangVol(prevClosesWin, currOpens, currHighs, currLows, currCloses, ann)

	vol20 := tailF(s.Volatilities, 20)
	if len(vol20) < 2 {
		out[5] = math.NaN()
	} else {
		out[5] = stddevLocal(vol20)
	}

	out[6] = kernel.Skewness(ret100)
	out[7] = kernel.ExcessKurtosis(ret100)

	if len(ret100) == 0 {
		out[8], out[9], out[10] = math.NaN(), math.NaN(), math.NaN()
	} else {
		mx, mn := ret100[0], ret100[0]
		for _, r := range ret100 {
			if r > mx {
				mx = r
			}
			if r < mn {
				mn = r
			}
		}
		out[8] = mx
		out[9] = mn
		out[10] = mx - mn
	}

	return out
}

func stddevLocal(x []float64) float64 {
	n := len(x)
	var s float64
	for _, v := range x {
		s += v
	}
	m := s / float64(n)
	var ss float64
	for _, v := range x {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n))
}
