// FILE: model.go
package alpha

import (
	"math"

	"quantcore/internal/engineerr"
	"quantcore/internal/kernel"
)

// AlphaModel wraps an opaque Learner with the fit/validate/analyze
// protocol of spec §4.5: a temporal train/validation split, train/val IC
// and R^2, normalized feature importances, a signal-decay profile, and
// schema alignment at predict time. It also satisfies walkforward.Learner,
// so an AlphaModel can itself be the external learner evaluated by a
// walk-forward run.
type AlphaModel struct {
	cfg          Config
	newLearner   Factory
	featureNames []string

	learner Learner
	fitted  bool

	TrainIC      float64
	ValIC        float64
	TrainR2      float64
	ValR2        float64
	Importances  []float64
	DecayProfile []float64
	HalfLife     int
}

// NewAlphaModel builds an unfitted wrapper around a fresh learner from
// newLearner, operating over the named feature schema (used only for
// PredictAligned's column matching).
func NewAlphaModel(cfg Config, featureNames []string, newLearner Factory) *AlphaModel {
	return &AlphaModel{cfg: cfg, featureNames: featureNames, newLearner: newLearner}
}

// FitReport runs the full fit protocol: drop NaN rows, split temporally at
// floor((1-ValidationPct)*N), fit on train, score train/val IC and R²,
// normalize feature importances, and compute the signal-decay profile.
func (m *AlphaModel) FitReport(features [][]float64, target []float64) error {
	x, y := cleanRows(features, target)
	n := len(y)
	if n == 0 {
		return engineerr.ErrInvalidInput
	}

	split := int(float64(n) * (1 - m.cfg.ValidationPct))
	if split < 1 {
		split = 1
	}
	if split >= n {
		split = n - 1
	}
	trainX, trainY := x[:split], y[:split]
	valX, valY := x[split:], y[split:]

	m.learner = m.newLearner()
	if err := m.learner.Fit(trainX, trainY); err != nil {
		return err
	}
	m.fitted = true

	trainPred, _ := m.learner.Predict(trainX)
	m.TrainIC = kernel.Pearson(trainPred, trainY)
	m.TrainR2, _ = m.learner.Score(trainX, trainY)

	if len(valY) > 0 {
		valPred, _ := m.learner.Predict(valX)
		m.ValIC = kernel.Pearson(valPred, valY)
		m.ValR2, _ = m.learner.Score(valX, valY)
	} else {
		m.ValIC, m.ValR2 = math.NaN(), math.NaN()
	}

	m.Importances = normalizeImportances(m.learner.FeatureImportances())
	m.DecayProfile, m.HalfLife = decayProfile(m.learner, x, y, m.cfg.DecayLags)
	return nil
}

// Fit satisfies walkforward.Learner by delegating to FitReport; the report
// fields (TrainIC, DecayProfile, ...) remain populated for inspection
// after the fold completes.
func (m *AlphaModel) Fit(trainX [][]float64, trainY []float64) error {
	return m.FitReport(trainX, trainY)
}

// Predict assumes testX columns are already in m.featureNames order, the
// shape walkforward.Evaluate supplies. For caller-controlled column
// ordering, use PredictAligned instead.
func (m *AlphaModel) Predict(testX [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, engineerr.ErrNotFitted
	}
	return m.learner.Predict(replaceNaN(testX))
}

// PredictOne predicts a single row already in training-schema order; a
// convenience wrapper for per-tick callers like AlphaStrategy.
func (m *AlphaModel) PredictOne(row []float64) (float64, error) {
	out, err := m.Predict([][]float64{row})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// PredictAligned reorders callerNames-labeled rows to the training schema
// before predicting. A training column absent from callerNames is filled
// with 0: spec §4.5 documents this as non-fault behavior, not an error.
func (m *AlphaModel) PredictAligned(callerNames []string, rows [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, engineerr.ErrNotFitted
	}
	index := make(map[string]int, len(callerNames))
	for i, name := range callerNames {
		index[name] = i
	}
	aligned := make([][]float64, len(rows))
	for i, row := range rows {
		out := make([]float64, len(m.featureNames))
		for j, name := range m.featureNames {
			if idx, ok := index[name]; ok && idx < len(row) {
				out[j] = row[idx]
			}
		}
		aligned[i] = out
	}
	return m.learner.Predict(replaceNaN(aligned))
}

func replaceNaN(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		r := make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = 0
			}
			r[j] = v
		}
		out[i] = r
	}
	return out
}

func cleanRows(features [][]float64, target []float64) ([][]float64, []float64) {
	x := make([][]float64, 0, len(target))
	y := make([]float64, 0, len(target))
	for i, row := range features {
		if i >= len(target) || math.IsNaN(target[i]) {
			continue
		}
		ok := true
		for _, v := range row {
			if math.IsNaN(v) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		x = append(x, row)
		y = append(y, target[i])
	}
	return x, y
}

func normalizeImportances(raw []float64) []float64 {
	out := make([]float64, len(raw))
	var sum float64
	for _, v := range raw {
		if v < 0 {
			v = -v
		}
		sum += v
	}
	if sum == 0 {
		return out
	}
	for i, v := range raw {
		if v < 0 {
			v = -v
		}
		out[i] = v / sum
	}
	return out
}
