// FILE: pipeline.go
// Package pipeline — concatenates feature generators and maintains
// per-feature online normalization statistics (spec §4.3).
//
// The z-score normalization here generalizes the teacher's own rolling
// z-score (_examples/chidi150c-coinbase/indicators.go ZScore: mean, variance
// via a running sum/sumSq, epsilon-guarded std) from a single scalar series
// to a per-feature vector, computed with Welford's algorithm instead of the
// teacher's sum/sumSq recurrence so that variance stays numerically stable
// across an unbounded number of Compute calls (the teacher's windowed
// ZScore resets every n samples and never needs that property; a pipeline
// normalizer run over an entire walk-forward history does).
package pipeline

import (
	"math"

	"quantcore/internal/feature"
	"quantcore/internal/types"
)

const normEps = 1e-8

// Pipeline concatenates an ordered list of generators and, unless frozen or
// disabled, maintains a running (count, mean, M2) per output feature.
type Pipeline struct {
	cfg        Config
	generators []feature.Generator
	names      []string

	count int64
	mean  []float64
	m2    []float64
	frozen    bool
	frozenStd []float64
}

// New creates an empty Pipeline with the given normalization config.
func New(cfg Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Add appends a generator, extending the schema and invalidating any
// normalization statistics accumulated so far (their length no longer
// matches the schema).
func (p *Pipeline) Add(g feature.Generator) {
	p.generators = append(p.generators, g)
	p.names = append(p.names, g.Names()...)
	p.count = 0
	p.mean = make([]float64, len(p.names))
	p.m2 = make([]float64, len(p.names))
	p.frozen = false
}

// Names returns the pipeline's immutable, concatenated feature name list.
func (p *Pipeline) Names() []string {
	return p.names
}

// Reset clears all rolling generator state... generators here are stateless
// pure functions, so Reset only clears the online normalization statistics.
func (p *Pipeline) Reset() {
	p.count = 0
	p.mean = make([]float64, len(p.names))
	p.m2 = make([]float64, len(p.names))
	p.frozen = false
}

// Compute concatenates every generator's output for state. Unless
// normalization is disabled or frozen (via SetNormalization), it also folds
// the result into the running Welford statistics.
func (p *Pipeline) Compute(s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, 0, len(p.names))
	for _, g := range p.generators {
		out = append(out, g.Compute(s)...)
	}
	if p.cfg.Normalize && !p.frozen {
		p.update(out)
	}
	return out
}

// update folds one observation into the running per-feature Welford
// (count, mean, M2) triple. NaN components are skipped: an
// insufficient-data slot should not pollute the statistics of a feature
// that is otherwise well-defined at this index over time.
func (p *Pipeline) update(v types.FeatureVector) {
	p.count++
	n := float64(p.count)
	for i, x := range v {
		if math.IsNaN(x) {
			continue
		}
		delta := x - p.mean[i]
		p.mean[i] += delta / n
		delta2 := x - p.mean[i]
		p.m2[i] += delta * delta2
	}
}

// Stats returns the current (mean, std) per feature, using the unbiased
// (n-1) variance estimator. Needs count >= 2 to be meaningful; with fewer
// observations std is 0 for every feature.
func (p *Pipeline) Stats() (mean, std []float64) {
	mean = append([]float64(nil), p.mean...)
	if p.frozen {
		return mean, append([]float64(nil), p.frozenStd...)
	}
	std = make([]float64, len(p.m2))
	if p.count < 2 {
		return mean, std
	}
	for i, m2 := range p.m2 {
		std[i] = math.Sqrt(m2 / float64(p.count-1))
	}
	return mean, std
}

// SetNormalization freezes the pipeline's normalization statistics to
// caller-supplied values (used to carry training statistics into
// evaluation without leakage, per spec §4.3). Once frozen, Compute never
// updates statistics again until Reset.
func (p *Pipeline) SetNormalization(mean, std []float64) {
	p.mean = append([]float64(nil), mean...)
	p.m2 = make([]float64, len(std))
	// Store std^2 * (n-1) isn't meaningful once frozen; Normalize reads std
	// directly via frozenStd, so m2/count bookkeeping is bypassed below.
	p.frozenStd = append([]float64(nil), std...)
	p.frozen = true
	p.count = 2 // any value >= 2 so Stats()/Normalize treat std as settled
}

// Normalize z-scores v against the current (frozen or running) statistics,
// optionally clipping to +/- OutlierStd, and replaces any NaN/+-Inf result
// with 0.
func (p *Pipeline) Normalize(v types.FeatureVector) types.FeatureVector {
	mean, std := p.effectiveStats()
	out := make(types.FeatureVector, len(v))
	for i, x := range v {
		m := 0.0
		sd := 0.0
		if i < len(mean) {
			m = mean[i]
		}
		if i < len(std) {
			sd = std[i]
		}
		z := (x - m) / (sd + normEps)
		if p.cfg.ClipOutliers {
			if z > p.cfg.OutlierStd {
				z = p.cfg.OutlierStd
			} else if z < -p.cfg.OutlierStd {
				z = -p.cfg.OutlierStd
			}
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			z = 0
		}
		out[i] = z
	}
	return out
}

func (p *Pipeline) effectiveStats() (mean, std []float64) {
	if p.frozen {
		return p.mean, p.frozenStd
	}
	return p.Stats()
}

// ComputeNormalized computes then normalizes in one call.
func (p *Pipeline) ComputeNormalized(s *types.State) types.FeatureVector {
	return p.Normalize(p.Compute(s))
}

// ComputeBatch computes the raw feature matrix for a slice of states,
// updating running statistics for each row in order (unless frozen).
func (p *Pipeline) ComputeBatch(states []*types.State) []types.FeatureVector {
	out := make([]types.FeatureVector, len(states))
	for i, s := range states {
		out[i] = p.Compute(s)
	}
	return out
}

// ComputeBatchNormalized computes the raw matrix then normalizes every row
// using that batch's own mean/std (intended for bulk offline use, not
// streaming): it does not touch the pipeline's running/frozen statistics.
func (p *Pipeline) ComputeBatchNormalized(states []*types.State) []types.FeatureVector {
	raw := make([]types.FeatureVector, len(states))
	for i, s := range states {
		raw[i] = computeWithoutUpdate(p, s)
	}
	mean, std := batchStats(raw, len(p.names))
	out := make([]types.FeatureVector, len(raw))
	for i, row := range raw {
		out[i] = normalizeWith(row, mean, std, p.cfg)
	}
	return out
}

func computeWithoutUpdate(p *Pipeline, s *types.State) types.FeatureVector {
	out := make(types.FeatureVector, 0, len(p.names))
	for _, g := range p.generators {
		out = append(out, g.Compute(s)...)
	}
	return out
}

func batchStats(rows []types.FeatureVector, width int) (mean, std []float64) {
	mean = make([]float64, width)
	std = make([]float64, width)
	counts := make([]int, width)
	for _, row := range rows {
		for i, x := range row {
			if math.IsNaN(x) {
				continue
			}
			mean[i] += x
			counts[i]++
		}
	}
	for i := range mean {
		if counts[i] > 0 {
			mean[i] /= float64(counts[i])
		}
	}
	for _, row := range rows {
		for i, x := range row {
			if math.IsNaN(x) {
				continue
			}
			d := x - mean[i]
			std[i] += d * d
		}
	}
	for i := range std {
		if counts[i] > 1 {
			std[i] = math.Sqrt(std[i] / float64(counts[i]-1))
		} else {
			std[i] = 0
		}
	}
	return mean, std
}

func normalizeWith(v types.FeatureVector, mean, std []float64, cfg Config) types.FeatureVector {
	out := make(types.FeatureVector, len(v))
	for i, x := range v {
		z := (x - mean[i]) / (std[i] + normEps)
		if cfg.ClipOutliers {
			if z > cfg.OutlierStd {
				z = cfg.OutlierStd
			} else if z < -cfg.OutlierStd {
				z = -cfg.OutlierStd
			}
		}
		if math.IsNaN(z) || math.IsInf(z, 0) {
			z = 0
		}
		out[i] = z
	}
	return out
}
