// FILE: parallel.go
package walkforward

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"quantcore/internal/metrics"
)

// EvaluateParallel fans every candidate fold out across an errgroup, each
// with its own learner instance, per spec §4.9 ("folds are independent and
// may be run in parallel ... no state is shared between fold workers").
// A fold's result is dropped the same way Evaluate drops it (NaN-cleaned
// train below MinTrainSamples is a silent skip; a learner fault is logged
// and dropped) rather than failing the whole run; only a context
// cancellation aborts EvaluateParallel early.
func EvaluateParallel(ctx context.Context, features [][]float64, target []float64, cfg Config, newLearner Factory) (Result, error) {
	folds := GenerateFolds(len(target), cfg)
	results := make([]FoldResult, len(folds))
	ok := make([]bool, len(folds))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range folds {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, foldOK, foldErr := evaluateFold(newLearner(), features, target, f, cfg)
			if foldErr != nil {
				log.Printf("[walkforward] %v", foldErr)
				return nil
			}
			if foldOK {
				metrics.ObserveFold(r.IC)
				log.Printf("[walkforward] fold train=[%d:%d) test=[%d:%d) ic=%.4f sharpe=%.4f",
					f.TrainStart, f.TrainEnd, f.TestStart, f.TestEnd, r.IC, r.Sharpe)
			}
			results[i], ok[i] = r, foldOK
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	kept := make([]FoldResult, 0, len(results))
	for i, r := range results {
		if ok[i] {
			kept = append(kept, r)
		}
	}
	return aggregate(kept), nil
}
