// FILE: main.go
// Package main – backtest entrypoint and metrics server.
//
// Boot sequence:
//   1) parse flags               – csv path, strategy mode, initial cash
//   2) start Prometheus /healthz + /metrics on a background goroutine
//   3) load rows                 – internal/marketdata CSV ingestion
//   4) replay rows through a Pipeline/StateBuilder to get feature vectors
//   5) (alpha mode) fit an AlphaModel against next-tick returns
//   6) wire the chosen Strategy, run internal/backtest.Simulator, and
//      report the result
//
// Flags:
//   -csv <path>       CSV of market rows (time,bid,ask[,bid_size,ask_size,...])
//   -strategy <name>  "simple" (imbalance threshold) or "alpha" (ridge model)
//   -cash <float>     Initial cash (default 100000)
//   -port <int>       Metrics server port (default 9400)
//
// Example:
//   go run ./cmd/quantbacktest -csv rows.csv -strategy alpha
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quantcore/internal/alpha"
	"quantcore/internal/backtest"
	"quantcore/internal/drift"
	"quantcore/internal/feature"
	"quantcore/internal/marketdata"
	"quantcore/internal/metrics"
	"quantcore/internal/pipeline"
	"quantcore/internal/strategy"
	"quantcore/internal/types"
)

func main() {
	var csvPath string
	var strategyName string
	var initialCash float64
	var port int
	flag.StringVar(&csvPath, "csv", "", "Path to CSV of market rows (time,bid,ask,...)")
	flag.StringVar(&strategyName, "strategy", "simple", "Strategy: simple|alpha")
	flag.Float64Var(&initialCash, "cash", 100000, "Initial cash")
	flag.IntVar(&port, "port", 9400, "Metrics server port")
	flag.Parse()

	if csvPath == "" {
		log.Fatal("quantbacktest: -csv is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		log.Printf("serving metrics on :%d/metrics", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, csvPath, strategyName, initialCash); err != nil {
		log.Fatalf("run: %v", err)
	}

	shutdownCtx, c := context.WithTimeout(context.Background(), 2*time.Second)
	defer c()
	_ = srv.Shutdown(shutdownCtx)
}

func run(ctx context.Context, csvPath, strategyName string, initialCash float64) error {
	rows, err := marketdata.LoadBacktestRows(csvPath)
	if err != nil {
		return fmt.Errorf("load rows: %w", err)
	}
	if len(rows) < 2 {
		return fmt.Errorf("need at least 2 rows, got %d", len(rows))
	}
	log.Printf("loaded %d rows from %s", len(rows), csvPath)

	pl := pipeline.New(pipeline.DefaultConfig())
	pl.Add(feature.OrderBookFeatures{})
	pl.Add(feature.MicrostructureFeatures{})
	pl.Add(feature.VolatilityFeatures{})
	pl.Add(feature.TradeFeatures{})

	builder := pipeline.NewStateBuilder()
	featureVectors := make([]types.FeatureVector, len(rows))
	var lastSnapshot *types.State
	for i, r := range rows {
		builder.PushQuote(r.Bid, r.BidSize, r.Ask, r.AskSize, r.Mid(), r.Volume)
		lastSnapshot = builder.Snapshot()
		featureVectors[i] = pl.ComputeNormalized(lastSnapshot)
	}

	driftCfg := drift.DefaultConfig()
	report := drift.DetectFeatureDrift("returns", lastSnapshot.Returns, driftCfg.ReferenceSize, driftCfg.CurrentSize, driftCfg.Bins)
	log.Printf("drift check: feature=returns severity=%s psi=%.4f ks_pvalue=%.4f", report.Severity, report.PSI, report.KSPValue)

	var strat backtest.Strategy
	switch strategyName {
	case "simple":
		strat = strategy.NewSimpleStrategy(strategy.DefaultSimpleConfig(), pl.Names())
	case "alpha":
		model, ferr := fitAlphaModel(pl.Names(), featureVectors, rows)
		if ferr != nil {
			return fmt.Errorf("fit alpha model: %w", ferr)
		}
		log.Printf("alpha model: train IC=%.4f val IC=%.4f half-life=%d", model.TrainIC, model.ValIC, model.HalfLife)
		strat = strategy.NewAlphaStrategy(strategy.DefaultAlphaConfig(), model)
	default:
		return fmt.Errorf("unknown strategy %q", strategyName)
	}

	sim := backtest.NewSimulator(backtest.DefaultConfig())
	result, err := sim.Run(ctx, rows, featureVectors, strat, initialCash)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	metrics.SetEquity(lastOrZero(result.Equity))
	log.Printf("total return=%.4f%% sharpe=%.3f sortino=%.3f max drawdown=%.4f%% win rate=%.3f trades=%d",
		result.TotalReturn*100, result.Sharpe, result.Sortino, result.MaxDrawdown*100, result.WinRate, len(result.Trades))
	return nil
}

// fitAlphaModel trains a ridge-regression AlphaModel against each row's
// next-tick log return, the simplest causal target a single-venue quote
// feed supports.
func fitAlphaModel(names []string, features []types.FeatureVector, rows []backtest.Row) (*alpha.AlphaModel, error) {
	target := make([]float64, len(rows))
	for i := range rows {
		if i+1 >= len(rows) {
			target[i] = math.NaN()
			continue
		}
		cur, next := rows[i].Mid(), rows[i+1].Mid()
		if cur <= 0 || next <= 0 {
			target[i] = math.NaN()
			continue
		}
		target[i] = math.Log(next / cur)
	}

	x := make([][]float64, len(features))
	for i, fv := range features {
		x[i] = fv
	}

	cfg := alpha.DefaultConfig()
	model := alpha.NewAlphaModel(cfg, names, func() alpha.Learner {
		return alpha.NewRidgeRegression(cfg.RidgeLambda)
	})
	if err := model.FitReport(x, target); err != nil {
		return nil, err
	}
	return model, nil
}

func lastOrZero(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
