// Package batch executes a configured number of independent walk runs
// and reduces them into aggregate statistics.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randwalk/internal/config"
	"github.com/vovakirdan/randwalk/internal/walk"
)

// Options tunes batch execution.
type Options struct {
	// Seed is the batch base seed; run i derives its own stream from it.
	Seed uint64

	// Workers caps the worker pool. 0 means one worker per CPU.
	Workers int

	Logger *log.Logger
}

// Result holds everything a batch produced.
type Result struct {
	Seed    uint64
	Runs    []walk.RunResult // indexed by run
	Stats   walk.AggregateStatistics
	Elapsed time.Duration
}

// Run executes cfg.NumSimulations independent runs and aggregates them.
//
// Each run is a pure computation over its own RNG stream, so runs fan
// out over a fixed worker pool with no shared mutable state; workers
// write into disjoint slice slots and the aggregator reduces after all
// workers join. The batch honors ctx between runs only; a run in
// progress completes.
func Run(ctx context.Context, cfg config.Config, opts Options) (*Result, error) {
	params, err := cfg.ToParams()
	if err != nil {
		return nil, err
	}
	if cfg.NumSimulations < 1 {
		return nil, fmt.Errorf("batch: num_simulations must be positive, got %d", cfg.NumSimulations)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.NumSimulations {
		workers = cfg.NumSimulations
	}

	logger.Info("starting batch",
		"walker", params.WalkerType.String(),
		"runs", cfg.NumSimulations,
		"steps", cfg.NumSteps,
		"seed", opts.Seed,
		"workers", workers,
	)

	start := time.Now()
	runs := make([]walk.RunResult, cfg.NumSimulations)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Params already validated; a failure here would be a bug.
				engine, engErr := walk.NewEngine(params, walk.RunSeed(opts.Seed, i))
				if engErr != nil {
					logger.Error("run construction failed", "run", i, "error", engErr)
					continue
				}
				result := engine.Run()
				result.Index = i
				runs[i] = result
			}
		}()
	}

	cancelled := false
dispatch:
	for i := 0; i < cfg.NumSimulations; i++ {
		select {
		case <-ctx.Done():
			cancelled = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return nil, fmt.Errorf("batch: aborted: %w", ctx.Err())
	}

	// Single-writer reduction after the barrier; Add order is
	// irrelevant to the summary.
	agg := walk.NewAggregator(cfg.NumSteps)
	for _, r := range runs {
		agg.Add(r)
	}

	res := &Result{
		Seed:    opts.Seed,
		Runs:    runs,
		Stats:   agg.Summarize(),
		Elapsed: time.Since(start),
	}

	logger.Info("batch finished",
		"runs", res.Stats.NumRuns,
		"mean_final_dist", fmt.Sprintf("%.3f", res.Stats.MeanFinalDist),
		"exited", res.Stats.ExitedRuns,
		"elapsed", res.Elapsed.Round(time.Millisecond),
	)

	return res, nil
}
