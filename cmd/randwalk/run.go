package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/batch"
	"github.com/vovakirdan/randwalk/internal/export"
	"github.com/vovakirdan/randwalk/internal/render"
	"github.com/vovakirdan/randwalk/internal/storage"
	"github.com/vovakirdan/randwalk/internal/walk"
)

var (
	flagSims    int
	flagSteps   int
	flagWorkers int
	flagSave    bool
	flagOut     string
	flagPlot    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch of walks and print aggregate statistics",
	Long: `Run the configured number of independent walks in parallel and
print the batch statistics.

The base seed fixes the whole batch: the same seed and config always
produce the same statistics regardless of worker count.

Examples:
  randwalk run
  randwalk run --sims 1000 --steps 200
  randwalk run --config ./inputs.json --save
  randwalk run --seed 42 --out results.txt
  randwalk run --plot`,
	Run: runBatch,
}

func init() {
	runCmd.Flags().IntVar(&flagSims, "sims", 0, "Number of simulations (overrides config)")
	runCmd.Flags().IntVar(&flagSteps, "steps", 0, "Steps per simulation (overrides config)")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Worker pool size (0 = one per CPU)")
	runCmd.Flags().BoolVar(&flagSave, "save", false, "Save the batch to the results database")
	runCmd.Flags().StringVar(&flagOut, "out", "", "Write flat-text results to this file")
	runCmd.Flags().BoolVar(&flagPlot, "plot", false, "Plot the statistics series as terminal charts")
}

func runBatch(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSims > 0 {
		cfg.NumSimulations = flagSims
	}
	if flagSteps > 0 {
		cfg.NumSteps = flagSteps
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "randwalk",
	})

	seed := baseSeed()
	result, err := batch.Run(context.Background(), cfg, batch.Options{
		Seed:    seed,
		Workers: flagWorkers,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme := render.DefaultTheme()
	fmt.Printf("seed: %d\n", seed)
	fmt.Print(render.Summary(result.Stats, theme))

	if flagPlot || bool(cfg.PlotStatistics) {
		fmt.Println()
		fmt.Print(render.Chart("mean distance from origin", result.Stats.Series,
			func(p walk.StepPoint) float64 { return p.MeanDistFromOrigin }, 72, 12, theme))
		fmt.Println()
		fmt.Print(render.Chart("mean axis crossings", result.Stats.Series,
			func(p walk.StepPoint) float64 { return p.MeanCrossings }, 72, 8, theme))
		fmt.Println()
		fmt.Print(render.Histogram("final distance distribution", result.Stats.FinalDists, 10, 40, theme))
	}

	if flagOut != "" || bool(cfg.SaveResults) {
		out := flagOut
		if out == "" {
			out = "results.txt"
		}
		if err := export.SaveFile(out, result.Stats); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("results written to %s\n", out)
	}

	if flagSave {
		saveBatch(cfg.WalkerType, seed, result)
	}
}

// saveBatch persists the batch summary and its per-run records.
func saveBatch(walkerType int, seed uint64, result *batch.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return
	}
	defer store.Close()

	batchID, err := store.SaveBatch(storage.BatchRecord{
		WalkerType:     walkerType,
		NumSimulations: result.Stats.NumRuns,
		NumSteps:       result.Stats.NumSteps,
		Seed:           int64(seed),
		MeanFinalDist:  result.Stats.MeanFinalDist,
		MeanExitStep:   result.Stats.MeanExitStep,
		ExitedRuns:     result.Stats.ExitedRuns,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save batch: %v\n", err)
		return
	}

	runs := make([]storage.RunRecord, len(result.Runs))
	for i, r := range result.Runs {
		runs[i] = storage.NewRunRecord(batchID, r)
	}
	if err := store.SaveRuns(batchID, runs); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save runs: %v\n", err)
		return
	}
	fmt.Printf("saved as batch %d\n", batchID)
}
