// randwalk is a 2D random walk simulator for the terminal.
//
// Usage:
//
//	randwalk run               - Run a batch of walks and print statistics
//	randwalk trace             - Run a single walk and plot its path
//	randwalk watch             - Animate a walk live in the terminal
//	randwalk history           - Browse saved batch results
//	randwalk serve             - Start SSH server streaming walks
//
// Global flags:
//
//	--config <path>  - Path to a config file (YAML or legacy JSON)
//	--seed <value>   - Base RNG seed for reproducible batches
//	--db <path>      - Results database path (default: ~/.randwalk/history.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randwalk/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randwalk",
	Short: "randwalk - 2D random walk simulation in your terminal",
	Long: `randwalk simulates 2D random walks with configurable movement
policies, obstacles, teleport gates, and restart rules.

Available commands:
  run      - Run a batch of walks and print aggregate statistics
  trace    - Run a single walk and plot its path
  watch    - Animate a walk step by step
  history  - Browse saved batch results
  serve    - Start SSH server streaming animated walks

Examples:
  randwalk run --sims 1000
  randwalk run --config ./inputs.json --save
  randwalk trace --seed 42
  randwalk watch
  randwalk serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (YAML or legacy JSON)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Base RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.randwalk/history.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration: --config if given,
// otherwise the usual search locations and the built-in default.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// baseSeed resolves the batch base seed from --seed, falling back to
// the wall clock.
func baseSeed() uint64 {
	if flagSeed != 0 {
		return uint64(flagSeed)
	}
	return uint64(time.Now().UnixNano())
}
