package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randwalk/internal/render"
	"github.com/vovakirdan/randwalk/internal/walk"
)

var flagPlain bool

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Run a single walk and plot its path",
	Long: `Run one walk to completion and plot its path.

The colored plot fades from the oldest part of the walk to the newest.
Use --plain for uncolored output suitable for piping to a file.

Examples:
  randwalk trace
  randwalk trace --seed 42
  randwalk trace --config ./inputs.json --plain > walk.txt`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().BoolVar(&flagPlain, "plain", false, "Uncolored ASCII output")
}

func runTrace(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	params, err := cfg.ToParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := baseSeed()
	engine, err := walk.NewEngine(params, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	result := engine.Run()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h - 4 // Leave room for the header and prompt
	}

	fmt.Printf("seed: %d  final: (%d, %d)  dist: %.2f  crossings: %d\n",
		seed, result.Final.X, result.Final.Y, result.FinalDist, result.XAxisCrossings)
	if result.ExitStep >= 0 {
		fmt.Printf("exited at step %d\n", result.ExitStep)
	}
	if flagPlain {
		fmt.Print(walk.RenderTraceASCII(result, params.Obstacles, params.Gates, width, height))
		return
	}
	fmt.Print(render.Trace(result, params.Obstacles, params.Gates, width, height, render.DefaultTheme()))
}
