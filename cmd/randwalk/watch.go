package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randwalk/internal/platform/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Animate a walk step by step in the terminal",
	Long: `Watch a walk unfold live.

Controls:
  Space/P    - Pause
  R          - Start a new walk with a fresh seed
  +/-        - Speed up / slow down
  Q/Ctrl+C   - Quit

Examples:
  randwalk watch
  randwalk watch --seed 42
  randwalk watch --config ./inputs.json`,
	Run: runWatch,
}

func runWatch(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	params, err := cfg.ToParams()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunWatch(params, baseSeed(), width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
