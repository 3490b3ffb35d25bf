package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/randwalk/internal/platform/tui"
	"github.com/vovakirdan/randwalk/internal/storage"
)

var flagClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved batch results",
	Long: `Browse batches saved with 'randwalk run --save'.

Select a batch to inspect its per-run records.

Examples:
  randwalk history
  randwalk history --db ./history.db
  randwalk history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all saved batches")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("history cleared")
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
