// Package export writes batch statistics as flat text records for
// downstream tooling. No binary or structured format is owned here.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Write streams the aggregate statistics to w as plain numeric records:
// a section header per metric, then one "step value" line per sampled
// step, then the scalar collections.
func Write(w io.Writer, stats walk.AggregateStatistics) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "runs: %d\n", stats.NumRuns)
	fmt.Fprintf(bw, "steps: %d\n", stats.NumSteps)
	fmt.Fprintf(bw, "mean_final_distance: %.6f\n", stats.MeanFinalDist)
	fmt.Fprintf(bw, "exited_runs: %d\n", stats.ExitedRuns)
	fmt.Fprintf(bw, "exit_fraction: %.6f\n", stats.ExitFraction)
	fmt.Fprintf(bw, "mean_exit_step: %.6f\n", stats.MeanExitStep)
	fmt.Fprintf(bw, "mean_axis_crossings: %.6f\n", stats.MeanCrossings)
	fmt.Fprintln(bw)

	series := []struct {
		name  string
		value func(walk.StepPoint) float64
	}{
		{"average_distance_from_origin", func(p walk.StepPoint) float64 { return p.MeanDistFromOrigin }},
		{"average_distance_from_x_axis", func(p walk.StepPoint) float64 { return p.MeanDistFromXAxis }},
		{"average_distance_from_y_axis", func(p walk.StepPoint) float64 { return p.MeanDistFromYAxis }},
		{"average_axis_crossings", func(p walk.StepPoint) float64 { return p.MeanCrossings }},
	}
	for _, sec := range series {
		fmt.Fprintf(bw, "%s:\n", sec.name)
		for _, point := range stats.Series {
			fmt.Fprintf(bw, "%d %.6f\n", point.Step, sec.value(point))
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "final_distances:")
	for _, d := range stats.FinalDists {
		fmt.Fprintf(bw, "%.6f\n", d)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "exit_steps:")
	for _, s := range stats.ExitSteps {
		fmt.Fprintf(bw, "%d\n", s)
	}

	return bw.Flush()
}

// SaveFile writes the statistics to the given path.
func SaveFile(path string, stats walk.AggregateStatistics) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, stats); err != nil {
		return fmt.Errorf("export: cannot write %s: %w", path, err)
	}
	return nil
}
