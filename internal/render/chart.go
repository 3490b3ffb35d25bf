package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Chart plots one aggregate series as an ASCII line chart: sampled
// steps along the X axis, metric values up the Y axis. The value
// function selects which StepPoint field is plotted.
func Chart(title string, series []walk.StepPoint, value func(walk.StepPoint) float64, width, height int, theme Theme) string {
	if height < 4 {
		height = 4
	}
	if width < 16 {
		width = 16
	}
	if len(series) == 0 {
		return theme.Header.Render(title) + "\n(no data)\n"
	}

	values := make([]float64, len(series))
	vMax := 0.0
	for i, p := range series {
		values[i] = value(p)
		if values[i] > vMax {
			vMax = values[i]
		}
	}
	if vMax == 0 {
		vMax = 1
	}

	// Left gutter for Y axis labels.
	labelW := len(fmt.Sprintf("%.1f", vMax))
	plotW := width - labelW - 2
	if plotW < 8 {
		plotW = 8
	}

	cols := len(values)
	if cols > plotW {
		cols = plotW
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		// Row 0 is the top of the chart.
		level := float64(height-row) / float64(height) * vMax
		var label string
		if row == 0 {
			label = fmt.Sprintf("%*.1f", labelW, vMax)
		} else if row == height-1 {
			label = fmt.Sprintf("%*.1f", labelW, vMax/float64(height))
		} else {
			label = strings.Repeat(" ", labelW)
		}

		var line strings.Builder
		for c := 0; c < cols; c++ {
			// Map column back into the series index.
			i := c * len(values) / cols
			if values[i] >= level {
				line.WriteRune('█')
			} else {
				line.WriteRune(' ')
			}
		}
		rows[row] = theme.Axis.Render(label+" |") + theme.Bar.Render(line.String())
	}

	var sb strings.Builder
	sb.WriteString(theme.Header.Render(title))
	sb.WriteString("\n")
	for _, r := range rows {
		sb.WriteString(r)
		sb.WriteString("\n")
	}
	sb.WriteString(theme.Axis.Render(strings.Repeat(" ", labelW) + " +" + strings.Repeat("-", cols)))
	sb.WriteString("\n")
	sb.WriteString(theme.Axis.Render(fmt.Sprintf("%s  step 0 .. %d", strings.Repeat(" ", labelW), series[len(series)-1].Step)))
	sb.WriteString("\n")
	return sb.String()
}

// Histogram renders a horizontal-bar histogram of a sorted sample,
// bucketed into the given number of bins.
func Histogram(title string, sorted []float64, bins, width int, theme Theme) string {
	var sb strings.Builder
	sb.WriteString(theme.Header.Render(title))
	sb.WriteString("\n")
	if len(sorted) == 0 {
		sb.WriteString("(no data)\n")
		return sb.String()
	}
	if bins < 1 {
		bins = 1
	}
	if width < 10 {
		width = 10
	}

	lo, hi := sorted[0], sorted[len(sorted)-1]
	span := hi - lo
	if span == 0 {
		span = 1
	}

	counts := make([]int, bins)
	for _, v := range sorted {
		b := int((v - lo) / span * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	for b, c := range counts {
		from := lo + span*float64(b)/float64(bins)
		to := lo + span*float64(b+1)/float64(bins)
		barLen := 0
		if maxCount > 0 {
			barLen = c * width / maxCount
		}
		label := fmt.Sprintf("[%7.2f, %7.2f) ", from, to)
		sb.WriteString(theme.Label.Render(label))
		sb.WriteString(theme.Bar.Render(strings.Repeat("█", barLen)))
		sb.WriteString(theme.Axis.Render(fmt.Sprintf(" %d", c)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary renders the batch scalar statistics as an aligned block.
func Summary(stats walk.AggregateStatistics, theme Theme) string {
	var sb strings.Builder
	line := func(name, value string) {
		sb.WriteString(theme.Label.Render(fmt.Sprintf("%-24s", name)))
		sb.WriteString(theme.Header.Render(value))
		sb.WriteString("\n")
	}
	line("runs", fmt.Sprintf("%d", stats.NumRuns))
	line("steps per run", fmt.Sprintf("%d", stats.NumSteps))
	line("mean final distance", fmt.Sprintf("%.3f", stats.MeanFinalDist))
	line("mean axis crossings", fmt.Sprintf("%.3f", stats.MeanCrossings))
	line("exited runs", fmt.Sprintf("%d (%.1f%%)", stats.ExitedRuns, stats.ExitFraction*100))
	if stats.ExitedRuns > 0 {
		line("mean exit step", fmt.Sprintf("%.1f", stats.MeanExitStep))
	}
	return sb.String()
}
