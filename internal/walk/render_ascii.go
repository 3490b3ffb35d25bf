package walk

import (
	"fmt"
	"strings"
)

// RenderTraceASCII creates an ASCII representation of a finished run.
// Used for debugging, testing, and plain-terminal output.
//
// Legend:
//   - 'S' start (origin), 'E' final position
//   - 'o' visited cell, '#' obstacle, 'G' gate area, '.' empty
//
// The plot is clipped/downscaled to fit maxW x maxH character cells.
func RenderTraceASCII(r RunResult, obstacles []Rect, gates []Gate, maxW, maxH int) string {
	if maxW < 8 {
		maxW = 8
	}
	if maxH < 4 {
		maxH = 4
	}

	xMin, xMax, yMin, yMax := traceBounds(r.Trace, obstacles, gates)

	// Integer downscale factors so large walks still fit.
	sx := (xMax - xMin + maxW - 1) / maxW
	if sx < 1 {
		sx = 1
	}
	sy := (yMax - yMin + maxH - 1) / maxH
	if sy < 1 {
		sy = 1
	}

	w := (xMax-xMin)/sx + 1
	h := (yMax-yMin)/sy + 1

	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = make([]rune, w)
		for j := range cells[i] {
			cells[i][j] = '.'
		}
	}

	// Y grows upward, rows grow downward.
	plot := func(p Position, ch rune) {
		col := (p.X - xMin) / sx
		row := (yMax - p.Y) / sy
		if row >= 0 && row < h && col >= 0 && col < w {
			cells[row][col] = ch
		}
	}

	for _, o := range obstacles {
		for y := o.YMin; y <= o.YMax; y++ {
			for x := o.XMin; x <= o.XMax; x++ {
				plot(P(x, y), '#')
			}
		}
	}
	for _, g := range gates {
		for y := g.Area.YMin; y <= g.Area.YMax; y++ {
			for x := g.Area.XMin; x <= g.Area.XMax; x++ {
				plot(P(x, y), 'G')
			}
		}
	}
	for _, p := range r.Trace {
		plot(p, 'o')
	}
	plot(Origin, 'S')
	plot(r.Final, 'E')

	var sb strings.Builder
	exit := "never"
	if r.ExitStep >= 0 {
		exit = fmt.Sprintf("step %d", r.ExitStep)
	}
	sb.WriteString(fmt.Sprintf("Steps: %d | Final: %s | Dist: %.2f | Exit: %s | Rejected: %d | Restarts: %d\n",
		len(r.Trace)-1, r.Final, r.FinalDist, exit, r.RejectedSteps, r.Restarts))
	sb.WriteString(strings.Repeat("-", w) + "\n")
	for _, row := range cells {
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}

	return sb.String()
}

func traceBounds(trace []Position, obstacles []Rect, gates []Gate) (xMin, xMax, yMin, yMax int) {
	for i, p := range trace {
		if i == 0 {
			xMin, xMax, yMin, yMax = p.X, p.X, p.Y, p.Y
			continue
		}
		xMin, xMax = min(xMin, p.X), max(xMax, p.X)
		yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
	}
	for _, o := range obstacles {
		xMin, xMax = min(xMin, o.XMin), max(xMax, o.XMax)
		yMin, yMax = min(yMin, o.YMin), max(yMax, o.YMax)
	}
	for _, g := range gates {
		xMin, xMax = min(xMin, g.Area.XMin), max(xMax, g.Area.XMax)
		yMin, yMax = min(yMin, g.Area.YMin), max(yMax, g.Area.YMax)
	}
	return xMin, xMax, yMin, yMax
}
