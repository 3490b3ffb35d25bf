// Package render turns finished runs and batch statistics into styled
// terminal output. Plain (uncolored) output lives in the walk package;
// everything here assumes an ANSI-capable terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/randwalk/internal/walk"
)

// Theme contains all configurable visual styles for trace and chart output.
type Theme struct {
	Start    lipgloss.Style
	Final    lipgloss.Style
	Obstacle lipgloss.Style
	Gate     lipgloss.Style
	Empty    lipgloss.Style

	// Trail is a recency gradient: Trail[0] styles the oldest part of
	// the walk, Trail[len-1] the most recent.
	Trail []lipgloss.Style

	Header lipgloss.Style
	Axis   lipgloss.Style
	Bar    lipgloss.Style
	Label  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Start:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		Final:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Bright red
		Obstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Dim gray
		Gate:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),            // Bright yellow
		Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),            // Near black

		Trail: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("17")),  // Deep blue (oldest)
			lipgloss.NewStyle().Foreground(lipgloss.Color("25")),  // Blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Azure
			lipgloss.NewStyle().Foreground(lipgloss.Color("45")),  // Cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan (newest)
		},

		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bar:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Start = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Final = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Gate = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Trail = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
	theme.Bar = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	return theme
}

// cell kinds, ordered by drawing priority (higher wins).
const (
	cellEmpty = iota
	cellObstacle
	cellGate
	cellTrail
	cellFinal
	cellStart
)

type traceCell struct {
	kind int
	age  int // trail recency bucket, only meaningful for cellTrail
}

// Trace renders a finished run as a colored grid with a recency
// gradient: the walk fades from the oldest trail color to the newest.
// The plot is clipped/downscaled to fit maxW x maxH character cells.
func Trace(r walk.RunResult, obstacles []walk.Rect, gates []walk.Gate, maxW, maxH int, theme Theme) string {
	if maxW < 8 {
		maxW = 8
	}
	if maxH < 4 {
		maxH = 4
	}

	xMin, xMax, yMin, yMax := bounds(r.Trace, obstacles, gates)

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

	cells := make([][]traceCell, h)
	for i := range cells {
		cells[i] = make([]traceCell, w)
	}

	// Y grows upward, rows grow downward.
	plot := func(p walk.Position, kind, age int) {
		col := (p.X - xMin) / sx
		row := (yMax - p.Y) / sy
		if row < 0 || row >= h || col < 0 || col >= w {
			return
		}
		if kind >= cells[row][col].kind {
			cells[row][col] = traceCell{kind: kind, age: age}
		}
	}

	for _, o := range obstacles {
		for y := o.YMin; y <= o.YMax; y++ {
			for x := o.XMin; x <= o.XMax; x++ {
				plot(walk.P(x, y), cellObstacle, 0)
			}
		}
	}
	for _, g := range gates {
		for y := g.Area.YMin; y <= g.Area.YMax; y++ {
			for x := g.Area.XMin; x <= g.Area.XMax; x++ {
				plot(walk.P(x, y), cellGate, 0)
			}
		}
	}

	buckets := len(theme.Trail)
	if buckets == 0 {
		buckets = 1
	}
	for i, p := range r.Trace {
		age := 0
		if len(r.Trace) > 1 {
			age = i * buckets / len(r.Trace)
			if age >= buckets {
				age = buckets - 1
			}
		}
		plot(p, cellTrail, age)
	}
	plot(walk.Origin, cellStart, 0)
	plot(r.Final, cellFinal, 0)

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	exit := "never"
	if r.ExitStep >= 0 {
		exit = fmt.Sprintf("step %d", r.ExitStep)
	}
	header := fmt.Sprintf("Steps: %d | Final: %s | Dist: %.2f | Exit: %s | Rejected: %d | Restarts: %d",
		len(r.Trace)-1, r.Final, r.FinalDist, exit, r.RejectedSteps, r.Restarts)
	sb.WriteString(theme.Header.Render(header))
	sb.WriteString("\n")
	sb.WriteString(theme.Axis.Render(strings.Repeat("-", w)))
	sb.WriteString("\n")

	for _, row := range cells {
		// Group consecutive cells with the same style to minimize
		// ANSI escape sequences.
		x := 0
		for x < w {
			ch, style := cellFace(row[x], theme)
			var run strings.Builder
			for x < w {
				nextCh, nextStyle := cellFace(row[x], theme)
				if nextCh != ch || !sameStyle(nextStyle, style) {
					break
				}
				run.WriteRune(ch)
				x++
			}
			sb.WriteString(style.Render(run.String()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cellFace(c traceCell, theme Theme) (rune, lipgloss.Style) {
	switch c.kind {
	case cellStart:
		return 'S', theme.Start
	case cellFinal:
		return 'E', theme.Final
	case cellTrail:
		if len(theme.Trail) == 0 {
			return 'o', lipgloss.NewStyle()
		}
		return 'o', theme.Trail[c.age]
	case cellGate:
		return 'G', theme.Gate
	case cellObstacle:
		return '#', theme.Obstacle
	default:
		return '.', theme.Empty
	}
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() && a.GetBold() == b.GetBold()
}

func bounds(trace []walk.Position, obstacles []walk.Rect, gates []walk.Gate) (xMin, xMax, yMin, yMax int) {
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
