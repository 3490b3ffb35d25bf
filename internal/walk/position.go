// Package walk provides the core random-walk simulation engine.
// This package is UI-agnostic and deterministic.
package walk

import (
	"fmt"
	"math"
)

// Position represents a point on the walk plane.
// X increases to the right, Y increases upward.
type Position struct {
	X int
	Y int
}

// Origin is where every walk starts.
var Origin = Position{0, 0}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Equal returns true if two positions are the same.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Dist returns the Euclidean distance from the origin.
func (p Position) Dist() float64 {
	return math.Sqrt(float64(p.X*p.X + p.Y*p.Y))
}

// DistFromYAxis returns the horizontal distance from the y axis.
func (p Position) DistFromYAxis() int {
	return absInt(p.X)
}

// DistFromXAxis returns the vertical distance from the x axis.
func (p Position) DistFromXAxis() int {
	return absInt(p.Y)
}

// TowardOrigin returns the position one unit closer to the origin on
// each axis that is nonzero. At the origin it returns the origin.
func (p Position) TowardOrigin() Position {
	x, y := p.X, p.Y
	if x > 0 {
		x--
	} else if x < 0 {
		x++
	}
	if y > 0 {
		y--
	} else if y < 0 {
		y++
	}
	return Position{X: x, Y: y}
}

// Dir represents a unit step direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
	DirUpRight
	DirDownRight
	DirDownLeft
	DirUpLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUpRight:
		return "UpRight"
	case DirDownRight:
		return "DownRight"
	case DirDownLeft:
		return "DownLeft"
	case DirUpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirUpRight:
		return 1, 1
	case DirDownRight:
		return 1, -1
	case DirDownLeft:
		return -1, -1
	case DirUpLeft:
		return -1, 1
	default:
		return 0, 0
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
