package walk

import "fmt"

// Rect is an axis-aligned rectangle with inclusive bounds.
// Bounds are normalized (min <= max) at construction.
type Rect struct {
	XMin, YMin int
	XMax, YMax int
}

// NewRect creates a normalized rectangle from two corner points.
// The corners may be given in any order.
func NewRect(x1, y1, x2, y2 int) Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Rect{XMin: x1, YMin: y1, XMax: x2, YMax: y2}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d..%d,%d]", r.XMin, r.YMin, r.XMax, r.YMax)
}

// Contains returns true if the position lies within the rectangle.
// Bounds are inclusive, so a degenerate [0,0,0,0] rect contains (0,0).
func (r Rect) Contains(p Position) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}
