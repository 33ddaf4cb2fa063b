package scheme

import "math"

// Rect is an axis-aligned rectangle in world coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
// A well-formed rect satisfies Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Empty reports whether the rect has zero or negative area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and other overlap with positive area.
// The test is open on all four edges: rects sharing only an edge or a
// corner do NOT intersect. The same convention is used for node regions
// and for the viewport, so an object exactly touching a boundary is
// classified identically everywhere.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && r.Right > other.Left &&
		r.Top < other.Bottom && r.Bottom > other.Top
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right &&
		y >= r.Top && y <= r.Bottom
}

// Union returns the smallest rect covering both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
