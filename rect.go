package curve

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle, stored as minimum and maximum
// coordinates.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRectFromPoints returns the smallest rectangle that encloses both
// points. The result has X0 ≤ X1 and Y0 ≤ Y1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Diagonal returns the length of the rectangle's diagonal.
func (r Rect) Diagonal() float64 {
	return math.Hypot(r.Width(), r.Height())
}

// Contains reports whether the point lies inside the rectangle or on its
// boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.MinX() && pt.X <= r.MaxX() &&
		pt.Y >= r.MinY() && pt.Y <= r.MaxY()
}

// Union returns the smallest rectangle that encloses both rectangles.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.MinX(), o.MinX()),
		Y0: min(r.MinY(), o.MinY()),
		X1: max(r.MaxX(), o.MaxX()),
		Y1: max(r.MaxY(), o.MaxY()),
	}
}

// UnionPoint returns the smallest rectangle that encloses the rectangle and
// the point.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.MinX(), pt.X),
		Y0: min(r.MinY(), pt.Y),
		X1: max(r.MaxX(), pt.X),
		Y1: max(r.MaxY(), pt.Y),
	}
}

// Overlaps reports whether the two rectangles share at least one point.
// Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinX() <= o.MaxX() && o.MinX() <= r.MaxX() &&
		r.MinY() <= o.MaxY() && o.MinY() <= r.MaxY()
}

// Inflate returns a rectangle grown by width on the left and right and by
// height on the top and bottom. Negative values shrink the rectangle.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.MinX() - width,
		Y0: r.MinY() - height,
		X1: r.MaxX() + width,
		Y1: r.MaxY() + height,
	}
}

// IsInf reports whether any coordinate is infinite.
func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) ||
		math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

// IsNaN reports whether any coordinate is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) ||
		math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}
