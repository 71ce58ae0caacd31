package curve

import "math"

// Circle is a circle with a center and a radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether the point lies inside the circle or on its
// boundary.
func (c Circle) Contains(pt Point) bool {
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses
// the circle.
func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}
