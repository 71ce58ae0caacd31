package curve

// QuadBez is a quadratic Bézier segment. In this package it mostly occurs
// as the derivative of a [CubicBez].
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the quadratic at parameter t using the Bernstein basis.
func (q QuadBez) Eval(t float64) Point {
	u := 1.0 - t
	b0 := u * u
	b1 := 2.0 * u * t
	b2 := t * t
	return Point{
		X: b0*q.P0.X + b1*q.P1.X + b2*q.P2.X,
		Y: b0*q.P0.Y + b1*q.P1.Y + b2*q.P2.Y,
	}
}

// Differentiate returns the derivative of the quadratic, which is a line:
// evaluating the line at t yields the derivative vector at t.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Raise returns a cubic Bézier segment that exactly represents the
// quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
