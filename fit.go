package curve

import (
	"errors"
	"math"
)

// ErrTooFewPoints is returned by [FitCubicBez] when fewer than two points
// are given.
var ErrTooFewPoints = errors.New("curve: fitting needs at least two points")

const (
	// fitOuterIterations is the number of reparameterize-and-resolve
	// rounds. The count is fixed: bounded, predictable cost is preferred
	// over a convergence guarantee, and callers that need a hard tolerance
	// must check the residual themselves.
	fitOuterIterations = 8
	// fitNewtonIterations is the number of Newton-Raphson steps applied to
	// each sample parameter per round.
	fitNewtonIterations = 5
)

// FitCubicBez fits a single cubic Bézier to an ordered sequence of sample
// points using Schneider's algorithm. The first and last input points
// become the curve's endpoints.
//
// The fit alternates a least-squares solve for the two free control points
// with Newton-Raphson re-parameterization of the samples against the
// current curve, for a fixed number of rounds.
//
// Numerically degenerate inputs are not errors: two points, coincident
// points, or a rank-deficient system fall back to heuristics, ultimately
// to the one-third rule, which places the control points a third of the
// way along the chord. Only len(points) < 2 fails, with
// [ErrTooFewPoints].
func FitCubicBez(points []Point) (CubicBez, error) {
	if len(points) < 2 {
		return CubicBez{}, ErrTooFewPoints
	}
	ts, total := chordLengthParams(points)
	if len(points) == 2 || total < distanceEpsilon {
		return oneThirdRule(points[0], points[len(points)-1]), nil
	}
	c := solveControlPoints(points, ts)
	for iter := 0; iter < fitOuterIterations; iter++ {
		reparameterize(c, points, ts)
		c = solveControlPoints(points, ts)
	}
	return c, nil
}

// oneThirdRule returns the cubic whose control points sit a third of the
// way along the chord from each endpoint. For two points, or when the
// chord has no usable length, this is the canonical fallback.
func oneThirdRule(p0, p3 Point) CubicBez {
	d := p3.Sub(p0).Mul(1.0 / 3.0)
	return CubicBez{
		p0,
		p0.Translate(d),
		p3.Translate(d.Negate()),
		p3,
	}
}

// chordLengthParams assigns each point a parameter proportional to the
// cumulative chord length, normalized to [0, 1]. It returns the parameters
// and the total chord length. If the total length is zero the parameters
// are left at zero except for the final one.
func chordLengthParams(points []Point) ([]float64, float64) {
	ts := make([]float64, len(points))
	var acc float64
	for i := 1; i < len(points); i++ {
		acc += points[i].Distance(points[i-1])
		ts[i] = acc
	}
	if acc > 0.0 {
		for i := range ts {
			ts[i] /= acc
		}
	}
	ts[len(ts)-1] = 1.0
	return ts, acc
}

// solveControlPoints solves the least-squares system for the two free
// control points, holding the endpoints and the sample parameters fixed.
//
// Per axis, the residual of sample i against the Bernstein form is linear
// in the two unknowns with weights α = 3u²t and β = 3ut² (u = 1−t), giving
// a symmetric 2×2 normal-equations system shared by both axes. The system
// is solved by Cramer's rule when it is full rank. A rank-deficient system
// (for example, a single interior sample) gets the minimum-norm solution
// via the Frobenius-normalized pseudo-inverse; if even that is degenerate,
// the one-third rule applies.
func solveControlPoints(points []Point, ts []float64) CubicBez {
	p0 := points[0]
	p3 := points[len(points)-1]
	var a11, a12, a22 float64
	var bx1, bx2, by1, by2 float64
	for i, t := range ts {
		u := 1.0 - t
		alpha := 3.0 * u * u * t
		beta := 3.0 * u * t * t
		a11 += alpha * alpha
		a12 += alpha * beta
		a22 += beta * beta
		rx := points[i].X - u*u*u*p0.X - t*t*t*p3.X
		ry := points[i].Y - u*u*u*p0.Y - t*t*t*p3.Y
		bx1 += alpha * rx
		bx2 += beta * rx
		by1 += alpha * ry
		by2 += beta * ry
	}
	det := a11*a22 - a12*a12
	var p1, p2 Point
	if math.Abs(det) > epsilon {
		inv := 1.0 / det
		p1 = Point{X: (a22*bx1 - a12*bx2) * inv, Y: (a22*by1 - a12*by2) * inv}
		p2 = Point{X: (a11*bx2 - a12*bx1) * inv, Y: (a11*by2 - a12*by1) * inv}
	} else {
		// Minimum-norm solution: for a rank-one symmetric matrix A the
		// pseudo-inverse is A divided by its squared Frobenius norm.
		frob := a11*a11 + 2.0*a12*a12 + a22*a22
		if frob < epsilon {
			return oneThirdRule(p0, p3)
		}
		inv := 1.0 / frob
		p1 = Point{X: (a11*bx1 + a12*bx2) * inv, Y: (a11*by1 + a12*by2) * inv}
		p2 = Point{X: (a12*bx1 + a22*bx2) * inv, Y: (a12*by1 + a22*by2) * inv}
	}
	return CubicBez{p0, p1, p2, p3}
}

// reparameterize updates the interior sample parameters in place, moving
// each towards the parameter that minimizes the squared distance between
// the sample and the curve. The endpoints stay pinned at 0 and 1.
//
// Per sample this runs a few Newton-Raphson steps on
// f(t) = (C(t)−q)·C′(t), whose derivative is |C′(t)|² + (C(t)−q)·C″(t).
// Iteration stops early when the denominator is negligible relative to the
// derivative magnitude, which happens at cusps and on degenerate curves.
func reparameterize(c CubicBez, points []Point, ts []float64) {
	d1 := c.Differentiate()
	d2 := d1.Differentiate()
	for i := 1; i < len(points)-1; i++ {
		t := ts[i]
		for iter := 0; iter < fitNewtonIterations; iter++ {
			diff := c.eval(t).Sub(points[i])
			dv := Vec2(d1.Eval(t))
			num := diff.Dot(dv)
			den := dv.Hypot2() + diff.Dot(Vec2(d2.Eval(t)))
			if math.Abs(den) < epsilon*(1.0+dv.Hypot2()) {
				break
			}
			t = min(max(t-num/den, 0.0), 1.0)
		}
		ts[i] = t
	}
}
