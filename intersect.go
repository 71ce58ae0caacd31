package curve

import (
	"math"
	"sort"
)

// Intersection is a single intersection of a curve with another primitive.
type Intersection struct {
	// T is the curve parameter of the intersection, clamped to [0, 1].
	T float64
	// P is the curve point at T.
	P Point
}

// Intersection queries never return errors. A degenerate or unsolvable
// polynomial for one test contributes no points and does not affect the
// other tests; an empty result means "no intersections", whatever the
// internal reason.

// IntersectLine intersects the curve with the infinite line through l,
// returning up to three points sorted by curve parameter.
//
// The line is used in its implicit form n·p = n·P0 with n normal to the
// line direction, which covers vertical lines as well. A zero-length line
// has no direction and yields no intersections.
func (c CubicBez) IntersectLine(l Line) []Intersection {
	d := l.P1.Sub(l.P0)
	n := Vec2{X: d.Y, Y: -d.X}
	if n.Hypot2() < epsilon*epsilon {
		return nil
	}
	bias := n.Dot(Vec2(l.P0))
	return c.solveImplicit(
		n.Dot(Vec2(c.P3).Sub(Vec2(c.P2).Mul(3)).Add(Vec2(c.P1).Mul(3)).Sub(Vec2(c.P0))),
		3.0*n.Dot(Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2))),
		3.0*n.Dot(c.P1.Sub(c.P0)),
		n.Dot(Vec2(c.P0))-bias,
	)
}

// IntersectSegment intersects the curve with the bounded segment l. It
// computes the line intersections and keeps those whose projection onto
// the segment lies between the endpoints, with paramEpsilon slack.
func (c CubicBez) IntersectSegment(l Line) []Intersection {
	d := l.P1.Sub(l.P0)
	dd := d.Hypot2()
	if dd < epsilon*epsilon {
		return nil
	}
	hits := c.IntersectLine(l)
	out := hits[:0]
	for _, h := range hits {
		s := h.P.Sub(l.P0).Dot(d) / dd
		if s >= -paramEpsilon && s <= 1.0+paramEpsilon {
			out = append(out, h)
		}
	}
	return out
}

// IntersectVerticalLine intersects the curve with the vertical line at the
// given x coordinate.
func (c CubicBez) IntersectVerticalLine(x float64) []Intersection {
	return c.solveImplicit(axisCubicCoeffs(c.P0.X, c.P1.X, c.P2.X, c.P3.X, x))
}

// IntersectHorizontalLine intersects the curve with the horizontal line at
// the given y coordinate.
func (c CubicBez) IntersectHorizontalLine(y float64) []Intersection {
	return c.solveImplicit(axisCubicCoeffs(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, y))
}

// IntersectCircle intersects the curve with a circle. The curve is
// approximated by a polyline with edges no longer than unit, and each edge
// is tested against the circle analytically; this trades a small
// positional error proportional to unit against solving a quartic. A
// non-positive unit selects the minimum sampling density.
func (c CubicBez) IntersectCircle(circle Circle, unit float64) []Intersection {
	pts, ts := c.polyline(unit)
	var out []Intersection
	for i := 0; i < len(pts)-1; i++ {
		e0, e1 := pts[i], pts[i+1]
		d := e1.Sub(e0)
		a := d.Hypot2()
		if a < epsilon {
			continue
		}
		f := e0.Sub(circle.Center)
		roots, n := SolveQuadratic(a, 2.0*f.Dot(d), f.Hypot2()-circle.Radius*circle.Radius)
		for _, s := range roots[:n] {
			if math.IsNaN(s) || s < -paramEpsilon || s > 1.0+paramEpsilon {
				continue
			}
			s = min(max(s, 0.0), 1.0)
			hit := Intersection{
				T: ts[i] + (ts[i+1]-ts[i])*s,
				P: e0.Lerp(e1, s),
			}
			out = appendDedupIntersection(out, hit)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].T < out[j].T })
	return out
}

// IntersectRect intersects the curve with the four edges of an
// axis-aligned rectangle, returning the crossing points sorted by curve
// parameter.
//
// When the curve's bounding box does not overlap the rectangle, the result
// is empty without any cubic being solved.
func (c CubicBez) IntersectRect(r Rect) []Intersection {
	if !c.BoundingBox().Overlaps(r) {
		return nil
	}
	var ts []float64
	// vertical edges: solve x(t) = edge x, keep roots whose y lies on the edge
	for _, x := range [2]float64{r.MinX(), r.MaxX()} {
		roots := solveAxisCubic(axisCubicCoeffs(c.P0.X, c.P1.X, c.P2.X, c.P3.X, x))
		for _, t := range roots {
			y := c.eval(t).Y
			if y >= r.MinY()-distanceEpsilon && y <= r.MaxY()+distanceEpsilon {
				ts = append(ts, t)
			}
		}
	}
	// horizontal edges: solve y(t) = edge y, keep roots whose x lies on the edge
	for _, y := range [2]float64{r.MinY(), r.MaxY()} {
		roots := solveAxisCubic(axisCubicCoeffs(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, y))
		for _, t := range roots {
			x := c.eval(t).X
			if x >= r.MinX()-distanceEpsilon && x <= r.MaxX()+distanceEpsilon {
				ts = append(ts, t)
			}
		}
	}
	sort.Float64s(ts)
	out := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		if n := len(out); n > 0 && t-out[n-1].T < paramEpsilon {
			continue
		}
		out = appendDedupIntersection(out, Intersection{T: t, P: c.eval(t)})
	}
	return out
}

// axisCubicCoeffs converts one coordinate of the control points from the
// Bernstein basis to the power-basis coefficients of p(t) − v, leading
// coefficient first.
func axisCubicCoeffs(p0, p1, p2, p3, v float64) (a, b, c, d float64) {
	a = p3 - 3.0*p2 + 3.0*p1 - p0
	b = 3.0 * (p0 - 2.0*p1 + p2)
	c = 3.0 * (p1 - p0)
	d = p0 - v
	return a, b, c, d
}

// solveImplicit solves the cubic, filters the roots into [0, 1] and
// evaluates the curve at each, deduplicating by position.
func (cb CubicBez) solveImplicit(a, b, c, d float64) []Intersection {
	ts := solveAxisCubic(a, b, c, d)
	out := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		out = appendDedupIntersection(out, Intersection{T: t, P: cb.eval(t)})
	}
	return out
}

// solveAxisCubic solves a t³ + b t² + c t + d = 0 and returns the real
// roots filtered to [0, 1] with paramEpsilon slack, clamped and sorted.
// A polynomial whose coefficients are all negligible describes a constant
// component lying on the target; that is treated as no crossings, not as
// an error.
func solveAxisCubic(a, b, c, d float64) []float64 {
	if max(math.Abs(a), math.Abs(b), math.Abs(c), math.Abs(d)) < epsilon {
		return nil
	}
	roots, n := SolveCubic(a, b, c, d)
	out := make([]float64, 0, n)
	for _, t := range roots[:n] {
		if math.IsNaN(t) || t < -paramEpsilon || t > 1.0+paramEpsilon {
			continue
		}
		out = append(out, min(max(t, 0.0), 1.0))
	}
	sort.Float64s(out)
	return out
}

// appendDedupIntersection appends a hit unless an existing hit is closer
// than distanceEpsilon in position.
func appendDedupIntersection(hits []Intersection, hit Intersection) []Intersection {
	for _, h := range hits {
		if h.P.Distance(hit.P) < distanceEpsilon {
			return hits
		}
	}
	return append(hits, hit)
}
