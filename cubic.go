package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrParamOutOfRange is returned by [CubicBez.Evaluate] when the curve
// parameter lies outside [0, 1]. The parameter is deliberately not clamped:
// an out-of-range parameter indicates a bug in the caller, and clamping
// would hide it.
var ErrParamOutOfRange = errors.New("curve: parameter outside [0, 1]")

// CubicBez is a cubic Bézier segment with control points P0 through P3,
// where P0 is the start point and P3 the end point.
//
// Any four points form a valid curve. Degenerate configurations, such as
// all control points coincident, do not fail; operations on them fall back
// to documented heuristics.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Evaluate evaluates the curve at parameter t.
//
// t must lie in [0, 1] inclusive; otherwise the error wraps
// [ErrParamOutOfRange]. Evaluate(0) is exactly P0 and Evaluate(1) is
// exactly P3.
func (c CubicBez) Evaluate(t float64) (Point, error) {
	if !(t >= 0.0 && t <= 1.0) {
		return Point{}, fmt.Errorf("%w: t=%g", ErrParamOutOfRange, t)
	}
	return c.eval(t), nil
}

// eval computes the point via the cubic Bernstein basis. The grouping of
// terms is fixed; the derivative formulas elsewhere assume it.
func (c CubicBez) eval(t float64) Point {
	u := 1.0 - t
	b0 := u * u * u
	b1 := 3.0 * u * u * t
	b2 := 3.0 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*c.P0.X + b1*c.P1.X + b2*c.P2.X + b3*c.P3.X,
		Y: b0*c.P0.Y + b1*c.P1.Y + b2*c.P2.Y + b3*c.P3.Y,
	}
}

// Split subdivides the curve at parameter t using de Casteljau's
// construction. The left curve starts at P0, the right curve ends at P3,
// and they share the point at parameter t.
//
// t is not range-checked; Split is defined for any t in [0, 1] and callers
// that evaluate first are already guarded by [CubicBez.Evaluate].
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	pm := p012.Lerp(p123, t)
	return CubicBez{c.P0, p01, p012, pm},
		CubicBez{pm, p123, p23, c.P3}
}

// Subdivide subdivides the curve into halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

// Subsegment returns the portion of the curve between parameters t0 and
// t1, constructed from up to two Split calls. Subsegment(0, 1) is the
// curve itself, unchanged.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	out := c
	if t0 > 0.0 {
		_, out = out.Split(t0)
	}
	if t1 < 1.0 {
		// remap t1 into the parameter space of the right half
		out, _ = out.Split((t1 - t0) / (1.0 - t0))
	}
	return out
}

// Differentiate returns the derivative of the cubic as a quadratic Bézier:
// evaluating it at t yields the derivative vector at t.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

// MaxExtrema is the maximum number of extrema a cubic Bézier can have: up
// to two per axis.
const MaxExtrema = 4

// Extrema computes the parameters at which the curve's x or y component
// has a local extremum. Only parameters in the interior of the curve are
// reported, in increasing order.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(a, b, c)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// ExtremumPoints evaluates the curve at each extremum parameter and
// returns the resulting points, with points closer together than
// distanceEpsilon collapsed into one.
func (c CubicBez) ExtremumPoints() []Point {
	ex, n := c.Extrema()
	pts := make([]Point, 0, n)
	for _, t := range ex[:n] {
		pts = appendDedupPoint(pts, c.eval(t))
	}
	return pts
}

// BoundingBox returns the smallest axis-aligned rectangle that encloses
// the curve for t in [0, 1].
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.eval(t))
	}
	return bbox
}

// lengthSamples is the number of uniform samples used by Length.
const lengthSamples = 20

// Length returns the arc length of the curve, approximated by a polyline
// through 20 uniform parameter samples. The error is a few percent for
// curves without sharp cusps; no attempt is made to subdivide adaptively.
func (c CubicBez) Length() float64 {
	var sum float64
	prev := c.P0
	for i := 1; i <= lengthSamples; i++ {
		pt := c.eval(float64(i) / lengthSamples)
		sum += prev.Distance(pt)
		prev = pt
	}
	return sum
}

// densifyMinSamples is the minimum oversampling used by Densify and the
// polyline-based intersection tests.
const densifyMinSamples = 20

// polyline samples the curve at n+1 uniform parameters, with n chosen so
// that the samples are spaced well below unit apart. It returns the sample
// points and their parameters.
func (c CubicBez) polyline(unit float64) ([]Point, []float64) {
	// The control polygon length is an upper bound on the arc length.
	size := c.P1.Sub(c.P0).Hypot() + c.P2.Sub(c.P1).Hypot() + c.P3.Sub(c.P2).Hypot()
	n := densifyMinSamples
	if unit > 0.0 {
		n = max(int(math.Ceil(size/unit))*4, densifyMinSamples)
	}
	pts := make([]Point, n+1)
	ts := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pts[i] = c.eval(t)
		ts[i] = t
	}
	return pts, ts
}

// Densify resamples the curve into a sequence of points spaced at most
// unit apart along the arc length. The first point is P0 and the last
// point is always P3, even if the final interval is shorter than unit.
//
// Spacing is measured along an oversampled polyline, so it carries the
// polyline's approximation error; emitted points are linearly interpolated
// between samples.
func (c CubicBez) Densify(unit float64) []Point {
	samples, _ := c.polyline(unit)
	if unit <= 0.0 {
		return samples
	}
	out := []Point{c.P0}
	prev := samples[0]
	var acc float64
	for _, pt := range samples[1:] {
		d := prev.Distance(pt)
		for acc+d >= unit && d > 0.0 {
			prev = prev.Lerp(pt, (unit-acc)/d)
			out = append(out, prev)
			d = prev.Distance(pt)
			acc = 0.0
		}
		acc += d
		prev = pt
	}
	if out[len(out)-1] != c.P3 {
		out = append(out, c.P3)
	}
	return out
}

// Tangents returns the start and end tangent vectors of the curve. When
// adjacent control points coincide, the next control point along the curve
// is used, so the result is meaningful for degenerate curves as long as
// not all four points coincide. The vectors are not normalized; a fully
// degenerate curve yields zero vectors.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	var d0, d1 Vec2
	if d01 := c.P1.Sub(c.P0); d01.Hypot2() > epsilon {
		d0 = d01
	} else if d02 := c.P2.Sub(c.P0); d02.Hypot2() > epsilon {
		d0 = d02
	} else {
		d0 = c.P3.Sub(c.P0)
	}
	if d23 := c.P3.Sub(c.P2); d23.Hypot2() > epsilon {
		d1 = d23
	} else if d13 := c.P3.Sub(c.P1); d13.Hypot2() > epsilon {
		d1 = d13
	} else {
		d1 = c.P3.Sub(c.P0)
	}
	return d0, d1
}

// appendDedupPoint appends pt to pts unless an existing point is closer
// than distanceEpsilon.
func appendDedupPoint(pts []Point, pt Point) []Point {
	for _, q := range pts {
		if q.Distance(pt) < distanceEpsilon {
			return pts
		}
	}
	return append(pts, pt)
}
