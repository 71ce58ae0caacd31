package curve

import (
	"errors"
	"math"
	"testing"
)

var arch = CubicBez{
	Pt(0, 0),
	Pt(0, 10),
	Pt(10, 10),
	Pt(10, 0),
}

func TestEvaluateEndpoints(t *testing.T) {
	curves := []CubicBez{
		arch,
		{Pt(-3.5, 2), Pt(0.25, -8), Pt(7, 1), Pt(-1, -1)},
		{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)},
	}
	for _, c := range curves {
		p0, err := c.Evaluate(0)
		if err != nil {
			t.Fatal(err)
		}
		p3, err := c.Evaluate(1)
		if err != nil {
			t.Fatal(err)
		}
		// exact, not approximate
		diff(t, c.P0, p0)
		diff(t, c.P3, p3)
	}
}

func TestEvaluateOutOfRange(t *testing.T) {
	for _, bad := range []float64{-0.5, -1e-9, 1.0000001, 2, math.NaN()} {
		_, err := arch.Evaluate(bad)
		if !errors.Is(err, ErrParamOutOfRange) {
			t.Errorf("Evaluate(%g): got %v, want ErrParamOutOfRange", bad, err)
		}
	}
}

func TestEvaluateBernstein(t *testing.T) {
	// the arch is symmetric; its apex is at t = 0.5
	pt, err := arch.Evaluate(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(5, 7.5), pt)
}

func TestSplit(t *testing.T) {
	curves := []CubicBez{
		arch,
		{Pt(-3.5, 2), Pt(0.25, -8), Pt(7, 1), Pt(-1, -1)},
		{Pt(0, 0), Pt(0, 0), Pt(0, 0), Pt(0, 0)},
	}
	for _, c := range curves {
		for _, ts := range []float64{0.1, 0.25, 0.5, 0.9} {
			left, right := c.Split(ts)
			diff(t, c.P0, left.P0)
			diff(t, c.P3, right.P3)
			approxPt(t, c.eval(ts), left.P3, 1e-9)
			approxPt(t, left.P3, right.P0, 1e-9)
			// both halves reproduce the original curve at their local
			// parameters
			const n = 8
			for i := 0; i <= n; i++ {
				u := float64(i) / n
				approxPt(t, c.eval(u*ts), left.eval(u), 1e-9)
				approxPt(t, c.eval(ts+u*(1-ts)), right.eval(u), 1e-9)
			}
		}
	}
}

func TestSubsegment(t *testing.T) {
	c := CubicBez{Pt(-3.5, 2), Pt(0.25, -8), Pt(7, 1), Pt(-1, -1)}

	// the full range is the identity, exactly
	diff(t, c, c.Subsegment(0, 1))

	const t0, t1 = 0.2, 0.7
	sub := c.Subsegment(t0, t1)
	const n = 10
	for i := 0; i <= n; i++ {
		u := float64(i) / n
		approxPt(t, c.eval(t0+u*(t1-t0)), sub.eval(u), 1e-9)
	}
}

func TestExtrema(t *testing.T) {
	ex, n := arch.Extrema()
	if n != 1 {
		t.Fatalf("got %d extrema (%v), want 1", n, ex[:n])
	}
	approxFloat(t, 0.5, ex[0], 1e-12)

	diff(t, []Point{Pt(5, 7.5)}, arch.ExtremumPoints())

	// a degenerate curve has no interior extrema and must not crash
	degen := CubicBez{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)}
	if _, n := degen.Extrema(); n != 0 {
		t.Errorf("degenerate curve: got %d extrema, want 0", n)
	}
}

func TestBoundingBox(t *testing.T) {
	diff(t, Rect{0, 0, 10, 7.5}, arch.BoundingBox())
}

func TestLength(t *testing.T) {
	// a straight "curve" has its chord as arc length
	line := CubicBez{Pt(0, 0), Pt(1.0 / 3.0, 0), Pt(2.0 / 3.0, 0), Pt(1, 0)}
	approxFloat(t, 1, line.Length(), 1e-12)

	// the polyline approximation underestimates, but only slightly
	l := arch.Length()
	chord := arch.P0.Distance(arch.P3)
	if l <= chord {
		t.Errorf("length %g not greater than chord %g", l, chord)
	}
}

func TestDensify(t *testing.T) {
	const unit = 0.5
	pts := arch.Densify(unit)
	if len(pts) < 2 {
		t.Fatalf("got %d points", len(pts))
	}
	diff(t, arch.P0, pts[0])
	diff(t, arch.P3, pts[len(pts)-1])
	for i := 1; i < len(pts); i++ {
		d := pts[i].Distance(pts[i-1])
		if d > unit+1e-6 {
			t.Errorf("points %d and %d are %g apart, want at most %g", i-1, i, d, unit)
		}
	}
	// every emitted point lies close to the curve
	for i, pt := range pts {
		if d := distToCurve(arch, pt); d > 0.01 {
			t.Errorf("point %d (%v) is %g away from the curve", i, pt, d)
		}
	}
}

func TestDensifyShortCurve(t *testing.T) {
	// final interval shorter than unit still ends at P3
	c := CubicBez{Pt(0, 0), Pt(0.1, 0), Pt(0.2, 0), Pt(0.3, 0)}
	pts := c.Densify(1)
	diff(t, c.P3, pts[len(pts)-1])
}

func TestTangentsDegenerate(t *testing.T) {
	// coincident adjacent control points fall through to the next one
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	d0, d1 := c.Tangents()
	if d0.Hypot2() == 0 {
		t.Error("start tangent is zero")
	}
	if d1.Hypot2() == 0 {
		t.Error("end tangent is zero")
	}

	// a fully degenerate curve yields zero vectors rather than NaNs
	degen := CubicBez{Pt(2, 2), Pt(2, 2), Pt(2, 2), Pt(2, 2)}
	d0, d1 = degen.Tangents()
	if d0.IsNaN() || d1.IsNaN() {
		t.Error("degenerate tangents are NaN")
	}
}

// distToCurve approximates the distance from a point to a curve by dense
// uniform sampling.
func distToCurve(c CubicBez, pt Point) float64 {
	best := math.Inf(1)
	const n = 2000
	for i := 0; i <= n; i++ {
		if d := c.eval(float64(i) / n).Distance(pt); d < best {
			best = d
		}
	}
	return best
}

func BenchmarkEval(b *testing.B) {
	var sink Point
	for i := 0; i < b.N; i++ {
		sink = arch.eval(float64(i%1000) / 1000)
	}
	_ = sink
}
