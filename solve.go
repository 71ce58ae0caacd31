package curve

import (
	"math"
	"sort"
)

// The package distinguishes three tolerances. Collapsing them into one
// constant either double-counts roots or merges genuinely distinct points.
const (
	// epsilon decides whether a coefficient is zero and whether two roots
	// of the same polynomial are duplicates.
	epsilon = 1e-12
	// paramEpsilon is the slack allowed when filtering curve parameters to
	// [0, 1]; parameters inside the slack are clamped to the domain.
	paramEpsilon = 1e-9
	// distanceEpsilon decides whether two points are duplicates.
	distanceEpsilon = 1e-7
)

// SolveQuadratic finds the real roots of a x² + b x + c = 0.
//
// The roots are returned sorted in the first n entries of the array, where
// n is the second return value.
//
// The implementation avoids catastrophic cancellation: one root is computed
// with the sign-stable form of the quadratic formula and the other via the
// product-of-roots identity. If the equation is nearly linear the quadratic
// term is ignored and at most one root is returned; the other root would be
// out of representable range. In the fully degenerate case where all
// coefficients are zero, a single 0.0 is returned.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	sc := c / a
	sb := b / a
	if math.IsInf(sc, 0) || math.IsInf(sb, 0) {
		// a is zero or very small, treat as linear eqn
		root := -c / b
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if b == 0.0 && c == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sb*sb - 4.0*sc
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sb * sb overflowed. Find one root
		// using sb x + x² = 0, other root as sc / root1.
		root1 = -sb
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sb}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sb + math.Copysign(math.Sqrt(arg), sb))
	}
	root2 := sc / root1
	if !math.IsInf(root2, 0) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveCubic finds the real roots of a x³ + b x² + c x + d = 0.
//
// The solver is analytic: it depresses the cubic and branches on the
// discriminant, using cube-root extraction when there is one real root and
// the trigonometric method when there are three. This follows Blinn's "How
// to Solve a Cubic Equation" as presented at
// https://momentsingraphics.de/CubicRoots.html
//
// The roots are returned sorted in the first n entries of the array;
// roots closer together than epsilon are collapsed into one, so a triple
// root is reported once. When a is zero or nearly so, the quadratic
// equation is solved instead.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	aRecip := 1.0 / a
	c2 := b * (1.0 / 3.0 * aRecip)
	c1 := c * (1.0 / 3.0 * aRecip)
	c0 := d * aRecip
	if math.IsInf(c0, 0) || math.IsInf(c1, 0) || math.IsInf(c2, 0) {
		// cubic coefficient is zero or nearly so
		roots, n := SolveQuadratic(b, c, d)
		return [3]float64{roots[0], roots[1]}, n
	}
	// (d0, d1, d2) is called "Delta" in the article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// disc is called "Discriminant"
	disc := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	var out [3]float64
	var n int
	if disc < 0.0 {
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		out, n = [3]float64{t1 - c2}, 1
	} else if disc == 0.0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		out, n = [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	} else {
		th := math.Atan2(math.Sqrt(disc), -de) * (1.0 / 3.0)
		// (thCos, thSin) is called "CubicRoot"
		thSin, thCos := math.Sincos(th)
		ss3 := thSin * math.Sqrt(3.0)
		t := 2.0 * math.Sqrt(-d0)
		out = [3]float64{
			math.FMA(t, thCos, -c2),
			math.FMA(t, 0.5*(-thCos+ss3), -c2),
			math.FMA(t, 0.5*(-thCos-ss3), -c2),
		}
		n = 3
	}
	sort.Float64s(out[:n])
	n = dedupRoots(out[:n])
	return out, n
}

// dedupRoots collapses adjacent roots closer together than epsilon. The
// input must be sorted. It returns the number of roots kept; kept roots are
// moved to the front of the slice.
func dedupRoots(roots []float64) int {
	if len(roots) == 0 {
		return 0
	}
	n := 1
	for _, r := range roots[1:] {
		if math.Abs(r-roots[n-1]) > epsilon {
			roots[n] = r
			n++
		}
	}
	return n
}

// RefineRoot refines an initial guess for a root of the cubic
// a x³ + b x² + c x + d with Newton-Raphson iteration, clamping the
// iterate to [lo, hi].
//
// It reports failure when the derivative vanishes at the iterate and the
// iterate is not already within tolerance of a root. A bounded number of
// steps is taken regardless of convergence.
//
// Note that for a cubic with several roots in [lo, hi], the result depends
// on the guess: iteration converges to a nearby root, not a particular one.
// Callers that need all roots must use [SolveCubic].
func RefineRoot(a, b, c, d float64, guess, lo, hi float64) (float64, bool) {
	const steps = 8
	eval := func(x float64) float64 {
		return d + x*(c+x*(b+x*a))
	}
	deriv := func(x float64) float64 {
		return c + x*(2.0*b+x*3.0*a)
	}
	x := min(max(guess, lo), hi)
	for step := 0; step < steps; step++ {
		f := eval(x)
		if f == 0.0 {
			return x, true
		}
		df := deriv(x)
		if math.Abs(df) < epsilon {
			if math.Abs(f) < paramEpsilon {
				return x, true
			}
			return 0, false
		}
		x = min(max(x-f/df, lo), hi)
	}
	return x, true
}
