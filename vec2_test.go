package curve

import (
	"testing"
)

func TestVec2Arith(t *testing.T) {
	diff(t, Vec(4, 6), Vec(1, 2).Add(Vec(3, 4)))
	diff(t, Vec(-2, -2), Vec(1, 2).Sub(Vec(3, 4)))
	diff(t, Vec(2, 4), Vec(1, 2).Mul(2))
	diff(t, Vec(0.5, 1), Vec(1, 2).Div(2))
	diff(t, Vec(-1, -2), Vec(1, 2).Negate())
	approxFloat(t, 11, Vec(1, 2).Dot(Vec(3, 4)), 1e-12)
	approxFloat(t, -2, Vec(1, 2).Cross(Vec(3, 4)), 1e-12)
	approxFloat(t, 5, Vec(3, 4).Hypot(), 1e-12)
	approxFloat(t, 25, Vec(3, 4).Hypot2(), 1e-12)
}

func TestVec2Normalize(t *testing.T) {
	n := Vec(3, 4).Normalize()
	approxFloat(t, 1, n.Hypot(), 1e-12)
	approxFloat(t, 0.6, n.X, 1e-12)
	approxFloat(t, 0.8, n.Y, 1e-12)
}

func TestVec2Lerp(t *testing.T) {
	diff(t, Vec(1, 1), Vec(0, 0).Lerp(Vec(2, 2), 0.5))
	diff(t, Vec(0, 0), Vec(0, 0).Lerp(Vec(2, 2), 0))
	diff(t, Vec(2, 2), Vec(0, 0).Lerp(Vec(2, 2), 1))
}
