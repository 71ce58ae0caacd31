package curve

import (
	"errors"
	"testing"
)

func TestSVGPath(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, "M 0 0 C 0 10, 10 10, 10 0", c.SVGPath())
}

func TestSVGPathRoundTrip(t *testing.T) {
	curves := []CubicBez{
		{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)},
		{Pt(-3.5, 2), Pt(0.25, -8), Pt(7, 1), Pt(-1, -1)},
		{Pt(0.125, -0.375), Pt(1.5, 2.25), Pt(-100.5, 0.0625), Pt(3, -7)},
	}
	for _, c := range curves {
		got, err := ParseCubicBez(c.SVGPath())
		if err != nil {
			t.Fatalf("%q: %v", c.SVGPath(), err)
		}
		for _, pair := range [][2]Point{
			{c.P0, got.P0}, {c.P1, got.P1}, {c.P2, got.P2}, {c.P3, got.P3},
		} {
			approxPt(t, pair[0], pair[1], 1e-9)
		}
	}
}

func TestParseCubicBezTokens(t *testing.T) {
	// minus signs and exponents split and join tokens per the SVG grammar
	got, err := ParseCubicBez("M1 2C3 4,5 6,-7-8")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, CubicBez{Pt(1, 2), Pt(3, 4), Pt(5, 6), Pt(-7, -8)}, got)

	got, err = ParseCubicBez("M 1e1 0 C 2.5e-1 0, 1 1, 2 2")
	if err != nil {
		t.Fatal(err)
	}
	approxFloat(t, 10, got.P0.X, 1e-12)
	approxFloat(t, 0.25, got.P1.X, 1e-12)
}

func TestParseCubicBezErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"L 0 0",
		"M 0 0",
		"M 0 0 C 1 1",
		"M 0 0 C 1 1, 2 2, 3",
		"M 0 0 C 1 1, 2 2, 3 3 junk",
		"m 0 0 c 1 1, 2 2, 3 3",
	} {
		if _, err := ParseCubicBez(s); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParseCubicBez(%q): got %v, want ErrInvalidPath", s, err)
		}
	}
}

func TestMustParseCubicBez(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on malformed input")
		}
	}()
	MustParseCubicBez("not a path")
}
