package curve

import (
	"errors"
	"fmt"
	"strconv"

	strconvx "github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidPath is returned by [ParseCubicBez] for input that does not
// match the curve path grammar. The returned error wraps it together with
// a description of what went wrong.
var ErrInvalidPath = errors.New("curve: invalid path string")

// SVGPath renders the curve as an SVG path string of the form
// "M sx sy C c0x c0y, c1x c1y, ex ey". The decimal formatting is
// locale-invariant and uses the shortest representation that round-trips
// through [ParseCubicBez].
func (c CubicBez) SVGPath() string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("M %s %s C %s %s, %s %s, %s %s",
		f(c.P0.X), f(c.P0.Y),
		f(c.P1.X), f(c.P1.Y),
		f(c.P2.X), f(c.P2.Y),
		f(c.P3.X), f(c.P3.Y))
}

// ParseCubicBez parses a curve from the format produced by
// [CubicBez.SVGPath]: an absolute moveto followed by a single absolute
// cubic command. Token boundaries follow the SVG path grammar: command
// letters split tokens, commas and whitespace are separators, and a '-'
// that does not follow an exponent marker starts a new number.
//
// Malformed input returns an error wrapping [ErrInvalidPath].
func ParseCubicBez(s string) (CubicBez, error) {
	sc := pathScanner{data: []byte(s)}
	if !sc.command('M') {
		return CubicBez{}, fmt.Errorf("%w: expected 'M' at offset %d", ErrInvalidPath, sc.pos)
	}
	var coords [8]float64
	for i := range coords[:2] {
		v, ok := sc.number()
		if !ok {
			return CubicBez{}, fmt.Errorf("%w: expected number at offset %d", ErrInvalidPath, sc.pos)
		}
		coords[i] = v
	}
	if !sc.command('C') {
		return CubicBez{}, fmt.Errorf("%w: expected 'C' at offset %d", ErrInvalidPath, sc.pos)
	}
	for i := range coords[2:] {
		v, ok := sc.number()
		if !ok {
			return CubicBez{}, fmt.Errorf("%w: expected number at offset %d", ErrInvalidPath, sc.pos)
		}
		coords[2+i] = v
	}
	sc.skipSeparators()
	if sc.pos != len(sc.data) {
		return CubicBez{}, fmt.Errorf("%w: trailing data at offset %d", ErrInvalidPath, sc.pos)
	}
	return CubicBez{
		Pt(coords[0], coords[1]),
		Pt(coords[2], coords[3]),
		Pt(coords[4], coords[5]),
		Pt(coords[6], coords[7]),
	}, nil
}

// MustParseCubicBez is like [ParseCubicBez] but panics on malformed input.
// Use it for path literals known to be valid.
func MustParseCubicBez(s string) CubicBez {
	c, err := ParseCubicBez(s)
	if err != nil {
		panic(err)
	}
	return c
}

type pathScanner struct {
	data []byte
	pos  int
}

func (sc *pathScanner) skipSeparators() {
	for sc.pos < len(sc.data) {
		switch sc.data[sc.pos] {
		case ' ', ',', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *pathScanner) command(want byte) bool {
	sc.skipSeparators()
	if sc.pos < len(sc.data) && sc.data[sc.pos] == want {
		sc.pos++
		return true
	}
	return false
}

func (sc *pathScanner) number() (float64, bool) {
	sc.skipSeparators()
	f, n := strconvx.ParseFloat(sc.data[sc.pos:])
	if n == 0 {
		return 0, false
	}
	sc.pos += n
	return f, true
}
