package curve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxPt(t *testing.T, want, got Point, eps float64) {
	t.Helper()
	if d := want.Distance(got); !(d <= eps) {
		t.Errorf("got %v, want %v (difference %g exceeds %g)", got, want, d, eps)
	}
}

func approxFloat(t *testing.T, want, got, eps float64) {
	t.Helper()
	d := want - got
	if d < 0 {
		d = -d
	}
	if !(d <= eps) {
		t.Errorf("got %g, want %g (difference %g exceeds %g)", got, want, d, eps)
	}
}
