package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with an absolute tolerance that is generous enough
// for the output of a linear solve.
var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxTo(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// secondDerivStart returns the second derivative of c at t = 0.
func secondDerivStart(c CubicBez) Vec2 {
	return Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Mul(6)
}

// secondDerivEnd returns the second derivative of c at t = 1.
func secondDerivEnd(c CubicBez) Vec2 {
	return Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Mul(6)
}
