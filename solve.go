package spline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ControlPoints holds the interior control points of a fitted spline.
// First[i] and Second[i] are the P1 and P2 of segment i, which runs from
// anchor i to anchor i+1.
type ControlPoints struct {
	First  []Point
	Second []Point
}

// Len returns the number of segments the control points describe.
func (cp ControlPoints) Len() int {
	return len(cp.First)
}

// Coefficients of the control point system. Interior rows are [1, 4, 1];
// the first and last rows encode the end conditions.
const (
	coeffInterior  = 4.0
	coeffFirstDiag = 2.0
	coeffLastSub   = 2.0
	coeffLastDiag  = 7.0
)

// Solve computes the control points of the cubic Bézier spline that passes
// through all anchors with continuous tangents at every interior anchor.
//
// For n+1 anchors, the first control points of all n segments are found by
// solving one tridiagonal n×n system (see [CoefficientMatrix]) for the x and
// y coordinates at once. The second control points follow from the first in
// closed form. Two anchors are a special case that doesn't need a system:
// the control points split the chord into thirds, producing a straight
// segment.
//
// Solve returns an error wrapping [ErrInvalidInput] if there are fewer than
// two anchors or an anchor has a NaN or infinite coordinate, and an error
// wrapping [ErrSingularSystem] if the system could not be solved to finite
// control points, which happens when anchors are close enough to the limits
// of float64 to overflow. Anchors are only read, never retained.
func Solve(anchors []Point) (ControlPoints, error) {
	return solve(anchors, "tridiagonal", solveTridiag)
}

// SolveDense is like [Solve] but factorizes the full coefficient matrix
// with a QR decomposition. It takes O(n³) time instead of O(n) and exists
// mostly to cross-check Solve.
func SolveDense(anchors []Point) (ControlPoints, error) {
	return solve(anchors, "qr", solveQR)
}

// CoefficientMatrix returns the n×n coefficient matrix of the control point
// system for n segments. It panics if n < 2, as one segment has no system.
//
// For n = 4 the matrix is
//
//	⎡2 1 0 0⎤
//	⎢1 4 1 0⎥
//	⎢0 1 4 1⎥
//	⎣0 0 2 7⎦
func CoefficientMatrix(n int) *mat.Dense {
	dl, d, du := coefficients(n)
	a := mat.NewDense(n, n, nil)
	for i := range n {
		a.Set(i, i, d[i])
		if i > 0 {
			a.Set(i, i-1, dl[i-1])
		}
		if i < n-1 {
			a.Set(i, i+1, du[i])
		}
	}
	return a
}

// coefficients returns the sub-diagonal, diagonal and super-diagonal of the
// coefficient matrix.
func coefficients(n int) (dl, d, du []float64) {
	if n < 2 {
		panic(fmt.Sprintf("coefficient matrix needs at least 2 segments, got %d", n))
	}
	dl = make([]float64, n-1)
	d = make([]float64, n)
	du = make([]float64, n-1)
	for i := range n - 1 {
		dl[i] = 1
		du[i] = 1
	}
	for i := range d {
		d[i] = coeffInterior
	}
	d[0] = coeffFirstDiag
	d[n-1] = coeffLastDiag
	dl[n-2] = coeffLastSub
	return dl, d, du
}

// rightHandSide returns the n×2 right-hand side of the system, one column
// per axis.
func rightHandSide(anchors []Point) *mat.Dense {
	n := len(anchors) - 1
	b := mat.NewDense(n, 2, nil)
	set := func(i int, v Vec2) {
		b.Set(i, 0, v.X)
		b.Set(i, 1, v.Y)
	}
	for i := 1; i < n-1; i++ {
		// 2(2aᵢ + aᵢ₊₁)
		set(i, Vec2(anchors[i]).Mul(2).Add(Vec2(anchors[i+1])).Mul(2))
	}
	set(0, Vec2(anchors[0]).Add(Vec2(anchors[1]).Mul(2)))
	set(n-1, Vec2(anchors[n-1]).Mul(8).Add(Vec2(anchors[n])))
	return b
}

func solveTridiag(n int, b *mat.Dense) (*mat.Dense, error) {
	dl, d, du := coefficients(n)
	a := mat.NewTridiag(n, dl, d, du)
	var x mat.Dense
	if err := a.SolveTo(&x, false, b); err != nil {
		return nil, err
	}
	return &x, nil
}

func solveQR(n int, b *mat.Dense) (*mat.Dense, error) {
	var qr mat.QR
	qr.Factorize(CoefficientMatrix(n))
	var x mat.Dense
	if err := qr.SolveTo(&x, false, b); err != nil {
		return nil, err
	}
	return &x, nil
}

func checkAnchors(anchors []Point) error {
	if len(anchors) < 2 {
		return fmt.Errorf("%w: need at least 2 anchors, got %d", ErrInvalidInput, len(anchors))
	}
	for i, pt := range anchors {
		if !pt.IsFinite() {
			return fmt.Errorf("%w: anchor %d is %v", ErrInvalidInput, i, pt)
		}
	}
	return nil
}

func solve(
	anchors []Point,
	method string,
	fn func(n int, b *mat.Dense) (*mat.Dense, error),
) (ControlPoints, error) {
	if err := checkAnchors(anchors); err != nil {
		return ControlPoints{}, err
	}
	n := len(anchors) - 1
	if n == 1 {
		a0, a1 := anchors[0], anchors[1]
		return ControlPoints{
			First:  []Point{a0.Lerp(a1, 1.0/3.0)},
			Second: []Point{a0.Lerp(a1, 2.0/3.0)},
		}, nil
	}

	x, err := fn(n, rightHandSide(anchors))
	if err != nil {
		return ControlPoints{}, fmt.Errorf("%w: %w", ErrSingularSystem, err)
	}

	first := make([]Point, n)
	for i := range first {
		first[i] = Pt(x.At(i, 0), x.At(i, 1))
		if !first[i].IsFinite() {
			return ControlPoints{}, fmt.Errorf("%w: control point %d is %v", ErrSingularSystem, i, first[i])
		}
	}
	second := make([]Point, n)
	for i := range n - 1 {
		// 2aᵢ₊₁ − firstᵢ₊₁, mirroring the next segment's first control point
		// through the shared anchor.
		second[i] = Point(Vec2(anchors[i+1]).Mul(2).Sub(Vec2(first[i+1])))
	}
	second[n-1] = first[n-1].Midpoint(anchors[n])
	for i, pt := range second {
		if !pt.IsFinite() {
			return ControlPoints{}, fmt.Errorf("%w: control point %d is %v", ErrSingularSystem, i, pt)
		}
	}

	Logger().Debug("solved control points", "segments", n, "method", method)
	return ControlPoints{First: first, Second: second}, nil
}
