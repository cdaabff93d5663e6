package spline

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomAnchors(rng *rand.Rand, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(rng.Float64()*1000-500, rng.Float64()*1000-500)
	}
	return pts
}

func TestSolveTwoAnchors(t *testing.T) {
	cp, err := Solve([]Point{Pt(0, 0), Pt(10, 0)})
	require.NoError(t, err)
	diff(t, ControlPoints{
		First:  []Point{Pt(10.0/3.0, 0)},
		Second: []Point{Pt(20.0/3.0, 0)},
	}, cp, approx)
}

func TestSolveSquare(t *testing.T) {
	anchors := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	cp, err := Solve(anchors)
	require.NoError(t, err)
	want := ControlPoints{
		First:  []Point{Pt(4, -10.0/9.0), Pt(12, 20.0/9.0), Pt(8, 110.0/9.0)},
		Second: []Point{Pt(8, -20.0/9.0), Pt(12, 70.0/9.0), Pt(4, 100.0/9.0)},
	}
	diff(t, want, cp, approx)
}

func TestCoefficientMatrix(t *testing.T) {
	want := mat.NewDense(3, 3, []float64{
		2, 1, 0,
		1, 4, 1,
		0, 2, 7,
	})
	got := CoefficientMatrix(3)
	if !mat.Equal(want, got) {
		t.Errorf("got\n%v\nwant\n%v", mat.Formatted(got), mat.Formatted(want))
	}

	want = mat.NewDense(5, 5, []float64{
		2, 1, 0, 0, 0,
		1, 4, 1, 0, 0,
		0, 1, 4, 1, 0,
		0, 0, 1, 4, 1,
		0, 0, 0, 2, 7,
	})
	got = CoefficientMatrix(5)
	if !mat.Equal(want, got) {
		t.Errorf("got\n%v\nwant\n%v", mat.Formatted(got), mat.Formatted(want))
	}

	assert.Panics(t, func() { CoefficientMatrix(1) })
}

func TestCoefficientMatrixDiagonallyDominant(t *testing.T) {
	for n := 2; n < 20; n++ {
		a := CoefficientMatrix(n)
		for i := range n {
			var off float64
			for j := range n {
				if j != i {
					off += math.Abs(a.At(i, j))
				}
			}
			if d := math.Abs(a.At(i, i)); d <= off {
				t.Errorf("n=%d row %d: |%g| isn't greater than %g", n, i, d, off)
			}
		}
	}
}

// TestSolveSatisfiesSystem checks that the first control points solve
// A·x = D.
func TestSolveSatisfiesSystem(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, m := range []int{3, 4, 7, 50} {
		anchors := randomAnchors(rng, m)
		cp, err := Solve(anchors)
		require.NoError(t, err)

		n := m - 1
		x := mat.NewDense(n, 2, nil)
		for i, pt := range cp.First {
			x.Set(i, 0, pt.X)
			x.Set(i, 1, pt.Y)
		}
		var got mat.Dense
		got.Mul(CoefficientMatrix(n), x)
		if want := rightHandSide(anchors); !mat.EqualApprox(&got, want, 1e-9) {
			t.Errorf("m=%d: A·x doesn't match right-hand side\n%v\n%v", m, mat.Formatted(&got), mat.Formatted(want))
		}
	}
}

func TestSolveDenseAgrees(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, m := range []int{2, 3, 5, 10, 100} {
		anchors := randomAnchors(rng, m)
		banded, err := Solve(anchors)
		require.NoError(t, err)
		dense, err := SolveDense(anchors)
		require.NoError(t, err)
		diff(t, banded, dense, approxTo(1e-8))
	}
}

func TestSolveIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	anchors := randomAnchors(rng, 25)
	a, err := Solve(anchors)
	require.NoError(t, err)
	b, err := Solve(anchors)
	require.NoError(t, err)
	// No tolerance: the results must be bit-identical.
	diff(t, a, b)
}

func TestSolveDoesNotModifyAnchors(t *testing.T) {
	anchors := []Point{Pt(1, 2), Pt(3, 5), Pt(8, 13), Pt(21, 34)}
	orig := append([]Point(nil), anchors...)
	_, err := Solve(anchors)
	require.NoError(t, err)
	diff(t, orig, anchors)
}

func TestSolveInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		anchors []Point
	}{
		{"nil", nil},
		{"one anchor", []Point{Pt(1, 1)}},
		{"NaN", []Point{Pt(0, 0), Pt(math.NaN(), 1), Pt(2, 2)}},
		{"Inf", []Point{Pt(0, 0), Pt(1, math.Inf(1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, solve := range []func([]Point) (ControlPoints, error){Solve, SolveDense} {
				cp, err := solve(tt.anchors)
				require.ErrorIs(t, err, ErrInvalidInput)
				assert.Zero(t, cp.Len())
			}
		})
	}
}

func TestSolveOverflow(t *testing.T) {
	// Finite anchors whose right-hand side overflows float64.
	anchors := []Point{Pt(0, 0), Pt(1e308, 0), Pt(1e308, 1e308)}
	for _, solve := range []func([]Point) (ControlPoints, error){Solve, SolveDense} {
		cp, err := solve(anchors)
		require.ErrorIs(t, err, ErrSingularSystem)
		assert.NotErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, cp.Len())
	}
}

func TestSolveFactorizationError(t *testing.T) {
	errFactorize := errors.New("factorization failed")
	anchors := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	cp, err := solve(anchors, "failing", func(int, *mat.Dense) (*mat.Dense, error) {
		return nil, errFactorize
	})
	require.ErrorIs(t, err, ErrSingularSystem)
	require.ErrorIs(t, err, errFactorize)
	assert.Zero(t, cp.Len())
}

// TestSolveNaturalEnds checks that the second derivative vanishes at the
// first and last anchor, including in the two-anchor case.
func TestSolveNaturalEnds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, m := range []int{2, 3, 4, 12} {
		s, err := Fit(randomAnchors(rng, m))
		require.NoError(t, err)
		first, last := s[0], s[len(s)-1]
		diff(t, Vec2{}, secondDerivStart(first), approxTo(1e-8))
		diff(t, Vec2{}, secondDerivEnd(last), approxTo(1e-8))
	}
}

func BenchmarkSolve(b *testing.B) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, m := range []int{4, 64, 1024} {
		anchors := randomAnchors(rng, m)
		b.Run(fmt.Sprintf("tridiagonal/%d", m), func(b *testing.B) {
			for range b.N {
				Solve(anchors)
			}
		})
		if m > 64 {
			continue
		}
		b.Run(fmt.Sprintf("qr/%d", m), func(b *testing.B) {
			for range b.N {
				SolveDense(anchors)
			}
		})
	}
}
