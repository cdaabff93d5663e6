package spline

import "errors"

var (
	// ErrInvalidInput is returned when there are too few anchors to fit a
	// curve, when an anchor isn't finite, or when control points don't match
	// the anchors they are combined with. It is always recoverable: wait for
	// more anchors and try again.
	ErrInvalidInput = errors.New("spline: invalid input")

	// ErrSingularSystem is returned when the control point system could not
	// be solved to finite control points. The coefficient matrix is strictly
	// diagonally dominant and always invertible, so in practice this means
	// the anchors are so large that the right-hand side or the solution
	// overflows float64. Scaling the anchors down avoids it.
	ErrSingularSystem = errors.New("spline: singular system")
)
