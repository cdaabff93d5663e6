// Package spline fits smooth curves through points. Given an ordered
// sequence of anchor points, it computes a piecewise cubic Bézier curve that
// passes exactly through every anchor, with continuous first and second
// derivatives at every interior anchor.
//
// # Fitting
//
// Fitting happens in two steps. [Solve] computes the interior control
// points of every segment by solving one tridiagonal linear system for both
// coordinates at once. [BuildSegments] pairs those control points with the
// anchors, producing one [CubicBez] per pair of consecutive anchors. [Fit]
// does both.
//
// The end conditions are those of a natural spline: the second derivative
// vanishes at the first and last anchor. With only two anchors, this
// degenerates to a straight segment whose control points split the chord
// into thirds.
//
// # Segments
//
// A fitted curve is a [Spline], a slice of [CubicBez]. Segments are plain
// values; they don't reference the anchors they were fitted to or each
// other, and they can be evaluated concurrently. Consecutive segments share
// their endpoint exactly.
//
// For drawing, [Spline.Sample] yields points along the curve, and
// [Spline.Path] converts it to a [BezPath], which [WriteSVG] serializes as
// SVG path data.
//
// # Errors
//
// Too few anchors, anchors or control points that aren't finite, and
// control points that don't match their anchors are reported as
// [ErrInvalidInput]. A failure to solve the linear system to finite control
// points is reported as [ErrSingularSystem]; it only happens when anchors
// are so large that the computation overflows float64.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug output
// from the solver.
package spline
