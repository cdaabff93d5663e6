package spline

import (
	"fmt"
	"iter"
	"math"
)

// Spline is a sequence of cubic Bézier segments, each ending where the next
// one starts.
type Spline []CubicBez

// Fit fits a spline through anchors. It is shorthand for [Solve] followed by
// [BuildSegments].
func Fit(anchors []Point) (Spline, error) {
	cp, err := Solve(anchors)
	if err != nil {
		return nil, err
	}
	return BuildSegments(anchors, cp)
}

// BuildSegments combines anchors and the control points computed from them
// into one segment per pair of consecutive anchors, in anchor order. Segment
// i runs from anchors[i] to anchors[i+1].
//
// BuildSegments returns an error wrapping [ErrInvalidInput] if cp doesn't
// have exactly one pair of control points per segment, or if any anchor or
// control point is NaN or infinite. Empty control points combined with fewer
// than two anchors produce an empty spline.
func BuildSegments(anchors []Point, cp ControlPoints) (Spline, error) {
	if len(cp.First) == 0 && len(cp.Second) == 0 && len(anchors) < 2 {
		return nil, nil
	}
	n := len(anchors) - 1
	if len(cp.First) != n || len(cp.Second) != n {
		return nil, fmt.Errorf("%w: %d anchors need %d control point pairs, got %d first and %d second",
			ErrInvalidInput, len(anchors), n, len(cp.First), len(cp.Second))
	}
	s := make(Spline, n)
	for i := range s {
		c := CubicBez{anchors[i], cp.First[i], cp.Second[i], anchors[i+1]}
		if c.IsNaN() || c.IsInf() {
			return nil, fmt.Errorf("%w: segment %d has non-finite points %v %v %v %v",
				ErrInvalidInput, i, c.P0, c.P1, c.P2, c.P3)
		}
		s[i] = c
	}
	return s, nil
}

// ControlPoints returns the interior control points of the spline's
// segments.
func (s Spline) ControlPoints() ControlPoints {
	cp := ControlPoints{
		First:  make([]Point, len(s)),
		Second: make([]Point, len(s)),
	}
	for i, c := range s {
		cp.First[i] = c.P1
		cp.Second[i] = c.P2
	}
	return cp
}

// Anchors returns the points the spline passes through.
func (s Spline) Anchors() []Point {
	if len(s) == 0 {
		return nil
	}
	out := make([]Point, 0, len(s)+1)
	for _, c := range s {
		out = append(out, c.P0)
	}
	return append(out, s[len(s)-1].P3)
}

// Start returns the first anchor of the spline. It panics if the spline is
// empty.
func (s Spline) Start() Point {
	if len(s) == 0 {
		panic("Start called on empty spline")
	}
	return s[0].Start()
}

// End returns the last anchor of the spline. It panics if the spline is
// empty.
func (s Spline) End() Point {
	if len(s) == 0 {
		panic("End called on empty spline")
	}
	return s[len(s)-1].End()
}

// Eval evaluates the spline at u ∈ [0, len(s)]. The integer part of u
// selects the segment and the fractional part is the parameter within it.
// u = len(s) evaluates the end of the last segment. Values outside the range
// extrapolate the first or last segment.
func (s Spline) Eval(u float64) Point {
	if len(s) == 0 {
		panic("Eval called on empty spline")
	}
	i := int(math.Floor(u))
	i = max(0, min(i, len(s)-1))
	return s[i].Eval(u - float64(i))
}

// Sample returns an iterator over points on the spline. It yields the start
// of the spline followed by steps evenly spaced points per segment, the last
// of which is the segment's end. Joints are yielded once. Connecting the
// points with lines approximates the curve.
//
// Sample panics if steps < 1.
func (s Spline) Sample(steps int) iter.Seq[Point] {
	if steps < 1 {
		panic(fmt.Sprintf("invalid number of steps %d", steps))
	}
	return func(yield func(Point) bool) {
		if len(s) == 0 {
			return
		}
		if !yield(s[0].P0) {
			return
		}
		for _, c := range s {
			for j := 1; j <= steps; j++ {
				if !yield(c.Eval(float64(j) / float64(steps))) {
					return
				}
			}
		}
	}
}

// Path returns the spline as a Bézier path consisting of a single subpath.
func (s Spline) Path() BezPath {
	if len(s) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(s)+1)
	p.MoveTo(s[0].P0)
	for _, c := range s {
		p.CubicTo(c.P1, c.P2, c.P3)
	}
	return p
}

// BoundingBox returns the smallest rectangle that encloses the spline. The
// curve may overshoot its anchors, so this can be larger than the bounding
// box of the anchors.
func (s Spline) BoundingBox() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	bbox := s[0].BoundingBox()
	for _, c := range s[1:] {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}
