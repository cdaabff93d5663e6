package spline

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// End returns the point the pen ends up at after drawing the element.
func (el PathElement) End() Point {
	if el.Kind == CubicToKind {
		return el.P2
	}
	return el.P0
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// BezPath is a Bézier path, a sequence of path elements.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[CubicBez] { return Segments(p.Elements()) }

// Segments converts a sequence of path elements to a sequence of cubic
// segments. Lines are represented as cubics with their control points at
// one and two thirds of the line.
func Segments(seq iter.Seq[PathElement]) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var last Point
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(CubicBez{p, p.Lerp(el.P0, 1.0/3.0), p.Lerp(el.P0, 2.0/3.0), el.P0}) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}) {
					return
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// Elements converts a sequence of cubic segments to a sequence of path
// elements. A "move to" is only emitted when a segment doesn't start where
// the previous one ended.
func Elements(seq iter.Seq[CubicBez]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var current Point
		first := true
		for c := range seq {
			if first || current != c.P0 {
				if !yield(MoveTo(c.P0)) {
					return
				}
			}
			first = false
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
			current = c.P3
		}
	}
}
