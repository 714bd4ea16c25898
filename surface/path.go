// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb identifies a path construction operation.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath without drawing.
	VerbMoveTo Verb = iota

	// VerbLineTo draws a straight line from the current point.
	VerbLineTo

	// VerbClose closes the current subpath.
	VerbClose
)

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbClose:
		return "Close"
	default:
		return fmt.Sprintf("Verb(%d)", v)
	}
}

// Path represents a polyline geometry built from move-to and line-to
// operations. Every MoveTo and LineTo stores exactly one point; Close
// stores none.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 16),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.start = Point{X: x, Y: y}
	p.cur = p.start
}

// LineTo adds a line from the current point to (x, y).
// On an empty path LineTo behaves like MoveTo, as in HTML Canvas.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
	p.cur = Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice. The slice must not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point slice. The slice must not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// Len returns the number of verbs in the path.
func (p *Path) Len() int {
	return len(p.verbs)
}

// LineCount returns the number of LineTo verbs, which is the number of
// visible line pieces the path contributes when stroked (excluding Close).
func (p *Path) LineCount() int {
	n := 0
	for _, v := range p.verbs {
		if v == VerbLineTo {
			n++
		}
	}
	return n
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]Point, len(p.points)),
		start:  p.start,
		cur:    p.cur,
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Subpaths splits the path into polylines. A closed subpath repeats its
// first point at the end.
func (p *Path) Subpaths() [][]Point {
	lines := p.polylines()
	out := make([][]Point, len(lines))
	for i, l := range lines {
		out[i] = l.points
		if l.closed {
			out[i] = append(out[i], l.points[0])
		}
	}
	return out
}

// polyline is one subpath of a Path.
type polyline struct {
	points []Point
	closed bool
}

func (p *Path) polylines() []polyline {
	var (
		out   []polyline
		cur   []Point
		start Point
	)
	pi := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			if len(cur) > 0 {
				out = append(out, polyline{points: cur})
			}
			start = p.points[pi]
			cur = []Point{start}
			pi++
		case VerbLineTo:
			if cur == nil {
				// A LineTo after Close continues from the subpath start.
				cur = []Point{start}
			}
			cur = append(cur, p.points[pi])
			pi++
		case VerbClose:
			if len(cur) > 0 {
				out = append(out, polyline{points: cur, closed: true})
			}
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, polyline{points: cur})
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the path.
// Returns zeros if the path is empty.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = p.points[0].X, p.points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.points[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// SVGData renders the path as SVG path data ("M x y L x y Z"), with each
// point offset by (dx, dy).
func (p *Path) SVGData(dx, dy float64) string {
	var sb strings.Builder
	pi := 0
	for i, v := range p.verbs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch v {
		case VerbMoveTo, VerbLineTo:
			pt := p.points[pi]
			pi++
			if v == VerbMoveTo {
				sb.WriteString("M")
			} else {
				sb.WriteString("L")
			}
			sb.WriteString(formatFloat(pt.X + dx))
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(pt.Y + dy))
		case VerbClose:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
