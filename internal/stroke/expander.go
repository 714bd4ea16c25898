// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stroke

import (
	"math"
)

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Add returns p offset by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp interpolates linearly between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vec2 is a 2D displacement.
type Vec2 struct {
	X, Y float64
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns |v| without overflowing for large components.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap is the shape of open subpath endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flush with the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a semicircle.
	LineCapRound
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// LineJoin is the shape drawn where two line pieces meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a point.
	LineJoinMiter LineJoin = iota
	// LineJoinRound fills the corner with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts the corner with a straight edge.
	LineJoinBevel
)

// Style describes the stroke being expanded.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a one unit wide stroke with butt caps and miter joins.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// PathElement is one element of an input or output path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a straight line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve. Expand only emits it for round
// caps and joins; it ignores cubics in its input.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// StrokeExpander turns stroked polylines into fill outlines.
// It is not safe for concurrent use.
type StrokeExpander struct {
	style Style

	// tolerance bounds the error of arcs and of skipped joins.
	tolerance float64

	forward  *pathBuilder
	backward *pathBuilder
	output   *pathBuilder

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	// lastNorm is the half-width normal at lastPt, used for the end cap.
	lastNorm Vec2

	joinThresh float64
}

// NewStrokeExpander creates an expander for style.
func NewStrokeExpander(style Style) *StrokeExpander {
	return &StrokeExpander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the join tolerance. Non-positive values are ignored.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the fill outline of elements stroked with the
// expander's style. Zero-length lines are skipped.
func (e *StrokeExpander) Expand(elements []PathElement) []PathElement {
	e.reset()
	if !(e.style.Width > 0) {
		return nil
	}

	for _, el := range elements {
		switch elem := el.(type) {
		case MoveTo:
			e.finish()
			e.startPt = elem.Point
			e.lastPt = elem.Point
		case LineTo:
			if elem.Point != e.lastPt {
				tangent := elem.Point.Sub(e.lastPt)
				e.doJoin(tangent)
				e.lastTan = tangent
				e.doLine(tangent, elem.Point)
			}
		case Close:
			if e.lastPt != e.startPt {
				tangent := e.startPt.Sub(e.lastPt)
				e.doJoin(tangent)
				e.lastTan = tangent
				e.doLine(tangent, e.startPt)
			}
			e.finishClosed()
			e.lastPt = e.startPt
		}
	}

	e.finish()
	return e.output.build()
}

func (e *StrokeExpander) reset() {
	e.forward = newPathBuilder()
	e.backward = newPathBuilder()
	e.output = newPathBuilder()
	e.startPt = Point{}
	e.startNorm = Vec2{}
	e.startTan = Vec2{}
	e.lastPt = Point{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
	e.joinThresh = 2.0 * e.tolerance / e.style.Width
}

// doJoin joins the piece with tangent tan0 to the previous one, or
// starts the offset paths if this is the first piece.
func (e *StrokeExpander) doJoin(tan0 Vec2) {
	norm := e.halfNormal(tan0)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}
	e.joinWithPrevious(p0, norm, tan0)
}

// halfNormal returns the normal of tan scaled to half the stroke width.
func (e *StrokeExpander) halfNormal(tan Vec2) Vec2 {
	return tan.Perp().Scale(0.5 * e.style.Width / tan.Length())
}

func (e *StrokeExpander) joinWithPrevious(p0 Point, norm, tan0 Vec2) {
	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Nearly collinear pieces still connect both paths so no gap opens.
	if dot > 0.0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		e.roundJoin(p0, norm, cross, dot)
	default:
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
	}
}

func (e *StrokeExpander) miterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	limit := e.style.MiterLimit
	if limit <= 0 {
		limit = 10
	}
	if 2.0*hypot < (hypot+dot)*limit*limit {
		e.miterPoint(p0, norm, ab, cd, cross)
	}
	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

// miterPoint adds the miter tip on the outer side of the turn and routes
// the inner side through the vertex.
func (e *StrokeExpander) miterPoint(p0 Point, norm, ab, cd Vec2, cross float64) {
	lastNorm := e.halfNormal(ab)

	switch {
	case cross > 0.0:
		last := p0.Add(lastNorm.Neg())
		this := p0.Add(norm.Neg())
		h := ab.Cross(this.Sub(last)) / cross
		e.forward.lineTo(this.Add(cd.Scale(-h)))
		e.backward.lineTo(p0)
	case cross < 0.0:
		last := p0.Add(lastNorm)
		this := p0.Add(norm)
		h := ab.Cross(this.Sub(last)) / cross
		e.backward.lineTo(this.Add(cd.Scale(-h)))
		e.forward.lineTo(p0)
	}
}

// roundJoin sweeps an arc from the previous piece's normal to norm on
// the outer side of the turn.
func (e *StrokeExpander) roundJoin(p0 Point, norm Vec2, cross, dot float64) {
	lastNorm := e.halfNormal(e.lastTan)

	angle := math.Atan2(cross, dot)
	if angle > 0.0 {
		e.backward.lineTo(p0.Add(norm))
		e.arc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.arc(e.backward, p0, lastNorm, angle)
	}
}

func (e *StrokeExpander) doLine(tangent Vec2, p1 Point) {
	norm := e.halfNormal(tangent)

	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finish closes an open subpath with its two caps.
func (e *StrokeExpander) finish() {
	if e.forward.isEmpty() {
		return
	}

	e.output.appendPath(e.forward)
	// lastNorm points at the backward side; the cap starts on the forward one.
	e.applyCap(e.lastPt, e.lastNorm.Neg(), false)
	e.appendReversed(e.backward)
	e.applyCap(e.startPt, e.startNorm, true)

	e.forward = newPathBuilder()
	e.backward = newPathBuilder()
}

// finishClosed emits the two contours of a closed subpath.
func (e *StrokeExpander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}

	e.doJoin(e.startTan)

	e.output.appendPath(e.forward)
	e.output.close()

	if back := e.backward.elements; len(back) > 0 {
		e.output.moveTo(endPoint(back[len(back)-1]))
	}
	e.appendReversed(e.backward)
	e.output.close()

	e.forward = newPathBuilder()
	e.backward = newPathBuilder()
}

// applyCap draws the cap at center, starting from center+norm.
func (e *StrokeExpander) applyCap(center Point, norm Vec2, closePath bool) {
	switch e.style.Cap {
	case LineCapRound:
		e.arc(e.output, center, norm, math.Pi)
	case LineCapSquare:
		e.output.lineTo(transform(center, norm, Point{X: 1, Y: 1}))
		e.output.lineTo(transform(center, norm, Point{X: -1, Y: 1}))
		if !closePath {
			e.output.lineTo(transform(center, norm, Point{X: -1, Y: 0}))
		}
	default:
		if !closePath {
			e.output.lineTo(center.Add(norm.Neg()))
		}
	}
	if closePath {
		e.output.close()
	}
}

// arc appends a circular arc around center, starting at center+norm and
// sweeping angle radians, as cubic segments of at most 90 degrees.
func (e *StrokeExpander) arc(out *pathBuilder, center Point, norm Vec2, angle float64) {
	n := max(int(math.Ceil(math.Abs(angle)/(math.Pi/2))), 1)
	step := angle / float64(n)
	a := norm.Angle()
	radius := norm.Length()

	for i := 0; i < n; i++ {
		arcSegment(out, center, radius, a, a+step)
		a += step
	}
}

func arcSegment(out *pathBuilder, center Point, radius, a0, a1 float64) {
	da := a1 - a0
	t := math.Tan(da / 2)
	alpha := math.Sin(da) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	out.cubicTo(c1, c2, p2)
}

// transform maps p through the frame whose x axis is norm, centred on center.
func transform(center Point, norm Vec2, p Point) Point {
	return Point{
		X: norm.X*p.X - norm.Y*p.Y + center.X,
		Y: norm.Y*p.X + norm.X*p.Y + center.Y,
	}
}

func (e *StrokeExpander) appendReversed(pb *pathBuilder) {
	elems := pb.elements
	for i := len(elems) - 1; i >= 1; i-- {
		end := endPoint(elems[i-1])
		switch el := elems[i].(type) {
		case LineTo:
			e.output.lineTo(end)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, end)
		}
	}
}

// Polygons flattens an expanded outline into closed point lists, one per
// contour. Cubic arcs are subdivided until their control points lie
// within tolerance of the chord. Contours with fewer than three points
// are dropped.
func Polygons(elements []PathElement, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out [][]Point
		cur []Point
	)
	flush := func() {
		if len(cur) >= 3 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, el := range elements {
		switch el := el.(type) {
		case MoveTo:
			flush()
			cur = []Point{el.Point}
		case LineTo:
			cur = append(cur, el.Point)
		case CubicTo:
			if len(cur) == 0 {
				cur = append(cur, el.Control1)
			}
			flattenCubic(cur[len(cur)-1], el.Control1, el.Control2, el.Point, tolerance, 0, &cur)
		case Close:
			flush()
		}
	}
	flush()
	return out
}

// maxFlattenDepth bounds subdivision when a curve has non-finite points.
const maxFlattenDepth = 16

func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if !(dist >= tolerance) || depth >= maxFlattenDepth {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToLine returns the distance from p to the segment ab.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Scale(t)))
}

func endPoint(el PathElement) Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case CubicTo:
		return e.Point
	default:
		return Point{}
	}
}

type pathBuilder struct {
	elements []PathElement
}

func newPathBuilder() *pathBuilder {
	return &pathBuilder{
		elements: make([]PathElement, 0, 64),
	}
}

func (b *pathBuilder) isEmpty() bool {
	return len(b.elements) == 0
}

func (b *pathBuilder) moveTo(p Point) {
	b.elements = append(b.elements, MoveTo{Point: p})
}

func (b *pathBuilder) lineTo(p Point) {
	b.elements = append(b.elements, LineTo{Point: p})
}

func (b *pathBuilder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (b *pathBuilder) close() {
	b.elements = append(b.elements, Close{})
}

func (b *pathBuilder) appendPath(other *pathBuilder) {
	b.elements = append(b.elements, other.elements...)
}

func (b *pathBuilder) build() []PathElement {
	return b.elements
}
