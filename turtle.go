package turtle

import (
	"fmt"
	"math"

	"github.com/gogpu/turtle/surface"
)

// Turtle is a cursor that draws vector segments onto a surface.
//
// Positions are logical: (0,0) sits at the anchor given by the canvas size
// and the origin (see SetOrigin), and the surface translation is kept equal
// to that anchor at all times.
//
// All mutators return the Turtle so calls can be chained. None of them
// fail; out-of-range values are accepted as given.
//
// Turtle is not safe for concurrent use.
type Turtle struct {
	s surface.Surface

	x, y    float64
	heading float64
	down    bool

	// detached is set when the position changed without adding geometry.
	// The next drawing move first emits a move-to at the position.
	detached bool

	color     Color
	lineWidth float64

	width, height float64
	origin        surface.Point

	lineCap    surface.LineCap
	lineJoin   surface.LineJoin
	miterLimit float64

	segments segmentStore
	stack    stateStack
}

// New creates a Turtle bound to s.
//
// The logical canvas size defaults to the surface size. The surface is
// translated so logical (0,0) maps to its center, or to the anchor given by
// WithOrigin.
//
// New returns ErrSurfaceUnavailable if s is nil or closed.
func New(s surface.Surface, opts ...Option) (*Turtle, error) {
	if !surface.Usable(s) {
		return nil, fmt.Errorf("turtle: new: %w", ErrSurfaceUnavailable)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Turtle{
		s:          s,
		down:       true,
		color:      o.color,
		lineWidth:  o.lineWidth,
		width:      float64(s.Width()),
		height:     float64(s.Height()),
		origin:     o.origin,
		lineCap:    o.lineCap,
		lineJoin:   o.lineJoin,
		miterLimit: o.miterLimit,
	}
	if o.size != nil {
		t.width, t.height = o.size.X, o.size.Y
	}

	id := t.segments.open(t.color, t.lineWidth)
	t.segments.at(id).path.MoveTo(0, 0)

	a := t.Offset()
	s.Translate(a.X, a.Y)

	Logger().Info("turtle: bound to surface",
		"width", s.Width(), "height", s.Height(),
		"anchorX", a.X, "anchorY", a.Y)
	return t, nil
}

// Surface returns the surface the turtle draws into.
func (t *Turtle) Surface() surface.Surface {
	return t.s
}

// Position returns the logical position.
func (t *Turtle) Position() surface.Point {
	return surface.Pt(t.x, t.y)
}

// X returns the logical x coordinate.
func (t *Turtle) X() float64 {
	return t.x
}

// Y returns the logical y coordinate.
func (t *Turtle) Y() float64 {
	return t.y
}

// Heading returns the heading in radians. It is never wrapped.
func (t *Turtle) Heading() float64 {
	return t.heading
}

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool {
	return t.down
}

// Color returns the current pen color.
func (t *Turtle) Color() Color {
	return t.color
}

// LineWidth returns the current line width.
func (t *Turtle) LineWidth() float64 {
	return t.lineWidth
}

// Size returns the logical canvas size.
func (t *Turtle) Size() (width, height float64) {
	return t.width, t.height
}

// Origin returns the normalized origin.
func (t *Turtle) Origin() surface.Point {
	return t.origin
}

// Offset returns the physical point logical (0,0) maps to, which is also
// the translation applied to the surface.
func (t *Turtle) Offset() surface.Point {
	return surface.Pt(
		t.width*(0.5+t.origin.X),
		t.height*(0.5+t.origin.Y),
	)
}

// ToSurface maps a logical point to physical surface coordinates.
func (t *Turtle) ToSurface(x, y float64) surface.Point {
	return t.Offset().Add(x, y)
}

// Segments returns copies of all segments in drawing order.
func (t *Turtle) Segments() []Segment {
	return t.segments.snapshot()
}

// SegmentCount returns the number of segments. It is always at least 1.
func (t *Turtle) SegmentCount() int {
	return t.segments.len()
}

// Current returns the ID of the current segment.
func (t *Turtle) Current() SegmentID {
	return t.segments.current()
}

// Segment returns a copy of the segment with the given ID.
func (t *Turtle) Segment(id SegmentID) (Segment, bool) {
	if id < 0 || int(id) >= t.segments.len() {
		return Segment{}, false
	}
	s := *t.segments.at(id)
	s.path = s.path.Clone()
	return s, true
}

// StackDepth returns the number of saved states.
func (t *Turtle) StackDepth() int {
	return t.stack.depth()
}

// current returns the current segment. The pointer must not outlive the
// next segment open.
func (t *Turtle) current() *Segment {
	return t.segments.at(t.segments.current())
}

// openSegment starts a new current segment at the position with the
// current style.
func (t *Turtle) openSegment() {
	id := t.segments.open(t.color, t.lineWidth)
	t.segments.at(id).path.MoveTo(t.x, t.y)
	t.detached = false
	Logger().Debug("turtle: segment opened", "id", int(id), "x", t.x, "y", t.y)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
