package turtle

import "github.com/gogpu/turtle/surface"

// SetSize sets the logical canvas size and re-anchors the surface
// translation. Call it after the surface itself has been resized.
func (t *Turtle) SetSize(width, height float64) *Turtle {
	t.reanchor(func() {
		t.width, t.height = width, height
	})
	return t
}

// SetOrigin sets the normalized origin. Logical (0,0) maps to
// (width·(0.5+ox), height·(0.5+oy)), so (0,0) is the center and
// (-0.5,-0.5) the top-left corner.
func (t *Turtle) SetOrigin(ox, oy float64) *Turtle {
	t.reanchor(func() {
		t.origin = surface.Pt(ox, oy)
	})
	return t
}

// reanchor removes the current anchor translation, applies update and
// translates to the new anchor, with no drawing in between.
func (t *Turtle) reanchor(update func()) {
	old := t.Offset()
	t.s.Translate(-old.X, -old.Y)
	update()
	a := t.Offset()
	t.s.Translate(a.X, a.Y)
	Logger().Debug("turtle: re-anchored",
		"fromX", old.X, "fromY", old.Y, "toX", a.X, "toY", a.Y)
}

// Clear clears the whole logical canvas.
func (t *Turtle) Clear() *Turtle {
	return t.ClearRect(0, 0, t.width, t.height)
}

// ClearRect clears a rectangle given in physical surface coordinates,
// where (0,0) is the top-left corner.
func (t *Turtle) ClearRect(x, y, w, h float64) *Turtle {
	a := t.Offset()
	t.s.Translate(-a.X, -a.Y)
	t.s.ClearRect(x, y, w, h)
	t.s.Translate(a.X, a.Y)
	return t
}

// Stroke clears the canvas and strokes every segment in drawing order,
// each with its own color and line width.
func (t *Turtle) Stroke() *Turtle {
	t.Clear()
	for _, seg := range t.segments.items {
		t.s.Stroke(seg.path, t.strokeStyle(seg))
	}
	return t
}

// Fill fills the current segment with its color using the non-zero rule.
// Earlier segments are not filled and nothing is cleared.
func (t *Turtle) Fill() *Turtle {
	seg := t.current()
	t.s.Fill(seg.path, surface.DefaultFillStyle().
		WithColor(seg.color).
		WithRule(surface.FillRuleNonZero))
	return t
}

func (t *Turtle) strokeStyle(seg Segment) surface.StrokeStyle {
	return surface.StrokeStyle{
		Color:      seg.color,
		Width:      seg.lineWidth,
		Cap:        t.lineCap,
		Join:       t.lineJoin,
		MiterLimit: t.miterLimit,
	}
}
