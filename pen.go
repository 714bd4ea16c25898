package turtle

// PenUp lifts the pen. Moves no longer draw. PenUp never opens a segment.
func (t *Turtle) PenUp() *Turtle {
	t.down = false
	return t
}

// PenDown lowers the pen. If the pen was up, a new segment starts at the
// position with the current style; otherwise PenDown does nothing.
func (t *Turtle) PenDown() *Turtle {
	if t.down {
		return t
	}
	t.down = true
	t.openSegment()
	return t
}

// SetColor sets the pen color and restyles the current segment.
// Earlier segments keep their color.
func (t *Turtle) SetColor(c Color) *Turtle {
	t.color = c
	t.current().color = c
	return t
}

// SetColorString parses s with ParseColor and calls SetColor.
// Input that does not parse is logged and ignored.
func (t *Turtle) SetColorString(s string) *Turtle {
	c, err := ParseColor(s)
	if err != nil {
		Logger().Warn("turtle: ignoring color", "value", s, "error", err)
		return t
	}
	return t.SetColor(c)
}

// SetLineWidth sets the line width and restyles the current segment.
// Earlier segments keep their width.
func (t *Turtle) SetLineWidth(w float64) *Turtle {
	t.lineWidth = w
	t.current().lineWidth = w
	return t
}

// TransformColor sets the color to fn applied to the current color.
//
//	t.TransformColor(func(c turtle.Color) turtle.Color { return c.Rotate(2) })
func (t *Turtle) TransformColor(fn func(Color) Color) *Turtle {
	if fn == nil {
		return t
	}
	return t.SetColor(fn(t.color))
}

// Save pushes the position, heading, color and line width.
func (t *Turtle) Save() *Turtle {
	t.stack.push(Snapshot{
		Position:  t.Position(),
		Heading:   t.heading,
		Color:     t.color,
		LineWidth: t.lineWidth,
	})
	return t
}

// Restore pops the state pushed by the last Save. It moves without drawing
// and leaves every segment unchanged, including the current one's style.
// Restore on an empty stack does nothing.
func (t *Turtle) Restore() *Turtle {
	snap, ok := t.stack.pop()
	if !ok {
		return t
	}
	t.x, t.y = snap.Position.X, snap.Position.Y
	t.heading = snap.Heading
	t.color = snap.Color
	t.lineWidth = snap.LineWidth
	t.detached = true
	return t
}

// ClearSegments drops every segment except the current one.
// The surface is not touched.
func (t *Turtle) ClearSegments() *Turtle {
	t.segments.truncateToLast()
	return t
}
