package turtle

import "math"

// maxArcSteps bounds the number of points a single arc emits.
const maxArcSteps = 100000

// MoveTo sets the position to (x, y). With the pen down it draws a line
// from the previous position.
func (t *Turtle) MoveTo(x, y float64) *Turtle {
	if t.down {
		p := t.current().path
		if t.detached {
			p.MoveTo(t.x, t.y)
			t.detached = false
		}
		p.LineTo(x, y)
	} else {
		t.detached = true
	}
	t.x, t.y = x, y
	return t
}

// Forward moves d units along the heading.
func (t *Turtle) Forward(d float64) *Turtle {
	return t.MoveTo(
		t.x+d*math.Cos(t.heading),
		t.y+d*math.Sin(t.heading),
	)
}

// Back moves d units against the heading. Back(d) is Forward(-d).
func (t *Turtle) Back(d float64) *Turtle {
	return t.Forward(-d)
}

// Left turns counterclockwise on screen by deg degrees.
func (t *Turtle) Left(deg float64) *Turtle {
	t.heading -= radians(deg)
	return t
}

// Right turns clockwise on screen by deg degrees.
func (t *Turtle) Right(deg float64) *Turtle {
	t.heading += radians(deg)
	return t
}

// LeftTurn turns left by 90 degrees.
func (t *Turtle) LeftTurn() *Turtle {
	return t.Left(90)
}

// RightTurn turns right by 90 degrees.
func (t *Turtle) RightTurn() *Turtle {
	return t.Right(90)
}

// SetHeading sets the heading in radians.
func (t *Turtle) SetHeading(rad float64) *Turtle {
	t.heading = rad
	return t
}

// SetX sets the x coordinate without drawing.
func (t *Turtle) SetX(x float64) *Turtle {
	t.x = x
	t.detached = true
	return t
}

// SetY sets the y coordinate without drawing.
func (t *Turtle) SetY(y float64) *Turtle {
	t.y = y
	t.detached = true
	return t
}

// Jump moves to (x, y) without drawing and keeps the pen state. If the pen
// was down, a new segment starts at (x, y).
func (t *Turtle) Jump(x, y float64) *Turtle {
	wasDown := t.down
	t.PenUp().MoveTo(x, y)
	if wasDown {
		t.PenDown()
	}
	return t
}

// Home moves to the center of the logical canvas, (width/2, height/2),
// and resets the heading to 0 without drawing. Pen and color are kept.
func (t *Turtle) Home() *Turtle {
	t.x, t.y = t.width/2, t.height/2
	t.heading = 0
	t.detached = true
	return t
}

// Circle draws a full circle of radius r. See ArcSteps.
func (t *Turtle) Circle(r float64) *Turtle {
	return t.ArcSteps(r, 360, 0)
}

// Arc draws an arc of radius r spanning extent degrees. See ArcSteps.
func (t *Turtle) Arc(r, extent float64) *Turtle {
	return t.ArcSteps(r, extent, 0)
}

// ArcSteps approximates an arc with steps points.
//
// The center is r·(cos(h+π/2), sin(h+π/2)) away from the position, so on a
// y-down surface a positive r curves right and a negative r draws the
// mirrored arc on the other side. Each point goes through MoveTo, so the arc draws only with
// the pen down. Afterwards the heading has turned by extent, with the sign
// of r.
//
// If steps <= 0 the count is max(4, round(|r·extent·8|)) with extent in
// radians.
func (t *Turtle) ArcSteps(r, extent float64, steps int) *Turtle {
	ext := radians(extent)
	if steps <= 0 {
		n := math.Round(math.Abs(r * ext * 8))
		if !(n < maxArcSteps) {
			n = maxArcSteps
		}
		steps = max(4, int(n))
	}
	steps = min(steps, maxArcSteps)

	cx := t.x + r*math.Cos(t.heading+math.Pi/2)
	cy := t.y + r*math.Sin(t.heading+math.Pi/2)
	a1 := math.Atan2(t.y-cy, t.x-cx)
	a2 := a1 + ext
	if r < 0 {
		a2 = a1 - ext
	}

	ar := math.Abs(r)
	for i := 0; i < steps; i++ {
		p := 1.0
		if steps > 1 {
			p = float64(i) / float64(steps-1)
		}
		a := a1 + (a2-a1)*p
		t.MoveTo(cx+ar*math.Cos(a), cy+ar*math.Sin(a))
	}

	if r < 0 {
		t.heading -= ext
	} else {
		t.heading += ext
	}
	return t
}
