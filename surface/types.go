// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/color"

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	// A point is inside if the winding number is non-zero.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd uses the even-odd rule.
	// A point is inside if the winding number is odd.
	FillRuleEvenOdd
)

// String returns the SVG name of the fill rule.
func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// String returns the SVG/PDF name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SVG/PDF name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// FillStyle defines how to fill a path.
type FillStyle struct {
	// Color is the fill color.
	Color color.Color

	// Rule is the fill rule (NonZero or EvenOdd).
	Rule FillRule
}

// DefaultFillStyle returns a FillStyle with default values.
// Uses black color and non-zero fill rule.
func DefaultFillStyle() FillStyle {
	return FillStyle{
		Color: color.Black,
		Rule:  FillRuleNonZero,
	}
}

// WithColor returns a copy with the specified color.
func (f FillStyle) WithColor(c color.Color) FillStyle {
	f.Color = c
	return f
}

// WithRule returns a copy with the specified fill rule.
func (f FillStyle) WithRule(r FillRule) FillStyle {
	f.Rule = r
	return f
}

// StrokeStyle defines how to stroke a path.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in pixels.
	Width float64

	// Cap is the line cap style.
	Cap LineCap

	// Join is the line join style.
	Join LineJoin

	// MiterLimit is the limit for miter joins.
	// When the miter length exceeds this, a bevel join is used instead.
	MiterLimit float64
}

// DefaultStrokeStyle returns a StrokeStyle with the HTML Canvas defaults:
// black color, 1px width, butt caps, miter joins, miter limit 10.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color:      color.Black,
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// WithCap returns a copy with the specified cap style.
func (s StrokeStyle) WithCap(lineCap LineCap) StrokeStyle {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy with the specified join style.
func (s StrokeStyle) WithJoin(join LineJoin) StrokeStyle {
	s.Join = join
	return s
}

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
