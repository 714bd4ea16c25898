// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"
	"testing"
)

func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func TestStrokeOutlineSingleLine(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	polys := StrokeOutline(p, DefaultStrokeStyle().WithWidth(2))
	if len(polys) != 1 {
		t.Fatalf("got %d contours, want 1", len(polys))
	}
	if a := math.Abs(signedArea(polys[0])); math.Abs(a-20) > 1e-9 {
		t.Errorf("outline area = %v, want 20", a)
	}
}

func TestStrokeOutlineCaps(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	tests := []struct {
		cap      LineCap
		min, max float64
	}{
		{LineCapButt, 20, 20},
		{LineCapSquare, 24, 24},
		{LineCapRound, 22.5, 20 + math.Pi + 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			polys := StrokeOutline(p, DefaultStrokeStyle().WithWidth(2).WithCap(tt.cap))
			if len(polys) != 1 {
				t.Fatalf("got %d contours, want 1", len(polys))
			}
			a := math.Abs(signedArea(polys[0]))
			if a < tt.min-1e-9 || a > tt.max+1e-9 {
				t.Errorf("area = %v, want in [%v, %v]", a, tt.min, tt.max)
			}
		})
	}
}

func TestStrokeOutlineClosedRing(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)

	for _, join := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		polys := StrokeOutline(p, DefaultStrokeStyle().WithWidth(2).WithJoin(join))
		if len(polys) != 2 {
			t.Fatalf("join %v: got %d contours, want 2", join, len(polys))
		}
		if signedArea(polys[0])*signedArea(polys[1]) >= 0 {
			t.Errorf("join %v: outer and inner contours share winding", join)
		}
	}
}

func TestStrokeOutlineLineAfterClose(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 10)
	p.LineTo(20, 0)

	if n := len(StrokeOutline(p, DefaultStrokeStyle())); n != 3 {
		t.Errorf("got %d contours, want 3 (ring plus the trailing line)", n)
	}
}

func TestStrokeOutlineDegenerate(t *testing.T) {
	p := NewPath()
	p.MoveTo(3, 3)
	p.MoveTo(4, 4)
	p.LineTo(4, 4)

	if polys := StrokeOutline(p, DefaultStrokeStyle()); len(polys) != 0 {
		t.Errorf("got %d contours for zero-length path, want 0", len(polys))
	}
	if polys := StrokeOutline(nil, DefaultStrokeStyle()); polys != nil {
		t.Error("nil path should produce no contours")
	}
	line := NewPath()
	line.MoveTo(0, 0)
	line.LineTo(1, 0)
	if polys := StrokeOutline(line, DefaultStrokeStyle().WithWidth(0)); polys != nil {
		t.Error("zero width should produce no contours")
	}
}

func TestStrokeOutlineMiterLimit(t *testing.T) {
	// The miter of this turn is about 200 half-widths long.
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	p.LineTo(0, 1)

	maxX := func(style StrokeStyle) float64 {
		m := math.Inf(-1)
		for _, poly := range StrokeOutline(p, style) {
			for _, q := range poly {
				m = math.Max(m, q.X)
			}
		}
		return m
	}

	style := DefaultStrokeStyle().WithWidth(2)
	if m := maxX(style); m > 101 {
		t.Errorf("default limit: outline reaches x=%v, want bevel fallback", m)
	}
	style.MiterLimit = 1000
	if m := maxX(style); m < 101 {
		t.Errorf("limit 1000: outline reaches x=%v, want miter tip", m)
	}
}

func TestStrokeConversions(t *testing.T) {
	if strokeCap(LineCapSquare) != 2 || strokeCap(LineCap(99)) != 0 {
		t.Error("unexpected cap mapping")
	}
	if strokeJoin(LineJoinBevel) != 2 || strokeJoin(LineJoin(99)) != 0 {
		t.Error("unexpected join mapping")
	}

	p := NewPath()
	p.Rectangle(1, 2, 3, 4)
	els := pathElements(p)
	if len(els) != p.Len() {
		t.Errorf("got %d elements for %d verbs", len(els), p.Len())
	}
}
