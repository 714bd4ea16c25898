// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stroke

import (
	"math"
	"testing"
)

func line(pts ...Point) []PathElement {
	els := make([]PathElement, 0, len(pts))
	for i, p := range pts {
		if i == 0 {
			els = append(els, MoveTo{Point: p})
			continue
		}
		els = append(els, LineTo{Point: p})
	}
	return els
}

func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func count[T PathElement](els []PathElement) int {
	n := 0
	for _, el := range els {
		if _, ok := el.(T); ok {
			n++
		}
	}
	return n
}

func TestNewStrokeExpander(t *testing.T) {
	e := NewStrokeExpander(DefaultStyle())

	if e.style.Width != 1.0 {
		t.Errorf("style.Width = %v, want 1.0", e.style.Width)
	}
	if e.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", e.tolerance)
	}
}

func TestStrokeExpander_SetTolerance(t *testing.T) {
	e := NewStrokeExpander(DefaultStyle())

	e.SetTolerance(0.1)
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
	for _, bad := range []float64{-1, 0} {
		e.SetTolerance(bad)
		if e.tolerance != 0.1 {
			t.Errorf("SetTolerance(%v) changed tolerance to %v", bad, e.tolerance)
		}
	}
}

func TestStrokeExpander_CapArea(t *testing.T) {
	tests := []struct {
		name     string
		cap      LineCap
		min, max float64
	}{
		{"butt", LineCapButt, 20, 20},
		{"square", LineCapSquare, 24, 24},
		{"round", LineCapRound, 22.5, 20 + math.Pi + 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewStrokeExpander(Style{Width: 2, Cap: tt.cap})
			out := e.Expand(line(Point{0, 0}, Point{10, 0}))

			if n := count[Close](out); n != 1 {
				t.Errorf("open line produced %d contours, want 1", n)
			}
			polys := Polygons(out, 0.1)
			if len(polys) != 1 {
				t.Fatalf("got %d polygons, want 1", len(polys))
			}
			a := math.Abs(signedArea(polys[0]))
			if a < tt.min-1e-9 || a > tt.max+1e-9 {
				t.Errorf("area = %v, want in [%v, %v]", a, tt.min, tt.max)
			}
		})
	}
}

func TestStrokeExpander_ClosedSquare(t *testing.T) {
	e := NewStrokeExpander(Style{Width: 2, Join: LineJoinMiter, MiterLimit: 10})
	in := append(line(Point{0, 0}, Point{10, 0}, Point{10, 10}, Point{0, 10}), Close{})

	polys := Polygons(e.Expand(in), 0.1)
	if len(polys) != 2 {
		t.Fatalf("closed path produced %d contours, want 2", len(polys))
	}
	outer, inner := signedArea(polys[0]), signedArea(polys[1])
	if math.Abs(math.Abs(outer)-144) > 1e-9 {
		t.Errorf("outer area = %v, want 144", math.Abs(outer))
	}
	if outer*inner >= 0 {
		t.Errorf("contours share winding: outer %v, inner %v", outer, inner)
	}
}

func TestStrokeExpander_Joins(t *testing.T) {
	corner := Point{X: 11, Y: -1}
	tests := []struct {
		join      LineJoin
		hasCorner bool
		cubics    int
	}{
		{LineJoinMiter, true, 0},
		{LineJoinBevel, false, 0},
		{LineJoinRound, false, 1},
	}
	for _, tt := range tests {
		e := NewStrokeExpander(Style{Width: 2, Join: tt.join, MiterLimit: 10})
		out := e.Expand(line(Point{0, 0}, Point{10, 0}, Point{10, 10}))

		found := false
		for _, el := range out {
			if l, ok := el.(LineTo); ok && l.Point == corner {
				found = true
			}
		}
		if found != tt.hasCorner {
			t.Errorf("join %d: miter corner present = %v, want %v", tt.join, found, tt.hasCorner)
		}
		if n := count[CubicTo](out); n != tt.cubics {
			t.Errorf("join %d: %d cubics, want %d", tt.join, n, tt.cubics)
		}
	}
}

func TestStrokeExpander_RoundJoinOuterSide(t *testing.T) {
	// The arc must run between the two offset points on the outside of
	// the turn, for either turn direction.
	tests := []struct {
		name string
		next Point
		want Point
	}{
		{"left", Point{10, 10}, Point{11, 0}},
		{"right", Point{10, -10}, Point{10, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewStrokeExpander(Style{Width: 2, Join: LineJoinRound})
			out := e.Expand(line(Point{0, 0}, Point{10, 0}, tt.next))

			var arcs []CubicTo
			for _, el := range out {
				if c, ok := el.(CubicTo); ok {
					arcs = append(arcs, c)
				}
			}
			if len(arcs) != 1 {
				t.Fatalf("got %d arcs, want 1", len(arcs))
			}
			if d := arcs[0].Point.Distance(tt.want); d > 1e-9 {
				t.Errorf("arc ends at %v, want %v", arcs[0].Point, tt.want)
			}
			vertex := Point{10, 0}
			for _, c := range []Point{arcs[0].Control1, arcs[0].Control2} {
				if d := c.Distance(vertex); d < 1 || d > 1.5 {
					t.Errorf("control %v at distance %v from the vertex", c, d)
				}
			}
		})
	}
}

func TestStrokeExpander_MiterLimit(t *testing.T) {
	sharp := line(Point{0, 0}, Point{100, 0}, Point{0, 1})

	tests := []struct {
		limit float64
		tip   bool
	}{
		{10, false},
		{1000, true},
	}
	for _, tt := range tests {
		e := NewStrokeExpander(Style{Width: 2, MiterLimit: tt.limit})
		maxX := math.Inf(-1)
		for _, poly := range Polygons(e.Expand(sharp), 0.1) {
			for _, p := range poly {
				maxX = math.Max(maxX, p.X)
			}
		}
		if got := maxX > 101; got != tt.tip {
			t.Errorf("limit %v: max x = %v, miter tip = %v, want %v", tt.limit, maxX, got, tt.tip)
		}
	}
}

func TestStrokeExpander_Degenerate(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		in    []PathElement
	}{
		{"nil", DefaultStyle(), nil},
		{"single move", DefaultStyle(), line(Point{5, 5})},
		{"zero length", DefaultStyle(), line(Point{5, 5}, Point{5, 5})},
		{"zero width", Style{Width: 0}, line(Point{0, 0}, Point{1, 0})},
		{"nan width", Style{Width: math.NaN()}, line(Point{0, 0}, Point{1, 0})},
		{"close only", DefaultStyle(), []PathElement{MoveTo{Point{1, 1}}, Close{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := NewStrokeExpander(tt.style).Expand(tt.in); len(out) != 0 {
				t.Errorf("got %d elements, want 0", len(out))
			}
		})
	}
}

func TestStrokeExpander_MultipleSubpaths(t *testing.T) {
	e := NewStrokeExpander(DefaultStyle())
	in := append(line(Point{0, 0}, Point{10, 0}), line(Point{0, 10}, Point{10, 10})...)

	out := e.Expand(in)
	if n := count[MoveTo](out); n != 2 {
		t.Errorf("got %d MoveTo elements, want 2", n)
	}
	if n := len(Polygons(out, 0)); n != 2 {
		t.Errorf("got %d polygons, want 2", n)
	}
}

func TestStrokeExpander_Reusable(t *testing.T) {
	e := NewStrokeExpander(Style{Width: 2, Cap: LineCapSquare})
	first := Polygons(e.Expand(line(Point{0, 0}, Point{10, 0})), 0.1)
	second := Polygons(e.Expand(line(Point{0, 0}, Point{10, 0})), 0.1)

	if len(first) != len(second) || signedArea(first[0]) != signedArea(second[0]) {
		t.Error("second expansion differs from the first")
	}
}

func TestStrokeExpander_HugeCoordinates(t *testing.T) {
	e := NewStrokeExpander(Style{Width: 2, Cap: LineCapRound, Join: LineJoinRound})
	out := e.Expand(line(Point{0, 0}, Point{1e300, 0}, Point{1e300, 1e300}))

	polys := Polygons(out, 0.1)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	for _, p := range polys[0] {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("outline has non-finite point %v", p)
		}
	}
}

func TestPolygons(t *testing.T) {
	els := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{1, 0}},
		Close{},
		MoveTo{Point{0, 0}},
		LineTo{Point{4, 0}},
		LineTo{Point{4, 4}},
		Close{},
		MoveTo{Point{0, 0}},
		CubicTo{Point{1, 1}, Point{2, 1}, Point{3, 0}},
		LineTo{Point{0, 0}},
	}

	polys := Polygons(els, 0.01)
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2 (two-point contour dropped)", len(polys))
	}
	if a := math.Abs(signedArea(polys[0])); a != 8 {
		t.Errorf("triangle area = %v, want 8", a)
	}
	if n := len(polys[1]); n < 8 {
		t.Errorf("flattened cubic has %d points, want subdivision", n)
	}
}

func TestPolygonsNonFiniteTerminates(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	els := []PathElement{
		MoveTo{Point{0, 0}},
		CubicTo{Point{inf, 0}, Point{0, inf}, Point{nan, nan}},
		CubicTo{Point{-inf, inf}, Point{inf, -inf}, Point{1, 1}},
	}
	polys := Polygons(els, 0.1)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if n := len(polys[0]); n > 1+2<<maxFlattenDepth {
		t.Errorf("flattening produced %d points", n)
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"on segment", Point{5, 0}, Point{0, 0}, Point{10, 0}, 0},
		{"above", Point{5, 3}, Point{0, 0}, Point{10, 0}, 3},
		{"before start", Point{-3, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"past end", Point{13, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"degenerate", Point{3, 4}, Point{0, 0}, Point{0, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToLine(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("distanceToLine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{X: 3, Y: 4}).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := (Vec2{X: 1e300, Y: 1e300}).Length(); math.IsInf(got, 0) {
		t.Error("Length overflowed for large components")
	}
}
