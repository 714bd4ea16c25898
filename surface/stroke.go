// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/turtle/internal/stroke"
)

// flattenTolerance is the maximum distance in pixels between a round cap
// or join and its polygon approximation.
const flattenTolerance = 0.1

// StrokeOutline expands a stroked path into fill contours. An open
// subpath becomes one contour; a closed subpath becomes an outer and an
// inner contour of opposite winding. Rasterize the contours together
// under the non-zero rule.
func StrokeOutline(p *Path, style StrokeStyle) [][]Point {
	if p == nil || !(style.Width > 0) {
		return nil
	}

	e := stroke.NewStrokeExpander(stroke.Style{
		Width:      style.Width,
		Cap:        strokeCap(style.Cap),
		Join:       strokeJoin(style.Join),
		MiterLimit: style.MiterLimit,
	})
	e.SetTolerance(flattenTolerance)

	polys := stroke.Polygons(e.Expand(pathElements(p)), flattenTolerance)
	if len(polys) == 0 {
		return nil
	}
	out := make([][]Point, len(polys))
	for i, poly := range polys {
		pts := make([]Point, len(poly))
		for j, q := range poly {
			pts[j] = Point{X: q.X, Y: q.Y}
		}
		out[i] = pts
	}
	return out
}

// pathElements converts path verbs into expander input.
func pathElements(p *Path) []stroke.PathElement {
	els := make([]stroke.PathElement, 0, len(p.verbs))
	pi := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			els = append(els, stroke.MoveTo{Point: strokePoint(p.points[pi])})
			pi++
		case VerbLineTo:
			els = append(els, stroke.LineTo{Point: strokePoint(p.points[pi])})
			pi++
		case VerbClose:
			els = append(els, stroke.Close{})
		}
	}
	return els
}

func strokePoint(p Point) stroke.Point {
	return stroke.Point{X: p.X, Y: p.Y}
}

func strokeCap(c LineCap) stroke.LineCap {
	switch c {
	case LineCapRound:
		return stroke.LineCapRound
	case LineCapSquare:
		return stroke.LineCapSquare
	default:
		return stroke.LineCapButt
	}
}

func strokeJoin(j LineJoin) stroke.LineJoin {
	switch j {
	case LineJoinRound:
		return stroke.LineJoinRound
	case LineJoinBevel:
		return stroke.LineJoinBevel
	default:
		return stroke.LineJoinMiter
	}
}
