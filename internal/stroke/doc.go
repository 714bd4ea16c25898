// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stroke expands stroked polylines into filled outlines.
//
// A stroke becomes a fill path built from two offset paths:
//   - the forward path, offset to one side of each line piece
//   - the backward path, offset to the other side and then reversed
//
// For an open subpath the two are joined by the end cap and the start
// cap into a single closed contour. A closed subpath yields two
// contours of opposite winding, so the area they enclose stays empty
// under the non-zero rule.
//
// # Caps and joins
//
// LineCapButt ends flush with the endpoint, LineCapSquare extends it by
// half the width and LineCapRound adds a semicircle. Joins follow
// LineJoinMiter (falling back to a bevel beyond the miter limit),
// LineJoinBevel and LineJoinRound.
//
// Round caps and joins are emitted as cubic arcs. Polygons flattens the
// expanded elements into point lists for scanline rasterizers.
//
// # Usage
//
//	e := stroke.NewStrokeExpander(stroke.Style{Width: 2, MiterLimit: 10})
//	out := e.Expand([]stroke.PathElement{
//		stroke.MoveTo{Point: stroke.Point{X: 0, Y: 0}},
//		stroke.LineTo{Point: stroke.Point{X: 100, Y: 0}},
//	})
//	polys := stroke.Polygons(out, 0.1)
package stroke
