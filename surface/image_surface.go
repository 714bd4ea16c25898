// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Paths are rasterized with golang.org/x/image/vector, which computes
// exact area coverage for anti-aliasing. Strokes are expanded into
// contours first (see StrokeOutline) and every contour is clipped to
// the surface before rasterization. The vector rasterizer accumulates
// absolute coverage, so FillRuleEvenOdd renders like FillRuleNonZero.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	path := surface.NewPath()
//	path.Rectangle(100, 100, 200, 100)
//	s.Fill(path, surface.FillStyle{Color: color.RGBA{255, 0, 0, 255}})
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// tx, ty is the accumulated translation
	tx, ty float64

	ras *vector.Rasterizer

	// closed tracks if Close has been called
	closed bool
}

// Ensure ImageSurface implements the optional interfaces.
var (
	_ ClosableSurface  = (*ImageSurface)(nil)
	_ ResizableSurface = (*ImageSurface)(nil)
	_ SnapshotSurface  = (*ImageSurface)(nil)
)

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	width, height = max(width, 1), max(height, 1)
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
	}
}

// NewImageSurfaceFromImage creates a surface that renders into img
// directly. If img is nil, empty, or its bounds do not start at the
// origin, a new image of the same size is allocated instead.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	if img == nil {
		return NewImageSurface(1, 1)
	}
	b := img.Bounds()
	if b.Empty() || b.Min != (image.Point{}) {
		return NewImageSurface(b.Dx(), b.Dy())
	}
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		ras:    vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Translation returns the accumulated translation.
func (s *ImageSurface) Translation() (dx, dy float64) {
	return s.tx, s.ty
}

// Translate moves the coordinate system by (dx, dy).
func (s *ImageSurface) Translate(dx, dy float64) {
	s.tx += dx
	s.ty += dy
}

// Clear fills the entire surface with the given color, ignoring the
// translation.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// ClearRect resets the given rectangle to transparent.
// Pixels partially covered by the rectangle are cleared too.
func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	if s.closed {
		return
	}
	x0, y0 := x+s.tx, y+s.ty
	x1, y1 := x0+w, y0+h
	r := image.Rect(
		int(math.Floor(math.Min(x0, x1))), int(math.Floor(math.Min(y0, y1))),
		int(math.Ceil(math.Max(x0, x1))), int(math.Ceil(math.Max(y0, y1))),
	).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// Fill fills the given path using the specified style.
func (s *ImageSurface) Fill(path *Path, style FillStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}

	s.ras.Reset(s.width, s.height)
	drawn := false
	for _, line := range path.polylines() {
		if len(line.points) < 3 {
			continue
		}
		if s.addPolygon(line.points) {
			drawn = true
		}
	}
	if drawn {
		s.paint(style.Color)
	}
}

// Stroke strokes the given path using the specified style.
func (s *ImageSurface) Stroke(path *Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() {
		return
	}

	polys := StrokeOutline(path, style)
	if len(polys) == 0 {
		return
	}

	s.ras.Reset(s.width, s.height)
	drawn := false
	for _, poly := range polys {
		if s.addPolygon(poly) {
			drawn = true
		}
	}
	if drawn {
		s.paint(style.Color)
	}
}

// Resize changes the surface dimensions, discarding its content.
// The translation is kept so the owner can re-anchor it.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	width, height = max(width, 1), max(height, 1)
	s.width, s.height = width, height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.ras = vector.NewRasterizer(width, height)
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.ras = nil
	return nil
}

// Closed reports whether Close has been called.
func (s *ImageSurface) Closed() bool {
	return s.closed
}

// addPolygon feeds one closed contour to the rasterizer. Contours with a
// non-finite point are dropped. The rest are clipped to the surface
// bounds plus a one pixel margin, which keeps the coverage inside the
// surface unchanged and every coordinate within float32 range.
func (s *ImageSurface) addPolygon(pts []Point) bool {
	poly := make([]Point, len(pts))
	for i, p := range pts {
		x, y := p.X+s.tx, p.Y+s.ty
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false
		}
		poly[i] = Point{X: x, Y: y}
	}
	x1, y1 := float64(s.width)+1, float64(s.height)+1
	poly = clipPolygon(poly, -1, -1, x1, y1)
	if len(poly) < 3 {
		return false
	}
	for i, p := range poly {
		// Intersections of far-apart points can overflow.
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return false
		}
		poly[i] = Point{X: min(max(p.X, -1), x1), Y: min(max(p.Y, -1), y1)}
	}

	s.ras.MoveTo(float32(poly[0].X), float32(poly[0].Y))
	for _, p := range poly[1:] {
		s.ras.LineTo(float32(p.X), float32(p.Y))
	}
	s.ras.ClosePath()
	return true
}

// clipPolygon clips a closed polygon to the rectangle [x0, x1] x [y0, y1]
// one edge at a time (Sutherland-Hodgman). Winding is preserved.
func clipPolygon(poly []Point, x0, y0, x1, y1 float64) []Point {
	edges := []struct {
		inside func(Point) bool
		cross  func(a, b Point) Point
	}{
		{func(p Point) bool { return p.X >= x0 }, func(a, b Point) Point { return atX(a, b, x0) }},
		{func(p Point) bool { return p.X <= x1 }, func(a, b Point) Point { return atX(a, b, x1) }},
		{func(p Point) bool { return p.Y >= y0 }, func(a, b Point) Point { return atY(a, b, y0) }},
		{func(p Point) bool { return p.Y <= y1 }, func(a, b Point) Point { return atY(a, b, y1) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			return nil
		}
		out := make([]Point, 0, len(poly)+4)
		prev := poly[len(poly)-1]
		for _, cur := range poly {
			switch curIn, prevIn := e.inside(cur), e.inside(prev); {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, e.cross(prev, cur), cur)
			case prevIn:
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
		poly = out
	}
	return poly
}

// atX returns the point of segment ab with the given x. The caller
// guarantees a and b lie on opposite sides of x.
func atX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Point{X: a.X + t*(b.X-a.X), Y: y}
}

func (s *ImageSurface) paint(c color.Color) {
	if c == nil {
		c = color.Black
	}
	s.ras.DrawOp = draw.Over
	s.ras.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}
