// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

// TestSurfaceInterface verifies the Surface interface contract.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*ImageSurface)(nil)
}

func TestNewImageSurfaceClampsSize(t *testing.T) {
	s := NewImageSurface(0, -5)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}

func TestImageSurfaceStroke(t *testing.T) {
	s := NewImageSurface(100, 100)
	defer s.Close()

	red := color.RGBA{255, 0, 0, 255}
	p := NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)
	s.Stroke(p, DefaultStrokeStyle().WithWidth(4).WithColor(red))

	img := s.Image()
	if got := img.RGBAAt(50, 50); got != red {
		t.Errorf("pixel on line = %v, want %v", got, red)
	}
	if got := img.RGBAAt(50, 40); got.A != 0 {
		t.Errorf("pixel off line = %v, want transparent", got)
	}
	if got := img.RGBAAt(5, 50); got.A != 0 {
		t.Errorf("pixel before butt cap = %v, want transparent", got)
	}
}

func TestImageSurfaceStrokeCornerCoverage(t *testing.T) {
	s := NewImageSurface(100, 100)
	blue := color.RGBA{0, 0, 255, 255}

	p := NewPath()
	p.MoveTo(10, 10)
	p.LineTo(50, 10)
	p.LineTo(50, 50)
	s.Stroke(p, DefaultStrokeStyle().WithWidth(6).WithColor(blue))

	if got := s.Image().RGBAAt(50, 10); got != blue {
		t.Errorf("corner pixel = %v, want %v", got, blue)
	}
}

func TestImageSurfaceFill(t *testing.T) {
	s := NewImageSurface(40, 40)
	green := color.RGBA{0, 255, 0, 255}

	p := NewPath()
	p.Rectangle(10, 10, 20, 20)
	s.Fill(p, DefaultFillStyle().WithColor(green))

	if got := s.Image().RGBAAt(20, 20); got != green {
		t.Errorf("inside pixel = %v, want %v", got, green)
	}
	if got := s.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestImageSurfaceTranslate(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.Translate(50, 50)
	s.Translate(-10, 0)

	if dx, dy := s.Translation(); dx != 40 || dy != 50 {
		t.Fatalf("Translation() = (%v, %v), want (40, 50)", dx, dy)
	}

	p := NewPath()
	p.Rectangle(0, 0, 4, 4)
	s.Fill(p, DefaultFillStyle())

	if got := s.Image().RGBAAt(42, 52); got.A != 255 {
		t.Errorf("translated fill missing at (42,52): %v", got)
	}
	if got := s.Image().RGBAAt(2, 2); got.A != 0 {
		t.Errorf("untranslated position painted: %v", got)
	}
}

func TestImageSurfaceClearRect(t *testing.T) {
	s := NewImageSurface(20, 20)
	s.Clear(color.White)
	s.Translate(10, 10)
	s.ClearRect(-10, -10, 10, 20)

	img := s.Image()
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("cleared pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(15, 5); got.A != 255 {
		t.Errorf("kept pixel = %v, want white", got)
	}

	// Negative sizes describe the same rectangle from the other corner.
	s.ClearRect(10, 10, -10, -20)
	if got := img.RGBAAt(15, 5); got.A != 0 {
		t.Errorf("pixel after negative-size clear = %v, want transparent", got)
	}
}

func TestImageSurfaceResize(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Translate(5, 5)
	if err := s.Resize(30, 20); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", s.Width(), s.Height())
	}
	if dx, dy := s.Translation(); dx != 5 || dy != 5 {
		t.Errorf("Resize changed translation to (%v, %v)", dx, dy)
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := NewImageSurface(10, 10)
	if !Usable(s) {
		t.Fatal("new surface should be usable")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if Usable(s) {
		t.Error("closed surface should not be usable")
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot after Close should be nil")
	}
	if err := s.Resize(5, 5); !errors.Is(err, ErrClosed) {
		t.Errorf("Resize after Close = %v, want ErrClosed", err)
	}

	// Drawing after close is a no-op.
	p := NewPath()
	p.Rectangle(0, 0, 5, 5)
	s.Fill(p, DefaultFillStyle())
	s.ClearRect(0, 0, 5, 5)
}

func TestUsableNil(t *testing.T) {
	if Usable(nil) {
		t.Error("nil surface should not be usable")
	}
}

func TestImageSurfaceNonFiniteCoordinates(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	tests := []struct {
		name string
		x, y float64
	}{
		{"huge", 1e300, 0},
		{"huge negative", -1e300, 1e300},
		{"beyond float32", 1e39, -1e39},
		{"plus inf", inf, 0},
		{"minus inf", -inf, -inf},
		{"nan", nan, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface(50, 50)
			s.Translate(25, 25)

			p := NewPath()
			p.MoveTo(0, 0)
			p.LineTo(tt.x, tt.y)
			p.LineTo(0, 10)
			for _, style := range []StrokeStyle{
				DefaultStrokeStyle(),
				DefaultStrokeStyle().WithWidth(3).WithCap(LineCapRound).WithJoin(LineJoinRound),
				DefaultStrokeStyle().WithWidth(3).WithCap(LineCapSquare).WithJoin(LineJoinBevel),
			} {
				s.Stroke(p, style)
			}
			s.Fill(p, DefaultFillStyle())
		})
	}
}

func TestImageSurfaceHugeLineStaysVisible(t *testing.T) {
	// A line running far off the surface still paints its visible part.
	s := NewImageSurface(50, 50)
	s.Translate(25, 25)

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1e300, 0)
	s.Stroke(p, DefaultStrokeStyle().WithWidth(4))

	img := s.Image()
	for _, x := range []int{26, 40, 49} {
		if got := img.RGBAAt(x, 25); got.A != 255 {
			t.Errorf("pixel (%d,25) = %v, want opaque", x, got)
		}
	}
	if got := img.RGBAAt(10, 25); got.A != 0 {
		t.Errorf("pixel behind the start = %v, want transparent", got)
	}
}

func TestImageSurfaceHugeFillCoversSurface(t *testing.T) {
	s := NewImageSurface(20, 20)
	p := NewPath()
	p.Rectangle(-1e300, -1e300, 2e300, 2e300)
	s.Fill(p, DefaultFillStyle())

	for _, pt := range []image.Point{{0, 0}, {10, 10}, {19, 19}} {
		if got := s.Image().RGBAAt(pt.X, pt.Y); got.A != 255 {
			t.Errorf("pixel %v = %v, want opaque", pt, got)
		}
	}
}

func TestImageSurfaceStrokeClosedRing(t *testing.T) {
	s := NewImageSurface(40, 40)
	p := NewPath()
	p.Rectangle(10, 10, 20, 20)
	s.Stroke(p, DefaultStrokeStyle().WithWidth(4))

	img := s.Image()
	if got := img.RGBAAt(20, 20); got.A != 0 {
		t.Errorf("ring interior = %v, want transparent", got)
	}
	for _, pt := range []image.Point{{20, 10}, {10, 20}, {30, 30}, {9, 9}} {
		if got := img.RGBAAt(pt.X, pt.Y); got.A != 255 {
			t.Errorf("ring pixel %v = %v, want opaque", pt, got)
		}
	}
}

func TestClipPolygon(t *testing.T) {
	tests := []struct {
		name string
		poly []Point
		area float64
	}{
		{"inside", []Point{{1, 1}, {3, 1}, {3, 3}, {1, 3}}, 4},
		{"covering", []Point{{-100, -100}, {100, -100}, {100, 100}, {-100, 100}}, 100},
		{"half out", []Point{{5, 0}, {20, 0}, {20, 10}, {5, 10}}, 50},
		{"outside", []Point{{20, 20}, {30, 20}, {30, 30}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clipPolygon(tt.poly, 0, 0, 10, 10)
			var a float64
			if len(got) >= 3 {
				a = signedArea(got)
			}
			if math.Abs(a-tt.area) > 1e-9 {
				t.Errorf("clipped area = %v, want %v", a, tt.area)
			}
		})
	}
}

func TestNewImageSurfaceFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	s := NewImageSurfaceFromImage(img)
	if s.Width() != 8 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, want 8x6", s.Width(), s.Height())
	}

	p := NewPath()
	p.Rectangle(0, 0, 8, 6)
	s.Fill(p, DefaultFillStyle())
	if got := img.RGBAAt(4, 3); got.A != 255 {
		t.Errorf("fill did not reach the backing image: %v", got)
	}

	tests := []struct {
		name string
		img  *image.RGBA
		w, h int
	}{
		{"nil", nil, 1, 1},
		{"offset", image.NewRGBA(image.Rect(5, 5, 9, 8)), 4, 3},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0)), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurfaceFromImage(tt.img)
			if s.Width() != tt.w || s.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.w, tt.h)
			}
			if tt.img != nil && s.Image() == tt.img {
				t.Error("unusable image should not back the surface")
			}
		})
	}
}

func TestFillStyleWith(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	base := DefaultFillStyle()
	got := base.WithColor(red).WithRule(FillRuleEvenOdd)

	if got.Rule != FillRuleEvenOdd || got.Color != red {
		t.Errorf("got %+v", got)
	}
	if base.Rule != FillRuleNonZero {
		t.Error("WithRule modified the receiver")
	}
}
