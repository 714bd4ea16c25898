// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a PNG backend for the recording system.
// It replays recordings into a surface.ImageSurface.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/turtle/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("png")
//	rec.Playback(backend)
//	backend.(recording.FileBackend).SaveToFile("output.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/turtle/recording"
	"github.com/gogpu/turtle/surface"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotStarted is returned when output is requested before Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to a pixel image.
type Backend struct {
	s          *surface.ImageSurface
	background color.Color
	target     *image.RGBA

	// scratch holds the rectangle repainted by ClearRect.
	scratch *surface.Path
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground paints the canvas and every cleared area with c.
// Without it cleared pixels stay transparent.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// WithImage renders into img instead of a freshly allocated image when
// img matches the size passed to Begin.
func WithImage(img *image.RGBA) Option {
	return func(b *Backend) {
		b.target = img
	}
}

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{scratch: surface.NewPath()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if b.target != nil && b.target.Bounds() == image.Rect(0, 0, width, height) {
		b.s = surface.NewImageSurfaceFromImage(b.target)
	} else {
		b.s = surface.NewImageSurface(width, height)
	}
	if b.background != nil {
		b.s.Clear(b.background)
	}
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	return nil
}

// Translate moves the coordinate system.
func (b *Backend) Translate(dx, dy float64) {
	b.s.Translate(dx, dy)
}

// ClearRect resets a rectangle to the background.
func (b *Backend) ClearRect(x, y, w, h float64) {
	b.s.ClearRect(x, y, w, h)
	if b.background != nil {
		b.scratch.Clear()
		b.scratch.Rectangle(x, y, w, h)
		b.s.Fill(b.scratch, surface.DefaultFillStyle().WithColor(b.background))
	}
}

// Stroke strokes the path.
func (b *Backend) Stroke(path *surface.Path, style surface.StrokeStyle) {
	b.s.Stroke(path, style)
}

// Fill fills the path.
func (b *Backend) Fill(path *surface.Path, style surface.FillStyle) {
	b.s.Fill(path, style)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() *image.RGBA {
	if b.s == nil {
		return nil
	}
	return b.s.Image()
}

// WriteTo encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.s == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.s.Image()); err != nil {
		return cw.n, fmt.Errorf("raster: encode png: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the PNG to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
