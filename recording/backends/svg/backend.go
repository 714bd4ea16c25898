// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg provides an SVG backend for the recording system, written
// with github.com/ajstarks/svgo.
//
// Strokes and fills become <path> elements. SVG cannot erase, so a clear
// covering the canvas drops earlier elements and smaller clears are
// painted with the background color.
//
//	import _ "github.com/gogpu/turtle/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/turtle/recording"
	"github.com/gogpu/turtle/surface"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an SVG document.
type Backend struct {
	recording.DisplayList
	background color.Color
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the color painted under the drawing and into
// partially cleared areas. Default: white. Pass nil for a transparent
// document; partial clears then paint white.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		b.background = c
	}
}

// NewBackend creates a new SVG backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: color.White}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	b.Reset(width, height)
	return nil
}

// End finalizes the document.
func (b *Backend) End() error {
	return nil
}

// WriteTo writes the SVG document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	width, height := b.Size()

	canvas := svgo.New(cw)
	canvas.Start(width, height)
	if b.background != nil {
		canvas.Rect(0, 0, width, height, "fill:"+hex(b.background)+opacity("fill", b.background))
	}

	clearColor := b.background
	if clearColor == nil {
		clearColor = color.White
	}
	for _, it := range b.Items() {
		switch it.Kind {
		case recording.ItemStroke:
			canvas.Path(it.Path.SVGData(it.DX, it.DY), strokeStyle(it.Stroke))
		case recording.ItemFill:
			canvas.Path(it.Path.SVGData(it.DX, it.DY), fillStyle(it.Fill))
		case recording.ItemClear:
			x0, y0 := int(math.Floor(it.X)), int(math.Floor(it.Y))
			x1, y1 := int(math.Ceil(it.X+it.W)), int(math.Ceil(it.Y+it.H))
			canvas.Rect(x0, y0, x1-x0, y1-y0, "fill:"+hex(clearColor))
		}
	}
	canvas.End()

	if cw.err != nil {
		return cw.n, fmt.Errorf("svg: write: %w", cw.err)
	}
	return cw.n, nil
}

// SaveToFile writes the SVG document to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func strokeStyle(s surface.StrokeStyle) string {
	c := s.Color
	if c == nil {
		c = color.Black
	}
	return "fill:none;stroke:" + hex(c) + opacity("stroke", c) +
		";stroke-width:" + formatFloat(s.Width) +
		";stroke-linecap:" + s.Cap.String() +
		";stroke-linejoin:" + s.Join.String() +
		";stroke-miterlimit:" + formatFloat(s.MiterLimit)
}

func fillStyle(s surface.FillStyle) string {
	c := s.Color
	if c == nil {
		c = color.Black
	}
	return "stroke:none;fill:" + hex(c) + opacity("fill", c) + ";fill-rule:" + s.Rule.String()
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// opacity returns the "-opacity" declaration for translucent colors.
func opacity(prop string, c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return ""
	}
	return ";" + prop + "-opacity:" + formatFloat(float64(n.A)/255)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// countingWriter counts bytes and remembers the first error, since svgo
// does not report write errors.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
