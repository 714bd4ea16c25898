// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pdf provides a PDF backend for the recording system, written
// with github.com/jung-kurt/gofpdf.
//
// The page has the canvas size, measured in points, so one surface pixel
// maps to one point. The y axis points down as on the surface.
//
//	import _ "github.com/gogpu/turtle/recording/backends/pdf"
//
//	backend, _ := recording.NewBackend("pdf")
package pdf

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/turtle/recording"
	"github.com/gogpu/turtle/surface"
)

func init() {
	recording.Register("pdf", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to a single-page PDF document.
type Backend struct {
	recording.DisplayList
	background color.Color
	title      string
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground sets the page color and the color of partially cleared
// areas. Default: white.
func WithBackground(c color.Color) Option {
	return func(b *Backend) {
		if c == nil {
			c = color.White
		}
		b.background = c
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(b *Backend) {
		b.title = title
	}
}

// NewBackend creates a new PDF backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{background: color.White, title: "turtle"}
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

// WriteTo renders the display list into a PDF document and writes it.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	doc := b.render()
	cw := &countingWriter{w: w}
	if err := doc.Output(cw); err != nil {
		return cw.n, fmt.Errorf("pdf: %w", err)
	}
	return cw.n, nil
}

// SaveToFile writes the PDF document to path.
func (b *Backend) SaveToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	if _, err := b.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (b *Backend) render() *gofpdf.Fpdf {
	width, height := b.Size()
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(max(width, 1)), Ht: float64(max(height, 1))},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(b.title, true)
	doc.SetCreator("github.com/gogpu/turtle", true)
	doc.AddPage()

	b.rect(doc, 0, 0, float64(width), float64(height))
	for _, it := range b.Items() {
		switch it.Kind {
		case recording.ItemStroke:
			setColor(doc.SetDrawColor, doc, it.Stroke.Color)
			doc.SetLineWidth(it.Stroke.Width)
			doc.SetLineCapStyle(it.Stroke.Cap.String())
			doc.SetLineJoinStyle(it.Stroke.Join.String())
			tracePath(doc, it.Path, it.DX, it.DY)
			doc.DrawPath("D")
		case recording.ItemFill:
			setColor(doc.SetFillColor, doc, it.Fill.Color)
			tracePath(doc, it.Path, it.DX, it.DY)
			doc.DrawPath("F")
		case recording.ItemClear:
			b.rect(doc, it.X, it.Y, it.W, it.H)
		}
	}
	doc.SetAlpha(1, "Normal")
	return doc
}

func (b *Backend) rect(doc *gofpdf.Fpdf, x, y, w, h float64) {
	setColor(doc.SetFillColor, doc, b.background)
	doc.Rect(x, y, w, h, "F")
}

// setColor applies c through set (SetDrawColor or SetFillColor) and the
// document alpha.
func setColor(set func(r, g, b int), doc *gofpdf.Fpdf, c color.Color) {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	set(int(n.R), int(n.G), int(n.B))
	doc.SetAlpha(float64(n.A)/255, "Normal")
}

func tracePath(doc *gofpdf.Fpdf, p *surface.Path, dx, dy float64) {
	pts := p.Points()
	pi := 0
	for _, v := range p.Verbs() {
		switch v {
		case surface.VerbMoveTo:
			doc.MoveTo(pts[pi].X+dx, pts[pi].Y+dy)
			pi++
		case surface.VerbLineTo:
			doc.LineTo(pts[pi].X+dx, pts[pi].Y+dy)
			pi++
		case surface.VerbClose:
			doc.ClosePath()
		}
	}
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
