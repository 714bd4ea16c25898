// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"
	"io"

	"github.com/gogpu/turtle/surface"
)

// Backend is the interface that all export backends must implement.
// Backends receive the recorded surface operations and translate them to
// their output format (raster pixels, SVG elements, PDF content streams).
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accumulate translations like a surface.Surface does
//  3. Treat ClearRect as a reset to its background
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	// This must be called before any drawing operations.
	Begin(width, height int) error

	// End finalizes the rendering and prepares the output.
	End() error

	// Translate moves the coordinate system by (dx, dy).
	Translate(dx, dy float64)

	// ClearRect resets a rectangle in the current coordinate system.
	ClearRect(x, y, w, h float64)

	// Stroke strokes the path with the given style.
	Stroke(path *surface.Path, style surface.StrokeStyle)

	// Fill fills the path with the given style.
	Fill(path *surface.Path, style surface.FillStyle)
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to the given writer.
	// This should only be called after End().
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to a file at the given path.
	// This should only be called after End().
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to rasterized pixels.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}
