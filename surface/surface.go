// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image"

// Surface is the rendering target a turtle draws into.
//
// Implementations keep a current translation that is applied to every
// path coordinate and to ClearRect. Paths passed to Stroke and Fill are
// not modified or retained beyond the call unless the implementation
// documents otherwise.
//
// Surfaces are NOT thread-safe. Each surface should be owned by a single
// turtle, or external synchronization must be used.
type Surface interface {
	// Width returns the physical surface width in pixels.
	Width() int

	// Height returns the physical surface height in pixels.
	Height() int

	// Translate moves the coordinate system by (dx, dy).
	// Translations accumulate.
	Translate(dx, dy float64)

	// ClearRect resets the given rectangle to transparent.
	// The rectangle is in the current (translated) coordinate system.
	ClearRect(x, y, w, h float64)

	// Stroke strokes the given path using the specified style.
	Stroke(path *Path, style StrokeStyle)

	// Fill fills the given path using the specified style.
	Fill(path *Path, style FillStyle)
}

// ClosableSurface is an optional interface for surfaces that hold
// resources and can become unusable.
type ClosableSurface interface {
	Surface

	// Close releases all resources associated with the surface.
	// Close is idempotent.
	Close() error

	// Closed reports whether Close has been called.
	Closed() bool
}

// ResizableSurface is an optional interface for surfaces that support resizing.
type ResizableSurface interface {
	Surface

	// Resize changes the surface dimensions.
	// Existing content is discarded, the translation is kept.
	Resize(width, height int) error
}

// SnapshotSurface is an optional interface for surfaces with pixel readback.
type SnapshotSurface interface {
	Surface

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA
}

// Usable reports whether s can be drawn into: it must be non-nil and,
// if it is a ClosableSurface, not closed.
func Usable(s Surface) bool {
	if s == nil {
		return false
	}
	if c, ok := s.(ClosableSurface); ok && c.Closed() {
		return false
	}
	return true
}
