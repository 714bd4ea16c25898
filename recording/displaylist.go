// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"math"

	"github.com/gogpu/turtle/surface"
)

// ItemKind identifies a DisplayList entry.
type ItemKind uint8

const (
	ItemStroke ItemKind = iota // Stroke a path
	ItemFill                   // Fill a path
	ItemClear                  // Paint a rectangle with the background
)

// Item is a drawing operation with its translation resolved.
type Item struct {
	Kind ItemKind

	// Path and its offset (DX, DY) for ItemStroke and ItemFill.
	Path   *surface.Path
	DX, DY float64

	Stroke surface.StrokeStyle
	Fill   surface.FillStyle

	// Rect in absolute coordinates for ItemClear, normalized to W, H >= 0.
	X, Y, W, H float64
}

// DisplayList accumulates backend calls for vector formats that cannot
// erase what they have already emitted. A clear that covers the whole
// canvas empties the list; smaller clears become background rectangles.
//
// Backends embed a DisplayList, call Reset from Begin and walk Items when
// writing output.
type DisplayList struct {
	width, height int
	tx, ty        float64
	items         []Item
}

// Reset empties the list for a canvas of the given size.
func (d *DisplayList) Reset(width, height int) {
	d.width, d.height = width, height
	d.tx, d.ty = 0, 0
	d.items = d.items[:0]
}

// Size returns the canvas size passed to Reset.
func (d *DisplayList) Size() (width, height int) {
	return d.width, d.height
}

// Translate moves the coordinate system by (dx, dy).
func (d *DisplayList) Translate(dx, dy float64) {
	d.tx += dx
	d.ty += dy
}

// ClearRect records a clear in the current coordinate system.
func (d *DisplayList) ClearRect(x, y, w, h float64) {
	x0, y0 := x+d.tx, y+d.ty
	x1, y1 := x0+w, y0+h
	minX, minY := math.Min(x0, x1), math.Min(y0, y1)
	maxX, maxY := math.Max(x0, x1), math.Max(y0, y1)

	if minX <= 0 && minY <= 0 && maxX >= float64(d.width) && maxY >= float64(d.height) {
		d.items = d.items[:0]
		return
	}
	d.items = append(d.items, Item{
		Kind: ItemClear,
		X:    minX, Y: minY, W: maxX - minX, H: maxY - minY,
	})
}

// Stroke records a stroke. The path is cloned.
func (d *DisplayList) Stroke(path *surface.Path, style surface.StrokeStyle) {
	if path == nil || path.IsEmpty() {
		return
	}
	d.items = append(d.items, Item{Kind: ItemStroke, Path: path.Clone(), DX: d.tx, DY: d.ty, Stroke: style})
}

// Fill records a fill. The path is cloned.
func (d *DisplayList) Fill(path *surface.Path, style surface.FillStyle) {
	if path == nil || path.IsEmpty() {
		return
	}
	d.items = append(d.items, Item{Kind: ItemFill, Path: path.Clone(), DX: d.tx, DY: d.ty, Fill: style})
}

// Items returns the recorded items. The slice must not be modified.
func (d *DisplayList) Items() []Item {
	return d.items
}
