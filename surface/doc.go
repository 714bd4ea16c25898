// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawable backend a turtle renders into.
//
// A Surface is deliberately small: it can translate its coordinate system,
// clear a rectangle, stroke a path and fill a path. Everything a turtle
// draws is expressed through these four operations, which keeps backends
// easy to write and easy to fake in tests.
//
// # Surface Types
//
//   - ImageSurface: CPU rendering to *image.RGBA using golang.org/x/image/vector
//   - recording.Recorder: captures commands for later export (PNG, SVG, PDF)
//
// # Coordinate System
//
// Surfaces use the same conventions as HTML Canvas:
//   - Origin (0,0) at top-left before any translation
//   - X increases right
//   - Y increases down
//   - Translate accumulates, ClearRect is affected by the current translation
//
// # Usage
//
//	s := surface.NewImageSurface(400, 400)
//	defer s.Close()
//
//	p := surface.NewPath()
//	p.MoveTo(10, 10)
//	p.LineTo(390, 390)
//
//	s.Stroke(p, surface.DefaultStrokeStyle().WithWidth(3))
//	img := s.Snapshot()
//
// Surfaces are NOT thread-safe.
package surface
