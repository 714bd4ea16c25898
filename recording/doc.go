// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures surface operations for export.
//
// A Recorder is a surface.Surface that stores typed commands instead of
// rasterizing pixels. Finish turns it into an immutable Recording that can
// be replayed to any export Backend (PNG, SVG, PDF).
//
// Commands are typed structs rather than a binary stream so recordings can
// be inspected in tests:
//   - TranslateCommand: coordinate system translation
//   - ClearRectCommand: reset a rectangle to the background
//   - StrokeCommand: stroke a path with a style
//   - FillCommand: fill a path with a style
//
// # Example
//
//	rec := recording.NewRecorder(400, 400)
//	t, _ := turtle.New(rec)
//	t.Forward(100).Stroke()
//
//	b, _ := recording.NewBackend("svg")
//	if err := rec.Finish().Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.FileBackend).SaveToFile("out.svg")
//
// Backends register themselves in init(), following the database/sql
// driver pattern. Import a backend package for its side effect:
//
//	import _ "github.com/gogpu/turtle/recording/backends/pdf"
package recording
