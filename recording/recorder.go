// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"math"

	"github.com/gogpu/turtle/surface"
)

// Recorder captures surface operations as commands.
// It implements surface.Surface, so a turtle can draw into it directly,
// and produces an immutable Recording via Finish.
//
// Two rewrites keep the command stream short without changing what it
// renders:
//   - consecutive translations are merged into one (and dropped when they
//     cancel out), so a re-anchor never shows up as two steps
//   - a clear covering the whole surface discards every earlier drawing
//     command, since none of their pixels can survive it
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// tx, ty is the accumulated translation
	tx, ty float64

	compact bool
}

// Ensure Recorder implements the surface interfaces.
var (
	_ surface.Surface          = (*Recorder)(nil)
	_ surface.ResizableSurface = (*Recorder)(nil)
)

// RecorderOption configures a Recorder during creation.
type RecorderOption func(*Recorder)

// WithoutCompaction keeps every command exactly as issued.
func WithoutCompaction() RecorderOption {
	return func(r *Recorder) {
		r.compact = false
	}
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		compact:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the recording width.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the recording height.
func (r *Recorder) Height() int {
	return r.height
}

// Translation returns the accumulated translation.
func (r *Recorder) Translation() (dx, dy float64) {
	return r.tx, r.ty
}

// Translate records a translation.
func (r *Recorder) Translate(dx, dy float64) {
	r.tx += dx
	r.ty += dy
	if !r.compact {
		r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
		return
	}

	if n := len(r.commands); n > 0 {
		if last, ok := r.commands[n-1].(TranslateCommand); ok {
			last.DX += dx
			last.DY += dy
			if last.DX == 0 && last.DY == 0 {
				r.commands = r.commands[:n-1]
			} else {
				r.commands[n-1] = last
			}
			return
		}
	}
	if dx != 0 || dy != 0 {
		r.commands = append(r.commands, TranslateCommand{DX: dx, DY: dy})
	}
}

// ClearRect records a clear.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	if r.compact && r.coversSurface(x, y, w, h) {
		// Everything drawn so far is gone; restart from the current
		// translation.
		r.commands = r.commands[:0]
		if r.tx != 0 || r.ty != 0 {
			r.commands = append(r.commands, TranslateCommand{DX: r.tx, DY: r.ty})
		}
	}
	r.commands = append(r.commands, ClearRectCommand{X: x, Y: y, W: w, H: h})
}

// Stroke records a stroke. The path is cloned.
func (r *Recorder) Stroke(path *surface.Path, style surface.StrokeStyle) {
	if path == nil {
		return
	}
	r.commands = append(r.commands, StrokeCommand{Path: path.Clone(), Style: style})
}

// Fill records a fill. The path is cloned.
func (r *Recorder) Fill(path *surface.Path, style surface.FillStyle) {
	if path == nil {
		return
	}
	r.commands = append(r.commands, FillCommand{Path: path.Clone(), Style: style})
}

// Resize changes the recording dimensions. Recorded commands are kept.
func (r *Recorder) Resize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all commands and the translation.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.tx, r.ty = 0, 0
}

// Finish returns an immutable Recording of the commands recorded so far.
// The Recorder stays usable; later commands do not affect the Recording.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.Commands(),
	}
}

func (r *Recorder) coversSurface(x, y, w, h float64) bool {
	x0, y0 := x+r.tx, y+r.ty
	x1, y1 := x0+w, y0+h
	return math.Min(x0, x1) <= 0 && math.Min(y0, y1) <= 0 &&
		math.Max(x0, x1) >= float64(r.width) && math.Max(y0, y1) >= float64(r.height)
}

// Recording is an immutable container for recorded commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays all commands to the backend, between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case TranslateCommand:
			backend.Translate(c.DX, c.DY)
		case ClearRectCommand:
			backend.ClearRect(c.X, c.Y, c.W, c.H)
		case StrokeCommand:
			backend.Stroke(c.Path, c.Style)
		case FillCommand:
			backend.Fill(c.Path, c.Style)
		}
	}

	return backend.End()
}
