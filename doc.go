// Package turtle implements a stateful 2D turtle-graphics engine.
//
// # Overview
//
// A Turtle is a cursor with a position, a heading, a pen and a color. Moving
// it with the pen down accumulates vector path segments; Stroke renders all
// of them onto a surface.Surface. Each segment keeps the color and line
// width it had when it was drawn, so disjoint strokes can be styled
// independently.
//
// # Quick Start
//
//	s := surface.NewImageSurface(400, 400)
//	t, err := turtle.New(s)
//	if err != nil {
//	    return err
//	}
//
//	t.SetColorString("#99df66").
//	    Forward(100).
//	    Left(90).
//	    Circle(50).
//	    Stroke()
//
//	img := s.Snapshot()
//
// # Coordinate System
//
// Logical coordinates are centered: (0,0) maps to the middle of the surface
// unless the origin is moved with SetOrigin. As on the surface:
//   - X increases right
//   - Y increases down
//   - Heading is in radians, 0 points right, Right turns increase it
//
// The heading is an accumulator and is never wrapped into [0, 2π).
//
// # Segments
//
// A new segment is opened at construction and on every pen up→down
// transition. SetColor and SetLineWidth restyle only the current segment.
// Segments are addressed by SegmentID, an index into the segment list; the
// current segment is always the last one.
//
// # Command Names
//
// Exec dispatches named commands through one alias table, so the short
// forms known from other turtle dialects (fd, bk, lt, rt, pu, pd, seth,
// goto, ...) resolve to the same operation as their long names.
//
// # Concurrency
//
// A Turtle is not safe for concurrent use. It is meant to be driven from a
// single goroutine, typically an animation loop such as the anim package
// provides; share it across goroutines only with external synchronization.
package turtle
