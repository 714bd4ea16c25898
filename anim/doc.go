// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package anim drives a turtle frame by frame.
//
// A drawing is a step function called with the frame index. It issues a
// bounded burst of turtle operations and reports whether there are more
// frames. Run calls it until it returns false, the context is cancelled or
// the step cap is reached.
//
// Example:
//
//	t.SetColor(turtle.Hex("#99df66"))
//	res, err := anim.Run(ctx, t, func(i int) bool {
//	    t.PenDown().Arc(float64(i), 90).PenUp()
//	    return i < 200
//	}, anim.WithFPS(60), anim.WithAutoStroke())
//
// Frames run on the calling goroutine, so the step function may use the
// turtle without synchronization.
package anim
