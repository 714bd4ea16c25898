// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package anim

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/gogpu/turtle"
)

// DefaultMaxSteps is the step cap used when none is configured.
const DefaultMaxSteps = 100000

// StepFunc draws frame i and reports whether another frame follows.
type StepFunc func(i int) bool

// FrameHook is called after every completed frame with its index.
type FrameHook func(i int)

// Result describes how a Run ended.
type Result struct {
	// Steps is the number of completed frames.
	Steps int

	// Bailed is true if the step cap stopped the run before the step
	// function reported completion.
	Bailed bool

	// Elapsed is the wall time spent in Run.
	Elapsed time.Duration
}

// Option configures Run.
type Option func(*config)

type config struct {
	maxSteps   int
	fps        float64
	autoStroke bool
	hooks      []FrameHook
}

// WithMaxSteps sets the step cap. Values <= 0 select DefaultMaxSteps.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// WithFPS paces frames to at most fps per second. 0 runs unpaced.
func WithFPS(fps float64) Option {
	return func(c *config) {
		c.fps = fps
	}
}

// WithAutoStroke strokes the turtle after every frame.
func WithAutoStroke() Option {
	return func(c *config) {
		c.autoStroke = true
	}
}

// WithFrameHook adds a hook called after every frame. Hooks run in the
// order they were added.
func WithFrameHook(h FrameHook) Option {
	return func(c *config) {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
}

// Run calls step for i = 0, 1, ... on the calling goroutine.
//
// It stops when step returns false, when ctx is done, or after the step
// cap. Reaching the cap is not an error: Result.Bailed reports it. If ctx
// ends the run, Run returns the frames completed so far and ctx.Err().
func Run(ctx context.Context, t *turtle.Turtle, step StepFunc, opts ...Option) (Result, error) {
	cfg := config{maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxSteps <= 0 {
		cfg.maxSteps = DefaultMaxSteps
	}

	var limiter *rate.Limiter
	if cfg.fps > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.fps), 1)
	}

	log := turtle.Logger()
	start := time.Now()
	var res Result

	for i := 0; ; i++ {
		if i >= cfg.maxSteps {
			res.Bailed = true
			res.Elapsed = time.Since(start)
			log.Warn("anim: bailed", "steps", res.Steps, "maxSteps", cfg.maxSteps)
			return res, nil
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return res.done(start), ctxErr(ctx, err)
			}
		} else if err := ctx.Err(); err != nil {
			return res.done(start), err
		}

		more := step(i)
		if cfg.autoStroke && t != nil {
			t.Stroke()
		}
		res.Steps++
		for _, h := range cfg.hooks {
			h(i)
		}

		if !more {
			res = res.done(start)
			log.Debug("anim: done", "steps", res.Steps, "elapsed", res.Elapsed)
			return res, nil
		}
	}
}

func (r Result) done(start time.Time) Result {
	r.Elapsed = time.Since(start)
	return r
}

// ctxErr prefers the context error over the limiter's own wording, which
// also covers a deadline that would expire before the next frame.
func ctxErr(ctx context.Context, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return cerr
	}
	if _, ok := ctx.Deadline(); ok {
		return context.DeadlineExceeded
	}
	return err
}
