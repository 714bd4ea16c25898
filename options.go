package turtle

import "github.com/gogpu/turtle/surface"

// Option configures a Turtle during creation.
//
// Example:
//
//	t, err := turtle.New(s,
//	    turtle.WithColor(turtle.Hex("#99df66")),
//	    turtle.WithLineWidth(2),
//	)
type Option func(*options)

// options holds optional configuration for Turtle creation.
type options struct {
	color      Color
	lineWidth  float64
	origin     surface.Point
	size       *surface.Point
	lineCap    surface.LineCap
	lineJoin   surface.LineJoin
	miterLimit float64
}

// defaultOptions returns the defaults: black, 1px, centered origin,
// canvas-style butt caps and miter joins.
func defaultOptions() options {
	def := surface.DefaultStrokeStyle()
	return options{
		color:      Black,
		lineWidth:  1,
		lineCap:    def.Cap,
		lineJoin:   def.Join,
		miterLimit: def.MiterLimit,
	}
}

// WithColor sets the initial pen color.
func WithColor(c Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithLineWidth sets the initial line width.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// WithOrigin sets the initial normalized origin. See Turtle.SetOrigin.
func WithOrigin(ox, oy float64) Option {
	return func(o *options) {
		o.origin = surface.Pt(ox, oy)
	}
}

// WithSize overrides the logical canvas size, which otherwise equals the
// surface size at construction.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.size = &surface.Point{X: width, Y: height}
	}
}

// WithLineCap sets the cap used when stroking segments.
func WithLineCap(c surface.LineCap) Option {
	return func(o *options) {
		o.lineCap = c
	}
}

// WithLineJoin sets the join used when stroking segments.
func WithLineJoin(j surface.LineJoin) Option {
	return func(o *options) {
		o.lineJoin = j
	}
}
