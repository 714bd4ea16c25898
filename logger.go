package turtle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so a turtle that
// nobody listens to never builds its log attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by every Turtle and by anim. An
// animation goroutine may log while another goroutine swaps it.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes turtle diagnostics to l. Turtles are silent until it
// is called, and SetLogger(nil) makes them silent again. It may be called
// while animations are running.
//
// Log levels used by turtle:
//   - [slog.LevelDebug]: segment opens, re-anchoring, animation progress
//   - [slog.LevelInfo]: surface binding
//   - [slog.LevelWarn]: ignored input (unparseable colors, bailed animations)
//
// Example:
//
//	turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one. The anim
// package logs through it too.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
