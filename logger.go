package ggplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// callers never pay for building attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger]
)

func init() { active.Store(silent) }

// SetLogger routes diagnostics from ggplot and its sub-packages to l.
// Nothing is logged until it is called; nil switches logging off again.
// It may be called at any time from any goroutine.
//
// Levels in use:
//   - Debug: degenerate strokes and backend lifecycle
//   - Warn: drawing calls that paint nothing
//   - Error: failures swallowed by [Viewer.Render]
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return active.Load() }
