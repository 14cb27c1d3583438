// Package log builds the slog logger used by the command-line tools.
//
// Options come from flags or from the environment:
//   - GGPLOT_LOG_LEVEL=debug|info|warn|error
//   - GGPLOT_LOG_FORMAT=text|json
//   - GGPLOT_LOG_FILE=<path> (adds a rotating JSON log file)
//   - GGPLOT_LOG_SOURCE=true|false
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger construction.
// The zero value logs at INFO in text format to the console only.
type Options struct {
	Level     string
	Format    string // "text" or "json"
	AddSource bool
	File      string
}

// FromEnv reads Options from GGPLOT_LOG_* variables.
func FromEnv() Options {
	return Options{
		Level:     os.Getenv("GGPLOT_LOG_LEVEL"),
		Format:    os.Getenv("GGPLOT_LOG_FORMAT"),
		AddSource: strings.EqualFold(os.Getenv("GGPLOT_LOG_SOURCE"), "true"),
		File:      os.Getenv("GGPLOT_LOG_FILE"),
	}
}

// Merge returns o with the empty fields filled from fallback.
func (o Options) Merge(fallback Options) Options {
	if o.Level == "" {
		o.Level = fallback.Level
	}
	if o.Format == "" {
		o.Format = fallback.Format
	}
	if o.File == "" {
		o.File = fallback.File
	}
	o.AddSource = o.AddSource || fallback.AddSource
	return o
}

// New builds a logger writing to console and, if opts.File is set, to a
// rotating JSON file. The returned close function flushes and closes the
// file and is never nil.
func New(opts Options, console io.Writer) (*slog.Logger, func() error) {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level), AddSource: opts.AddSource}

	var handlers []slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		handlers = append(handlers, slog.NewJSONHandler(console, hopts))
	default:
		handlers = append(handlers, slog.NewTextHandler(console, hopts))
	}

	closeFn := func() error { return nil }
	if path := strings.TrimSpace(opts.File); path != "" {
		w := &lj.Logger{Filename: path, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		handlers = append(handlers, slog.NewJSONHandler(w, hopts))
		closeFn = w.Close
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closeFn
	}
	return slog.New(&multi{hs: handlers}), closeFn
}

// ParseLevel converts a level name to a slog.Level. Unknown names map to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multi fans records out to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
