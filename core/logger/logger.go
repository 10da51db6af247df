// Package logger provides slog construction and typed attribute helpers
// for the routing core. Attribute helpers use the empty Attr pattern for
// nil safety, so call sites never need explicit nil checks.
package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level  slog.Level
	json   bool
	output io.Writer
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSON switches output to the JSON handler.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithOutput redirects log output; default is stderr.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// New builds a slog.Logger with text output to stderr at info level
// unless configured otherwise.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	if o.json {
		return slog.New(slog.NewJSONHandler(o.output, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(o.output, handlerOpts))
}

// Discard returns a logger that drops everything. Components that take an
// optional logger default to this.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
