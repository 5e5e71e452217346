// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-pass-share tools.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain call-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output formats accepted by [Options.Format].
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options configures [NewCLILogger].
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty or unknown
	// values select info.
	Level string

	// Format is [FormatJSON] (default) or [FormatConsole].
	Format string

	// Out is the destination; nil means os.Stderr.
	Out io.Writer
}

// setupGlobals lets each logger's own level decide what is emitted.
func setupGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// NewCLILogger constructs the logger of a command-line tool for the given
// role label (e.g. "share-import").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     tools;
//   - a timestamp field added to every log entry;
//   - the level and format from opts.
//
// It writes to stderr by default, so stdout stays free for the tool's own
// report.
func NewCLILogger(role string, opts Options) *Logger {
	setupGlobals()

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(opts.Format, FormatConsole) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: opts.Out != nil}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// ForRun returns a child logger tagged with a "run_id" field and a copy of
// ctx carrying it.
func (l *Logger) ForRun(ctx context.Context, runID string) (context.Context, *Logger) {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})
	return child.WithContext(ctx), child
}

// WithContext returns a copy of ctx carrying l, retrievable with
// [FromContext].
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
