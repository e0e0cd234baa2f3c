// Package logging defines the structured logger used across restshape.
//
// Components default to [NopLogger] and accept a Logger through a
// WithLogger option. Attributes are alternating key-value pairs, as in
// log/slog:
//
//	logger.Debug("analyzed type", "type", "Lcom/example/Model;", "properties", 3)
//
// Any structured logger can be adapted by implementing the five methods of
// [Logger]; [SlogAdapter] covers log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// Logger is the interface that restshape uses for structured logging.
type Logger interface {
	// Debug reports analysis decisions: cache hits, skipped types,
	// name collisions.
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	// Warn reports inputs that were accepted with a fallback.
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)

	// With returns a Logger that adds attrs to every record.
	With(attrs ...any) Logger
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (n NopLogger) With(...any) Logger { return n }

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// SlogAdapter implements Logger over a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger. A nil logger means slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// NewText returns an adapter writing slog text records at or above level
// to w.
func NewText(w io.Writer, level slog.Level) *SlogAdapter {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogAdapter(slog.New(h))
}

func (s *SlogAdapter) log(level slog.Level, msg string, attrs []any) {
	s.logger.Log(context.Background(), level, msg, attrs...)
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.log(slog.LevelDebug, msg, attrs) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.log(slog.LevelInfo, msg, attrs) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.log(slog.LevelWarn, msg, attrs) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.log(slog.LevelError, msg, attrs) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

// Enabled reports whether records at level would be written.
func (s *SlogAdapter) Enabled(level slog.Level) bool {
	return s.logger.Enabled(context.Background(), level)
}

var (
	_ Logger = NopLogger{}
	_ Logger = (*SlogAdapter)(nil)
)
