package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	l.Debug("test message", "key", "value")
	l.Info("test message", "key", "value")
	l.Warn("test message", "key", "value")
	l.Error("test message", "key", "value")

	_, ok := l.With("key", "value").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, OrNop(nil))

	adapter := NewSlogAdapter(nil)
	assert.Same(t, adapter, OrNop(adapter))
}

func TestSlogAdapter(t *testing.T) {
	newAdapter := func(level slog.Level) (*SlogAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		return NewText(&buf, level), &buf
	}

	t.Run("nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("levels", func(t *testing.T) {
		adapter, buf := newAdapter(slog.LevelDebug)
		adapter.Debug("debug message", "foo", "bar")
		adapter.Info("info message")
		adapter.Warn("warn message")
		adapter.Error("error message")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG msg=\"debug message\" foo=bar")
		assert.Contains(t, out, "level=INFO msg=\"info message\"")
		assert.Contains(t, out, "level=WARN msg=\"warn message\"")
		assert.Contains(t, out, "level=ERROR msg=\"error message\"")
	})

	t.Run("level filtering", func(t *testing.T) {
		adapter, buf := newAdapter(slog.LevelWarn)
		adapter.Debug("hidden")
		adapter.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.False(t, adapter.Enabled(slog.LevelInfo))
		assert.True(t, adapter.Enabled(slog.LevelError))
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		adapter, buf := newAdapter(slog.LevelDebug)
		adapter.With("component", "static").Info("analyzed")
		assert.Contains(t, buf.String(), "component=static")
	})
}
