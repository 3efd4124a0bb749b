package logger

import (
	"bytes"
	"context"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("Should return logger from context when present", func(t *testing.T) {
		expected := NewLogger(TestConfig())
		ctx := ContextWithLogger(t.Context(), expected)
		assert.Equal(t, expected, FromContext(ctx))
	})
	t.Run("Should return default logger when no logger in context", func(t *testing.T) {
		l := FromContext(t.Context())
		require.NotNil(t, l)
	})
	t.Run("Should return default logger when wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(t.Context(), LoggerCtxKey, "not a logger")
		l := FromContext(ctx)
		require.NotNil(t, l)
	})
}

func TestLogLevel_ToCharmlogLevel(t *testing.T) {
	t.Run("Should map levels and default to info", func(t *testing.T) {
		cases := map[LogLevel]charmlog.Level{
			DebugLevel: charmlog.DebugLevel,
			InfoLevel:  charmlog.InfoLevel,
			WarnLevel:  charmlog.WarnLevel,
			ErrorLevel: charmlog.ErrorLevel,
			NoLevel:    charmlog.InfoLevel,
		}
		for level, want := range cases {
			assert.Equal(t, want, level.ToCharmlogLevel())
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Should write structured output to the configured writer", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: DebugLevel, Output: &buf, TimeFormat: "15:04:05"})
		l.Info("component loaded", "component", "trainer")
		out := buf.String()
		assert.Contains(t, out, "component loaded")
		assert.Contains(t, out, "trainer")
	})
	t.Run("Should suppress entries below the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&Config{Level: ErrorLevel, Output: &buf, TimeFormat: "15:04:05"})
		l.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}
