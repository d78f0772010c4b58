package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContextOrDefault(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns logger from context", func(t *testing.T) {
		requestLogger := discard.With("trace_id", "abc123")
		ctx := WithLogger(context.Background(), requestLogger)

		got := FromContextOrDefault(ctx, discard)
		assert.Same(t, requestLogger, got)
	})

	t.Run("falls back to provided default", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), discard)
		assert.Same(t, discard, got)
	})

	t.Run("falls back to slog default when both missing", func(t *testing.T) {
		got := FromContextOrDefault(context.Background(), nil)
		assert.Same(t, slog.Default(), got)
	})
}
