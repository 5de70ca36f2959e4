package utils

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiLogHandler_FansOutToAllHandlers(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiLogHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	logger := slog.New(handler)
	logger.Info("pulled script", "name", "Weather")

	assert.Contains(t, a.String(), "pulled script")
	assert.Contains(t, b.String(), "pulled script")
	assert.Contains(t, a.String(), "name=Weather")
}

func TestMultiLogHandler_RespectsPerHandlerLevels(t *testing.T) {
	var terse, verbose bytes.Buffer
	handler := NewMultiLogHandler(
		slog.NewTextHandler(&terse, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	ctx := context.Background()
	assert.True(t, handler.Enabled(ctx, slog.LevelDebug))

	logger := slog.New(handler)
	logger.Debug("hash cache hit", "name", "Backup")

	assert.Empty(t, terse.String())
	assert.Contains(t, verbose.String(), "hash cache hit")
}

func TestMultiLogHandler_WithAttrsPropagates(t *testing.T) {
	var a, b bytes.Buffer
	handler := NewMultiLogHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(handler).With("cmd", "push")
	logger.Info("published", "name", "Weather")

	assert.Contains(t, a.String(), "cmd=push")
	assert.Contains(t, b.String(), "cmd=push")
}
