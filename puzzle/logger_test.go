package puzzle_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/plus3/blockfit/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := puzzle.Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, l.Enabled(context.Background(), level))
	}
}

func TestSessionLogging(t *testing.T) {
	var buf bytes.Buffer
	puzzle.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { puzzle.SetLogger(nil) })

	s := newSession(t, puzzle.Config{GridSize: 2, Deal: dealOnly(shapeMonomino, 0)})
	require.True(t, s.AttemptPlacement(0, puzzle.At(0, 0)))

	out := buf.String()
	assert.Contains(t, out, "session started")
	assert.Contains(t, out, "piece placed")
	assert.Contains(t, out, "new high score")
	assert.Contains(t, out, "grid=2")
}
