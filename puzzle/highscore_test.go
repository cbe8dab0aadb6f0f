package puzzle_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfit/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := puzzle.NewMemoryStore()

	v, err := store.Load("highScore")
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, store.Save("highScore", 42))
	v, _ = store.Load("highScore")
	assert.Equal(t, 42, v)

	v, _ = store.Load("other")
	assert.Zero(t, v)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")
	store := puzzle.NewFileStore(path)
	assert.Equal(t, path, store.Path())

	v, err := store.Load("highScore")
	require.NoError(t, err, "missing file reads as empty")
	assert.Zero(t, v)

	require.NoError(t, store.Save("highScore", 120))
	require.NoError(t, store.Save("highScore10", 7))

	reopened := puzzle.NewFileStore(path)
	v, err = reopened.Load("highScore")
	require.NoError(t, err)
	assert.Equal(t, 120, v)
	v, _ = reopened.Load("highScore10")
	assert.Equal(t, 7, v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "highScore: 120")
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("highScore: [not, a, number"), 0o644))

	store := puzzle.NewFileStore(path)
	_, err := store.Load("highScore")
	assert.Error(t, err)
	assert.Error(t, store.Save("highScore", 1))
}

func TestSessionSurvivesBrokenStore(t *testing.T) {
	var buf bytes.Buffer
	puzzle.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { puzzle.SetLogger(nil) })

	path := filepath.Join(t.TempDir(), "scores.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	s := newSession(t, puzzle.Config{Store: puzzle.NewFileStore(path), Deal: dealOnly(shapeSquare, 0)})
	assert.Zero(t, s.Score().HighScore)

	require.True(t, s.AttemptPlacement(0, puzzle.At(0, 0)))
	assert.Equal(t, 4, s.Score().HighScore)

	assert.Contains(t, buf.String(), "load high score")
	assert.Contains(t, buf.String(), "save high score")
}
