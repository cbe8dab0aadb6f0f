package puzzle_test

import (
	"testing"

	"github.com/plus3/blockfit/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridSize(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"", 8, false},
		{"  ", 8, false},
		{"8", 8, false},
		{"10", 10, false},
		{" 12 ", 12, false},
		{"2", 2, false},
		{"256", 256, false},
		{"257", 0, true},
		{"100000", 0, true},
		{"1", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"eight", 0, true},
		{"8.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := puzzle.ParseGridSize(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := puzzle.ParseGridSize("1")
	assert.ErrorIs(t, err, puzzle.ErrGridTooSmall)
	_, err = puzzle.ParseGridSize("100000")
	assert.ErrorIs(t, err, puzzle.ErrGridTooLarge)
}

func TestDefaultConfig(t *testing.T) {
	cfg := puzzle.DefaultConfig()
	assert.Equal(t, 8, cfg.GridSize)
	assert.Equal(t, puzzle.DefaultPaletteName, cfg.Palette.Name)
	assert.Equal(t, "highScore", cfg.HighScoreKey)
	assert.NotNil(t, cfg.Store)
	assert.NoError(t, cfg.Validate())
}

func TestPalettes(t *testing.T) {
	names := []string{}
	for _, p := range puzzle.Palettes() {
		names = append(names, p.Name)
		assert.NotEmpty(t, p.Colors, p.Name)
	}
	assert.Equal(t, []string{"Default", "Reds", "Beach", "Sweet and Sour", "Nord", "SLSO8"}, names)

	nord, err := puzzle.PaletteByName("Nord")
	require.NoError(t, err)
	assert.Len(t, nord.Colors, 9)

	_, err = puzzle.PaletteByName("Neon")
	assert.ErrorIs(t, err, puzzle.ErrUnknownPalette)

	assert.Len(t, puzzle.DefaultPalette().Colors, 6)
}
