package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// DefaultGridSize is used when no grid size is supplied.
const DefaultGridSize = 8

// MinGridSize is the smallest playable grid. On a 1×1 grid every placement
// clears a line.
const MinGridSize = 2

// MaxGridSize bounds the grid so a launch parameter cannot force a huge
// board allocation.
const MaxGridSize = 256

var (
	// ErrGridTooSmall is returned for grid sizes below MinGridSize.
	ErrGridTooSmall = errors.New("grid size too small")
	// ErrGridTooLarge is returned for grid sizes above MaxGridSize.
	ErrGridTooLarge = errors.New("grid size too large")
)

// Config configures a Session. Zero fields take their DefaultConfig value.
type Config struct {
	GridSize     int
	Palette      Palette
	HighScoreKey string
	Store        HighScoreStore

	// Rand drives tray generation. Nil seeds a generator from runtime
	// entropy.
	Rand *rand.Rand

	// Deal draws one tray piece. Nil uses RandomPiece.
	Deal func(rng *rand.Rand, palette Palette) Piece
}

// DefaultConfig returns an 8×8 configuration with the Default palette and
// an in-memory high-score store.
func DefaultConfig() Config {
	return Config{
		GridSize:     DefaultGridSize,
		Palette:      DefaultPalette(),
		HighScoreKey: DefaultHighScoreKey,
		Store:        NewMemoryStore(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.GridSize == 0 {
		c.GridSize = DefaultGridSize
	}
	if c.Palette.Name == "" && len(c.Palette.Colors) == 0 {
		c.Palette = DefaultPalette()
	}
	if c.HighScoreKey == "" {
		c.HighScoreKey = DefaultHighScoreKey
	}
	if c.Store == nil {
		c.Store = NewMemoryStore()
	}
	if c.Deal == nil {
		c.Deal = RandomPiece
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

// Validate reports configuration errors after defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.GridSize < MinGridSize {
		return fmt.Errorf("grid size %d: %w", c.GridSize, ErrGridTooSmall)
	}
	if c.GridSize > MaxGridSize {
		return fmt.Errorf("grid size %d: %w", c.GridSize, ErrGridTooLarge)
	}
	if len(c.Palette.Colors) == 0 {
		return fmt.Errorf("palette %q: %w", c.Palette.Name, ErrEmptyPalette)
	}
	return nil
}

// ParseGridSize interprets a launch-time grid size parameter. An empty
// value selects DefaultGridSize.
func ParseGridSize(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultGridSize, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse grid size %q: %w", raw, err)
	}
	if n < MinGridSize {
		return 0, fmt.Errorf("grid size %d: %w", n, ErrGridTooSmall)
	}
	if n > MaxGridSize {
		return 0, fmt.Errorf("grid size %d: %w", n, ErrGridTooLarge)
	}
	return n, nil
}
