package puzzle

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is returned for a catalog index outside the catalog.
var ErrUnknownShape = errors.New("unknown shape")

var catalog = []Blueprint{
	MustParseBlueprint( // L right
		"#.",
		"#.",
		"##",
	),
	MustParseBlueprint( // L left
		".#",
		".#",
		"##",
	),
	MustParseBlueprint( // square
		"##",
		"##",
	),
	MustParseBlueprint( // T
		"###",
		".#.",
	),
	MustParseBlueprint("#", "#", "#", "#"),      // I4
	MustParseBlueprint("##.", ".##"),            // Z right
	MustParseBlueprint(".##", "##."),            // Z left
	MustParseBlueprint("#", "#", "#", "#", "#"), // I5
	MustParseBlueprint("#", "#", "#"),           // I3
	MustParseBlueprint("#", "#"),                // I2
	MustParseBlueprint( // mini angle
		"##",
		"#.",
	),
	MustParseBlueprint( // 3x3 square
		"###",
		"###",
		"###",
	),
	MustParseBlueprint( // 2x3 rectangle
		"##",
		"##",
		"##",
	),
	MustParseBlueprint( // diagonal 2
		"#.",
		".#",
	),
	MustParseBlueprint( // diagonal 3
		"#..",
		".#.",
		"..#",
	),
	MustParseBlueprint("#"), // 1x1
	MustParseBlueprint( // big L right
		"#..",
		"#..",
		"###",
	),
	MustParseBlueprint( // big L left
		"..#",
		"..#",
		"###",
	),
}

// CatalogSize returns the number of shapes pieces can be drawn from.
func CatalogSize() int {
	return len(catalog)
}

// Shape returns a copy of the catalog blueprint at index i.
func Shape(i int) (Blueprint, error) {
	if i < 0 || i >= len(catalog) {
		return nil, fmt.Errorf("shape %d: %w", i, ErrUnknownShape)
	}
	return catalog[i].Clone(), nil
}

// Catalog returns copies of every catalog blueprint in catalog order.
func Catalog() []Blueprint {
	out := make([]Blueprint, len(catalog))
	for i, b := range catalog {
		out[i] = b.Clone()
	}
	return out
}
