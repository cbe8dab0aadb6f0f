package puzzle

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned when a palette has no colors to draw from.
var ErrEmptyPalette = errors.New("palette has no colors")

// ErrUnknownPalette is returned by PaletteByName for names with no built-in
// palette.
var ErrUnknownPalette = errors.New("unknown palette")

// Color is an opaque presentation value attached to occupied cells. The
// engine never inspects it.
type Color string

// Palette is a named set of piece colors.
type Palette struct {
	Name   string
	Colors []Color
}

// DefaultPaletteName is used when no palette is configured.
const DefaultPaletteName = "Default"

var palettes = []Palette{
	{Name: DefaultPaletteName, Colors: []Color{"#bb0000", "#00bb00", "#0000bb", "#bbbb00", "#bb00bb", "#00bbbb"}},
	{Name: "Reds", Colors: []Color{"#09122C", "#872341", "#BE3144", "#E17564"}},
	{Name: "Beach", Colors: []Color{"#16C47F", "#FFD65A", "#FF9D23", "#F93827"}},
	{Name: "Sweet and Sour", Colors: []Color{
		"#979596", "#a5bcbd", "#e7e3c7", "#f5b97b", "#ed8978",
		"#a45259", "#643159", "#816b24", "#96af2e", "#469852",
		"#b967ad", "#6950d1", "#7e94db", "#9bcea6", "#5bada6",
		"#127687", "#0a4684", "#181c38", "#5a4342", "#686a69",
	}},
	{Name: "Nord", Colors: []Color{"#8fbcbb", "#88c0d0", "#81a1c1", "#5e81ac", "#bf616a", "#d08770", "#ebcb8b", "#a3be8c", "#b48ead"}},
	{Name: "SLSO8", Colors: []Color{"#0d2b45", "#203c56", "#544e68", "#8d697a", "#d08159", "#ffaa5e", "#ffd4a3", "#ffecd6"}},
}

// Palettes returns the built-in palettes in display order.
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	for i, p := range palettes {
		out[i] = Palette{Name: p.Name, Colors: append([]Color(nil), p.Colors...)}
	}
	return out
}

// PaletteByName looks up a built-in palette.
func PaletteByName(name string) (Palette, error) {
	for _, p := range palettes {
		if p.Name == name {
			return Palette{Name: p.Name, Colors: append([]Color(nil), p.Colors...)}, nil
		}
	}
	return Palette{}, fmt.Errorf("palette %q: %w", name, ErrUnknownPalette)
}

// DefaultPalette returns the palette named DefaultPaletteName.
func DefaultPalette() Palette {
	p, _ := PaletteByName(DefaultPaletteName)
	return p
}
