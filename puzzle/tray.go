package puzzle

import (
	"math/rand/v2"
)

// TraySize is the number of pieces offered at once.
const TraySize = 3

// Piece is one tray entry: a catalog shape, a fixed rotation in [0,3] and a
// color.
type Piece struct {
	Shape     int
	Rotations int
	Color     Color
}

// Blueprint resolves the rotated blueprint of the piece.
func (p Piece) Blueprint() (Blueprint, error) {
	b, err := Shape(p.Shape)
	if err != nil {
		return nil, err
	}
	return RotateN(b, p.Rotations), nil
}

// RandomPiece draws shape, rotation and color independently and uniformly.
func RandomPiece(rng *rand.Rand, palette Palette) Piece {
	return Piece{
		Shape:     rng.IntN(CatalogSize()),
		Rotations: rng.IntN(4),
		Color:     palette.Colors[rng.IntN(len(palette.Colors))],
	}
}

// Tray holds up to TraySize pieces in fixed slots. A placed piece leaves its
// slot empty until the whole tray is refilled.
type Tray struct {
	slots [TraySize]*Piece
}

// Fill replaces every slot with a piece from deal.
func (t *Tray) Fill(deal func(*rand.Rand, Palette) Piece, rng *rand.Rand, palette Palette) {
	for i := range t.slots {
		p := deal(rng, palette)
		t.slots[i] = &p
	}
}

// Get returns the piece in a slot.
func (t *Tray) Get(slot int) (Piece, bool) {
	if slot < 0 || slot >= TraySize || t.slots[slot] == nil {
		return Piece{}, false
	}
	return *t.slots[slot], true
}

// Take empties a slot and returns what it held.
func (t *Tray) Take(slot int) (Piece, bool) {
	p, ok := t.Get(slot)
	if ok {
		t.slots[slot] = nil
	}
	return p, ok
}

// Remaining counts the occupied slots.
func (t *Tray) Remaining() int {
	n := 0
	for _, p := range t.slots {
		if p != nil {
			n++
		}
	}
	return n
}

// Empty reports whether every slot has been placed.
func (t *Tray) Empty() bool {
	return t.Remaining() == 0
}

// Slots returns a snapshot of the slots; nil entries are empty.
func (t *Tray) Slots() [TraySize]*Piece {
	var out [TraySize]*Piece
	for i, p := range t.slots {
		if p != nil {
			cp := *p
			out[i] = &cp
		}
	}
	return out
}
