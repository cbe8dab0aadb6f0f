package puzzle

import (
	"fmt"

	"github.com/kamstrup/intmap"
)

// Board is the set of occupied cells of an n×n grid. Cells are keyed by
// y*n + x. Drag previews live in a separate overlay that never counts as
// occupied.
type Board struct {
	size     int
	occupied *intmap.Map[cellKey, Color]
	preview  *intmap.Map[cellKey, struct{}]
}

// BoardView is the read-only side of a Board. Clone yields a private copy
// that may be mutated freely.
type BoardView interface {
	Size() int
	Len() int
	IsOccupied(c Cell) bool
	Color(c Cell) (Color, bool)
	IsPreviewed(c Cell) bool
	PreviewCells() []Cell
	Cells() []OccupiedCell
	CanPlace(bp Blueprint, anchor Cell) bool
	Placements(bp Blueprint) []Cell
	Fits(bp Blueprint) bool
	FindFullLines() Lines
	Clone() *Board
	String() string
}

var _ BoardView = (*Board)(nil)

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	if size < 1 || size > MaxGridSize {
		panic(fmt.Sprintf("board size %d outside 1..%d", size, MaxGridSize))
	}
	return &Board{
		size:     size,
		occupied: intmap.New[cellKey, Color](size * size),
		preview:  intmap.New[cellKey, struct{}](16),
	}
}

// Size returns the grid dimension n.
func (b *Board) Size() int {
	return b.size
}

// Len returns the number of occupied cells.
func (b *Board) Len() int {
	return b.occupied.Len()
}

// IsOccupied reports whether a committed piece covers the cell.
func (b *Board) IsOccupied(c Cell) bool {
	if !c.In(b.size) {
		return false
	}
	_, ok := b.occupied.Get(keyOf(c, b.size))
	return ok
}

// Color returns the color of an occupied cell.
func (b *Board) Color(c Cell) (Color, bool) {
	if !c.In(b.size) {
		return "", false
	}
	return b.occupied.Get(keyOf(c, b.size))
}

// CanPlace reports whether every occupied offset of the blueprint, resolved
// against anchor, is on the grid and free. It never mutates the board.
func (b *Board) CanPlace(bp Blueprint, anchor Cell) bool {
	if bp.Rows() == 0 || bp.Cols() == 0 {
		return false
	}
	// compare against size minus extent so huge anchors cannot wrap
	if anchor.X < 0 || anchor.Y < 0 ||
		anchor.X > b.size-bp.Cols() || anchor.Y > b.size-bp.Rows() {
		return false
	}

	for i, row := range bp {
		for j, v := range row {
			if !v {
				continue
			}
			if _, ok := b.occupied.Get(keyOf(Cell{X: anchor.X + j, Y: anchor.Y + i}, b.size)); ok {
				return false
			}
		}
	}
	return true
}

// Place commits the blueprint at anchor with the given color and returns the
// number of cells added. Nothing is written unless CanPlace holds for the
// whole blueprint. A commit drops any preview overlay.
func (b *Board) Place(bp Blueprint, anchor Cell, color Color) (int, bool) {
	if !b.CanPlace(bp, anchor) {
		return 0, false
	}

	b.ClearPreview()
	added := 0
	for i, row := range bp {
		for j, v := range row {
			if v {
				b.occupied.Put(keyOf(Cell{X: anchor.X + j, Y: anchor.Y + i}, b.size), color)
				added++
			}
		}
	}
	return added, true
}

// SetPreview replaces the preview overlay with the cells the blueprint would
// cover at anchor. When the placement is invalid the overlay is emptied and
// false is returned.
func (b *Board) SetPreview(bp Blueprint, anchor Cell) bool {
	b.ClearPreview()
	if !b.CanPlace(bp, anchor) {
		return false
	}

	for i, row := range bp {
		for j, v := range row {
			if v {
				b.preview.Put(keyOf(Cell{X: anchor.X + j, Y: anchor.Y + i}, b.size), struct{}{})
			}
		}
	}
	return true
}

// ClearPreview empties the preview overlay.
func (b *Board) ClearPreview() {
	b.preview.Clear()
}

// IsPreviewed reports whether the cell belongs to the current preview.
func (b *Board) IsPreviewed(c Cell) bool {
	if !c.In(b.size) {
		return false
	}
	_, ok := b.preview.Get(keyOf(c, b.size))
	return ok
}

// PreviewCells returns the preview overlay in row-major order.
func (b *Board) PreviewCells() []Cell {
	cells := make([]Cell, 0, b.preview.Len())
	for y := range b.size {
		for x := range b.size {
			if _, ok := b.preview.Get(keyOf(Cell{X: x, Y: y}, b.size)); ok {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// OccupiedCell pairs an occupied cell with its color.
type OccupiedCell struct {
	Cell
	Color Color
}

// Cells returns a row-major snapshot of the occupied cells.
func (b *Board) Cells() []OccupiedCell {
	cells := make([]OccupiedCell, 0, b.occupied.Len())
	for y := range b.size {
		for x := range b.size {
			c := Cell{X: x, Y: y}
			if color, ok := b.occupied.Get(keyOf(c, b.size)); ok {
				cells = append(cells, OccupiedCell{Cell: c, Color: color})
			}
		}
	}
	return cells
}

// Clone returns a copy of the occupied cells. The preview overlay is not
// copied.
func (b *Board) Clone() *Board {
	out := NewBoard(b.size)
	b.occupied.ForEach(func(k cellKey, c Color) bool {
		out.occupied.Put(k, c)
		return true
	})
	return out
}

// Reset removes every occupied cell and the preview overlay.
func (b *Board) Reset() {
	b.occupied.Clear()
	b.preview.Clear()
}

// String renders the board with '#' for occupied, '+' for preview and '.'
// for empty cells.
func (b *Board) String() string {
	buf := make([]byte, 0, b.size*(b.size+1))
	for y := range b.size {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := range b.size {
			c := Cell{X: x, Y: y}
			switch {
			case b.IsOccupied(c):
				buf = append(buf, '#')
			case b.IsPreviewed(c):
				buf = append(buf, '+')
			default:
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}
