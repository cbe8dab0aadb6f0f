package puzzle

import "fmt"

// Cell is a grid coordinate. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// At returns a pointer to the cell, for callers passing an anchor to a
// session.
func At(x, y int) *Cell {
	return &Cell{X: x, Y: y}
}

// In reports whether the cell lies on an n×n grid.
func (c Cell) In(n int) bool {
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// cellKey is the canonical set key of a cell on an n×n grid: y*n + x.
type cellKey int

func keyOf(c Cell, n int) cellKey {
	return cellKey(c.Y*n + c.X)
}

func (k cellKey) cell(n int) Cell {
	return Cell{X: int(k) % n, Y: int(k) / n}
}
