package puzzle

// Lines lists the full rows and columns found on a board, ascending.
type Lines struct {
	Rows []int
	Cols []int
}

// Count returns the number of lines, not cells.
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Cols)
}

// FindFullLines counts occupied cells per row and per column and returns the
// indices whose count equals the grid size. Both axes are read from the same
// snapshot.
func (b *Board) FindFullLines() Lines {
	rowCounts := make([]int, b.size)
	colCounts := make([]int, b.size)

	b.occupied.ForEach(func(k cellKey, _ Color) bool {
		c := k.cell(b.size)
		rowCounts[c.Y]++
		colCounts[c.X]++
		return true
	})

	var lines Lines
	for i := range b.size {
		if rowCounts[i] == b.size {
			lines.Rows = append(lines.Rows, i)
		}
		if colCounts[i] == b.size {
			lines.Cols = append(lines.Cols, i)
		}
	}
	return lines
}

// ClearLines removes every cell on a full row or column. A cell on both a
// full row and a full column is removed once. The detected lines and their
// count are returned.
func (b *Board) ClearLines() (Lines, int) {
	lines := b.FindFullLines()
	if lines.Count() == 0 {
		return lines, 0
	}

	for _, y := range lines.Rows {
		for x := range b.size {
			b.occupied.Del(keyOf(Cell{X: x, Y: y}, b.size))
		}
	}
	for _, x := range lines.Cols {
		for y := range b.size {
			b.occupied.Del(keyOf(Cell{X: x, Y: y}, b.size))
		}
	}
	return lines, lines.Count()
}
