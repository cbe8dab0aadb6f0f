package puzzle

// Placements lists every anchor where the blueprint fits, in row-major order.
func (b *Board) Placements(bp Blueprint) []Cell {
	var anchors []Cell
	for y := 0; y+bp.Rows() <= b.size; y++ {
		for x := 0; x+bp.Cols() <= b.size; x++ {
			if b.CanPlace(bp, Cell{X: x, Y: y}) {
				anchors = append(anchors, Cell{X: x, Y: y})
			}
		}
	}
	return anchors
}

// Fits reports whether the blueprint fits anywhere on the board.
func (b *Board) Fits(bp Blueprint) bool {
	for y := 0; y+bp.Rows() <= b.size; y++ {
		for x := 0; x+bp.Cols() <= b.size; x++ {
			if b.CanPlace(bp, Cell{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}
