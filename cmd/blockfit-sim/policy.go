package main

import (
	"github.com/plus3/blockfit/puzzle"
)

// move is one candidate drop.
type move struct {
	slot   int
	anchor puzzle.Cell
	lines  int
	cells  int
}

// better reports whether m beats the current best. Candidates arrive in slot
// then row-major anchor order, so ties keep the earliest.
func (m move) better(best move, found bool) bool {
	if !found {
		return true
	}
	if m.lines != best.lines {
		return m.lines > best.lines
	}
	return m.cells > best.cells
}

// greedyMove picks the drop that clears the most lines, then places the most
// cells. It returns false when no tray piece fits.
func greedyMove(s *puzzle.Session) (move, bool) {
	var best move
	found := false

	for slot := range puzzle.TraySize {
		b, ok := s.Blueprint(slot)
		if !ok {
			continue
		}
		for _, anchor := range s.Board().Placements(b) {
			trial := s.Board().Clone()
			cells, _ := trial.Place(b, anchor, "")
			_, lines := trial.ClearLines()

			m := move{slot: slot, anchor: anchor, lines: lines, cells: cells}
			if m.better(best, found) {
				best, found = m, true
			}
		}
	}
	return best, found
}
