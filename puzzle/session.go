package puzzle

import (
	"fmt"
	"log/slog"
)

// Outcome reports what a successful placement did.
type Outcome struct {
	Piece        Piece
	Anchor       Cell
	CellsPlaced  int
	Lines        Lines
	LinesCleared int
	Points       int
	Streak       int
	StreakLives  int
	NewHighScore bool
	Refilled     bool
}

// Session is one game: board, tray and score. It is driven by a single
// event loop and is not safe for concurrent use.
type Session struct {
	cfg   Config
	board *Board
	tray  Tray
	score ScoreState
	log   *slog.Logger
}

// NewSession validates cfg and returns a session ready for Start.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	cfg = cfg.withDefaults()
	return &Session{
		cfg:   cfg,
		board: NewBoard(cfg.GridSize),
		log:   Logger().With("grid", cfg.GridSize),
	}, nil
}

// Start empties the board, resets score and streak, loads the stored high
// score and deals a fresh tray. It is also used to restart a session.
func (s *Session) Start() {
	s.board.Reset()
	s.score.Reset()

	high, err := s.cfg.Store.Load(s.cfg.HighScoreKey)
	if err != nil {
		s.log.Warn("load high score", "key", s.cfg.HighScoreKey, "err", err)
		high = 0
	}
	s.score.HighScore = max(high, 0)

	s.tray.Fill(s.cfg.Deal, s.cfg.Rand, s.cfg.Palette)
	s.log.Info("session started", "high_score", s.score.HighScore)
}

// GridSize returns the board dimension.
func (s *Session) GridSize() int {
	return s.cfg.GridSize
}

// Board exposes the board for rendering. Moves go through Place.
func (s *Session) Board() BoardView {
	return boardView{s.board}
}

// boardView hides the mutating Board methods from type assertions.
type boardView struct {
	BoardView
}

// Score returns a copy of the score state.
func (s *Session) Score() ScoreState {
	return s.score
}

// Tray returns a snapshot of the tray slots; nil entries have been placed.
func (s *Session) Tray() [TraySize]*Piece {
	return s.tray.Slots()
}

// Remaining returns how many tray pieces are still unplaced.
func (s *Session) Remaining() int {
	return s.tray.Remaining()
}

// Blueprint resolves the rotated blueprint of a tray slot.
func (s *Session) Blueprint(slot int) (Blueprint, bool) {
	p, ok := s.tray.Get(slot)
	if !ok {
		return nil, false
	}
	b, err := p.Blueprint()
	if err != nil {
		panic(fmt.Sprintf("tray slot %d holds invalid piece: %v", slot, err))
	}
	return b, true
}

// Preview validates a drag position without committing anything and
// refreshes the board's preview overlay. A nil anchor clears the overlay.
func (s *Session) Preview(slot int, anchor *Cell) bool {
	if anchor == nil {
		s.board.ClearPreview()
		return false
	}
	b, ok := s.Blueprint(slot)
	if !ok {
		s.board.ClearPreview()
		return false
	}
	return s.board.SetPreview(b, *anchor)
}

// EndDrag drops the preview overlay.
func (s *Session) EndDrag() {
	s.board.ClearPreview()
}

// AttemptPlacement drops the piece in slot at anchor. It returns false, with
// board and tray unchanged, when the anchor is nil, the slot is empty or the
// piece does not fit.
func (s *Session) AttemptPlacement(slot int, anchor *Cell) bool {
	_, ok := s.Place(slot, anchor)
	return ok
}

// Place is AttemptPlacement returning the details of a successful drop.
func (s *Session) Place(slot int, anchor *Cell) (Outcome, bool) {
	s.board.ClearPreview()
	if anchor == nil {
		return Outcome{}, false
	}
	b, ok := s.Blueprint(slot)
	if !ok {
		return Outcome{}, false
	}
	piece, _ := s.tray.Get(slot)

	placed, ok := s.board.Place(b, *anchor, piece.Color)
	if !ok {
		return Outcome{}, false
	}
	s.tray.Take(slot)

	lines, cleared := s.board.ClearLines()
	t := s.score.Apply(placed, cleared)

	out := Outcome{
		Piece:        piece,
		Anchor:       *anchor,
		CellsPlaced:  placed,
		Lines:        lines,
		LinesCleared: cleared,
		Points:       t.Points,
		Streak:       t.Streak,
		StreakLives:  t.StreakLives,
		NewHighScore: t.NewHighScore,
	}
	s.log.Debug("piece placed",
		"slot", slot, "anchor", *anchor, "cells", placed,
		"rows", lines.Rows, "cols", lines.Cols, "points", t.Points, "streak", t.Streak)

	if t.NewHighScore {
		if err := s.cfg.Store.Save(s.cfg.HighScoreKey, s.score.HighScore); err != nil {
			s.log.Warn("save high score", "key", s.cfg.HighScoreKey, "err", err)
		} else {
			s.log.Info("new high score", "score", s.score.HighScore)
		}
	}

	if s.tray.Empty() {
		s.tray.Fill(s.cfg.Deal, s.cfg.Rand, s.cfg.Palette)
		out.Refilled = true
	}
	if n := s.tray.Remaining(); n < 1 || n > TraySize {
		panic(fmt.Sprintf("tray holds %d pieces after placement", n))
	}
	return out, true
}

// HasMoves reports whether any unplaced tray piece fits somewhere on the
// board. A session without moves is over.
func (s *Session) HasMoves() bool {
	for slot := range TraySize {
		b, ok := s.Blueprint(slot)
		if ok && s.board.Fits(b) {
			return true
		}
	}
	return false
}
