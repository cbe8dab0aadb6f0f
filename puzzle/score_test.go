package puzzle_test

import (
	"testing"

	"github.com/plus3/blockfit/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestScoreCellsOnly(t *testing.T) {
	var s puzzle.ScoreState
	tr := s.Apply(4, 0)

	assert.Equal(t, 4, tr.Points)
	assert.Equal(t, 4, s.Score)
	assert.Zero(t, s.Streak)
	assert.Zero(t, s.StreakLives)
}

func TestStreakArmsBeforeCounting(t *testing.T) {
	var s puzzle.ScoreState

	tr := s.Apply(3, 1)
	assert.Equal(t, puzzle.StreakArmed, s.Streak)
	assert.Equal(t, 3+1*10*2, tr.Points)
	assert.Equal(t, 23, s.Score)
	assert.Equal(t, puzzle.MaxStreakLives, s.StreakLives)

	tr = s.Apply(2, 2)
	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, 2+2*10*5, tr.Points)
	assert.Equal(t, 125, s.Score)

	tr = s.Apply(1, 1)
	assert.Equal(t, 3, s.Streak)
	assert.Equal(t, 1+1*10*6, tr.Points)
	assert.Equal(t, 186, s.Score)
}

func TestStreakDecay(t *testing.T) {
	s := puzzle.ScoreState{Streak: 2, StreakLives: 3}

	s.Apply(1, 0)
	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, 2, s.StreakLives)

	s.Apply(1, 0)
	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, 1, s.StreakLives)

	s.Apply(1, 0)
	assert.Zero(t, s.Streak)
	assert.Zero(t, s.StreakLives)

	// a cleared line refills lives and re-arms from zero
	s.Apply(1, 1)
	assert.Equal(t, puzzle.StreakArmed, s.Streak)
	assert.Equal(t, 3, s.StreakLives)
}

func TestClearResetsLives(t *testing.T) {
	s := puzzle.ScoreState{Streak: 4, StreakLives: 1}
	s.Apply(2, 1)

	assert.Equal(t, 5, s.Streak)
	assert.Equal(t, puzzle.MaxStreakLives, s.StreakLives)
}

func TestArmedStreakIgnoresMisses(t *testing.T) {
	s := puzzle.ScoreState{Streak: puzzle.StreakArmed, StreakLives: 3}
	for range 5 {
		s.Apply(1, 0)
	}
	assert.Equal(t, puzzle.StreakArmed, s.Streak)
	assert.Equal(t, 3, s.StreakLives)
	assert.Zero(t, s.DisplayStreak())
}

func TestScoreNeverDecreases(t *testing.T) {
	var s puzzle.ScoreState
	steps := []struct{ cells, lines int }{
		{1, 0}, {4, 1}, {3, 0}, {5, 2}, {2, 0}, {2, 0}, {2, 0}, {9, 6}, {1, 0},
	}
	prev := 0
	for _, step := range steps {
		tr := s.Apply(step.cells, step.lines)
		assert.GreaterOrEqual(t, tr.Points, step.cells)
		assert.GreaterOrEqual(t, s.Score, prev)
		prev = s.Score
	}
}

func TestHighScore(t *testing.T) {
	s := puzzle.ScoreState{HighScore: 100}
	tr := s.Apply(5, 0)
	assert.False(t, tr.NewHighScore)
	assert.Equal(t, 100, s.HighScore)

	s = puzzle.ScoreState{Score: 98, HighScore: 100}
	tr = s.Apply(5, 0)
	assert.True(t, tr.NewHighScore)
	assert.Equal(t, 103, s.HighScore)

	s.Reset()
	assert.Zero(t, s.Score)
	assert.Equal(t, 103, s.HighScore)
}

// Placing a length-8 bar along row 0 of an empty 8x8 board clears one line:
// 8 points for the cells and 1*10*(-1+3) for the clear.
func TestFullRowScenario(t *testing.T) {
	board := puzzle.NewBoard(8)
	var s puzzle.ScoreState

	n, ok := board.Place(puzzle.MustParseBlueprint("########"), puzzle.C(0, 0), "#bb0000")
	assert.True(t, ok)
	assert.Equal(t, 8, n)

	lines, cleared := board.ClearLines()
	assert.Equal(t, 1, cleared)
	assert.Equal(t, []int{0}, lines.Rows)
	assert.Zero(t, board.Len())

	tr := s.Apply(n, cleared)
	assert.Equal(t, 28, tr.Points)
	assert.Equal(t, 28, s.Score)
	assert.Equal(t, puzzle.StreakArmed, s.Streak)
}
