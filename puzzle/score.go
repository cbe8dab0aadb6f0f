package puzzle

const (
	// StreakArmed marks a streak that has seen one clearing placement and
	// starts counting on the next one.
	StreakArmed = -1

	// MaxStreakLives is the number of non-clearing placements an active
	// streak survives.
	MaxStreakLives = 3

	lineBonus   = 10
	streakBonus = 3
)

// ScoreState holds score, streak and the best score seen so far.
type ScoreState struct {
	Score       int
	Streak      int
	StreakLives int
	HighScore   int
}

// Transition describes the effect of one placement on the score state.
type Transition struct {
	Points       int
	Streak       int
	StreakLives  int
	NewHighScore bool
}

// Apply advances the state for one committed placement of cellsPlaced cells
// that cleared linesCleared lines.
func (s *ScoreState) Apply(cellsPlaced, linesCleared int) Transition {
	before := s.Score
	s.Score += cellsPlaced

	if linesCleared > 0 {
		switch s.Streak {
		case 0:
			s.Streak = StreakArmed
		case StreakArmed:
			s.Streak = linesCleared
		default:
			s.Streak += linesCleared
		}
		s.Score += linesCleared * lineBonus * (s.Streak + streakBonus)
		s.StreakLives = MaxStreakLives
	} else if s.Streak > 0 {
		s.StreakLives--
		if s.StreakLives <= 0 {
			s.StreakLives = 0
			s.Streak = 0
		}
	}

	t := Transition{
		Points:      s.Score - before,
		Streak:      s.Streak,
		StreakLives: s.StreakLives,
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		t.NewHighScore = true
	}
	return t
}

// Reset zeroes score and streak and keeps the high score.
func (s *ScoreState) Reset() {
	s.Score = 0
	s.Streak = 0
	s.StreakLives = 0
}

// DisplayStreak returns the streak as shown to players: the armed state
// reads as zero.
func (s ScoreState) DisplayStreak() int {
	return max(s.Streak, 0)
}
