package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

// GameResult summarises one simulated game.
type GameResult struct {
	Score      int
	HighScore  int
	Placements int
	Lines      int
	BestStreak int
	NoMoves    bool
	PlaceTimes []time.Duration
}

type Report struct {
	// Configuration
	Games         int
	GridSize      int
	Seed          uint64
	Palette       string
	MaxPlacements int

	// Results
	Played          int
	EndedNoMoves    int
	TotalPlacements int
	TotalLines      int
	BestStreak      int
	HighScore       int
	TotalTime       time.Duration
	Score           IntStats
	PlaceTime       Stats
	MemStatsStart   runtime.MemStats
	MemStatsEnd     runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type IntStats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *IntStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// Record folds one game into the report.
func (r *Report) Record(g GameResult) {
	r.Played++
	if g.NoMoves {
		r.EndedNoMoves++
	}
	r.TotalPlacements += g.Placements
	r.TotalLines += g.Lines
	r.BestStreak = max(r.BestStreak, g.BestStreak)
	r.HighScore = max(r.HighScore, g.HighScore)
	r.Score.Samples = append(r.Score.Samples, g.Score)
	r.PlaceTime.Samples = append(r.PlaceTime.Samples, g.PlaceTimes...)
}

func (r *Report) Finalize() {
	r.Score.Finalize()
	r.PlaceTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Block Puzzle Simulation Report

## Configuration
- **Games:** {{.Games}}
- **Grid:** {{.GridSize}}x{{.GridSize}}
- **Seed:** {{.Seed}}
- **Palette:** {{.Palette}}
- **Placement Cap:** {{.MaxPlacements}}

## Play
- **Games Played:** {{.Played}} ({{.EndedNoMoves}} ran out of moves)
- **Placements:** {{.TotalPlacements}} ({{avg .TotalPlacements .Played}} per game)
- **Lines Cleared:** {{.TotalLines}} ({{avg .TotalLines .Played}} per game)
- **Best Streak:** {{.BestStreak}}
- **High Score:** {{.HighScore}}
- **Score:**
  - **Avg:** {{printf "%.1f" .Score.Avg}}
  - **Min:** {{.Score.Min}}
  - **Max:** {{.Score.Max}}

## Performance
- **Total Time:** {{.TotalTime}}
- **Placement Time:**
  - **Avg:** {{.PlaceTime.Avg}}
  - **Min:** {{.PlaceTime.Min}}
  - **Max:** {{.PlaceTime.Max}}

## Memory Usage (Raw Bytes)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"avg": func(total, n int) string {
			if n == 0 {
				return "0"
			}
			return fmt.Sprintf("%.1f", float64(total)/float64(n))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
