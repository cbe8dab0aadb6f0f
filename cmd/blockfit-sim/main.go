package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfit/puzzle"
)

func main() {
	games := flag.Int("games", 100, "Number of games to play.")
	grid := flag.String("grid", "", "Grid size, as the gridSize launch parameter (default 8).")
	seed := flag.Uint64("seed", 1, "Seed for tray generation.")
	maxPlacements := flag.Int("max-placements", 1000, "Stop a game after this many placements.")
	paletteName := flag.String("palette", puzzle.DefaultPaletteName, "Piece color palette.")
	storePath := flag.String("store", "", "YAML file to persist the high score to. Empty keeps it in memory.")
	timeout := flag.Duration("timeout", time.Minute, "Stop starting new games after this long.")
	verbose := flag.Bool("verbose", false, "Log every placement.")
	flag.Parse()

	if *verbose {
		puzzle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	size, err := puzzle.ParseGridSize(*grid)
	if err != nil {
		log.Fatalf("Invalid grid size: %v", err)
	}
	palette, err := puzzle.PaletteByName(*paletteName)
	if err != nil {
		log.Fatalf("Invalid palette: %v", err)
	}

	var store puzzle.HighScoreStore = puzzle.NewMemoryStore()
	if *storePath != "" {
		store = puzzle.NewFileStore(*storePath)
	}

	session, err := puzzle.NewSession(puzzle.Config{
		GridSize:     size,
		Palette:      palette,
		HighScoreKey: fmt.Sprintf("%s%d", puzzle.DefaultHighScoreKey, size),
		Store:        store,
		Rand:         rand.New(rand.NewPCG(*seed, *seed)),
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	report := &Report{
		Games:         *games,
		GridSize:      size,
		Seed:          *seed,
		Palette:       palette.Name,
		MaxPlacements: *maxPlacements,
	}

	log.Printf("Playing %d games on a %dx%d grid...\n", *games, size, size)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for range *games {
		select {
		case <-ctx.Done():
			log.Println("Timeout reached, stopping early.")
			break Loop
		default:
			report.Record(play(session, *maxPlacements))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// play runs one game to completion with the greedy policy.
func play(s *puzzle.Session, maxPlacements int) GameResult {
	s.Start()

	var res GameResult
	for res.Placements < maxPlacements {
		m, ok := greedyMove(s)
		if !ok {
			res.NoMoves = true
			break
		}

		start := time.Now()
		out, ok := s.Place(m.slot, &m.anchor)
		res.PlaceTimes = append(res.PlaceTimes, time.Since(start))
		if !ok {
			panic(fmt.Sprintf("greedy move rejected: slot %d at %s", m.slot, m.anchor))
		}

		res.Placements++
		res.Lines += out.LinesCleared
		res.BestStreak = max(res.BestStreak, out.Streak)
	}

	score := s.Score()
	res.Score = score.Score
	res.HighScore = score.HighScore
	return res
}
