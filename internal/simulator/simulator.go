// Package simulator runs many independent Flip 7 games and aggregates the
// results. Games share no mutable state, so they fan out across a bounded
// worker pool with one deterministic RNG stream per game.
package simulator

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/CarterYancey/flip7/internal/game"
	"github.com/CarterYancey/flip7/internal/randutil"
	"github.com/CarterYancey/flip7/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games        int
	WinningScore int
	Seed         int64
	Parallel     int // worker count; <=0 means one per CPU
	Seats        []game.Seat
	Logger       *log.Logger
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run plays the configured number of games and returns the aggregate
// summary. Game i always uses seed Seed+i, so results are reproducible
// regardless of worker count or scheduling.
func (s *Simulator) Run() (*statistics.Summary, error) {
	labels := make([]string, 0, len(s.config.Seats))
	for _, seat := range s.config.Seats {
		labels = append(labels, seat.Strategy.Name())
	}

	workers := s.config.Parallel
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > s.config.Games {
		workers = s.config.Games
	}

	summaries := make([]*statistics.Summary, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			summary := statistics.NewSummary()
			summary.Register(labels...)
			for i := w; i < s.config.Games; i += workers {
				result, err := s.playGame(i)
				if err != nil {
					return err
				}
				summary.Add(result)
			}
			summaries[w] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := statistics.NewSummary()
	total.Register(labels...)
	for _, summary := range summaries {
		total.Merge(summary)
	}
	return total, nil
}

// playGame runs a single silent game with its own RNG stream
func (s *Simulator) playGame(index int) (*game.Result, error) {
	gameSeed := s.config.Seed + int64(index)
	gm := game.New(game.Config{
		Seats:        s.config.Seats,
		WinningScore: s.config.WinningScore,
		Rand:         randutil.New(gameSeed),
		Logger:       s.config.Logger,
	})
	result, err := gm.Play()
	if err != nil {
		return nil, fmt.Errorf("game %d (seed %d): %w", index+1, gameSeed, err)
	}
	return result, nil
}
