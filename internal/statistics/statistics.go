// Package statistics aggregates simulated game results by strategy label.
package statistics

import (
	"github.com/CarterYancey/flip7/internal/game"
)

// StrategyStats accumulates results for one strategy label
type StrategyStats struct {
	Games       int
	Wins        int
	TotalScore  int
	TotalRounds int
}

// WinRate returns the fraction of games this strategy won
func (s *StrategyStats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// AvgScore returns the mean final score across games
func (s *StrategyStats) AvgScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Games)
}

// AvgRounds returns the mean game length, in rounds, seen by this strategy
func (s *StrategyStats) AvgRounds() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Games)
}

// Summary aggregates many game results. Labels preserves first-seen order
// so rendering and merging stay deterministic.
type Summary struct {
	Games      int
	Labels     []string
	ByStrategy map[string]*StrategyStats
}

// NewSummary returns an empty summary
func NewSummary() *Summary {
	return &Summary{ByStrategy: make(map[string]*StrategyStats)}
}

func (s *Summary) stats(label string) *StrategyStats {
	st, ok := s.ByStrategy[label]
	if !ok {
		st = &StrategyStats{}
		s.ByStrategy[label] = st
		s.Labels = append(s.Labels, label)
	}
	return st
}

// Register pre-creates rows for the given labels so that the table order
// follows the roster rather than the first game's standings.
func (s *Summary) Register(labels ...string) {
	for _, label := range labels {
		s.stats(label)
	}
}

// Add incorporates one finished game. Two seats running the same strategy
// label pool into a single row, matching how the original reports.
func (s *Summary) Add(result *game.Result) {
	s.Games++
	for _, standing := range result.Standings {
		st := s.stats(standing.Strategy)
		st.Games++
		st.TotalScore += standing.Score
		st.TotalRounds += result.Rounds
	}
	s.stats(result.Winner.Strategy).Wins++
}

// Merge folds another summary into this one. Used by parallel workers.
func (s *Summary) Merge(other *Summary) {
	s.Games += other.Games
	for _, label := range other.Labels {
		o := other.ByStrategy[label]
		st := s.stats(label)
		st.Games += o.Games
		st.Wins += o.Wins
		st.TotalScore += o.TotalScore
		st.TotalRounds += o.TotalRounds
	}
}
