package statistics

import (
	"strings"
	"testing"

	"github.com/CarterYancey/flip7/internal/game"
)

func result(rounds int, standings ...game.Standing) *game.Result {
	return &game.Result{Winner: standings[0], Standings: standings, Rounds: rounds}
}

func TestSummaryAdd(t *testing.T) {
	s := NewSummary()
	s.Add(result(8,
		game.Standing{Name: "A", Strategy: "Perfect", Score: 210},
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 120},
	))
	s.Add(result(10,
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 205},
		game.Standing{Name: "A", Strategy: "Perfect", Score: 180},
	))

	if s.Games != 2 {
		t.Fatalf("expected 2 games, got %d", s.Games)
	}

	perfect := s.ByStrategy["Perfect"]
	if perfect.Games != 2 || perfect.Wins != 1 {
		t.Errorf("expected Perfect 2 games 1 win, got %d games %d wins", perfect.Games, perfect.Wins)
	}
	if perfect.WinRate() != 0.5 {
		t.Errorf("expected win rate 0.5, got %f", perfect.WinRate())
	}
	if perfect.AvgScore() != 195 {
		t.Errorf("expected avg score 195, got %f", perfect.AvgScore())
	}
	if perfect.AvgRounds() != 9 {
		t.Errorf("expected avg rounds 9, got %f", perfect.AvgRounds())
	}
}

func TestSummarySharedLabelPools(t *testing.T) {
	// Two seats with the same strategy label land in one row
	s := NewSummary()
	s.Add(result(5,
		game.Standing{Name: "A", Strategy: "Aggressive", Score: 200},
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 150},
	))

	agg := s.ByStrategy["Aggressive"]
	if agg.Games != 2 {
		t.Errorf("expected 2 seat-games for shared label, got %d", agg.Games)
	}
	if agg.Wins != 1 {
		t.Errorf("expected 1 win for shared label, got %d", agg.Wins)
	}
}

func TestSummaryMerge(t *testing.T) {
	a := NewSummary()
	a.Register("Perfect", "Aggressive")
	a.Add(result(4,
		game.Standing{Name: "A", Strategy: "Perfect", Score: 200},
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 100},
	))

	b := NewSummary()
	b.Register("Perfect", "Aggressive")
	b.Add(result(6,
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 220},
		game.Standing{Name: "A", Strategy: "Perfect", Score: 90},
	))

	a.Merge(b)

	if a.Games != 2 {
		t.Fatalf("expected 2 games after merge, got %d", a.Games)
	}
	if a.ByStrategy["Perfect"].Wins != 1 || a.ByStrategy["Aggressive"].Wins != 1 {
		t.Error("expected one win per strategy after merge")
	}
	if got := a.ByStrategy["Aggressive"].TotalScore; got != 320 {
		t.Errorf("expected merged total score 320, got %d", got)
	}
	if len(a.Labels) != 2 {
		t.Errorf("expected 2 labels, got %d", len(a.Labels))
	}
}

func TestRegisterFixesRowOrder(t *testing.T) {
	s := NewSummary()
	s.Register("Perfect", "Aggressive")
	s.Add(result(3,
		game.Standing{Name: "B", Strategy: "Aggressive", Score: 200},
		game.Standing{Name: "A", Strategy: "Perfect", Score: 100},
	))

	if s.Labels[0] != "Perfect" || s.Labels[1] != "Aggressive" {
		t.Errorf("expected registered order to hold, got %v", s.Labels)
	}
}

func TestRenderContainsEveryStrategy(t *testing.T) {
	s := NewSummary()
	s.Add(result(7,
		game.Standing{Name: "A", Strategy: "Conservative(stay>=35)", Score: 205},
		game.Standing{Name: "B", Strategy: "Flip7Chaser(safe>=50)", Score: 140},
	))

	out := s.Render()
	for _, want := range []string{"Conservative(stay>=35)", "Flip7Chaser(safe>=50)", "Win Rate", "Avg Score", "Avg Rounds"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered summary to contain %q", want)
		}
	}
}
