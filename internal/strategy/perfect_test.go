package strategy

import (
	"testing"

	"github.com/CarterYancey/flip7/internal/deck"
	"github.com/CarterYancey/flip7/internal/game"
	"github.com/CarterYancey/flip7/internal/randutil"
)

func TestPerfectStaysWhenBustIsCertain(t *testing.T) {
	// Only duplicates of held values remain: P(bust) = 1
	var view game.TurnView
	view.RoundScore = 8
	view.NumberSum = 8
	view.UniqueNumbers = 2
	view.HeldNumbers[3] = true
	view.HeldNumbers[5] = true
	view.Deck.Numbers[3] = 2
	view.Deck.Numbers[5] = 1
	view.Deck.Total = 3

	if got := (Perfect{}).Decide(view); got != game.Stay {
		t.Fatalf("expected stay with certain bust, got %s", got)
	}
}

func TestPerfectHitsOnFreshDeck(t *testing.T) {
	// Empty hand against a full deck: nothing to lose, everything to gain
	view := game.TurnView{Deck: deck.New(randutil.New(1)).Counts()}

	if got := (Perfect{}).Decide(view); got != game.Hit {
		t.Fatalf("expected hit with empty hand, got %s", got)
	}
}

func TestPerfectWeighsBustRiskAgainstGain(t *testing.T) {
	// Held a 5 with score 5. Remaining: one duplicate 5 and one +2 bonus.
	// EV(hit) = (2 - 5) / 2 < 0 without protection.
	var view game.TurnView
	view.RoundScore = 5
	view.NumberSum = 5
	view.UniqueNumbers = 1
	view.HeldNumbers[5] = true
	view.Deck.Numbers[5] = 1
	view.Deck.BonusPoints = 2
	view.Deck.Total = 2

	if got := (Perfect{}).Decide(view); got != game.Stay {
		t.Fatalf("expected stay when bust risk outweighs gain, got %s", got)
	}

	// A held Second Chance removes the downside: EV(hit) = 2/2 > 0
	view.HasSecondChance = true
	if got := (Perfect{}).Decide(view); got != game.Hit {
		t.Fatalf("expected hit with second chance protection, got %s", got)
	}
}

func TestPerfectPricesTheSeventhUnique(t *testing.T) {
	// Six uniques held (0..5, score 15). One card left: a 7, which would
	// score 7 plus the flip 7 bonus with zero bust risk.
	var view game.TurnView
	view.RoundScore = 15
	view.NumberSum = 15
	view.UniqueNumbers = 6
	for v := 0; v <= 5; v++ {
		view.HeldNumbers[v] = true
	}
	view.Deck.Numbers[7] = 1
	view.Deck.Total = 1

	if got := (Perfect{}).Decide(view); got != game.Hit {
		t.Fatalf("expected hit chasing a risk-free seventh unique, got %s", got)
	}
}

func TestPerfectStaysOnEmptyDeckView(t *testing.T) {
	if got := (Perfect{}).Decide(game.TurnView{RoundScore: 10}); got != game.Stay {
		t.Fatalf("expected stay with nothing drawable, got %s", got)
	}
}
