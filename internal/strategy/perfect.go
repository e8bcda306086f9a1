package strategy

import (
	"github.com/CarterYancey/flip7/internal/deck"
	"github.com/CarterYancey/flip7/internal/game"
)

// Perfect hits exactly when the expected value of drawing beats staying.
// It prices a draw against the exact remaining composition: every copy of
// a value already held is a bust (the whole round score lost, unless a
// Second Chance absorbs it), every fresh number adds its face value (plus
// the Flip 7 bonus when it would be the seventh unique), +N modifiers add
// their points, and the x2 doubles the current number sum. Action cards
// score nothing on their own and are treated as neutral draws.
type Perfect struct{}

// Decide implements game.Strategy
func (Perfect) Decide(view game.TurnView) game.Decision {
	counts := view.Deck
	if counts.Total == 0 {
		return game.Stay
	}

	dupes := 0
	gain := 0.0
	for v := 0; v <= deck.MaxNumber; v++ {
		n := counts.Numbers[v]
		if n == 0 {
			continue
		}
		if view.HeldNumbers[v] {
			dupes += n
			continue
		}
		value := float64(v)
		if view.UniqueNumbers == 6 {
			value += game.FlipSevenBonus
		}
		gain += float64(n) * value
	}
	gain += float64(counts.BonusPoints)
	gain += float64(counts.Multipliers) * float64(view.NumberSum)

	total := float64(counts.Total)
	ev := gain / total
	if !view.HasSecondChance {
		// P(bust) * (round score lost)
		ev -= float64(dupes) / total * float64(view.RoundScore)
	}

	if ev > 0 {
		return game.Hit
	}
	return game.Stay
}

// Name implements game.Strategy
func (Perfect) Name() string {
	return "Perfect"
}
