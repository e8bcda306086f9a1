package game

import "github.com/CarterYancey/flip7/internal/deck"

// Decision is a strategy's answer for a single turn
type Decision int

const (
	// Hit draws another card
	Hit Decision = iota + 1
	// Stay locks in the current round score and ends the player's round
	Stay
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Hit:
		return "hit"
	case Stay:
		return "stay"
	default:
		return "?"
	}
}

// TurnView is the read-only context a strategy sees when deciding a turn.
// It covers the player's own round state plus the public composition of the
// remaining deck, which is what the expected-value strategy prices from.
type TurnView struct {
	RoundScore      int                       // points banked if the player stays now
	NumberSum       int                       // sum of held number values, before any multiplier
	UniqueNumbers   int                       // distinct number values held this round
	HeldNumbers     [deck.MaxNumber + 1]bool  // which number values are held
	HasSecondChance bool                      // a held Second Chance absorbs one duplicate
	Deck            deck.Counts               // drawable composition (draw + discard piles)
	ActiveOpponents int
}

// Strategy decides, turn by turn, whether a player keeps drawing. The game
// engine owns this contract; implementations live in internal/strategy.
type Strategy interface {
	// Decide returns Hit or Stay for the given turn. Anything else is a
	// fatal invariant violation.
	Decide(view TurnView) Decision

	// Name labels the strategy (including any threshold parameter) for
	// narration and aggregation.
	Name() string
}
