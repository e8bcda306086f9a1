// Package deck models the 94-card Flip 7 deck: a draw pile fed by a discard
// pile, with all randomness coming from an injected *rand.Rand.
package deck

import (
	"errors"

	rand "math/rand/v2"
)

// Size is the number of cards in a full Flip 7 deck
const Size = 94

// ErrExhausted is returned by Draw when both piles are empty. Rounds recycle
// the discard pile, so hitting this means cards were never returned.
var ErrExhausted = errors.New("deck exhausted: draw and discard piles are both empty")

// Deck holds the draw and discard piles for one game
type Deck struct {
	draw    []Card
	discard []Card
	rng     *rand.Rand
}

// New builds a full 94-card deck and shuffles it with the given RNG
func New(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// NewStacked builds a deck whose draw pile is exactly the given cards, drawn
// in order. No shuffling occurs, so tests can script precise sequences.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{draw: make([]Card, len(cards))}
	copy(d.draw, cards)
	return d
}

func fullComposition() []Card {
	cards := make([]Card, 0, Size)

	// One 0, one 1, two 2s, ... twelve 12s
	cards = append(cards, NumberCard(0))
	for v := 1; v <= MaxNumber; v++ {
		for i := 0; i < v; i++ {
			cards = append(cards, NumberCard(v))
		}
	}

	for _, kind := range []ActionKind{Freeze, FlipThree, SecondChance} {
		for i := 0; i < 3; i++ {
			cards = append(cards, ActionCard(kind))
		}
	}

	for _, pts := range []int{2, 4, 6, 8, 10} {
		cards = append(cards, BonusCard(pts))
	}
	cards = append(cards, MultiplierCard())

	return cards
}

// Reset restores the full fresh composition and shuffles
func (d *Deck) Reset() {
	d.draw = fullComposition()
	d.discard = d.discard[:0]
	d.Shuffle()
}

// Shuffle randomizes the order of the draw pile
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return // stacked decks keep their scripted order
	}
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw removes and returns the top card. When the draw pile runs out the
// discard pile is shuffled back in; cards currently held in players' hands
// stay out until they are discarded at round end.
func (d *Deck) Draw() (Card, error) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return Card{}, ErrExhausted
		}
		d.draw = append(d.draw, d.discard...)
		d.discard = d.discard[:0]
		d.Shuffle()
	}
	card := d.draw[0]
	d.draw = d.draw[1:]
	return card, nil
}

// Discard returns cards to the discard pile
func (d *Deck) Discard(cards ...Card) {
	d.discard = append(d.discard, cards...)
}

// Remaining returns the number of cards still drawable (both piles), since
// the discard pile is recycled into the draw pile on demand.
func (d *Deck) Remaining() int {
	return len(d.draw) + len(d.discard)
}

// Counts summarises the drawable composition for expected-value math
type Counts struct {
	Numbers     [MaxNumber + 1]int // remaining copies of each number value
	BonusPoints int                // summed points across remaining +N cards
	Multipliers int
	Actions     int
	Total       int
}

// Counts tallies the drawable cards across both piles
func (d *Deck) Counts() Counts {
	var c Counts
	tally := func(cards []Card) {
		for _, card := range cards {
			switch card.Type {
			case Number:
				c.Numbers[card.Value]++
			case Modifier:
				if card.Times2 {
					c.Multipliers++
				} else {
					c.BonusPoints += card.Value
				}
			case Action:
				c.Actions++
			}
			c.Total++
		}
	}
	tally(d.draw)
	tally(d.discard)
	return c
}
