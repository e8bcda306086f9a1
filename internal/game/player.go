package game

import "github.com/CarterYancey/flip7/internal/deck"

// FlipSevenBonus is awarded for holding seven unique number values in one
// round without busting.
const FlipSevenBonus = 15

// Player is one seat at the table. It persists for the whole game; the
// round-scoped fields are cleared by ResetRound.
type Player struct {
	Name       string
	Strategy   Strategy
	TotalScore int

	Hand         []deck.Card
	Active       bool
	Busted       bool
	Frozen       bool
	SecondChance bool

	pending []deck.Card // Freeze/Flip Three drawn during a forced run
}

// ResetRound clears per-round state for a new round
func (p *Player) ResetRound() {
	p.Hand = p.Hand[:0]
	p.Active = true
	p.Busted = false
	p.Frozen = false
	p.SecondChance = false
	p.pending = p.pending[:0]
}

// HeldNumbers reports which number values the player holds this round
func (p *Player) HeldNumbers() [deck.MaxNumber + 1]bool {
	var held [deck.MaxNumber + 1]bool
	for _, c := range p.Hand {
		if c.IsNumber() {
			held[c.Value] = true
		}
	}
	return held
}

// HoldsNumber reports whether the player already holds the given value
func (p *Player) HoldsNumber(value int) bool {
	for _, c := range p.Hand {
		if c.IsNumber() && c.Value == value {
			return true
		}
	}
	return false
}

// UniqueNumbers counts distinct number values held this round
func (p *Player) UniqueNumbers() int {
	held := p.HeldNumbers()
	n := 0
	for _, h := range held {
		if h {
			n++
		}
	}
	return n
}

// NumberSum sums the held number values, before any multiplier
func (p *Player) NumberSum() int {
	sum := 0
	for _, c := range p.Hand {
		if c.IsNumber() {
			sum += c.Value
		}
	}
	return sum
}

// HasFlipSeven reports whether the player holds seven unique number values
func (p *Player) HasFlipSeven() bool {
	return p.UniqueNumbers() >= 7
}

// RoundScore computes what this round is worth right now: number sum,
// doubled by a held x2, plus flat modifier points, plus the Flip 7 bonus.
// A busted player scores zero no matter what the hand holds.
func (p *Player) RoundScore() int {
	if p.Busted {
		return 0
	}

	numberSum := 0
	modifierSum := 0
	times2 := false
	for _, c := range p.Hand {
		switch c.Type {
		case deck.Number:
			numberSum += c.Value
		case deck.Modifier:
			if c.Times2 {
				times2 = true
			} else {
				modifierSum += c.Value
			}
		}
	}

	if times2 {
		numberSum *= 2
	}
	total := numberSum + modifierSum
	if p.HasFlipSeven() {
		total += FlipSevenBonus
	}
	return total
}
