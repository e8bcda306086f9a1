// Package game implements the Flip 7 round and game engines: dealing,
// bust detection, action card resolution, scoring, and the loop that runs
// rounds until a player crosses the winning score.
package game

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/CarterYancey/flip7/internal/deck"
	"github.com/CarterYancey/flip7/internal/randutil"
)

// DefaultWinningScore is the standard target total. Config.WinningScore is
// taken as given, so a zero target legitimately ends the game after one
// round; callers wanting the standard game pass this.
const DefaultWinningScore = 200

// ErrInvalidDecision indicates a strategy returned something other than
// Hit or Stay. Not user-recoverable; it means a broken Strategy.
var ErrInvalidDecision = errors.New("strategy returned an invalid decision")

// Seat pairs a player name with the strategy that plays it
type Seat struct {
	Name     string
	Strategy Strategy
}

// Config configures a single game
type Config struct {
	Seats        []Seat
	WinningScore int        // taken as given; zero ends the game after one round
	Rand         *rand.Rand // defaults to a time-seeded source
	Deck         *deck.Deck // defaults to a fresh deck on Rand
	Logger       *log.Logger
}

// Game drives one full game of Flip 7
type Game struct {
	players      []*Player
	deck         *deck.Deck
	rng          *rand.Rand
	logger       *log.Logger
	winningScore int
	dealerIndex  int
	rounds       int
	flip7Winner  *Player
}

// Standing is one player's final line in a game result
type Standing struct {
	Name     string
	Strategy string
	Score    int
}

// Result is the outcome of a completed game
type Result struct {
	Winner    Standing
	Standings []Standing // sorted by score, highest first
	Rounds    int
}

// New creates a game from the given configuration
func New(cfg Config) *Game {
	rng := cfg.Rand
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}
	d := cfg.Deck
	if d == nil {
		d = deck.New(rng)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		deck:         d,
		rng:          rng,
		logger:       logger,
		winningScore: cfg.WinningScore,
	}
	for _, seat := range cfg.Seats {
		g.players = append(g.players, &Player{Name: seat.Name, Strategy: seat.Strategy})
	}
	return g
}

// Players returns the seats in turn order
func (g *Game) Players() []*Player {
	return g.players
}

// Rounds returns the number of rounds played so far
func (g *Game) Rounds() int {
	return g.rounds
}

// Play runs rounds until a player's total reaches the winning score and
// returns the final result. Totals only ever grow, so the game terminates
// for any winning score; a winning score of zero ends after round one.
func (g *Game) Play() (*Result, error) {
	g.logger.Info("starting game", "goal", g.winningScore, "players", len(g.players))

	for {
		if err := g.PlayRound(); err != nil {
			return nil, err
		}
		if g.targetReached() {
			break
		}
	}

	standings := make([]Standing, 0, len(g.players))
	for _, p := range g.players {
		standings = append(standings, Standing{Name: p.Name, Strategy: p.Strategy.Name(), Score: p.TotalScore})
	}
	// Stable sort keeps turn order among equal scores, so a tie goes to
	// the earlier seat. Deterministic and documented.
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Score - a.Score
	})

	result := &Result{Winner: standings[0], Standings: standings, Rounds: g.rounds}
	g.logger.Info("game over", "winner", result.Winner.Name, "score", result.Winner.Score, "rounds", result.Rounds)
	return result, nil
}

func (g *Game) targetReached() bool {
	for _, p := range g.players {
		if p.TotalScore >= g.winningScore {
			return true
		}
	}
	return false
}

func (g *Game) activePlayers() []*Player {
	var active []*Player
	for _, p := range g.players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

func (g *Game) turnView(p *Player) TurnView {
	opponents := 0
	for _, other := range g.players {
		if other != p && other.Active {
			opponents++
		}
	}
	return TurnView{
		RoundScore:      p.RoundScore(),
		NumberSum:       p.NumberSum(),
		UniqueNumbers:   p.UniqueNumbers(),
		HeldNumbers:     p.HeldNumbers(),
		HasSecondChance: p.SecondChance,
		Deck:            g.deck.Counts(),
		ActiveOpponents: opponents,
	}
}

// PlayRound resolves one complete round: initial deal, the turn loop, then
// scoring and cleanup. Exposed so scripted scenarios can drive one round.
func (g *Game) PlayRound() error {
	g.rounds++
	g.flip7Winner = nil
	for _, p := range g.players {
		p.ResetRound()
	}
	g.logger.Info("round start", "round", g.rounds)

	roundOver, err := g.initialDeal()
	if err != nil {
		return err
	}

	for !roundOver {
		active := g.activePlayers()
		if len(active) == 0 {
			break
		}
		for _, p := range active {
			if !p.Active {
				continue // frozen earlier in this same pass
			}

			decision := p.Strategy.Decide(g.turnView(p))
			switch decision {
			case Hit:
				g.logger.Debug("hit", "player", p.Name, "score", p.RoundScore())
				flip7, err := g.dealCard(p, false)
				if err != nil {
					return err
				}
				if flip7 {
					g.logger.Info("flip 7!", "player", g.flip7Winner.Name)
					roundOver = true
				}
			case Stay:
				g.logger.Info("stays", "player", p.Name, "score", p.RoundScore())
				p.Active = false
			default:
				return fmt.Errorf("%w: %q from %s", ErrInvalidDecision, decision, p.Strategy.Name())
			}
			if roundOver {
				break
			}
		}
	}

	g.scoreRound()
	g.dealerIndex = (g.dealerIndex + 1) % len(g.players)
	return nil
}

// initialDeal gives every player one card, starting from the dealer.
// Action cards dealt here resolve immediately; a Flip Three during the
// deal can even end the round on a Flip 7.
func (g *Game) initialDeal() (roundOver bool, err error) {
	for i := range g.players {
		p := g.players[(g.dealerIndex+i)%len(g.players)]
		card, err := g.deck.Draw()
		if err != nil {
			return false, err
		}
		g.logger.Info("initial deal", "player", p.Name, "card", card.String())

		if card.Type == deck.Action {
			flip7, err := g.resolveAction(card, p)
			if err != nil {
				return false, err
			}
			if flip7 {
				g.logger.Info("flip 7!", "player", g.flip7Winner.Name)
				return true, nil
			}
		} else {
			p.Hand = append(p.Hand, card)
		}
	}
	return false, nil
}

// dealCard draws one card for p and applies it. It reports whether the
// draw completed a Flip 7, which ends the round for everyone.
func (g *Game) dealCard(p *Player, duringForced bool) (flip7 bool, err error) {
	card, err := g.deck.Draw()
	if err != nil {
		return false, err
	}
	g.logger.Debug("drew", "player", p.Name, "card", card.String())

	switch card.Type {
	case deck.Action:
		// During a Flip Three run, Freeze and Flip Three wait until the
		// forced draws finish; Second Chance takes effect immediately.
		if duringForced && card.Action != deck.SecondChance {
			p.pending = append(p.pending, card)
			g.logger.Debug("action queued until forced draws finish", "player", p.Name, "card", card.String())
			return false, nil
		}
		return g.resolveAction(card, p)

	case deck.Modifier:
		// Modifiers never bust
		p.Hand = append(p.Hand, card)

	case deck.Number:
		if p.HoldsNumber(card.Value) {
			if p.SecondChance {
				g.logger.Info("saved by second chance", "player", p.Name, "card", card.String())
				p.SecondChance = false
				g.deck.Discard(card)
				g.discardToken(p)
				return false, nil
			}
			g.logger.Info("bust", "player", p.Name, "card", card.String())
			p.Busted = true
			p.Active = false
			g.deck.Discard(card)
			g.deck.Discard(p.pending...)
			p.pending = p.pending[:0]
			return false, nil
		}
		p.Hand = append(p.Hand, card)
		if p.HasFlipSeven() {
			g.flip7Winner = p
			return true, nil
		}
	}
	return false, nil
}

// discardToken removes the Second Chance card from p's hand and discards it
func (g *Game) discardToken(p *Player) {
	for i, c := range p.Hand {
		if c.Type == deck.Action && c.Action == deck.SecondChance {
			g.deck.Discard(c)
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// resolveAction applies an action card drawn by drawer. Freeze and Flip
// Three target a random other active player, or the drawer when nobody
// else is still in. Resolved action cards go straight to the discard pile;
// only a kept Second Chance stays in a hand.
func (g *Game) resolveAction(card deck.Card, drawer *Player) (flip7 bool, err error) {
	target := drawer
	if others := g.otherActive(drawer); len(others) > 0 {
		target = others[g.rng.IntN(len(others))]
	}

	switch card.Action {
	case deck.Freeze:
		g.logger.Info("frozen: banks current score and exits the round", "player", target.Name)
		target.Frozen = true
		target.Active = false
		g.deck.Discard(card)

	case deck.FlipThree:
		g.logger.Info("must flip three", "player", target.Name)
		g.deck.Discard(card)
		return g.flipThree(target)

	case deck.SecondChance:
		g.placeSecondChance(card, drawer)
	}
	return false, nil
}

// placeSecondChance gives the token to the drawer, or passes it along when
// the drawer already holds one. At most one per player; with no eligible
// holder the card is discarded.
func (g *Game) placeSecondChance(card deck.Card, drawer *Player) {
	if !drawer.SecondChance {
		drawer.SecondChance = true
		drawer.Hand = append(drawer.Hand, card)
		g.logger.Info("gains a second chance", "player", drawer.Name)
		return
	}
	for _, p := range g.players {
		if p != drawer && p.Active && !p.SecondChance {
			p.SecondChance = true
			p.Hand = append(p.Hand, card)
			g.logger.Info("second chance passed on", "from", drawer.Name, "to", p.Name)
			return
		}
	}
	g.logger.Debug("no one can take the second chance; discarded")
	g.deck.Discard(card)
}

// flipThree forces target to draw three cards in a row. Freeze and Flip
// Three drawn inside the run queue up and resolve after it, unless the run
// ends in a bust or a Flip 7.
func (g *Game) flipThree(target *Player) (flip7 bool, err error) {
	for i := 0; i < 3; i++ {
		if target.Busted || !target.Active {
			break
		}
		g.logger.Debug("forced flip", "player", target.Name, "remaining", 3-i)
		flip7, err := g.dealCard(target, true)
		if err != nil || flip7 {
			return flip7, err
		}
	}
	return g.resolvePending(target)
}

// resolvePending replays action cards queued during a Flip Three run
func (g *Game) resolvePending(p *Player) (flip7 bool, err error) {
	if len(p.pending) == 0 {
		return false, nil
	}
	pending := slices.Clone(p.pending)
	p.pending = p.pending[:0]

	for _, card := range pending {
		if p.Busted {
			g.deck.Discard(card)
			continue
		}
		g.logger.Debug("resolving queued action", "player", p.Name, "card", card.String())
		flip7, err := g.resolveAction(card, p)
		if err != nil || flip7 {
			return flip7, err
		}
	}
	return false, nil
}

// scoreRound banks every player's round score and recycles all cards
func (g *Game) scoreRound() {
	g.logger.Info("round scores", "round", g.rounds)
	for _, p := range g.players {
		score := p.RoundScore()
		p.TotalScore += score
		g.logger.Info("score", "player", p.Name, "round", score, "total", p.TotalScore)

		g.deck.Discard(p.Hand...)
		p.Hand = p.Hand[:0]
		g.deck.Discard(p.pending...)
		p.pending = p.pending[:0]
	}
}

func (g *Game) otherActive(p *Player) []*Player {
	var others []*Player
	for _, other := range g.players {
		if other != p && other.Active {
			others = append(others, other)
		}
	}
	return others
}
