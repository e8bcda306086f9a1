// Package strategy implements the built-in decision strategies and the
// parser for strategy spec strings like "conservative=35".
package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/CarterYancey/flip7/internal/game"
)

// ErrInvalidSpec indicates a malformed strategy spec string. Surfaced at
// construction time, before any game state exists.
var ErrInvalidSpec = errors.New("invalid strategy spec")

// Default thresholds for the parametrised strategies
const (
	DefaultStayThreshold = 40
	DefaultSafeScore     = 50
)

// Aggressive always hits. It only stops when the engine stops it: a bust
// or a Flip 7.
type Aggressive struct{}

// Decide always hits
func (Aggressive) Decide(game.TurnView) game.Decision {
	return game.Hit
}

// Name implements game.Strategy
func (Aggressive) Name() string {
	return "Aggressive"
}

// Conservative stays once the round score reaches its threshold
type Conservative struct {
	StayThreshold int
}

// NewConservative returns a Conservative with the default threshold
func NewConservative() Conservative {
	return Conservative{StayThreshold: DefaultStayThreshold}
}

// Decide hits until the round score reaches the stay threshold
func (s Conservative) Decide(view game.TurnView) game.Decision {
	if view.RoundScore >= s.StayThreshold {
		return game.Stay
	}
	return game.Hit
}

// Name implements game.Strategy
func (s Conservative) Name() string {
	return fmt.Sprintf("Conservative(stay>=%d)", s.StayThreshold)
}

// Flip7Chaser plays for the seven-unique-number bonus. Below the safe
// score it always hits; at or above it, it keeps hitting only at exactly
// six uniques, where the seventh card's bonus outweighs the bust risk.
type Flip7Chaser struct {
	SafeScore int
}

// NewFlip7Chaser returns a Flip7Chaser with the default safe score
func NewFlip7Chaser() Flip7Chaser {
	return Flip7Chaser{SafeScore: DefaultSafeScore}
}

// Decide implements game.Strategy
func (s Flip7Chaser) Decide(view game.TurnView) game.Decision {
	if view.UniqueNumbers >= 7 {
		return game.Stay
	}
	if view.RoundScore < s.SafeScore {
		return game.Hit
	}
	if view.UniqueNumbers == 6 {
		return game.Hit
	}
	return game.Stay
}

// Name implements game.Strategy
func (s Flip7Chaser) Name() string {
	return fmt.Sprintf("Flip7Chaser(safe>=%d)", s.SafeScore)
}

// Parse builds a strategy from a spec string: name, optionally followed by
// "=value" for the parametrised ones. Recognised names (with aliases):
// aggressive|agg, conservative|cons, flip7|flip7chaser|chaser, perfect|perf.
func Parse(spec string) (game.Strategy, error) {
	name, param, hasParam := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), "=")

	parseParam := func(def int) (int, error) {
		if !hasParam {
			return def, nil
		}
		n, err := strconv.Atoi(param)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: bad threshold %q", ErrInvalidSpec, spec, param)
		}
		return n, nil
	}

	switch name {
	case "aggressive", "agg":
		if hasParam {
			return nil, fmt.Errorf("%w: %q: aggressive takes no parameter", ErrInvalidSpec, spec)
		}
		return Aggressive{}, nil
	case "conservative", "cons":
		stay, err := parseParam(DefaultStayThreshold)
		if err != nil {
			return nil, err
		}
		return Conservative{StayThreshold: stay}, nil
	case "flip7", "flip7chaser", "chaser":
		safe, err := parseParam(DefaultSafeScore)
		if err != nil {
			return nil, err
		}
		return Flip7Chaser{SafeScore: safe}, nil
	case "perfect", "perf":
		if hasParam {
			return nil, fmt.Errorf("%w: %q: perfect takes no parameter", ErrInvalidSpec, spec)
		}
		return Perfect{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidSpec, name)
	}
}
