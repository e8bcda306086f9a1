package deck

import "fmt"

// CardType classifies the three kinds of cards in a Flip 7 deck
type CardType int

const (
	Number CardType = iota
	Action
	Modifier
)

// String returns the string representation of a card type
func (t CardType) String() string {
	switch t {
	case Number:
		return "number"
	case Action:
		return "action"
	case Modifier:
		return "modifier"
	default:
		return "?"
	}
}

// ActionKind identifies the effect of an action card
type ActionKind int

const (
	NoAction ActionKind = iota
	Freeze
	FlipThree
	SecondChance
)

// MaxNumber is the highest number card value; number values run 0..MaxNumber
const MaxNumber = 12

// Card is a single card. Immutable once drawn.
type Card struct {
	Type   CardType
	Value  int        // number value, or bonus points for a +N modifier
	Action ActionKind // set only for action cards
	Times2 bool       // the x2 multiplier modifier
}

// NumberCard returns the number card with the given value (0-12)
func NumberCard(value int) Card {
	return Card{Type: Number, Value: value}
}

// ActionCard returns an action card of the given kind
func ActionCard(kind ActionKind) Card {
	return Card{Type: Action, Action: kind}
}

// BonusCard returns a +N points modifier card
func BonusCard(points int) Card {
	return Card{Type: Modifier, Value: points}
}

// MultiplierCard returns the x2 multiplier modifier card
func MultiplierCard() Card {
	return Card{Type: Modifier, Times2: true}
}

// String returns the card's display label, e.g. "7", "+4", "x2", "Freeze"
func (c Card) String() string {
	switch c.Type {
	case Number:
		return fmt.Sprintf("%d", c.Value)
	case Modifier:
		if c.Times2 {
			return "x2"
		}
		return fmt.Sprintf("+%d", c.Value)
	case Action:
		switch c.Action {
		case Freeze:
			return "Freeze"
		case FlipThree:
			return "Flip Three"
		case SecondChance:
			return "Second Chance"
		}
	}
	return "?"
}

// IsNumber returns true for number cards
func (c Card) IsNumber() bool {
	return c.Type == Number
}
