package strategy

import (
	"errors"
	"testing"

	"github.com/CarterYancey/flip7/internal/game"
)

func TestParse(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"aggressive", "Aggressive"},
		{"agg", "Aggressive"},
		{"conservative", "Conservative(stay>=40)"},
		{"cons=35", "Conservative(stay>=35)"},
		{"flip7", "Flip7Chaser(safe>=50)"},
		{"chaser=45", "Flip7Chaser(safe>=45)"},
		{"flip7chaser", "Flip7Chaser(safe>=50)"},
		{"perfect", "Perfect"},
		{"perf", "Perfect"},
		{"  Perfect ", "Perfect"},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			s, err := Parse(tc.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Name() != tc.want {
				t.Errorf("expected %q, got %q", tc.want, s.Name())
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, spec := range []string{
		"",
		"bogus",
		"conservative=abc",
		"flip7=",
		"aggressive=10",
		"perfect=1",
	} {
		t.Run(spec, func(t *testing.T) {
			if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec for %q, got %v", spec, err)
			}
		})
	}
}

func TestAggressiveAlwaysHits(t *testing.T) {
	s := Aggressive{}
	views := []game.TurnView{
		{},
		{RoundScore: 99, UniqueNumbers: 6},
	}
	for _, view := range views {
		if got := s.Decide(view); got != game.Hit {
			t.Errorf("expected hit, got %s", got)
		}
	}
}

func TestConservativeThreshold(t *testing.T) {
	s := Conservative{StayThreshold: 40}

	if got := s.Decide(game.TurnView{RoundScore: 39}); got != game.Hit {
		t.Errorf("expected hit below threshold, got %s", got)
	}
	if got := s.Decide(game.TurnView{RoundScore: 40}); got != game.Stay {
		t.Errorf("expected stay at threshold, got %s", got)
	}
	if got := s.Decide(game.TurnView{RoundScore: 75}); got != game.Stay {
		t.Errorf("expected stay above threshold, got %s", got)
	}
}

func TestFlip7ChaserDecisions(t *testing.T) {
	s := Flip7Chaser{SafeScore: 50}

	cases := []struct {
		name string
		view game.TurnView
		want game.Decision
	}{
		{"below safe score keeps hitting", game.TurnView{RoundScore: 30, UniqueNumbers: 4}, game.Hit},
		{"safe score locks in", game.TurnView{RoundScore: 55, UniqueNumbers: 5}, game.Stay},
		{"six uniques chase past safe score", game.TurnView{RoundScore: 55, UniqueNumbers: 6}, game.Hit},
		{"seven uniques always stay", game.TurnView{RoundScore: 70, UniqueNumbers: 7}, game.Stay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Decide(tc.view); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
