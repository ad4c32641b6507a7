package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidGameType is returned when a game type token is not recognised.
var ErrInvalidGameType = errors.New("invalid game type")

// GameType selects the deck, the number of hole cards and the hand rules.
type GameType uint8

const (
	TexasHoldem GameType = iota
	ShortdeckHoldem
	Omaha
)

// GameTypes lists every supported game type.
var GameTypes = [...]GameType{TexasHoldem, ShortdeckHoldem, Omaha}

// ParseGameType parses one of "texas_holdem", "shortdeck_holdem" or "omaha".
func ParseGameType(token string) (GameType, error) {
	switch token {
	case "texas_holdem":
		return TexasHoldem, nil
	case "shortdeck_holdem":
		return ShortdeckHoldem, nil
	case "omaha":
		return Omaha, nil
	}
	return 0, fmt.Errorf("%w %q: expected texas_holdem, shortdeck_holdem or omaha", ErrInvalidGameType, token)
}

// String returns the token accepted by ParseGameType.
func (g GameType) String() string {
	switch g {
	case TexasHoldem:
		return "texas_holdem"
	case ShortdeckHoldem:
		return "shortdeck_holdem"
	case Omaha:
		return "omaha"
	}
	return fmt.Sprintf("GameType(%d)", uint8(g))
}

// HoleCards is the number of private cards each player holds.
func (g GameType) HoleCards() int {
	if g == Omaha {
		return 4
	}
	return 2
}

// LowestRank is the lowest rank in the game's deck. The Ace plays just
// below it in the lowest straight.
func (g GameType) LowestRank() Rank {
	if g == ShortdeckHoldem {
		return Six
	}
	return Two
}
