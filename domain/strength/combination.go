package strength

import "fmt"

// Combination is a hand category. The numeric value is a stable tag, the
// ranking between categories depends on the game rules (see Rules).
type Combination uint8

const (
	HighCard Combination = iota
	OnePair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// NumCombinations is the number of hand categories.
const NumCombinations = 10

// Combinations lists every category, lowest tag first.
var Combinations = [NumCombinations]Combination{
	HighCard, OnePair, TwoPairs, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

var combinationNames = [NumCombinations]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPairs:      "Two Pairs",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c Combination) String() string {
	if int(c) < len(combinationNames) {
		return combinationNames[c]
	}
	return fmt.Sprintf("Combination(%d)", uint8(c))
}

// MarshalText encodes the category by name.
func (c Combination) MarshalText() ([]byte, error) {
	if int(c) >= len(combinationNames) {
		return nil, fmt.Errorf("unknown combination %d", uint8(c))
	}
	return []byte(combinationNames[c]), nil
}

// UnmarshalText decodes a category name written by MarshalText.
func (c *Combination) UnmarshalText(text []byte) error {
	for i, name := range combinationNames {
		if name == string(text) {
			*c = Combination(i)
			return nil
		}
	}
	return fmt.Errorf("unknown combination %q", text)
}
