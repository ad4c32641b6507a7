package strength

import "github.com/luca-patrignani/poker-odds/domain/poker"

// Composition constrains which cards may form a hand. The zero value
// allows any five of the available cards; a non-zero value requires
// exactly Hole cards from the player's hand and Board cards from the
// community cards.
type Composition struct {
	Hole  int
	Board int
}

// Free reports whether any five cards may be combined.
func (c Composition) Free() bool {
	return c.Hole == 0 && c.Board == 0
}

// Rules is the per-game configuration of the classifier: category
// precedence, the lowest rank of the deck and the composition rule.
// It is built once per run and never mutated.
type Rules struct {
	Game        poker.GameType
	Lowest      poker.Rank
	HoleCards   int
	Composition Composition

	order      []Combination
	precedence [NumCombinations]uint32
}

var standardOrder = []Combination{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPairs, OnePair, HighCard,
}

// NewRules returns the rules of a game. tripsBeatStraight is the
// short-deck house rule ranking Three of a Kind above Straight; it is
// ignored by the other games.
func NewRules(game poker.GameType, tripsBeatStraight bool) Rules {
	r := Rules{
		Game:      game,
		Lowest:    game.LowestRank(),
		HoleCards: game.HoleCards(),
	}
	switch game {
	case poker.ShortdeckHoldem:
		mid := []Combination{Straight, ThreeOfAKind}
		if tripsBeatStraight {
			mid = []Combination{ThreeOfAKind, Straight}
		}
		r.order = append([]Combination{RoyalFlush, StraightFlush, FourOfAKind, Flush, FullHouse}, mid...)
		r.order = append(r.order, TwoPairs, OnePair, HighCard)
	case poker.Omaha:
		r.order = standardOrder
		r.Composition = Composition{Hole: 2, Board: 3}
	default:
		r.order = standardOrder
	}
	for i, c := range r.order {
		r.precedence[c] = uint32(len(r.order) - i)
	}
	return r
}

// Order returns the categories from the strongest to the weakest.
func (r Rules) Order() []Combination {
	return append([]Combination(nil), r.order...)
}

// Precedence returns the rank of a category, 1 for the weakest up to
// NumCombinations for the strongest.
func (r Rules) Precedence(c Combination) uint32 {
	return r.precedence[c]
}

// LowAce is the value of an Ace played as the lowest card of a straight.
func (r Rules) LowAce() uint8 {
	return uint8(r.Lowest) - 1
}
