package strength

import (
	"errors"
	"math/rand/v2"
	"testing"

	ph "github.com/paulhankin/poker"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
)

func best(t *testing.T, e *Evaluator, hole, board string) Hand {
	t.Helper()
	h, err := e.Best(mustCards(t, hole), mustCards(t, board))
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestCompleteBoardStraights(t *testing.T) {
	e := NewEvaluator(NewRules(poker.TexasHoldem, false))
	p1, err := e.Strength(mustCards(t, "AdKc"), mustCards(t, "2s3s4s5s6c"))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := e.Strength(mustCards(t, "Ac7c"), mustCards(t, "2s3s4s5s6c"))
	if err != nil {
		t.Fatal(err)
	}
	if p1.Combination != Straight || p2.Combination != Straight {
		t.Fatalf("expected two straights, got %v and %v", p1.Combination, p2.Combination)
	}
	if p2.Score <= p1.Score {
		t.Fatalf("seven high straight should beat six high: %d <= %d", p2.Score, p1.Score)
	}
}

func TestWheelIsTheLowestStraight(t *testing.T) {
	rules := NewRules(poker.TexasHoldem, false)
	e := NewEvaluator(rules)
	wheel := best(t, e, "Ad2c", "3s4h5dKcQc")
	six := best(t, e, "6d2c", "3s4h5dKcQc")
	if wheel.Combination != Straight || six.Combination != Straight {
		t.Fatalf("expected straights, got %v and %v", wheel.Combination, six.Combination)
	}
	if rules.Score(wheel) >= rules.Score(six) {
		t.Fatal("the wheel should lose to a six high straight")
	}
}

// TestHigherCategoryOutscores checks that the score order agrees with
// the category precedence on random hands of every game.
func TestHigherCategoryOutscores(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for _, g := range []poker.GameType{poker.TexasHoldem, poker.ShortdeckHoldem} {
		for _, trips := range []bool{false, true} {
			rules := NewRules(g, trips)
			e := NewEvaluator(rules)
			cards := poker.DeckFor(g)
			var prev HandStrength
			for i := range 3000 {
				deck.Shuffle(cards, rng)
				s, err := e.Strength(cards[:2], cards[2:7])
				if err != nil {
					t.Fatal(err)
				}
				if i > 0 {
					pa, pb := rules.Precedence(s.Combination), rules.Precedence(prev.Combination)
					if pa > pb && s.Score <= prev.Score || pa < pb && s.Score >= prev.Score {
						t.Fatalf("%v: %v scored %d against %v scored %d",
							g, s.Combination, s.Score, prev.Combination, prev.Score)
					}
				}
				prev = s
			}
		}
	}
}

func TestCategoryDominatesKickers(t *testing.T) {
	rules := NewRules(poker.TexasHoldem, false)
	e := NewEvaluator(rules)
	// weakest possible two pairs against the strongest one pair
	lowTwoPairs := best(t, e, "2c2d", "3c3d5h6s7s")
	highPair := best(t, e, "AcAd", "KcQdJh9s8s")
	if lowTwoPairs.Combination != TwoPairs || highPair.Combination != OnePair {
		t.Fatalf("unexpected categories %v, %v", lowTwoPairs.Combination, highPair.Combination)
	}
	if rules.Score(lowTwoPairs) <= rules.Score(highPair) {
		t.Fatal("two pairs must outscore one pair")
	}
	// the wheel against the best three of a kind
	wheel := best(t, e, "Ac2d", "3h4s5sKdQd")
	trips := best(t, e, "AhAd", "AsKcQh9d8c")
	if wheel.Combination != Straight || trips.Combination != ThreeOfAKind {
		t.Fatalf("unexpected categories %v, %v", wheel.Combination, trips.Combination)
	}
	if rules.Score(wheel) <= rules.Score(trips) {
		t.Fatal("the wheel must outscore three aces")
	}
}

func TestHighCardFallback(t *testing.T) {
	e := NewEvaluator(NewRules(poker.TexasHoldem, false))
	h := best(t, e, "2c7d", "9hJsKdAc4s")
	if h.Combination != HighCard {
		t.Fatalf("expected high card, got %v", h.Combination)
	}
	if _, err := e.Best(mustCards(t, "2c7d"), mustCards(t, "9h")); !errors.Is(err, ErrTooFewCards) {
		t.Fatalf("expected ErrTooFewCards, got %v", err)
	}
}

func TestShortDeckFlushBeatsFullHouse(t *testing.T) {
	rules := NewRules(poker.ShortdeckHoldem, false)
	e := NewEvaluator(rules)
	fh := best(t, e, "9c9d", "9hKsKd6c7h")
	fl := best(t, e, "6h8h", "ThJhAh7c7d")
	if fh.Combination != FullHouse || fl.Combination != Flush {
		t.Fatalf("unexpected categories %v, %v", fh.Combination, fl.Combination)
	}
	if rules.Score(fl) <= rules.Score(fh) {
		t.Fatal("flush should beat full house in short-deck")
	}
	standard := NewRules(poker.TexasHoldem, false)
	if standard.Score(fl) >= standard.Score(fh) {
		t.Fatal("full house should beat flush in texas hold'em")
	}
}

func TestTripsBeatStraightSwap(t *testing.T) {
	for _, tripsBeatStraight := range []bool{false, true} {
		rules := NewRules(poker.ShortdeckHoldem, tripsBeatStraight)
		e := NewEvaluator(rules)
		trips := best(t, e, "6c6d", "6hKsQd8c7h")
		str := best(t, e, "9c8d", "TsJhQd6c6h")
		if trips.Combination != ThreeOfAKind || str.Combination != Straight {
			t.Fatalf("unexpected categories %v, %v", trips.Combination, str.Combination)
		}
		if tripsWins := rules.Score(trips) > rules.Score(str); tripsWins != tripsBeatStraight {
			t.Fatalf("tripsBeatStraight=%v but trips wins=%v", tripsBeatStraight, tripsWins)
		}
		if rules.Precedence(ThreeOfAKind)+rules.Precedence(Straight) != 9 {
			t.Fatal("the swap must keep the two precedences in place")
		}
	}
}

func TestTripsBeatStraightIgnoredOutsideShortDeck(t *testing.T) {
	a := NewRules(poker.TexasHoldem, false)
	b := NewRules(poker.TexasHoldem, true)
	for _, c := range Combinations {
		if a.Precedence(c) != b.Precedence(c) {
			t.Fatalf("%v precedence changed", c)
		}
	}
}

func TestPrecedenceTable(t *testing.T) {
	rules := NewRules(poker.TexasHoldem, false)
	for _, c := range Combinations {
		if rules.Precedence(c) != uint32(c)+1 {
			t.Fatalf("%v: expected precedence %d, got %d", c, uint32(c)+1, rules.Precedence(c))
		}
	}
	order := rules.Order()
	if order[0] != RoyalFlush || order[len(order)-1] != HighCard {
		t.Fatalf("unexpected order %v", order)
	}
}

// TestAgreesWithReferenceEvaluator compares the ordering of random
// hold'em hands with github.com/paulhankin/poker, where a higher Eval7
// score is a better hand.
func TestAgreesWithReferenceEvaluator(t *testing.T) {
	rules := NewRules(poker.TexasHoldem, false)
	e := NewEvaluator(rules)
	rng := rand.New(rand.NewPCG(3, 5))
	cards := poker.AllCards()

	eval := func(cards []poker.Card) (uint32, int16) {
		s, err := e.Strength(cards[:2], cards[2:])
		if err != nil {
			t.Fatal(err)
		}
		lib, err := poker.LibraryCards(cards)
		if err != nil {
			t.Fatal(err)
		}
		var seven [7]ph.Card
		copy(seven[:], lib)
		return s.Score, ph.Eval7(&seven)
	}
	sign := func(a, b int64) int {
		switch {
		case a > b:
			return 1
		case a < b:
			return -1
		}
		return 0
	}

	for i := 0; i < 3000; i++ {
		deck.Shuffle(cards, rng)
		// two players sharing a board
		board := cards[4:9]
		a := append(append([]poker.Card{}, cards[0:2]...), board...)
		b := append(append([]poker.Card{}, cards[2:4]...), board...)
		sa, ra := eval(a)
		sb, rb := eval(b)
		if sign(int64(sa), int64(sb)) != sign(int64(ra), int64(rb)) {
			t.Fatalf("%s vs %s on %s: scores %d/%d, reference %d/%d",
				poker.FormatCards(a[:2]), poker.FormatCards(b[:2]), poker.FormatCards(board), sa, sb, ra, rb)
		}
	}
}
