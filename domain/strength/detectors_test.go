package strength

import (
	"testing"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

func mustCards(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	if err != nil {
		t.Fatal(err)
	}
	return cards
}

func pool(t *testing.T, lowest poker.Rank, s string) *Pool {
	t.Helper()
	return NewPool(lowest, mustCards(t, s))
}

func expectHand(t *testing.T, h Hand, ok bool, c Combination, cards string) {
	t.Helper()
	if !ok {
		t.Fatalf("expected %v, got nothing", c)
	}
	if h.Combination != c {
		t.Fatalf("expected %v, got %v", c, h.Combination)
	}
	if got := poker.FormatCards(h.Cards[:]); got != cards {
		t.Fatalf("expected cards %s, got %s", cards, got)
	}
}

func TestStraightFlush(t *testing.T) {
	h, ok := straightFlush(pool(t, poker.Two, "8c7c6c5c4c"))
	expectHand(t, h, ok, StraightFlush, "8c7c6c5c4c")
}

func TestStraightFlushBadCards(t *testing.T) {
	if _, ok := straightFlush(pool(t, poker.Two, "Tc8c7c6c5c")); ok {
		t.Fatal("expected no straight flush")
	}
}

func TestStraightFlushLowAce(t *testing.T) {
	h, ok := straightFlush(pool(t, poker.Two, "Ac5c4c3c2c"))
	expectHand(t, h, ok, StraightFlush, "5c4c3c2cAc")
	if h.Values() != [5]uint8{5, 4, 3, 2, 1} {
		t.Fatalf("expected the ace to play low, got %v", h.Values())
	}
}

func TestStraightFlushLowAceShortDeck(t *testing.T) {
	h, ok := straightFlush(pool(t, poker.Six, "Ac9c8c7c6c"))
	expectHand(t, h, ok, StraightFlush, "9c8c7c6cAc")
	if h.Values() != [5]uint8{9, 8, 7, 6, 5} {
		t.Fatalf("expected the ace to play as a five, got %v", h.Values())
	}
}

func TestRoyalFlush(t *testing.T) {
	h, ok := royalFlush(pool(t, poker.Two, "AhKhQhJhTh9h2c"))
	expectHand(t, h, ok, RoyalFlush, "AhKhQhJhTh")
	if _, ok := royalFlush(pool(t, poker.Two, "KhQhJhTh9h2c")); ok {
		t.Fatal("a king high straight flush is not royal")
	}
}

func TestFourOfAKind(t *testing.T) {
	h, ok := fourOfAKind(pool(t, poker.Two, "2h2c2d2sAcAd"))
	expectHand(t, h, ok, FourOfAKind, "2h2c2d2sAc")
	if _, ok := fourOfAKind(pool(t, poker.Two, "AcAd6d3c2h")); ok {
		t.Fatal("expected no four of a kind")
	}
}

func TestFullHouse(t *testing.T) {
	h, ok := fullHouse(pool(t, poker.Two, "2d2c2hAcAd8h7c"))
	expectHand(t, h, ok, FullHouse, "2d2c2hAcAd")
	if _, ok := fullHouse(pool(t, poker.Two, "2c2h3dAcAd8h7c")); ok {
		t.Fatal("expected no full house")
	}
}

func TestFullHouseFromTwoTrips(t *testing.T) {
	h, ok := fullHouse(pool(t, poker.Two, "9c9d9h4c4d4hKs"))
	expectHand(t, h, ok, FullHouse, "9c9d9h4c4d")
}

func TestFlush(t *testing.T) {
	h, ok := flush(pool(t, poker.Two, "9c7c6c5c4c3c2h"))
	expectHand(t, h, ok, Flush, "9c7c6c5c4c")
	if _, ok := flush(pool(t, poker.Two, "2h8c7c6c5c")); ok {
		t.Fatal("expected no flush")
	}
}

func TestStraight(t *testing.T) {
	h, ok := straight(pool(t, poker.Two, "8h7c6c5c4d"))
	expectHand(t, h, ok, Straight, "8h7c6c5c4d")
	if _, ok := straight(pool(t, poker.Two, "Ac7c6c5c4c")); ok {
		t.Fatal("expected no straight")
	}
}

func TestStraightPicksHighestRun(t *testing.T) {
	h, ok := straight(pool(t, poker.Two, "Ac7c2s3s4s5s6c"))
	expectHand(t, h, ok, Straight, "7c6c5s4s3s")
}

func TestStraightWithPairedRank(t *testing.T) {
	h, ok := straight(pool(t, poker.Two, "9h9c8d7s6c5hKd"))
	if !ok || h.Values() != [5]uint8{9, 8, 7, 6, 5} {
		t.Fatalf("expected a nine high straight, got %v %v", ok, h.Values())
	}
}

func TestWheelNeedsLowestRank(t *testing.T) {
	if _, ok := straight(pool(t, poker.Six, "Ac9c8c7d5s")); ok {
		t.Fatal("A-5-7-8-9 is not a straight")
	}
	h, ok := straight(pool(t, poker.Six, "Ac9c8c7d6s"))
	if !ok || h.Values() != [5]uint8{9, 8, 7, 6, 5} {
		t.Fatalf("expected a short-deck wheel, got %v %v", ok, h.Values())
	}
}

func TestThreeOfAKind(t *testing.T) {
	h, ok := threeOfAKind(pool(t, poker.Two, "AcQd3h2h2c2d"))
	expectHand(t, h, ok, ThreeOfAKind, "2h2c2dAcQd")
	if _, ok := threeOfAKind(pool(t, poker.Two, "AcAd7d2d2c")); ok {
		t.Fatal("expected no three of a kind")
	}
}

func TestTwoPairs(t *testing.T) {
	h, ok := twoPairs(pool(t, poker.Two, "AcAd6d5c2h2c"))
	expectHand(t, h, ok, TwoPairs, "AcAd2h2c6d")
}

func TestTwoPairsKickerFromThirdPair(t *testing.T) {
	h, ok := twoPairs(pool(t, poker.Two, "KcKd9s9h4c4dTs"))
	expectHand(t, h, ok, TwoPairs, "KcKd9s9hTs")
	h, ok = twoPairs(pool(t, poker.Two, "KcKd9s9h4c4d3s"))
	expectHand(t, h, ok, TwoPairs, "KcKd9s9h4c")
}

func TestOnePair(t *testing.T) {
	h, ok := onePair(pool(t, poker.Two, "AcKd7d5c2h2c"))
	expectHand(t, h, ok, OnePair, "2h2cAcKd7d")
	if _, ok := onePair(pool(t, poker.Two, "AcKd7d5c2h")); ok {
		t.Fatal("expected no pair")
	}
}

func TestHighCard(t *testing.T) {
	h, ok := highCard(pool(t, poker.Two, "2h9cAcKd7d5c3s"))
	expectHand(t, h, ok, HighCard, "AcKd9c7d5c")
	if _, ok := highCard(pool(t, poker.Two, "AcKd")); ok {
		t.Fatal("high card needs five cards")
	}
}
