package strength

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	cp "github.com/chehsunliu/poker"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
)

func TestOmahaUsesExactlyTwoHoleCards(t *testing.T) {
	e := NewEvaluator(NewRules(poker.Omaha, false))
	cases := []struct {
		name   string
		hole   string
		board  string
		want   Combination
		values [5]uint8
	}{
		{"single hole card to a broadway", "Ts9h8h7h", "AsKsQsJs2d", Straight, [5]uint8{13, 12, 11, 10, 9}},
		{"one suited hole card", "Ah3c4d7s", "2h5h9hKhJc", HighCard, [5]uint8{14, 13, 11, 9, 7}},
		{"board trips with a hole pair", "AcAd4d5d", "2d2c2hKs9c", FullHouse, [5]uint8{2, 2, 2, 14, 14}},
		{"quads split between hole and board", "7c7hAsAd", "KhKdKc7s7d", FourOfAKind, [5]uint8{7, 7, 7, 7, 13}},
		{"straight from two hole cards", "8s9s2c2d", "5c6d7hKdKs", Straight, [5]uint8{9, 8, 7, 6, 5}},
		{"four hearts on board", "Th3s4s5s", "AhKhQhJh2c", HighCard, [5]uint8{14, 13, 12, 10, 5}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := best(t, e, c.hole, c.board)
			if h.Combination != c.want {
				t.Fatalf("expected %v, got %v (%s)", c.want, h.Combination, poker.FormatCards(h.Cards[:]))
			}
			if h.Values() != c.values {
				t.Fatalf("expected values %v, got %v", c.values, h.Values())
			}
			hole := poker.NewCardSet(mustCards(t, c.hole)...)
			fromHole := 0
			for _, card := range h.Cards {
				if hole.Contains(card) {
					fromHole++
				}
			}
			if fromHole != 2 {
				t.Fatalf("expected 2 hole cards in %s, got %d", poker.FormatCards(h.Cards[:]), fromHole)
			}
		})
	}
}

func TestOmahaHoldemDifference(t *testing.T) {
	hold := NewEvaluator(NewRules(poker.TexasHoldem, false))
	omaha := NewEvaluator(NewRules(poker.Omaha, false))
	// a single heart in hand makes a royal flush in hold'em only
	if h := best(t, hold, "Th3s", "AhKhQhJh2c"); h.Combination != RoyalFlush {
		t.Fatalf("expected a royal flush, got %v", h.Combination)
	}
	if h := best(t, omaha, "Th3s4s5s", "AhKhQhJh2c"); h.Combination == RoyalFlush {
		t.Fatal("omaha must not play four board cards")
	}
}

func TestOmahaTooFewCards(t *testing.T) {
	e := NewEvaluator(NewRules(poker.Omaha, false))
	if _, err := e.Best(mustCards(t, "AcAd4d5d"), mustCards(t, "2d2c")); !errors.Is(err, ErrTooFewCards) {
		t.Fatalf("expected ErrTooFewCards, got %v", err)
	}
	if _, err := e.Best(mustCards(t, "Ac"), mustCards(t, "2d2c2hKs9c")); !errors.Is(err, ErrTooFewCards) {
		t.Fatalf("expected ErrTooFewCards, got %v", err)
	}
	// three board cards are enough
	if _, err := e.Best(mustCards(t, "AcAd4d5d"), mustCards(t, "2d2c2h")); err != nil {
		t.Fatal(err)
	}
}

// bruteForceOmaha ranks the best 2+3 hand with github.com/chehsunliu/poker,
// where a lower rank is a better hand.
func bruteForceOmaha(hole, board []poker.Card) int32 {
	best := int32(math.MaxInt32)
	five := make([]cp.Card, 5)
	for a := 0; a < len(hole); a++ {
		for b := a + 1; b < len(hole); b++ {
			for x := 0; x < len(board); x++ {
				for y := x + 1; y < len(board); y++ {
					for z := y + 1; z < len(board); z++ {
						for i, c := range []poker.Card{hole[a], hole[b], board[x], board[y], board[z]} {
							five[i] = cp.NewCard(c.String())
						}
						best = min(best, cp.Evaluate(five))
					}
				}
			}
		}
	}
	return best
}

func TestOmahaAgreesWithBruteForce(t *testing.T) {
	e := NewEvaluator(NewRules(poker.Omaha, false))
	rng := rand.New(rand.NewPCG(9, 9))
	cards := poker.AllCards()
	for range 1500 {
		deck.Shuffle(cards, rng)
		holeA, holeB, board := cards[0:4], cards[4:8], cards[8:13]
		sa, err := e.Strength(holeA, board)
		if err != nil {
			t.Fatal(err)
		}
		sb, err := e.Strength(holeB, board)
		if err != nil {
			t.Fatal(err)
		}
		ra, rb := bruteForceOmaha(holeA, board), bruteForceOmaha(holeB, board)
		got := sa.Score > sb.Score
		tie := sa.Score == sb.Score
		if tie != (ra == rb) || !tie && got != (ra < rb) {
			t.Fatalf("%s vs %s on %s: scores %d/%d, reference %d/%d",
				poker.FormatCards(holeA), poker.FormatCards(holeB), poker.FormatCards(board),
				sa.Score, sb.Score, ra, rb)
		}
	}
}
