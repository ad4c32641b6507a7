package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// Describe returns a human description of the best standard poker hand
// that can be made from 5 to 7 cards, e.g. "straight, seven high".
// Standard deck rankings only: short-deck and Omaha hands are not
// described correctly.
func Describe(cards []Card) (string, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return "", fmt.Errorf("can describe 5 to 7 cards, got %d", len(cards))
	}
	hand, err := LibraryCards(cards)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand)
}

// LibraryCards converts cards to the github.com/paulhankin/poker
// representation, where the Ace has rank 1.
func LibraryCards(cards []Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		rank := poker.Rank(c.rank)
		if c.rank == Ace {
			rank = poker.Rank(1)
		}
		card, err := poker.MakeCard(poker.Suit(c.suit), rank)
		if err != nil {
			return nil, fmt.Errorf("invalid card at idx %d: %w", i, err)
		}
		out[i] = card
	}
	return out, nil
}
