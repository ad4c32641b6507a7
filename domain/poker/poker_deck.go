package poker

import (
	"errors"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// AllCards returns the 52 cards of a full deck, suit major and ranks
// ascending within each suit.
func AllCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return cards
}

// ShortDeckCards returns the 36 cards of a short deck (ranks 6 through Ace).
func ShortDeckCards() []Card {
	cards := make([]Card, 0, 36)
	for _, s := range Suits {
		for r := Six; r <= Ace; r++ {
			cards = append(cards, Card{suit: s, rank: r})
		}
	}
	return cards
}

// DeckFor returns the deck the game is played with.
func DeckFor(g GameType) []Card {
	if g == ShortdeckHoldem {
		return ShortDeckCards()
	}
	return AllCards()
}

// InDeck reports whether the card belongs to the deck of the game.
func InDeck(g GameType, c Card) bool {
	return c.Valid() && c.rank >= g.LowestRank()
}

// IntToCard converts a card index (0-51) back to a Card. This is the
// inverse operation of Card.Index.
//
// Card numbering:
//   - 0-12: Clubs (Two through Ace)
//   - 13-25: Diamonds (Two through Ace)
//   - 26-38: Hearts (Two through Ace)
//   - 39-51: Spades (Two through Ace)
//
// Returns the corresponding Card or an error if the index is outside the valid range.
func IntToCard(index int) (Card, error) {
	if index < 0 || index >= DeckSize {
		return Card{}, errors.New("the card to convert have an invalid value")
	}
	return NewCard(Suit(index/13), Rank(index%13)+Two)
}

// CardSet is a set of cards stored as a bitmask over Card.Index.
type CardSet uint64

// NewCardSet builds the set of the given cards.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Add(c)
	}
	return s
}

// Add returns the set with c added.
func (s CardSet) Add(c Card) CardSet {
	return s | 1<<uint(c.Index())
}

// Contains reports whether c is in the set.
func (s CardSet) Contains(c Card) bool {
	return s&(1<<uint(c.Index())) != 0
}

// Without returns the cards of deck that are not in the set, keeping the
// deck order.
func (s CardSet) Without(deck []Card) []Card {
	out := make([]Card, 0, len(deck))
	for _, c := range deck {
		if !s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}
