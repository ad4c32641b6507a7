package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Suit of a card. The numeric values follow the clubs, diamonds, hearts,
// spades order used by github.com/paulhankin/poker.
type Suit uint8

const (
	Club    Suit = 0 // ♣ (black)
	Diamond Suit = 1 // ♦ (red)
	Heart   Suit = 2 // ♥ (red)
	Spade   Suit = 3 // ♠ (black)
)

// Suits lists every suit once.
var Suits = [...]Suit{Club, Diamond, Heart, Spade}

// Rank of a card, 2 through 14 where 14 is the Ace.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A (high in value, low in the wheel)
)

// Card represents a playing card with suit and rank.
// The zero Card is not a valid card.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: 2-14 (Jack=11, Queen=12, King=13, Ace=14)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("%w: suit %d, rank %d", ErrInvalidCard, suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}


// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card (2-14).
func (c Card) Rank() Rank {
	return c.rank
}

// Index maps the card to 0..51, suit major. It is stable and used for
// bitmask bookkeeping of card sets.
func (c Card) Index() int {
	return int(c.suit)*13 + int(c.rank-Two)
}

// Valid reports whether the card was built by NewCard or a parser.
func (c Card) Valid() bool {
	return c.suit <= Spade && c.rank >= Two && c.rank <= Ace
}

// String returns the two character token of the card, e.g. "Ac".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{rankChars[c.rank], suitChars[c.suit]})
}

// Pretty returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠), coloured for the terminal.
func (c Card) Pretty() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}
	if !c.Valid() {
		return "▓"
	}
	return string(rankChars[c.rank]) + suit
}

// String returns the upper case rank character, "T" for ten.
func (r Rank) String() string {
	if r < Two || r > Ace {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return string(rankChars[r])
}

func (s Suit) String() string {
	switch s {
	case Club:
		return "clubs"
	case Diamond:
		return "diamonds"
	case Heart:
		return "hearts"
	case Spade:
		return "spades"
	}
	return fmt.Sprintf("Suit(%d)", uint8(s))
}

var rankChars = [...]byte{
	Two: '2', Three: '3', Four: '4', Five: '5', Six: '6', Seven: '7', Eight: '8',
	Nine: '9', Ten: 'T', Jack: 'J', Queen: 'Q', King: 'K', Ace: 'A',
}

var suitChars = [...]byte{Club: 'c', Diamond: 'd', Heart: 'h', Spade: 's'}
