package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is wrapped by every card parsing and construction error.
var ErrInvalidCard = errors.New("invalid card")

// ParseCard parses a two character token, rank then suit, case-insensitive.
// Ranks are 2-9, T, J, Q, K, A and suits H, C, D, S.
func ParseCard(token string) (Card, error) {
	chars := []rune(token)
	if len(chars) != 2 {
		return Card{}, fmt.Errorf("%w %q: expected 2 characters, got %d", ErrInvalidCard, token, len(chars))
	}
	rank, err := parseRank(chars[0])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, token, err)
	}
	suit, err := parseSuit(chars[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w %q: %v", ErrInvalidCard, token, err)
	}
	return Card{suit: suit, rank: rank}, nil
}

// ParseCards splits s into two character tokens and parses each of them,
// so "Ac2c" yields the ace and the two of clubs. The empty string yields
// no cards.
func ParseCards(s string) ([]Card, error) {
	chars := []rune(strings.TrimSpace(s))
	cards := make([]Card, 0, (len(chars)+1)/2)
	for i := 0; i < len(chars); i += 2 {
		end := min(i+2, len(chars))
		c, err := ParseCard(string(chars[i:end]))
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards is the inverse of ParseCards.
func FormatCards(cards []Card) string {
	var b strings.Builder
	b.Grow(2 * len(cards))
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

func parseRank(ch rune) (Rank, error) {
	switch ch {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(ch - '0'), nil
	case 't', 'T':
		return Ten, nil
	case 'j', 'J':
		return Jack, nil
	case 'q', 'Q':
		return Queen, nil
	case 'k', 'K':
		return King, nil
	case 'a', 'A':
		return Ace, nil
	}
	return 0, fmt.Errorf("no rank matches %q", ch)
}

func parseSuit(ch rune) (Suit, error) {
	switch ch {
	case 'h', 'H':
		return Heart, nil
	case 'c', 'C':
		return Club, nil
	case 'd', 'D':
		return Diamond, nil
	case 's', 'S':
		return Spade, nil
	}
	return 0, fmt.Errorf("no suit matches %q", ch)
}

// MarshalText encodes the card in its two-character notation.
func (c Card) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCard, c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses a card written by MarshalText.
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = card
	return nil
}
