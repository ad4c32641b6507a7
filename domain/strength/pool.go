package strength

import "github.com/luca-patrignani/poker-odds/domain/poker"

// Pool holds the cards a hand can be built from, grouped by suit and by
// rank. Every list is sorted by descending rank.
type Pool struct {
	cards  []poker.Card
	bySuit [4][]poker.Card
	byRank [poker.Ace + 1][]poker.Card
	low    poker.Rank
}

// NewPool groups the given cards. lowest is the lowest rank of the deck,
// the Ace completes a straight just below it.
func NewPool(lowest poker.Rank, cards ...[]poker.Card) *Pool {
	p := &Pool{}
	p.reset(lowest, cards...)
	return p
}

func (p *Pool) reset(lowest poker.Rank, groups ...[]poker.Card) {
	p.low = lowest
	p.cards = p.cards[:0]
	for _, g := range groups {
		p.cards = append(p.cards, g...)
	}
	// insertion sort, pools hold at most a handful of cards
	for i := 1; i < len(p.cards); i++ {
		for j := i; j > 0 && p.cards[j].Rank() > p.cards[j-1].Rank(); j-- {
			p.cards[j], p.cards[j-1] = p.cards[j-1], p.cards[j]
		}
	}
	for s := range p.bySuit {
		p.bySuit[s] = p.bySuit[s][:0]
	}
	for r := range p.byRank {
		p.byRank[r] = p.byRank[r][:0]
	}
	for _, c := range p.cards {
		p.bySuit[c.Suit()] = append(p.bySuit[c.Suit()], c)
		p.byRank[c.Rank()] = append(p.byRank[c.Rank()], c)
	}
}

// Cards returns the pooled cards by descending rank.
func (p *Pool) Cards() []poker.Card {
	return p.cards
}

// Suit returns the pooled cards of a suit by descending rank.
func (p *Pool) Suit(s poker.Suit) []poker.Card {
	return p.bySuit[s]
}

// Rank returns the pooled cards of a rank.
func (p *Pool) Rank(r poker.Rank) []poker.Card {
	return p.byRank[r]
}

// highestGroup returns the highest rank, other than except, with at least
// size cards. except is 0 when no rank is excluded.
func (p *Pool) highestGroup(size int, except poker.Rank) (poker.Rank, bool) {
	for r := poker.Ace; r >= poker.Two; r-- {
		if r != except && len(p.byRank[r]) >= size {
			return r, true
		}
	}
	return 0, false
}
