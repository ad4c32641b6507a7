package strength

import "github.com/luca-patrignani/poker-odds/domain/poker"

// Hand is the best five-card combination found for a player.
// Cards are in significance order: grouped cards first, larger groups and
// higher ranks first, then kickers by descending rank; straights run from
// the top card down.
type Hand struct {
	Combination Combination
	Cards       [5]poker.Card

	values [5]uint8
	n      int
}

// HandStrength is a category with its score. Scores are comparable
// between hands evaluated under the same Rules only.
type HandStrength struct {
	Combination Combination
	Score       uint32
}

// Values returns the rank values the hand is scored with. They equal the
// card ranks except for an Ace played low in a straight.
func (h Hand) Values() [5]uint8 {
	return h.values
}

func (h *Hand) add(c poker.Card) {
	h.addAs(c, uint8(c.Rank()))
}

func (h *Hand) addAs(c poker.Card, value uint8) {
	h.Cards[h.n] = c
	h.values[h.n] = value
	h.n++
}

// addGroup adds the first size cards of a rank group.
func (h *Hand) addGroup(cards []poker.Card, size int) {
	for _, c := range cards[:size] {
		h.add(c)
	}
}

// fill completes the hand with the highest cards of the pool whose rank
// is not already used.
func (h *Hand) fill(p *Pool, used ...poker.Rank) {
next:
	for _, c := range p.cards {
		if h.n == len(h.Cards) {
			return
		}
		for _, r := range used {
			if c.Rank() == r {
				continue next
			}
		}
		h.add(c)
	}
}

// Score reduces a hand to one integer: the category precedence followed
// by the five played values as base-14 digits. A higher category always
// outscores a lower one whatever the kickers.
func (r Rules) Score(h Hand) uint32 {
	s := r.precedence[h.Combination]
	for _, v := range h.values {
		s = s*14 + uint32(v)
	}
	return s
}

// Strength returns the category and score of a hand.
func (r Rules) Strength(h Hand) HandStrength {
	return HandStrength{Combination: h.Combination, Score: r.Score(h)}
}
