package strength

import "github.com/luca-patrignani/poker-odds/domain/poker"

// bestStraight finds the highest run of five consecutive ranks among
// cards, which must be sorted by descending rank. The Ace also plays as
// the rank just below lowest, completing the wheel (A-2-3-4-5, or
// A-6-7-8-9 in short-deck).
func bestStraight(cards []poker.Card, lowest poker.Rank) (Hand, bool) {
	// at[r] is 1 + the position of the first card of rank r, 0 if absent
	var at [poker.Ace + 1]int
	for i := len(cards) - 1; i >= 0; i-- {
		at[cards[i].Rank()] = i + 1
	}
	low := int(lowest) - 1
	for top := int(poker.Ace); top >= low+4; top-- {
		var h Hand
		for v := top; v > top-5; v-- {
			pos := at[v]
			if v == low {
				pos = at[poker.Ace]
			}
			if pos == 0 {
				break
			}
			h.addAs(cards[pos-1], uint8(v))
		}
		if h.n == 5 {
			h.Combination = Straight
			return h, true
		}
	}
	return Hand{}, false
}

func straight(p *Pool) (Hand, bool) {
	return bestStraight(p.cards, p.low)
}
