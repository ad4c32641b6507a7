package strength

import "github.com/luca-patrignani/poker-odds/domain/poker"

// straightFlush returns the highest straight within one suit. An
// Ace-high straight flush is reported as RoyalFlush.
func straightFlush(p *Pool) (Hand, bool) {
	var best Hand
	found := false
	for _, cards := range p.bySuit {
		if len(cards) < 5 {
			continue
		}
		h, ok := bestStraight(cards, p.low)
		if ok && (!found || h.values[0] > best.values[0]) {
			best, found = h, true
		}
	}
	if !found {
		return Hand{}, false
	}
	best.Combination = StraightFlush
	if best.values[0] == uint8(poker.Ace) {
		best.Combination = RoyalFlush
	}
	return best, true
}

func royalFlush(p *Pool) (Hand, bool) {
	h, ok := straightFlush(p)
	if !ok || h.Combination != RoyalFlush {
		return Hand{}, false
	}
	return h, true
}

// flush returns the five highest cards of the best suit holding at least
// five cards.
func flush(p *Pool) (Hand, bool) {
	var best []poker.Card
	for _, cards := range p.bySuit {
		if len(cards) < 5 {
			continue
		}
		if best == nil || higherRanks(cards[:5], best[:5]) {
			best = cards
		}
	}
	if best == nil {
		return Hand{}, false
	}
	h := Hand{Combination: Flush}
	for _, c := range best[:5] {
		h.add(c)
	}
	return h, true
}

// higherRanks compares two rank sequences of equal length lexicographically.
func higherRanks(a, b []poker.Card) bool {
	for i := range a {
		if a[i].Rank() != b[i].Rank() {
			return a[i].Rank() > b[i].Rank()
		}
	}
	return false
}
