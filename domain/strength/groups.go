package strength

func fourOfAKind(p *Pool) (Hand, bool) {
	r, ok := p.highestGroup(4, 0)
	if !ok {
		return Hand{}, false
	}
	h := Hand{Combination: FourOfAKind}
	h.addGroup(p.byRank[r], 4)
	h.fill(p, r)
	return h, true
}

// fullHouse takes the highest three of a kind and the highest other rank
// holding at least two cards, which may itself be a three of a kind.
func fullHouse(p *Pool) (Hand, bool) {
	trips, ok := p.highestGroup(3, 0)
	if !ok {
		return Hand{}, false
	}
	pair, ok := p.highestGroup(2, trips)
	if !ok {
		return Hand{}, false
	}
	h := Hand{Combination: FullHouse}
	h.addGroup(p.byRank[trips], 3)
	h.addGroup(p.byRank[pair], 2)
	return h, true
}

func threeOfAKind(p *Pool) (Hand, bool) {
	r, ok := p.highestGroup(3, 0)
	if !ok {
		return Hand{}, false
	}
	h := Hand{Combination: ThreeOfAKind}
	h.addGroup(p.byRank[r], 3)
	h.fill(p, r)
	return h, true
}

func twoPairs(p *Pool) (Hand, bool) {
	high, ok := p.highestGroup(2, 0)
	if !ok {
		return Hand{}, false
	}
	low, ok := p.highestGroup(2, high)
	if !ok {
		return Hand{}, false
	}
	h := Hand{Combination: TwoPairs}
	h.addGroup(p.byRank[high], 2)
	h.addGroup(p.byRank[low], 2)
	h.fill(p, high, low)
	return h, true
}

func onePair(p *Pool) (Hand, bool) {
	r, ok := p.highestGroup(2, 0)
	if !ok {
		return Hand{}, false
	}
	h := Hand{Combination: OnePair}
	h.addGroup(p.byRank[r], 2)
	h.fill(p, r)
	return h, true
}

// highCard always qualifies once the pool holds five cards.
func highCard(p *Pool) (Hand, bool) {
	if len(p.cards) < 5 {
		return Hand{}, false
	}
	h := Hand{Combination: HighCard}
	h.fill(p)
	return h, true
}
