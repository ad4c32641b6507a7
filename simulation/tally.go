package simulation

import "github.com/luca-patrignani/poker-odds/domain/strength"

type playerTally struct {
	wins         uint64
	ties         uint64
	combinations [strength.NumCombinations]uint64
}

// tally accumulates the outcome of the boards evaluated by one shard.
// Tallies of disjoint shards are combined with merge, in any order.
type tally struct {
	boards  uint64
	players []playerTally
}

func newTally(players int) *tally {
	return &tally{players: make([]playerTally, players)}
}

// record adds one board given the strength of every player on it. The
// players with the highest score win, or tie when there are several.
func (t *tally) record(strengths []strength.HandStrength) {
	var max uint32
	sharing := 0
	for _, s := range strengths {
		switch {
		case s.Score > max:
			max, sharing = s.Score, 1
		case s.Score == max:
			sharing++
		}
	}
	for i, s := range strengths {
		p := &t.players[i]
		p.combinations[s.Combination]++
		if s.Score != max {
			continue
		}
		if sharing == 1 {
			p.wins++
		} else {
			p.ties++
		}
	}
	t.boards++
}

func (t *tally) merge(o *tally) {
	t.boards += o.boards
	for i := range t.players {
		p, q := &t.players[i], &o.players[i]
		p.wins += q.wins
		p.ties += q.ties
		for c := range p.combinations {
			p.combinations[c] += q.combinations[c]
		}
	}
}
