package simulation

import (
	"time"

	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
)

// PlayerResult is the outcome of a run for one player.
type PlayerResult struct {
	Hand         []poker.Card                    `json:"hand"`
	Wins         uint64                          `json:"wins"`
	Ties         uint64                          `json:"ties"`
	Combinations map[strength.Combination]uint64 `json:"combinations"`
}

// Result is the outcome of a run, players in seat order.
type Result struct {
	Game        poker.GameType `json:"-"`
	Players     []PlayerResult `json:"players"`
	Iterations  uint64         `json:"iterations"`
	Approximate bool           `json:"approximate"`
	Elapsed     time.Duration  `json:"-"`
}

// WinRate returns the share of boards won by player i.
func (r Result) WinRate(i int) float64 {
	return r.rate(r.Players[i].Wins)
}

// TieRate returns the share of boards player i tied on.
func (r Result) TieRate(i int) float64 {
	return r.rate(r.Players[i].Ties)
}

// CombinationRate returns the share of boards on which player i made c.
func (r Result) CombinationRate(i int, c strength.Combination) float64 {
	return r.rate(r.Players[i].Combinations[c])
}

func (r Result) rate(n uint64) float64 {
	if r.Iterations == 0 {
		return 0
	}
	return float64(n) / float64(r.Iterations)
}

func newResult(game poker.GameType, t *Table, sum *tally) Result {
	r := Result{
		Game:       game,
		Players:    make([]PlayerResult, len(t.players)),
		Iterations: sum.boards,
	}
	for i, p := range sum.players {
		combinations := map[strength.Combination]uint64{}
		for c, n := range p.combinations {
			if n > 0 {
				combinations[strength.Combination(c)] = n
			}
		}
		r.Players[i] = PlayerResult{
			Hand:         t.players[i],
			Wins:         p.wins,
			Ties:         p.ties,
			Combinations: combinations,
		}
	}
	return r
}
