package strength

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// ErrTooFewCards is returned when the cards cannot form a five-card hand
// under the composition rule.
var ErrTooFewCards = errors.New("too few cards")

type detector func(p *Pool) (Hand, bool)

var detectors = [NumCombinations]detector{
	HighCard:      highCard,
	OnePair:       onePair,
	TwoPairs:      twoPairs,
	ThreeOfAKind:  threeOfAKind,
	Straight:      straight,
	Flush:         flush,
	FullHouse:     fullHouse,
	FourOfAKind:   fourOfAKind,
	StraightFlush: straightFlush,
	RoyalFlush:    royalFlush,
}

type check struct {
	combination Combination
	detect      detector
}

// Evaluator finds the best hand of a player under a set of Rules.
// It keeps scratch buffers between calls and is not safe for concurrent
// use: give each goroutine its own Evaluator.
type Evaluator struct {
	rules  Rules
	checks []check

	pool       Pool
	candidates []Pool
	subsets    map[[2]int][][]int
}

// NewEvaluator builds the ordered list of category checks for the rules.
func NewEvaluator(rules Rules) *Evaluator {
	e := &Evaluator{rules: rules, subsets: map[[2]int][][]int{}}
	for _, c := range rules.order {
		e.checks = append(e.checks, check{combination: c, detect: detectors[c]})
	}
	return e
}

// Rules returns the rules the evaluator was built with.
func (e *Evaluator) Rules() Rules {
	return e.rules
}

// Best returns the best hand the player can make from its hole cards and
// the board.
func (e *Evaluator) Best(hole, board []poker.Card) (Hand, error) {
	comp := e.rules.Composition
	if comp.Free() {
		if len(hole)+len(board) < 5 {
			return Hand{}, fmt.Errorf("%w: need 5 cards, got %d", ErrTooFewCards, len(hole)+len(board))
		}
		return e.bestOf(hole, board), nil
	}
	if len(hole) < comp.Hole || len(board) < comp.Board || comp.Hole+comp.Board != 5 {
		return Hand{}, fmt.Errorf("%w: need %d hole and %d board cards, got %d and %d",
			ErrTooFewCards, comp.Hole, comp.Board, len(hole), len(board))
	}
	return e.bestComposed(hole, board), nil
}

// Strength is Best reduced to its category and score.
func (e *Evaluator) Strength(hole, board []poker.Card) (HandStrength, error) {
	h, err := e.Best(hole, board)
	if err != nil {
		return HandStrength{}, err
	}
	return e.rules.Strength(h), nil
}

func (e *Evaluator) bestOf(hole, board []poker.Card) Hand {
	e.pool.reset(e.rules.Lowest, hole, board)
	for _, c := range e.checks {
		if h, ok := c.detect(&e.pool); ok {
			return h
		}
	}
	// unreachable: high card qualifies with five cards
	return Hand{}
}

// bestComposed runs every category check over all the candidate pools
// allowed by the composition, strongest category first, and returns the
// highest scoring candidate of the first category found.
func (e *Evaluator) bestComposed(hole, board []poker.Card) Hand {
	comp := e.rules.Composition
	holeSets := e.indexSubsets(len(hole), comp.Hole)
	boardSets := e.indexSubsets(len(board), comp.Board)

	n := len(holeSets) * len(boardSets)
	if cap(e.candidates) < n {
		e.candidates = make([]Pool, n)
	}
	e.candidates = e.candidates[:n]
	var hs, bs [5]poker.Card
	i := 0
	for _, hi := range holeSets {
		for k, j := range hi {
			hs[k] = hole[j]
		}
		for _, bi := range boardSets {
			for k, j := range bi {
				bs[k] = board[j]
			}
			e.candidates[i].reset(e.rules.Lowest, hs[:len(hi)], bs[:len(bi)])
			i++
		}
	}

	for _, c := range e.checks {
		var best Hand
		var bestScore uint32
		found := false
		for i := range e.candidates {
			h, ok := c.detect(&e.candidates[i])
			if !ok {
				continue
			}
			if s := e.rules.Score(h); !found || s > bestScore {
				best, bestScore, found = h, s, true
			}
		}
		if found {
			return best
		}
	}
	return Hand{}
}

// indexSubsets returns every k-subset of 0..n-1, cached per (n, k).
func (e *Evaluator) indexSubsets(n, k int) [][]int {
	key := [2]int{n, k}
	if s, ok := e.subsets[key]; ok {
		return s
	}
	var out [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i <= n-(k-len(cur)); i++ {
			rec(i+1, append(cur, i))
		}
	}
	rec(0, make([]int, 0, k))
	e.subsets[key] = out
	return out
}
