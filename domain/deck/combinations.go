package deck

import (
	"math"
	"math/bits"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// Binomial returns the number of k-subsets of n elements, saturating at
// math.MaxUint64. The running value after step i is C(n, i+1), never
// above the result, and the product is kept in 128 bits, so the result
// is exact whenever it fits in a uint64.
func Binomial(n, k int) uint64 {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := uint64(1)
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(r, uint64(n-i))
		if hi >= uint64(i+1) {
			return math.MaxUint64
		}
		r, _ = bits.Div64(hi, lo, uint64(i+1))
	}
	return r
}

// Combinations calls fn once for every k-subset of cards, in
// lexicographic index order. The slice passed to fn is reused between
// calls. Enumeration stops early when fn returns false, and Combinations
// then returns false.
func Combinations(cards []poker.Card, k int, fn func([]poker.Card) bool) bool {
	if k == 0 {
		return fn(nil)
	}
	for first := 0; first+k <= len(cards); first++ {
		if !CombinationsFrom(cards, k, first, fn) {
			return false
		}
	}
	return true
}

// CombinationsFrom is Combinations restricted to the subsets whose lowest
// index is first. The subsets for first = 0 .. len(cards)-k partition
// the whole space, which is how the simulation shards exhaustive runs.
func CombinationsFrom(cards []poker.Card, k int, first int, fn func([]poker.Card) bool) bool {
	n := len(cards)
	if k == 0 || first < 0 || first+k > n {
		return true
	}
	out := make([]poker.Card, k)
	out[0] = cards[first]
	m := k - 1
	if m == 0 {
		return fn(out)
	}
	idx := make([]int, m)
	for i := range idx {
		idx[i] = first + 1 + i
	}
	for {
		for i, j := range idx {
			out[i+1] = cards[j]
		}
		if !fn(out) {
			return false
		}
		// advance the rightmost index that still has room
		i := m - 1
		for i >= 0 && idx[i] == n-m+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < m; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
