package deck

import (
	"math/rand/v2"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// Shuffle permutes the cards in place.
func Shuffle(cards []poker.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// Draw picks k cards uniformly without replacement from pool and returns
// them as pool[:k]. The pool is reordered in place, it keeps holding the
// same cards so it can be drawn from again.
func Draw(pool []poker.Card, k int, rng *rand.Rand) []poker.Card {
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
