package resultfb

import (
	"errors"
	"fmt"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
	"github.com/luca-patrignani/poker-odds/simulation"
)

// ErrMalformed is returned when a buffer does not hold a Result.
var ErrMalformed = errors.New("malformed result buffer")

// Encode serializes a simulation result.
func Encode(res simulation.Result) []byte {
	builder := flatbuffers.NewBuilder(256)

	players := make([]flatbuffers.UOffsetT, len(res.Players))
	for i, p := range res.Players {
		hand := make([]byte, len(p.Hand))
		for j, c := range p.Hand {
			hand[j] = byte(c.Index())
		}
		handOffset := builder.CreateByteVector(hand)

		PlayerResultStartCombinationsVector(builder, strength.NumCombinations)
		for c := strength.NumCombinations - 1; c >= 0; c-- {
			builder.PrependUint64(p.Combinations[strength.Combination(c)])
		}
		combinations := builder.EndVector(strength.NumCombinations)

		PlayerResultStart(builder)
		PlayerResultAddHand(builder, handOffset)
		PlayerResultAddWins(builder, p.Wins)
		PlayerResultAddTies(builder, p.Ties)
		PlayerResultAddCombinations(builder, combinations)
		players[i] = PlayerResultEnd(builder)
	}

	// add in reverse order
	ResultStartPlayersVector(builder, len(players))
	for i := len(players) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(players[i])
	}
	playersVec := builder.EndVector(len(players))

	ResultStart(builder)
	ResultAddGame(builder, GameType(res.Game))
	ResultAddIterations(builder, res.Iterations)
	ResultAddApproximate(builder, res.Approximate)
	ResultAddElapsedNs(builder, res.Elapsed.Nanoseconds())
	ResultAddPlayers(builder, playersVec)
	builder.Finish(ResultEnd(builder))
	return builder.FinishedBytes()
}

// Decode reads a result written by Encode. Buffers that do not hold a
// Result yield ErrMalformed.
func Decode(buf []byte) (res simulation.Result, err error) {
	if len(buf) < 2*flatbuffers.SizeUOffsetT {
		return simulation.Result{}, fmt.Errorf("%w: %d bytes", ErrMalformed, len(buf))
	}
	// offsets are read from the buffer itself and indexed without checks
	defer func() {
		if r := recover(); r != nil {
			res, err = simulation.Result{}, fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()
	fb := GetRootAsResult(buf, 0)
	if _, ok := EnumNamesGameType[fb.Game()]; !ok {
		return simulation.Result{}, fmt.Errorf("%w: unknown game %v", ErrMalformed, fb.Game())
	}
	if n := fb.PlayersLength(); n < 0 || n*flatbuffers.SizeUOffsetT > len(buf) {
		return simulation.Result{}, fmt.Errorf("%w: %d players", ErrMalformed, n)
	}
	res = simulation.Result{
		Game:        poker.GameType(fb.Game()),
		Iterations:  fb.Iterations(),
		Approximate: fb.Approximate(),
		Elapsed:     time.Duration(fb.ElapsedNs()),
		Players:     make([]simulation.PlayerResult, fb.PlayersLength()),
	}
	var p PlayerResult
	for i := range res.Players {
		fb.Players(&p, i)
		if n := p.HandLength(); n < 0 || n > len(buf) {
			return simulation.Result{}, fmt.Errorf("%w: player %d: %d hole cards", ErrMalformed, i+1, n)
		}
		hand := make([]poker.Card, p.HandLength())
		for j := range hand {
			c, err := poker.IntToCard(int(p.Hand(j)))
			if err != nil {
				return simulation.Result{}, fmt.Errorf("%w: player %d: %v", ErrMalformed, i+1, err)
			}
			hand[j] = c
		}
		if p.CombinationsLength() > strength.NumCombinations {
			return simulation.Result{}, fmt.Errorf("%w: player %d: %d categories", ErrMalformed, i+1, p.CombinationsLength())
		}
		combinations := map[strength.Combination]uint64{}
		for c := range p.CombinationsLength() {
			if n := p.Combinations(c); n > 0 {
				combinations[strength.Combination(c)] = n
			}
		}
		res.Players[i] = simulation.PlayerResult{
			Hand:         hand,
			Wins:         p.Wins(),
			Ties:         p.Ties(),
			Combinations: combinations,
		}
	}
	return res, nil
}
