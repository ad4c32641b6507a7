package simulation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
)

// ErrNotEnoughCards is returned when the unused pool cannot complete the
// board.
var ErrNotEnoughCards = errors.New("not enough cards left to complete the board")

// Plan describes the run GetResults would make with the same arguments.
type Plan struct {
	// Missing is the number of community cards left to deal.
	Missing int
	// Space is the number of distinct completions of the board,
	// saturating at math.MaxUint64.
	Space uint64
	// Exhaustive is set when every completion is evaluated.
	Exhaustive bool
	// Boards is the number of boards the run evaluates.
	Boards uint64
}

// Plan validates the table against the game and decides between an
// exhaustive and an approximate run.
func (t *Table) Plan(game poker.GameType, opts ...option) (Plan, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return t.plan(game, cfg)
}

func (t *Table) plan(game poker.GameType, cfg config) (Plan, error) {
	if err := t.validate(game); err != nil {
		return Plan{}, err
	}
	missing := BoardSize - len(t.board)
	unused := len(t.Unused(game))
	if unused < missing {
		return Plan{}, fmt.Errorf("%w: %d missing, %d unused", ErrNotEnoughCards, missing, unused)
	}
	p := Plan{Missing: missing, Space: deck.Binomial(unused, missing)}
	p.Exhaustive = cfg.exhaustive || p.Space <= cfg.limit
	p.Boards = cfg.limit
	if p.Exhaustive {
		p.Boards = p.Space
	}
	return p, nil
}

// GetResults deals the missing community cards and counts, for every
// player, the boards won, tied and the category made on each.
//
// The run is exhaustive, every completion of the board evaluated exactly
// once, when WithExhaustive is set or the number of completions does not
// exceed the limit. Otherwise it is approximate and evaluates limit
// boards drawn at random. The choice is made before any board is dealt.
//
// A cancelled context stops the workers and GetResults returns ctx.Err().
func (t *Table) GetResults(ctx context.Context, game poker.GameType, opts ...option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	plan, err := t.plan(game, cfg)
	if err != nil {
		return Result{}, err
	}

	r := runner{
		table:   t,
		rules:   strength.NewRules(game, cfg.tripsBeatStraight),
		unused:  t.Unused(game),
		missing: plan.Missing,
		cfg:     cfg,
	}
	cfg.logger.Debug("starting simulation",
		"game", game.String(),
		"players", len(t.players),
		"missing", plan.Missing,
		"unused", len(r.unused),
		"space", plan.Space,
		"exhaustive", plan.Exhaustive,
		"workers", cfg.workers,
	)

	start := time.Now()
	var sum *tally
	if plan.Exhaustive {
		sum, err = r.run(ctx, r.exhaustiveJobs(), r.enumerate)
	} else {
		sum, err = r.run(ctx, r.sampleJobs(), r.sample)
	}
	if err != nil {
		return Result{}, err
	}
	res := newResult(game, t, sum)
	res.Approximate = !plan.Exhaustive
	res.Elapsed = time.Since(start)
	cfg.logger.Debug("simulation finished", "iterations", res.Iterations, "elapsed", res.Elapsed)
	return res, nil
}
