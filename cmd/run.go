package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
	"github.com/luca-patrignani/poker-odds/resultfb"
	"github.com/luca-patrignani/poker-odds/simulation"
)

// input is the parsed content of the card flags.
type input struct {
	game    poker.GameType
	players [][]poker.Card
	board   []poker.Card
	dead    []poker.Card
}

func parseInput(o options) (input, error) {
	var in input
	var err error
	if in.game, err = poker.ParseGameType(o.game); err != nil {
		return input{}, err
	}
	for i, p := range o.players {
		hand, err := poker.ParseCards(p)
		if err != nil {
			return input{}, fmt.Errorf("player %d: %w", i+1, err)
		}
		in.players = append(in.players, hand)
	}
	if in.board, err = poker.ParseCards(o.board); err != nil {
		return input{}, fmt.Errorf("board: %w", err)
	}
	if in.dead, err = poker.ParseCards(o.dead); err != nil {
		return input{}, fmt.Errorf("dead cards: %w", err)
	}
	return in, nil
}

// run computes the equity of the hands described by o and writes it to
// stdout in the chosen format. Progress is reported on status.
func run(ctx context.Context, o options, stdout, status io.Writer, logger *slog.Logger) error {
	in, err := parseInput(o)
	if err != nil {
		return err
	}
	if o.tripsBeatStraight && in.game != poker.ShortdeckHoldem {
		logger.Warn("tripsbeatstraight only applies to shortdeck_holdem", "game", in.game.String())
	}
	table, err := simulation.NewTable(in.players, in.board, in.dead)
	if err != nil {
		return err
	}
	plan, err := table.Plan(in.game, simulation.WithLimit(o.limit), simulation.WithExhaustive(o.exhaustive))
	if err != nil {
		return err
	}
	logger.Debug("simulation plan", "boards", plan.Boards, "exhaustive", plan.Exhaustive, "space", plan.Space)

	var counter atomic.Uint64
	stopProgress := func(error) {}
	switch {
	case o.progress:
		stopProgress, err = startProgressbar(status, &counter, plan.Boards)
	case o.format == formatText:
		stopProgress, err = startSpinner(status, plan)
	}
	if err != nil {
		return err
	}
	res, err := table.GetResults(ctx, in.game,
		simulation.WithLimit(o.limit),
		simulation.WithExhaustive(o.exhaustive),
		simulation.WithTripsBeatStraight(o.tripsBeatStraight),
		simulation.WithWorkers(o.workers),
		simulation.WithSeed(o.seedBytes()),
		simulation.WithProgress(&counter),
		simulation.WithLogger(logger),
	)
	stopProgress(err)
	if err != nil {
		return err
	}

	descriptions := describeHands(o, in, logger)
	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(newResultView(in, res, descriptions))
	case formatFlatbuffers:
		_, err := stdout.Write(resultfb.Encode(res))
		return err
	}
	return renderText(stdout, in, strength.NewRules(in.game, o.tripsBeatStraight), res, descriptions)
}

// describeHands names the hand of every player on a complete
// texas_holdem board, when -describe is set.
func describeHands(o options, in input, logger *slog.Logger) []string {
	if !o.describe {
		return nil
	}
	if in.game != poker.TexasHoldem || len(in.board) != simulation.BoardSize {
		logger.Warn("describe needs a complete texas_holdem board", "board", poker.FormatCards(in.board))
		return nil
	}
	out := make([]string, len(in.players))
	for i, hand := range in.players {
		cards := append(append([]poker.Card(nil), hand...), in.board...)
		desc, err := poker.Describe(cards)
		if err != nil {
			logger.Warn("cannot describe hand", "player", i+1, "error", err)
			continue
		}
		out[i] = desc
	}
	return out
}

func startSpinner(w io.Writer, plan simulation.Plan) (func(error), error) {
	kind := "random"
	if plan.Exhaustive {
		kind = "all"
	}
	spinner, err := pterm.DefaultSpinner.WithWriter(w).Start(fmt.Sprintf("Simulating %s %d boards", kind, plan.Boards))
	if err != nil {
		return nil, err
	}
	start := time.Now()
	return func(err error) {
		if err != nil {
			spinner.Fail(err.Error())
			return
		}
		spinner.Success(fmt.Sprintf("Simulated %d boards in %v", plan.Boards, time.Since(start).Round(time.Millisecond)))
	}, nil
}

// startProgressbar follows counter on a pterm progress bar until the
// returned function is called.
func startProgressbar(w io.Writer, counter *atomic.Uint64, total uint64) (func(error), error) {
	bar, err := pterm.DefaultProgressbar.
		WithTotal(int(min(total, 1<<31-1))).
		WithTitle("Simulating boards").
		WithWriter(w).
		Start()
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		var shown uint64
		update := func() {
			n := counter.Load()
			if n > shown {
				bar.Add(int(n - shown))
				shown = n
			}
		}
		for {
			select {
			case <-done:
				update()
				return
			case <-ticker.C:
				update()
			}
		}
	}()
	return func(error) {
		close(done)
		<-stopped
		bar.Stop()
	}, nil
}
