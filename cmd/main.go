package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/pterm/pterm"
)

const (
	formatText        = "text"
	formatJSON        = "json"
	formatFlatbuffers = "flatbuffers"
)

var errUsage = errors.New("usage")

// playerList collects the repeated -player flag.
type playerList []string

func (p *playerList) String() string {
	return strings.Join(*p, ",")
}

func (p *playerList) Set(s string) error {
	*p = append(*p, s)
	return nil
}

type options struct {
	game              string
	board             string
	dead              string
	players           playerList
	limit             uint64
	exhaustive        bool
	tripsBeatStraight bool
	seed              string
	workers           int
	format            string
	describe          bool
	progress          bool
	verbose           bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("poker-odds", flag.ContinueOnError)
	fs.SetOutput(output)
	for _, name := range []string{"game", "g"} {
		fs.StringVar(&o.game, name, "texas_holdem", "select between texas_holdem, shortdeck_holdem and omaha")
	}
	for _, name := range []string{"board", "b"} {
		fs.StringVar(&o.board, name, "", "community cards (ex. 5sTd9cTh)")
	}
	for _, name := range []string{"player", "p"} {
		fs.Var(&o.players, name, "player hand (ex. AcKh), repeat for every player")
	}
	for _, name := range []string{"limit", "l"} {
		fs.Uint64Var(&o.limit, name, 100000, "limit number of iterations")
	}
	for _, name := range []string{"exhaustive", "e"} {
		fs.BoolVar(&o.exhaustive, name, false, "run all possible board combinations, regardless of the limit")
	}
	for _, name := range []string{"dead", "d"} {
		fs.StringVar(&o.dead, name, "", "dead cards to exclude from the calculation (ex. 2s2d)")
	}
	for _, name := range []string{"tripsbeatstraight", "t"} {
		fs.BoolVar(&o.tripsBeatStraight, name, false, "three of a kind beats straight, only for shortdeck_holdem")
	}
	for _, name := range []string{"verbose", "v"} {
		fs.BoolVar(&o.verbose, name, false, "debug logging")
	}
	fs.StringVar(&o.seed, "seed", "", "hex or text seed for reproducible sampling")
	fs.IntVar(&o.workers, "workers", 0, "worker goroutines (default the number of CPUs)")
	fs.StringVar(&o.format, "format", formatText, "output format: text, json or flatbuffers")
	fs.BoolVar(&o.describe, "describe", false, "describe every hand when the texas_holdem board is complete")
	fs.BoolVar(&o.progress, "progress", false, "show a progress bar")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	switch o.format {
	case formatText, formatJSON, formatFlatbuffers:
	default:
		return options{}, fmt.Errorf("%w: unknown format %q", errUsage, o.format)
	}
	return o, nil
}

// seedBytes decodes a hex seed, any other string is used as is.
func (o options) seedBytes() []byte {
	if o.seed == "" {
		return nil
	}
	if b, err := hex.DecodeString(o.seed); err == nil {
		return b
	}
	return []byte(o.seed)
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	pLogger := &pterm.DefaultLogger
	if err == nil && o.verbose {
		pLogger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDebug)
	}
	// Create a new slog logger with the PTerm handler
	logger := slog.New(pterm.NewSlogHandler(pLogger))
	if err != nil {
		logger.Error(err.Error())
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, o, os.Stdout, os.Stderr, logger); err != nil {
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}
