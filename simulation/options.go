package simulation

import (
	"log/slog"
	"runtime"
	"sync/atomic"
)

// DefaultLimit is the number of boards an approximate run evaluates when
// no limit is given.
const DefaultLimit = 100000

type config struct {
	limit             uint64
	exhaustive        bool
	tripsBeatStraight bool
	workers           int
	seed              []byte
	progress          *atomic.Uint64
	logger            *slog.Logger
}

type option func(config) config

func defaultConfig() config {
	return config{
		limit:   DefaultLimit,
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
}

// WithLimit sets the maximum number of boards of a run. A run whose whole
// board space fits in the limit is exhaustive, otherwise it samples limit
// boards. A zero limit keeps the default.
func WithLimit(limit uint64) option {
	return func(c config) config {
		if limit > 0 {
			c.limit = limit
		}
		return c
	}
}

// WithExhaustive forces the enumeration of every board regardless of the
// limit.
func WithExhaustive(exhaustive bool) option {
	return func(c config) config {
		c.exhaustive = exhaustive
		return c
	}
}

// WithTripsBeatStraight ranks Three of a Kind above Straight. Only
// short-deck hold'em is affected.
func WithTripsBeatStraight(tripsBeatStraight bool) option {
	return func(c config) config {
		c.tripsBeatStraight = tripsBeatStraight
		return c
	}
}

// WithWorkers sets the number of goroutines evaluating boards. Values
// below 1 keep the default of runtime.NumCPU().
func WithWorkers(workers int) option {
	return func(c config) config {
		if workers > 0 {
			c.workers = workers
		}
		return c
	}
}

// WithSeed makes the sampling of approximate runs reproducible. Runs with
// the same seed and limit evaluate the same boards, whatever the number
// of workers.
func WithSeed(seed []byte) option {
	return func(c config) config {
		c.seed = append([]byte(nil), seed...)
		return c
	}
}

// WithProgress adds the number of evaluated boards to counter while the
// run goes on.
func WithProgress(counter *atomic.Uint64) option {
	return func(c config) config {
		c.progress = counter
		return c
	}
}

// WithLogger sets the logger debug messages go to. A nil logger keeps
// the default one.
func WithLogger(logger *slog.Logger) option {
	return func(c config) config {
		if logger != nil {
			c.logger = logger
		}
		return c
	}
}
