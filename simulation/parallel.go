package simulation

import (
	"context"
	"errors"
	"sync"

	"github.com/luca-patrignani/poker-odds/domain/deck"
	"github.com/luca-patrignani/poker-odds/domain/poker"
	"github.com/luca-patrignani/poker-odds/domain/strength"
)

const (
	// sampleChunk is the number of random boards of one approximate job.
	sampleChunk = 4096
	// checkEvery is how many boards a worker evaluates between context
	// checks and progress updates.
	checkEvery = 1024
)

// job is one shard of a run. Exhaustive jobs enumerate the completions
// whose lowest unused index is first; approximate jobs draw boards
// at random from their own seed.
type job struct {
	first  int
	seed   []byte
	boards uint64
}

type runner struct {
	table   *Table
	rules   strength.Rules
	unused  []poker.Card
	missing int
	cfg     config
}

// worker owns everything a goroutine mutates while evaluating boards.
type worker struct {
	r         *runner
	eval      *strength.Evaluator
	tally     *tally
	board     []poker.Card
	pool      []poker.Card
	strengths []strength.HandStrength
	pending   uint64
}

func (r *runner) newWorker() *worker {
	w := &worker{
		r:         r,
		eval:      strength.NewEvaluator(r.rules),
		tally:     newTally(len(r.table.players)),
		board:     make([]poker.Card, 0, BoardSize),
		pool:      make([]poker.Card, len(r.unused)),
		strengths: make([]strength.HandStrength, len(r.table.players)),
	}
	w.board = append(w.board, r.table.board...)
	return w
}

// evaluate records the board made of the known cards and the dealt ones.
func (w *worker) evaluate(ctx context.Context, dealt []poker.Card) error {
	w.board = append(w.board[:len(w.r.table.board)], dealt...)
	for i, hole := range w.r.table.players {
		s, err := w.eval.Strength(hole, w.board)
		if err != nil {
			return err
		}
		w.strengths[i] = s
	}
	w.tally.record(w.strengths)
	w.pending++
	if w.pending == checkEvery {
		w.flush()
		return ctx.Err()
	}
	return nil
}

func (w *worker) flush() {
	if w.r.cfg.progress != nil && w.pending > 0 {
		w.r.cfg.progress.Add(w.pending)
	}
	w.pending = 0
}

// exhaustiveJobs shards the completions by the index of their lowest
// card in the unused pool.
func (r *runner) exhaustiveJobs() []job {
	if r.missing == 0 {
		return []job{{first: -1}}
	}
	jobs := make([]job, 0, len(r.unused)-r.missing+1)
	for first := 0; first+r.missing <= len(r.unused); first++ {
		jobs = append(jobs, job{first: first})
	}
	return jobs
}

func (r *runner) enumerate(ctx context.Context, w *worker, j job) error {
	if j.first < 0 {
		return w.evaluate(ctx, nil)
	}
	var err error
	deck.CombinationsFrom(r.unused, r.missing, j.first, func(dealt []poker.Card) bool {
		err = w.evaluate(ctx, dealt)
		return err == nil
	})
	return err
}

// sampleJobs splits the limit in chunks, each keyed by a seed drawn in
// order from the master source, so that a seeded run deals the same
// boards whatever the number of workers.
func (r *runner) sampleJobs() []job {
	master := deck.NewSource(r.cfg.seed)
	var jobs []job
	for left := r.cfg.limit; left > 0; {
		n := min(left, sampleChunk)
		jobs = append(jobs, job{seed: master.Seed(), boards: n})
		left -= n
	}
	return jobs
}

func (r *runner) sample(ctx context.Context, w *worker, j job) error {
	rng := deck.NewRand(j.seed)
	copy(w.pool, r.unused)
	for range j.boards {
		if err := w.evaluate(ctx, deck.Draw(w.pool, r.missing, rng)); err != nil {
			return err
		}
	}
	return nil
}

// run hands the jobs to a pool of workers and merges their tallies.
func (r *runner) run(ctx context.Context, jobs []job, work func(context.Context, *worker, job) error) (*tally, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan job, len(jobs))
	for _, j := range jobs {
		queue <- j
	}
	close(queue)

	numWorkers := min(r.cfg.workers, len(jobs))
	workers := make([]*worker, numWorkers)
	errs := make(chan error, numWorkers)
	var wg sync.WaitGroup
	for i := range workers {
		workers[i] = r.newWorker()
		wg.Add(1)
		go func(w *worker) {
			defer wg.Done()
			defer w.flush()
			for j := range queue {
				if err := ctx.Err(); err != nil {
					errs <- err
					return
				}
				if err := work(ctx, w, j); err != nil {
					errs <- err
					cancel()
					return
				}
			}
		}(workers[i])
	}
	wg.Wait()
	close(errs)
	// a failing worker cancels the others, report its error rather than theirs
	var first error
	for err := range errs {
		if first == nil || errors.Is(first, context.Canceled) {
			first = err
		}
	}
	if first != nil {
		return nil, first
	}

	sum := newTally(len(r.table.players))
	for _, w := range workers {
		sum.merge(w.tally)
	}
	return sum, nil
}
