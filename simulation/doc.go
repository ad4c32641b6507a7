// Package simulation computes the equity of poker hands by dealing the
// missing community cards.
//
// # Usage
//
//	table, err := simulation.NewTable(players, board, dead)
//	if err != nil {
//		return err
//	}
//	res, err := table.GetResults(ctx, poker.TexasHoldem,
//		simulation.WithLimit(100000),
//		simulation.WithWorkers(4),
//	)
//
// # Exhaustive and approximate runs
//
// A run enumerates every completion of the board when their number fits
// in the limit, or when WithExhaustive is given. Otherwise it draws limit
// boards uniformly at random, and Result.Approximate is set.
//
// # Parallelism
//
// Boards are evaluated by a pool of workers. Each worker keeps its own
// evaluator and counters, merged by addition once every worker is done,
// so the number of workers never changes an exhaustive result. Random
// boards are dealt in fixed-size chunks, each seeded in order from the
// run's master source: with WithSeed an approximate run is reproducible
// whatever the number of workers.
package simulation
