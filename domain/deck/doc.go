// Package deck provides randomness and combinatorics over pools of cards.
//
// # Randomness
//
// Source is a rand.Source backed by a kyber XOF (blake2xb). Seeding it
// makes sampled simulations reproducible; an unseeded Source is keyed
// from the suite's cryptographic random stream. Seed derives child seeds
// so that parallel workers get independent, reproducible streams.
//
// # Combinatorics
//
// Binomial counts k-subsets, Combinations and CombinationsFrom enumerate
// them, Draw samples them uniformly.
package deck
