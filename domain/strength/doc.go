// Package strength classifies poker hands and scores them.
//
// # Classification
//
// The cards available to a player are grouped into a Pool. Detectors, one
// per Combination, look for the best qualifying five cards in a pool.
// Rules order the detectors per game: Flush ranks above Full House in
// short-deck, and the short-deck house rule tripsBeatStraight swaps Three
// of a Kind and Straight.
//
// Omaha hands must use exactly two hole cards and three board cards. The
// Evaluator then builds a pool for every allowed 2+3 subset and runs each
// category check over all of them, so detectors never need to know about
// the composition rule.
//
// # Scoring
//
// A hand scores its category precedence (1 to 10) followed by its five
// played rank values as base-14 digits. Scores compare hands evaluated
// under the same Rules; equal scores are ties.
package strength
