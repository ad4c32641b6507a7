// Package poker implements the card model shared by the hand classifier
// and the simulation engine.
//
// # Core Types
//
// Card: An immutable (suit, rank) value. Ranks run from 2 to 14 with the
// Ace as 14, so rank values can be used directly in score arithmetic.
//
// GameType: Texas hold'em, short-deck hold'em or Omaha. It selects the
// deck, the number of hole cards and the lowest rank.
//
// CardSet: A bitmask over the 52 cards, used to compute unused pools.
//
// # Notation
//
// Cards are written as two characters, rank then suit, case-insensitive:
// "Ac" is the ace of clubs, "Td" the ten of diamonds. Several cards are
// written back to back ("Ac2c"). ParseCards and FormatCards convert
// between the notation and Card values.
//
// # Decks
//
// AllCards returns the 52 card deck, ShortDeckCards the 36 card deck used
// by short-deck hold'em where ranks 2 to 5 are removed.
package poker
