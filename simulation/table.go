package simulation

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/poker-odds/domain/poker"
)

// BoardSize is the number of community cards of a complete board.
const BoardSize = 5

var (
	ErrNoPlayers     = errors.New("no players")
	ErrBoardSize     = errors.New("too many board cards")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrHoleCards     = errors.New("wrong number of hole cards")
	ErrCardNotInDeck = errors.New("card not in deck")
)

// Table is the known state of a hand: the hole cards of each player, the
// community cards already dealt and the dead cards. A card appears at
// most once across all of them.
type Table struct {
	players [][]poker.Card
	board   []poker.Card
	dead    []poker.Card
	used    poker.CardSet
}

// NewTable checks that the cards are structurally valid and copies them.
// Checks that depend on the game type are done by GetResults.
func NewTable(players [][]poker.Card, board []poker.Card, dead []poker.Card) (*Table, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(board) > BoardSize {
		return nil, fmt.Errorf("%w: got %d, at most %d", ErrBoardSize, len(board), BoardSize)
	}
	t := &Table{
		players: make([][]poker.Card, len(players)),
		board:   append([]poker.Card(nil), board...),
		dead:    append([]poker.Card(nil), dead...),
	}
	for i, hole := range players {
		t.players[i] = append([]poker.Card(nil), hole...)
		for _, c := range hole {
			if err := t.use(c); err != nil {
				return nil, fmt.Errorf("player %d: %w", i+1, err)
			}
		}
	}
	for _, c := range board {
		if err := t.use(c); err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	for _, c := range dead {
		if err := t.use(c); err != nil {
			return nil, fmt.Errorf("dead cards: %w", err)
		}
	}
	return t, nil
}

func (t *Table) use(c poker.Card) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %v", poker.ErrInvalidCard, c)
	}
	if t.used.Contains(c) {
		return fmt.Errorf("%w: %v", ErrDuplicateCard, c)
	}
	t.used = t.used.Add(c)
	return nil
}

// Players returns the hole cards of every player, in seat order.
func (t *Table) Players() [][]poker.Card {
	return t.players
}

// Board returns the known community cards.
func (t *Table) Board() []poker.Card {
	return t.board
}

// Dead returns the cards removed from the deck.
func (t *Table) Dead() []poker.Card {
	return t.dead
}

// Unused returns the cards of the game's deck that are not held by a
// player, on the board or dead.
func (t *Table) Unused(game poker.GameType) []poker.Card {
	return t.used.Without(poker.DeckFor(game))
}

// validate checks the table against the rules of the game: the hole card
// count of the variant and cards belonging to its deck.
func (t *Table) validate(game poker.GameType) error {
	for i, hole := range t.players {
		if len(hole) != game.HoleCards() {
			return fmt.Errorf("%w: player %d holds %d cards, %v needs %d",
				ErrHoleCards, i+1, len(hole), game, game.HoleCards())
		}
	}
	for _, group := range [][][]poker.Card{t.players, {t.board}, {t.dead}} {
		for _, cards := range group {
			for _, c := range cards {
				if !poker.InDeck(game, c) {
					return fmt.Errorf("%w: %v is not played in %v", ErrCardNotInDeck, c, game)
				}
			}
		}
	}
	return nil
}
