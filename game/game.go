package game

import (
	"fmt"

	"github.com/talonchess/talon/board"
)

// Game is an ordered history of positions and the moves that produced them:
// positions[0] is the starting position (or the one supplied at
// construction) and moves[i] is the move that turned positions[i] into
// positions[i+1]. Game is not safe for concurrent use (spec §5): the core
// is single-threaded, and a Game must not be shared across goroutines
// without external synchronization.
type Game struct {
	positions []*board.Position
	moves     []board.Move

	// hashCounts tracks how many positions in history share a given
	// Zobrist hash, so repetitionCount is O(1) instead of an O(n) scan per
	// query (spec §4.3's "matches one previously in history").
	hashCounts map[uint64]int
}

// NewGame starts a Game from the standard initial position.
func NewGame() *Game {
	return newGameFrom(board.NewInitialPosition())
}

// NewGameFromDescriptor starts a Game from a FEN-equivalent position
// descriptor, failing with board.ErrInvalidPosition/ErrParse on a
// malformed or illegal one.
func NewGameFromDescriptor(descriptor string) (*Game, error) {
	pos, err := board.FromFEN(descriptor)
	if err != nil {
		return nil, err
	}
	return newGameFrom(pos), nil
}

func newGameFrom(pos *board.Position) *Game {
	g := &Game{
		positions:  []*board.Position{pos},
		hashCounts: make(map[uint64]int, 64),
	}
	g.hashCounts[pos.Hash] = 1
	return g
}

// Current returns the game's current position.
func (g *Game) Current() *board.Position {
	return g.positions[len(g.positions)-1]
}

// LegalMoves returns the legal moves available in the current position
// (spec §6's game.legal_moves() entry on the core API surface).
func (g *Game) LegalMoves() []board.Move {
	return g.Current().LegalMoves()
}

// Moves returns the moves played so far, in order. The slice is a copy;
// mutating it does not affect the Game.
func (g *Game) Moves() []board.Move {
	out := make([]board.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// Positions returns every position reached so far, starting with the
// initial one. The slice is a copy of the header; the *board.Position
// values themselves are immutable by convention.
func (g *Game) Positions() []*board.Position {
	out := make([]*board.Position, len(g.positions))
	copy(out, g.positions)
	return out
}

// MakeMove plays m against the current position and appends the result to
// history. It fails with board.ErrIllegalMove if m is not legal.
func (g *Game) MakeMove(m board.Move) error {
	next, err := g.Current().Apply(m)
	if err != nil {
		return fmt.Errorf("game: make move: %w", err)
	}
	g.positions = append(g.positions, next)
	g.moves = append(g.moves, m)
	g.hashCounts[next.Hash]++
	return nil
}

// Undo reverts the most recently played move, restoring the prior
// position. It fails with ErrNoHistory if no move has been played.
func (g *Game) Undo() error {
	if len(g.moves) == 0 {
		return ErrNoHistory
	}
	last := g.positions[len(g.positions)-1]
	g.hashCounts[last.Hash]--
	if g.hashCounts[last.Hash] == 0 {
		delete(g.hashCounts, last.Hash)
	}
	g.positions = g.positions[:len(g.positions)-1]
	g.moves = g.moves[:len(g.moves)-1]
	return nil
}

// State derives the current GameState from the current position and the
// accumulated history (spec §4.2/§4.3).
func (g *Game) State() State {
	return g.deriveState()
}

// repetitionCount reports how many positions in history (including the
// current one) share hash.
func (g *Game) repetitionCount(hash uint64) int {
	return g.hashCounts[hash]
}
