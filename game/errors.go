package game

import "errors"

var (
	// ErrNoHistory is returned by Undo on a Game with no prior move.
	ErrNoHistory = errors.New("game: no history to undo")

	// ErrNoLegalMoves is returned when an operation requires a legal move
	// to be available but the current position has none.
	ErrNoLegalMoves = errors.New("game: no legal moves available")
)
