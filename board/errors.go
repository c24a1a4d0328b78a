package board

import "errors"

// Error kinds surfaced by this package. Callers branch on these with
// errors.Is; detail is attached by wrapping with fmt.Errorf("%w: ...").
var (
	// ErrInvalidPosition is returned when a position descriptor violates an
	// invariant: wrong king count, side-to-move already in an impossible
	// check, or a malformed field.
	ErrInvalidPosition = errors.New("board: invalid position")

	// ErrIllegalMove is returned when a supplied move is not a member of
	// the current position's legal move set.
	ErrIllegalMove = errors.New("board: illegal move")

	// ErrParse is returned when a textual descriptor or notation string
	// fails to parse.
	ErrParse = errors.New("board: parse error")
)
