package engine

import "errors"

// ErrNoLegalMoves is returned by BestMove when the supplied position has no
// legal moves at all (checkmate or stalemate): there is nothing to search.
var ErrNoLegalMoves = errors.New("engine: no legal moves")

// ErrSearchIncomplete is returned by BestMove when depth 1 never finished
// and the incompleteness was not caused by ctx being cancelled or expiring
// — a non-positive depth argument, or a WithNodeLimit abort reached before
// the first iteration completed.
var ErrSearchIncomplete = errors.New("engine: search did not complete a single depth")
