package engine

import (
	"context"

	"github.com/talonchess/talon/board"
)

// searcher carries the per-call state a single BestMove invocation threads
// through its recursive negamax/quiescence calls: the transposition table
// and history table are owned by the Session and persist across calls;
// ctx and nodes are scoped to this one search.
type searcher struct {
	ctx     context.Context
	tt      *TranspositionTable
	history *historyTable
	nodes   int64
	limit   int64 // 0 means unbounded
}

// aborted reports whether the search must stop immediately: the caller's
// context was cancelled/timed out, or the node-count limit was reached.
// Checked at node entry per spec §4.5's cancellation contract.
func (s *searcher) aborted() bool {
	if s.limit > 0 && s.nodes >= s.limit {
		return true
	}
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

// negamax implements spec §4.5's pseudocode exactly: depth-0 defers to
// quiescence, a fifty-move or insufficient-material draw short-circuits to
// valueDraw before move generation (teacher's searchutils.go:IsDraw), a
// position with no legal moves returns its terminal score, the
// transposition table is then probed and may return or tighten the window, moves are searched in orderMoves's order with
// alpha-beta pruning, and the result is stored back with the bound
// classification the pseudocode specifies.
func (s *searcher) negamax(pos *board.Position, depth, ply, alpha, beta int) (score int, bestMove board.Move, aborted bool) {
	if depth <= 0 {
		score, aborted = s.quiescence(pos, alpha, beta, ply)
		return score, board.Move{}, aborted
	}
	if s.aborted() {
		return 0, board.Move{}, true
	}
	s.nodes++

	if pos.HalfMove >= 100 || pos.HasInsufficientMaterial() {
		return valueDraw, board.Move{}, false
	}

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		if pos.IsCheck() {
			return mateScore(ply), board.Move{}, false
		}
		return valueDraw, board.Move{}, false
	}

	originalAlpha := alpha
	var ttMove board.Move
	if entry, ok := s.tt.Probe(pos.Hash); ok {
		ttMove = entry.Move
		if entry.Depth >= depth {
			ttScore := plyFromTT(entry.Score, ply)
			switch entry.Bound {
			case Exact:
				return ttScore, ttMove, false
			case LowerBound:
				if ttScore >= beta {
					return ttScore, ttMove, false
				}
				if ttScore > alpha {
					alpha = ttScore
				}
			case UpperBound:
				if ttScore <= alpha {
					return ttScore, ttMove, false
				}
				if ttScore < beta {
					beta = ttScore
				}
			}
			if alpha >= beta {
				return ttScore, ttMove, false
			}
		}
	}

	ordered := orderMoves(pos, legal, ttMove, s.history)

	best := -valueInfinity
	var best_ board.Move
	var quiets []board.Move
	var quietPieces []board.PieceType
	cutoff := false

	for _, m := range ordered {
		child, err := pos.Apply(m)
		if err != nil {
			panic("engine: generated move rejected as illegal: " + err.Error())
		}
		quiet := !m.IsCapture() && !m.IsPromotion()
		childScore, _, aborted := s.negamax(child, depth-1, ply+1, -beta, -alpha)
		if aborted {
			return 0, board.Move{}, true
		}
		childScore = -childScore

		if quiet {
			quiets = append(quiets, m)
			quietPieces = append(quietPieces, pos.PieceAt(m.From).Type())
		}

		if childScore > best {
			best = childScore
			best_ = m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			cutoff = true
			break
		}
	}

	bound := Exact
	switch {
	case cutoff:
		bound = LowerBound
	case alpha <= originalAlpha:
		bound = UpperBound
	}

	if bound != UpperBound && !best_.IsCapture() && !best_.IsPromotion() {
		s.history.update(pos.SideToMove, best_, pos.PieceAt(best_.From).Type(), quiets, quietPieces, depth)
	}

	s.tt.Store(TTEntry{
		Key:   pos.Hash,
		Move:  best_,
		Score: plyToTT(best, ply),
		Depth: depth,
		Bound: bound,
	})

	return best, best_, false
}

// quiescence stabilizes the horizon by only extending captures (spec
// §4.5): a fifty-move or insufficient-material draw ends the line outright,
// as does a position with no legal moves (checkmate/stalemate); otherwise
// the static evaluation serves as a stand-pat lower bound and only
// captures are explored further.
func (s *searcher) quiescence(pos *board.Position, alpha, beta, ply int) (int, bool) {
	if s.aborted() {
		return 0, true
	}
	s.nodes++

	if pos.HalfMove >= 100 || pos.HasInsufficientMaterial() {
		return valueDraw, false
	}

	legal := pos.LegalMoves()
	if len(legal) == 0 {
		if pos.IsCheck() {
			return mateScore(ply), false
		}
		return valueDraw, false
	}

	standPat := evaluate(pos)
	if standPat >= beta {
		return standPat, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	var captures []board.Move
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			captures = append(captures, m)
		}
	}
	ordered := orderMoves(pos, captures, board.Move{}, s.history)

	for _, m := range ordered {
		child, err := pos.Apply(m)
		if err != nil {
			panic("engine: generated move rejected as illegal: " + err.Error())
		}
		score, aborted := s.quiescence(child, -beta, -alpha, ply+1)
		if aborted {
			return 0, true
		}
		score = -score
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return alpha, false
}
