package engine

import "github.com/talonchess/talon/board"

// historyTable scores quiet moves that have caused beta cutoffs before,
// indexed by [color][piece type][destination square] — the teacher's
// pieceSquareIndex/historyEntry in engine/historytable.go generalized from
// a single packed int index to a plain 3-dimensional array, since Talon
// has no need for the teacher's atomic-indexed flat slice (single-threaded
// core, spec §5).
type historyTable struct {
	success, tries [2][7][64]int
}

func newHistoryTable() *historyTable {
	ht := &historyTable{}
	ht.reset()
	return ht
}

// reset seeds every counter to 1 so Score never divides by zero, matching
// the teacher's historyTable.Clear.
func (ht *historyTable) reset() {
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for sq := 0; sq < 64; sq++ {
				ht.success[c][pt][sq] = 1
				ht.tries[c][pt][sq] = 1
			}
		}
	}
}

// update rewards best, the move that caused a cutoff or was best at a
// fully-searched node, and counts a try for every quiet move searched at
// that node (quiets, which includes best when best is quiet), both weighted
// by depth so deeper cutoffs count more.
func (ht *historyTable) update(side board.Color, best board.Move, bestPiece board.PieceType, quiets []board.Move, quietPieces []board.PieceType, depth int) {
	for i, m := range quiets {
		ht.tries[side][quietPieces[i]][m.To] += depth
	}
	ht.success[side][bestPiece][best.To] += depth
}

// score returns best's relative history score for ordering quiet moves.
func (ht *historyTable) score(side board.Color, pt board.PieceType, to board.Square) int {
	return (ht.success[side][pt][to] << 10) / ht.tries[side][pt][to]
}

const (
	ttMoveScore    = 1 << 20
	captureBase    = 1 << 16
	promotionBonus = 1 << 10
)

// mvvlva scores a capture by most-valuable-victim, least-valuable-attacker:
// the victim's value dominates, and the attacker's type breaks ties in
// favor of the cheaper piece (teacher's mvvlva in engine/moveSort.go).
func mvvlva(pos *board.Position, m board.Move) int {
	victim := pos.PieceAt(m.To)
	score := pieceValues[victim.Type()]
	if m.Kind == board.EnPassant {
		score = pieceValues[board.Pawn]
	}
	if m.IsPromotion() {
		score += promotionBonus + pieceValues[m.Promo] - pieceValues[board.Pawn]
	}
	return captureBase + score*8 - int(pos.PieceAt(m.From).Type())
}

// orderMoves scores and sorts moves for a search node: the transposition
// table's recorded best move first (if present among moves), then
// captures/promotions by MVV-LVA, then quiet moves by history score,
// highest first.
func orderMoves(pos *board.Position, moves []board.Move, ttMove board.Move, ht *historyTable) []board.Move {
	type scored struct {
		move  board.Move
		score int
	}
	side := pos.SideToMove
	ordered := make([]scored, len(moves))
	for i, m := range moves {
		var s int
		switch {
		case m == ttMove:
			s = ttMoveScore
		case m.IsCapture() || m.IsPromotion():
			s = mvvlva(pos, m)
		default:
			s = ht.score(side, pos.PieceAt(m.From).Type(), m.To)
		}
		ordered[i] = scored{m, s}
	}
	shellSortDescending(ordered, func(a, b scored) bool { return a.score < b.score })
	out := make([]board.Move, len(ordered))
	for i, sm := range ordered {
		out[i] = sm.move
	}
	return out
}

// shellSortDescending is the teacher's shellSortGaps/sortMoves algorithm
// (engine/moveSort.go), generalized with a less-than predicate so it can
// sort any slice type instead of just orderedMove.
func shellSortDescending[T any](items []T, less func(a, b T) bool) {
	gaps := [...]int{10, 4, 1}
	for _, gap := range gaps {
		for i := gap; i < len(items); i++ {
			j, t := i, items[i]
			for ; j >= gap && less(items[j-gap], t); j -= gap {
				items[j] = items[j-gap]
			}
			items[j] = t
		}
	}
}
