package engine

import "github.com/talonchess/talon/board"

// pieceValues are the standard centipawn piece values named by spec §4.5;
// king carries a large sentinel that never actually enters the material
// sum (the king is never captured) but keeps pieceValues total and
// indexable by board.PieceType.
var pieceValues = [...]int{
	board.NoPieceType: 0,
	board.Pawn:        100,
	board.Knight:      320,
	board.Bishop:      330,
	board.Rook:        500,
	board.Queen:       900,
	board.King:        20000,
}

// pieceSquareBonus is a single symmetric center-control table applied to
// knights and bishops, reused from both sides by mirroring the square for
// Black — a deliberately small version of the teacher's midgame/endgame
// tapered PST in engine/evaluation.go (materialPawn/pstKnight/center),
// scaled down to match spec §4.5's "optional per-piece-per-square bonus
// tables" with no requirement to reproduce the teacher's full tapered
// evaluation.
var pieceSquareBonus = [64]int{
	-3, -2, -1, 0, 0, -1, -2, -3,
	-2, -1, 0, 1, 1, 0, -1, -2,
	-1, 0, 1, 2, 2, 1, 0, -1,
	0, 1, 2, 3, 3, 2, 1, 0,
	0, 1, 2, 3, 3, 2, 1, 0,
	-1, 0, 1, 2, 2, 1, 0, -1,
	-2, -1, 0, 1, 1, 0, -1, -2,
	-3, -2, -1, 0, 0, -1, -2, -3,
}

// mirror flips a square vertically so Black's pieces read the same
// center-control table as White's from their own perspective.
func mirror(sq board.Square) board.Square {
	return board.MakeSquare(sq.File(), 7-sq.Rank())
}

// evaluate returns a deterministic, bounded static evaluation of pos from
// the side-to-move's perspective: positive favors the mover (spec §4.5).
func evaluate(pos *board.Position) int {
	var white, black int
	for sq := board.Square(0); sq < 64; sq++ {
		pc := pos.PieceAt(sq)
		if pc == board.None {
			continue
		}
		value := pieceValues[pc.Type()]
		var bonus int
		if pc.Type() == board.Knight || pc.Type() == board.Bishop {
			if pc.Color() == board.White {
				bonus = pieceSquareBonus[sq]
			} else {
				bonus = pieceSquareBonus[mirror(sq)]
			}
		}
		if pc.Color() == board.White {
			white += value + bonus
		} else {
			black += value + bonus
		}
	}
	score := white - black
	if pos.SideToMove == board.Black {
		return -score
	}
	return score
}
