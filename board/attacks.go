package board

// Precomputed per-square neighbor tables: the move generator's "plain
// 64-square array with precomputed per-square neighbor tables for each
// direction" alternative to a bordered mailbox (spec §4.2). Each table is
// built once in init() by walking file/rank deltas and discarding
// off-board results, the array-based analogue of the teacher's bitboard
// shift-and-mask approach (common/bitboard.go's Up/Down/Left/Right and
// magic-bitboard ray generation) and of the sentinel-mailbox walk in
// algerbrex-Blunder's board representation.
var (
	knightAttacks [64][]Square
	kingAttacks   [64][]Square
	pawnAttacks   [2][64][]Square // indexed by Color, then Square

	// rays[dir][sq] is the ordered list of squares walking outward from sq
	// in direction dir, stopping at the board edge. Sliding-piece
	// generation walks a ray until it hits an occupied square.
	rays [8][64][]Square
)

// Ray directions, matching the classic rose-compass ordering used by
// 0x88-style engines: N, S, E, W, NE, NW, SE, SW.
const (
	dirNorth = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirNorthWest
	dirSouthEast
	dirSouthWest
)

var rayDeltas = [8][2]int{
	dirNorth:     {0, 1},
	dirSouth:     {0, -1},
	dirEast:      {1, 0},
	dirWest:      {-1, 0},
	dirNorthEast: {1, 1},
	dirNorthWest: {-1, 1},
	dirSouthEast: {1, -1},
	dirSouthWest: {-1, -1},
}

var bishopDirs = [4]int{dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}
var rookDirs = [4]int{dirNorth, dirSouth, dirEast, dirWest}

var knightDeltas = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

func onBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

func init() {
	for sq := Square(0); sq < 64; sq++ {
		f, r := sq.File(), sq.Rank()

		for _, d := range knightDeltas {
			if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
				knightAttacks[sq] = append(knightAttacks[sq], MakeSquare(nf, nr))
			}
		}
		for _, d := range kingDeltas {
			if nf, nr := f+d[0], r+d[1]; onBoard(nf, nr) {
				kingAttacks[sq] = append(kingAttacks[sq], MakeSquare(nf, nr))
			}
		}
		if nf, nr := f-1, r+1; onBoard(nf, nr) {
			pawnAttacks[White][sq] = append(pawnAttacks[White][sq], MakeSquare(nf, nr))
		}
		if nf, nr := f+1, r+1; onBoard(nf, nr) {
			pawnAttacks[White][sq] = append(pawnAttacks[White][sq], MakeSquare(nf, nr))
		}
		if nf, nr := f-1, r-1; onBoard(nf, nr) {
			pawnAttacks[Black][sq] = append(pawnAttacks[Black][sq], MakeSquare(nf, nr))
		}
		if nf, nr := f+1, r-1; onBoard(nf, nr) {
			pawnAttacks[Black][sq] = append(pawnAttacks[Black][sq], MakeSquare(nf, nr))
		}

		for dir, delta := range rayDeltas {
			nf, nr := f+delta[0], r+delta[1]
			for onBoard(nf, nr) {
				rays[dir][sq] = append(rays[dir][sq], MakeSquare(nf, nr))
				nf += delta[0]
				nr += delta[1]
			}
		}
	}
}
