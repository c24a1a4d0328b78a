package board

import "math/rand"

// zobristSeed is the implementation's reproducibility contract (spec §9):
// all processes that link this package compute identical Zobrist keys, so
// hashes in test fixtures and transposition tables stay stable across runs
// and across machines.
const zobristSeed = 0xC0FFEE

var (
	pieceSquareKeys [13 * 64]uint64 // indexed by Piece*64+Square; None's row stays zero
	sideToMoveKey   uint64
	castlingKeys    [16]uint64 // indexed by the 4-bit CastlingRights bitset
	enPassantKeys   [8]uint64 // indexed by file
)

func pieceSquareKey(p Piece, sq Square) uint64 {
	return pieceSquareKeys[int(p)*64+int(sq)]
}

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for i := range pieceSquareKeys {
		pieceSquareKeys[i] = r.Uint64()
	}
	for sq := 0; sq < 64; sq++ {
		pieceSquareKeys[int(None)*64+sq] = 0
	}
	sideToMoveKey = r.Uint64()
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}

	var bits [4]uint64
	for i := range bits {
		bits[i] = r.Uint64()
	}
	for mask := range castlingKeys {
		var key uint64
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<uint(bit)) != 0 {
				key ^= bits[bit]
			}
		}
		castlingKeys[mask] = key
	}
}

// computeHash recomputes p's Zobrist key from scratch: the XOR of every
// (piece, square) key present on the board, the side-to-move key if Black
// is to move, the castling-rights key, and the en-passant-file key if a
// target is set. Position.Hash is maintained incrementally by apply and
// must always equal this.
func computeHash(p *Position) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		if pc := p.Board[sq]; pc != None {
			h ^= pieceSquareKey(pc, sq)
		}
	}
	if p.SideToMove == Black {
		h ^= sideToMoveKey
	}
	h ^= castlingKeys[p.Castling]
	if p.EnPassant != SquareNone {
		h ^= enPassantKeys[p.EnPassant.File()]
	}
	return h
}
