package board

import "fmt"

// CastlingRights is a 4-bit set of independent flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// castleMask[sq], ANDed into CastlingRights on every move, revokes the
// rights tied to sq: the king or rook moving off its home square, or an
// enemy rook being captured there, permanently clears the flag (spec §3).
var castleMask [64]CastlingRights

func init() {
	for sq := range castleMask {
		castleMask[sq] = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	}
	castleMask[SquareA1] &^= WhiteQueenside
	castleMask[SquareE1] &^= WhiteKingside | WhiteQueenside
	castleMask[SquareH1] &^= WhiteKingside
	castleMask[SquareA8] &^= BlackQueenside
	castleMask[SquareE8] &^= BlackKingside | BlackQueenside
	castleMask[SquareH8] &^= BlackKingside
}

// Position is an immutable-by-convention snapshot of a chess position: a
// 64-entry piece array plus the side-to-move, castling, en-passant, and
// clock state that array alone can't capture, and an incrementally
// maintained Zobrist hash. Callers never mutate a Position in place;
// Apply returns a new one.
type Position struct {
	Board      [64]Piece
	SideToMove Color
	Castling   CastlingRights
	EnPassant  Square
	HalfMove   int // resets on pawn moves/captures, else increments
	FullMove   int
	Hash       uint64

	// LastMove is the move that produced this Position, or the zero Move
	// for a freshly constructed (non-derived) position.
	LastMove Move

	// cache of generateLegalMoves, computed lazily by LegalMoves and
	// absent on every freshly constructed Position (spec §9).
	cachedLegal   []Move
	legalComputed bool
}

// StartingFEN is the standard start-position descriptor.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition returns the standard chess starting position.
func NewInitialPosition() *Position {
	p, err := FromFEN(StartingFEN)
	if err != nil {
		panic("board: starting FEN must parse: " + err.Error())
	}
	return p
}

// clone returns a value copy of p with its move cache cleared, the starting
// point for Apply (spec requires the returned Position's hash to match a
// from-scratch hash of the same placement; Apply maintains that
// incrementally rather than recomputing, but clone never carries over the
// parent's cached legal-move list since it describes the wrong position).
func (p *Position) clone() *Position {
	n := *p
	n.cachedLegal = nil
	n.legalComputed = false
	n.LastMove = Move{}
	return &n
}

// PieceAt returns the piece occupying sq, or None.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Board[sq]
}

// KingSquare returns the square of c's king. Position's construction
// invariant guarantees exactly one exists.
func (p *Position) KingSquare(c Color) Square {
	want := MakePiece(King, c)
	for sq := Square(0); sq < 64; sq++ {
		if p.Board[sq] == want {
			return sq
		}
	}
	return SquareNone
}

// validate checks the invariants construction must establish: exactly one
// king per color, and the side NOT to move must not be in check (otherwise
// the position was reached by an illegal prior move).
func (p *Position) validate() error {
	var kings [2]int
	for sq := Square(0); sq < 64; sq++ {
		if pc := p.Board[sq]; pc.Type() == King {
			kings[pc.Color()]++
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: must have exactly one king per color", ErrInvalidPosition)
	}
	opponent := p.SideToMove.Opposite()
	if p.isAttacked(p.KingSquare(opponent), p.SideToMove) {
		return fmt.Errorf("%w: side not to move is in check", ErrInvalidPosition)
	}
	return nil
}

// isAttacked reports whether sq is attacked by any piece of color by.
// Implemented by scanning from sq outward along each piece's movement
// pattern and checking for a matching attacker — the reverse-ray technique
// from spec §4.2's check-detection note, generalized to "is this square
// attacked" so it also serves castling's "king may not pass through
// check" rule.
func (p *Position) isAttacked(sq Square, by Color) bool {
	if sq == SquareNone {
		return false
	}
	for _, s := range pawnAttacks[by.Opposite()][sq] {
		if pc := p.Board[s]; pc == MakePiece(Pawn, by) {
			return true
		}
	}
	for _, s := range knightAttacks[sq] {
		if pc := p.Board[s]; pc == MakePiece(Knight, by) {
			return true
		}
	}
	for _, s := range kingAttacks[sq] {
		if pc := p.Board[s]; pc == MakePiece(King, by) {
			return true
		}
	}
	for _, dir := range rookDirs {
		for _, s := range rays[dir][sq] {
			pc := p.Board[s]
			if pc == None {
				continue
			}
			if pc.Color() == by && (pc.Type() == Rook || pc.Type() == Queen) {
				return true
			}
			break
		}
	}
	for _, dir := range bishopDirs {
		for _, s := range rays[dir][sq] {
			pc := p.Board[s]
			if pc == None {
				continue
			}
			if pc.Color() == by && (pc.Type() == Bishop || pc.Type() == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// IsCheck reports whether the side to move's king is attacked.
func (p *Position) IsCheck() bool {
	return p.isAttacked(p.KingSquare(p.SideToMove), p.SideToMove.Opposite())
}

// LegalMoves returns every legal move from p, computed and cached on first
// call. The result is empty exactly when the side to move is checkmated or
// stalemated; a position drawn by the fifty-move rule or by insufficient
// material still returns its moves.
func (p *Position) LegalMoves() []Move {
	if !p.legalComputed {
		p.cachedLegal = generateLegalMoves(p)
		p.legalComputed = true
	}
	return p.cachedLegal
}

// IsCheckmate reports check with no legal response.
func (p *Position) IsCheckmate() bool {
	return p.IsCheck() && len(p.LegalMoves()) == 0
}

// IsStalemate reports no check and no legal move.
func (p *Position) IsStalemate() bool {
	return !p.IsCheck() && len(p.LegalMoves()) == 0
}

// HasInsufficientMaterial reports K-vs-K, K+minor-vs-K, or K+B-vs-K+B with
// same-colored bishops (spec §4.3). Any other material configuration,
// including K+N+N-vs-K, does not auto-draw.
func (p *Position) HasInsufficientMaterial() bool {
	var minors [2]int // knights+bishops per color
	var bishopSquares [2][]Square
	for sq := Square(0); sq < 64; sq++ {
		pc := p.Board[sq]
		switch pc.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			minors[pc.Color()]++
		case Bishop:
			minors[pc.Color()]++
			bishopSquares[pc.Color()] = append(bishopSquares[pc.Color()], sq)
		}
	}
	total := minors[White] + minors[Black]
	if total == 0 {
		return true
	}
	if total == 1 {
		return true // K+minor vs K
	}
	if total == 2 && len(bishopSquares[White]) == 1 && len(bishopSquares[Black]) == 1 {
		return squareColor(bishopSquares[White][0]) == squareColor(bishopSquares[Black][0])
	}
	return false
}

func squareColor(sq Square) int {
	return (sq.File() + sq.Rank()) % 2
}

// Apply plays m against p and returns the resulting Position. It fails
// with ErrIllegalMove if m is not a member of p.LegalMoves(). The returned
// Position's Hash is maintained incrementally (XOR out the mover, XOR in at
// the destination, XOR out/in any captured or promoted piece, toggle the
// side-to-move key, refresh castling/en-passant keys) and is guaranteed to
// equal a from-scratch recomputation.
func (p *Position) Apply(m Move) (*Position, error) {
	legal := false
	for _, lm := range p.LegalMoves() {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return p.applyPseudoLegal(m), nil
}

// applyPseudoLegal performs the move mechanics without a legality check; it
// is used both by Apply (after verifying legality) and by the move
// generator's own trial-apply legality filter.
func (p *Position) applyPseudoLegal(m Move) *Position {
	n := p.clone()
	mover := p.Board[m.From]
	moverType := mover.Type()

	n.Hash ^= sideToMoveKey
	n.Hash ^= castlingKeys[p.Castling]

	if p.EnPassant != SquareNone {
		n.Hash ^= enPassantKeys[p.EnPassant.File()]
	}
	n.EnPassant = SquareNone

	if moverType == Pawn || m.IsCapture() {
		n.HalfMove = 0
	} else {
		n.HalfMove = p.HalfMove + 1
	}
	if p.SideToMove == Black {
		n.FullMove = p.FullMove + 1
	}

	switch m.Kind {
	case EnPassant:
		capSq := MakeSquare(m.To.File(), m.From.Rank())
		n.removePiece(capSq)
	case Capture, CapturePromotion:
		n.removePiece(m.To)
	}

	n.removePiece(m.From)
	if m.IsPromotion() {
		n.placePiece(MakePiece(m.Promo, p.SideToMove), m.To)
	} else {
		n.placePiece(mover, m.To)
	}

	if moverType == Pawn && m.Kind == DoublePawnPush {
		epSq := MakeSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		n.EnPassant = epSq
		n.Hash ^= enPassantKeys[epSq.File()]
	}

	if m.Kind == CastleKingside || m.Kind == CastleQueenside {
		rookFrom, rookTo := castlingRookSquares(p.SideToMove, m.Kind)
		rook := n.Board[rookFrom]
		n.removePiece(rookFrom)
		n.placePiece(rook, rookTo)
	}

	n.Castling = p.Castling & castleMask[m.From] & castleMask[m.To]
	n.Hash ^= castlingKeys[n.Castling]

	n.SideToMove = p.SideToMove.Opposite()
	n.LastMove = m
	return n
}

func (p *Position) removePiece(sq Square) {
	pc := p.Board[sq]
	if pc == None {
		return
	}
	p.Hash ^= pieceSquareKey(pc, sq)
	p.Board[sq] = None
}

func (p *Position) placePiece(pc Piece, sq Square) {
	p.Board[sq] = pc
	p.Hash ^= pieceSquareKey(pc, sq)
}

// castlingRookSquares returns the rook's home and destination squares for
// a castling move by c.
func castlingRookSquares(c Color, kind MoveKind) (from, to Square) {
	if c == White {
		if kind == CastleKingside {
			return SquareH1, SquareF1
		}
		return SquareA1, SquareD1
	}
	if kind == CastleKingside {
		return SquareH8, SquareF8
	}
	return SquareA8, SquareD8
}
