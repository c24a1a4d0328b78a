package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"8/8/4k3/8/8/4K3/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := FromFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.ToFEN(), "round trip for %q", fen)

		reparsed, err := FromFEN(pos.ToFEN())
		require.NoError(t, err)
		assert.Equal(t, pos.Hash, reparsed.Hash, "hash must round trip for %q", fen)
	}
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	pos := NewInitialPosition()
	var walk func(p *Position, depth int)
	walk = func(p *Position, depth int) {
		if depth == 0 {
			return
		}
		for _, m := range p.LegalMoves() {
			child := p.applyPseudoLegal(m)
			assert.Equal(t, computeHash(child), child.Hash,
				"incremental hash after %v must equal recomputed hash", m)
			walk(child, depth-1)
		}
	}
	walk(pos, 3)
}

func TestApplyRejectsIllegalMove(t *testing.T) {
	pos := NewInitialPosition()
	_, err := pos.Apply(Move{From: SquareE2, To: SquareE5, Kind: Quiet})
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestApplyResultKingNeverLeftInCheck(t *testing.T) {
	pos, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		child, err := pos.Apply(m)
		require.NoError(t, err, m)
		assert.False(t, child.isAttacked(child.KingSquare(pos.SideToMove), pos.SideToMove.Opposite()),
			"mover's king must not be attacked after %v", m)
	}
}

func TestEnPassantCapture(t *testing.T) {
	// Black has just played f7-f5 (en-passant target f6 in the FEN); the
	// white pawn on e5 can capture en passant on f6, removing the pawn on f5.
	pos, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	require.NoError(t, err)
	var epMove Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Kind == EnPassant {
			epMove = m
			found = true
		}
	}
	require.True(t, found, "en passant capture must be generated")
	child, err := pos.Apply(epMove)
	require.NoError(t, err)
	assert.Equal(t, None, child.Board[SquareF5], "captured pawn must be removed")
	assert.Equal(t, SquareNone, child.EnPassant, "en passant target clears after one ply")
}

func TestEnPassantTargetClearedAfterOnePlyDelay(t *testing.T) {
	pos, err := FromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2")
	require.NoError(t, err)
	// Black makes an unrelated move; the en-passant target must now be gone.
	var quiet Move
	for _, m := range pos.LegalMoves() {
		if m.From == SquareA7 {
			quiet = m
			break
		}
	}
	child, err := pos.Apply(quiet)
	require.NoError(t, err)
	assert.Equal(t, SquareNone, child.EnPassant)
}

func TestPromotionWithCapture(t *testing.T) {
	// White pawn on d7 can capture-promote onto either black rook flanking it.
	pos, err := FromFEN("2r1r1k1/3P4/8/8/8/8/8/3K4 w - - 0 1")
	require.NoError(t, err)
	var captures int
	for _, m := range pos.LegalMoves() {
		if m.Kind == CapturePromotion {
			captures++
		}
	}
	assert.Equal(t, 8, captures, "4 promotion pieces x 2 capture directions")
}

func TestCastlingBlockedByAttackOnPassThroughSquare(t *testing.T) {
	// Black rook on f2 attacks f1, the kingside pass-through square, so
	// white may not castle kingside.
	pos, err := FromFEN("4k3/8/8/8/8/8/5r2/4K2R w K - 0 1")
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		assert.NotEqual(t, CastleKingside, m.Kind, "castling through an attacked square must be illegal")
	}
}

func TestCastlingNotBlockedByAttackOnRookSquare(t *testing.T) {
	// Rook's own home square is attacked, but the king's path is clear: the
	// rule only forbids the king passing through check, not the rook.
	pos, err := FromFEN("4k3/8/8/8/8/8/7r/4K2R w K - 0 1")
	require.NoError(t, err)
	found := false
	for _, m := range pos.LegalMoves() {
		if m.Kind == CastleKingside {
			found = true
		}
	}
	assert.True(t, found, "attack on the rook's home square must not block castling")
}

func TestFiftyMoveClockResetsOnCapture(t *testing.T) {
	pos, err := FromFEN("4k3/8/8/7r/8/8/8/4K2R w - - 40 1")
	require.NoError(t, err)
	var capture Move
	for _, m := range pos.LegalMoves() {
		if m.IsCapture() {
			capture = m
			break
		}
	}
	require.NotEqual(t, Move{}, capture)
	child, err := pos.Apply(capture)
	require.NoError(t, err)
	assert.Equal(t, 0, child.HalfMove)
}

func TestStalemate(t *testing.T) {
	pos, err := FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Empty(t, pos.LegalMoves())
	assert.True(t, pos.IsStalemate())
	assert.False(t, pos.IsCheck())
}

func TestInsufficientMaterial(t *testing.T) {
	pos, err := FromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.HasInsufficientMaterial())
}

func TestScholarsMateCheckmate(t *testing.T) {
	pos := NewInitialPosition()
	moves := []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}
	var err error
	for _, lan := range moves {
		m := findByLAN(t, pos, lan)
		pos, err = pos.Apply(m)
		require.NoError(t, err, lan)
	}
	assert.True(t, pos.IsCheckmate())
}

func findByLAN(t *testing.T, p *Position, lan string) Move {
	t.Helper()
	for _, m := range p.LegalMoves() {
		if m.String() == lan {
			return m
		}
	}
	t.Fatalf("no legal move %q in %v", lan, p.ToFEN())
	return Move{}
}
