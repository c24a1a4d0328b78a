package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talonchess/talon/board"
)

func findByLAN(t *testing.T, pos *board.Position, lan string) board.Move {
	t.Helper()
	for _, m := range pos.LegalMoves() {
		if m.String() == lan {
			return m
		}
	}
	t.Fatalf("no legal move %q in %v", lan, pos.ToFEN())
	return board.Move{}
}

func playLAN(t *testing.T, g *Game, lans ...string) {
	t.Helper()
	for _, lan := range lans {
		m := findByLAN(t, g.Current(), lan)
		require.NoError(t, g.MakeMove(m), lan)
	}
}

func TestNewGameStartsActive(t *testing.T) {
	g := NewGame()
	assert.Equal(t, Active, g.State())
	assert.Empty(t, g.Moves())
}

func TestLegalMovesMatchesCurrentPosition(t *testing.T) {
	g := NewGame()
	assert.ElementsMatch(t, g.Current().LegalMoves(), g.LegalMoves())

	playLAN(t, g, "e2e4")
	assert.ElementsMatch(t, g.Current().LegalMoves(), g.LegalMoves())
}

func TestMakeMoveRejectsIllegal(t *testing.T) {
	g := NewGame()
	err := g.MakeMove(board.Move{From: board.SquareE2, To: board.SquareE5, Kind: board.Quiet})
	require.ErrorIs(t, err, board.ErrIllegalMove)
}

func TestUndoWithoutHistoryFails(t *testing.T) {
	g := NewGame()
	err := g.Undo()
	require.ErrorIs(t, err, ErrNoHistory)
}

func TestApplyThenUndoRestoresState(t *testing.T) {
	g := NewGame()
	before := g.Current()
	m := findByLAN(t, before, "e2e4")
	require.NoError(t, g.MakeMove(m))
	require.NoError(t, g.Undo())

	after := g.Current()
	assert.Equal(t, before.Hash, after.Hash, "undo must restore the original hash")
	assert.Equal(t, before.LegalMoves(), after.LegalMoves(), "undo must restore the cached move list")
	assert.Empty(t, g.Moves())
}

func TestScholarsMateReachesCheckmate(t *testing.T) {
	g := NewGame()
	playLAN(t, g, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")
	assert.Equal(t, Checkmate, g.State())
	assert.True(t, g.Current().IsCheckmate())
}

func TestStalemateState(t *testing.T) {
	g, err := NewGameFromDescriptor("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Stalemate, g.State())
}

func TestInsufficientMaterialState(t *testing.T) {
	g, err := NewGameFromDescriptor("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, DrawInsufficientMaterial, g.State())
}

func TestFiftyMoveDrawState(t *testing.T) {
	// Halfmove clock already at 99; one quiet king move reaches the
	// hundred-halfmove (50 full-move) threshold.
	g, err := NewGameFromDescriptor("7k/8/8/8/8/8/8/K5R1 w - - 99 60")
	require.NoError(t, err)
	require.NotEqual(t, DrawFiftyMove, g.State(), "not yet at the threshold")
	playLAN(t, g, "a1a2")
	assert.Equal(t, DrawFiftyMove, g.State())
}

func TestThreefoldRepetitionState(t *testing.T) {
	g := NewGameFromDescriptorMustParse(t, board.StartingFEN)
	// Shuffle knights back and forth: Nf3 Nf6 Ng1 Ng8 Nf3 Nf6 Ng1 Ng8
	// returns to the starting position, occurring a total of three times
	// counting the initial one.
	playLAN(t, g, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8")
	assert.Equal(t, DrawRepetition, g.State())
}

func TestRepetitionNotTriggeredByDifferentCastlingRights(t *testing.T) {
	// Rook shuffles back to the same squares, but once a rook has moved
	// the castling right is permanently gone, so the position never
	// truly repeats even though the piece placement matches.
	g, err := NewGameFromDescriptor("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	playLAN(t, g, "a1a2", "e8d8", "a2a1", "d8e8")
	playLAN(t, g, "a1a2", "e8d8", "a2a1", "d8e8")
	assert.NotEqual(t, DrawRepetition, g.State(), "lost castling rights break the repetition")
}

func NewGameFromDescriptorMustParse(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromDescriptor(fen)
	require.NoError(t, err)
	return g
}
