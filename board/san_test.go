package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSANCastling(t *testing.T) {
	pos, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		switch m.Kind {
		case CastleKingside:
			assert.Equal(t, "O-O", pos.SAN(m))
		case CastleQueenside:
			assert.Equal(t, "O-O-O", pos.SAN(m))
		}
	}
}

func TestSANDisambiguation(t *testing.T) {
	// Knights on b1 and f1 both reach d2: file alone disambiguates.
	pos, err := FromFEN("4k3/8/8/8/8/8/8/1N3NK1 w - - 0 1")
	require.NoError(t, err)
	var sans []string
	for _, m := range pos.LegalMoves() {
		if m.To == SquareD2 {
			sans = append(sans, pos.SAN(m))
		}
	}
	assert.ElementsMatch(t, []string{"Nbd2", "Nfd2"}, sans)
}

func TestSANCheckAndMateSuffixes(t *testing.T) {
	pos, err := FromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	require.NoError(t, err)
	for _, m := range pos.LegalMoves() {
		if m.To == SquareA8 {
			assert.Equal(t, "Ra8#", pos.SAN(m))
		}
	}
}

func TestParseSANRoundTrip(t *testing.T) {
	pos := NewInitialPosition()
	for _, m := range pos.LegalMoves() {
		san := pos.SAN(m)
		parsed, err := pos.ParseSAN(san)
		require.NoError(t, err, san)
		assert.Equal(t, m, parsed)
	}
}
