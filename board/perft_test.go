package board

import "testing"

// The four correctness-gate positions from spec §8. These are the
// standard chessprogramming.org perft benchmarks.
func TestPerftBenchmarks(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"start", StartingFEN, 5, 4865609},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 4, 4085603},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 6, 11030083},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 5, 15833292},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := FromFEN(tt.fen)
			if err != nil {
				t.Fatalf("FromFEN(%q): %v", tt.fen, err)
			}
			if got := Perft(pos, tt.depth); got != tt.nodes {
				t.Errorf("Perft(%q, %d) = %d, want %d", tt.fen, tt.depth, got, tt.nodes)
			}
		})
	}
}

// TestPerftShallow exercises perft at depths cheap enough to run on every
// commit, independent of the deep benchmarks above.
func TestPerftShallow(t *testing.T) {
	tests := []struct {
		fen   string
		depth int
		nodes uint64
	}{
		{StartingFEN, 1, 20},
		{StartingFEN, 2, 400},
		{StartingFEN, 3, 8902},
		{StartingFEN, 4, 197281},
	}
	for _, tt := range tests {
		pos, err := FromFEN(tt.fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", tt.fen, err)
		}
		if got := Perft(pos, tt.depth); got != tt.nodes {
			t.Errorf("Perft(%q, %d) = %d, want %d", tt.fen, tt.depth, got, tt.nodes)
		}
	}
}
