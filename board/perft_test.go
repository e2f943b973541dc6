package board_test

import (
	"testing"

	"github.com/EricGlover/chess-engine-sub000/board"
)

func TestPerft(t *testing.T) {
	cases := []struct {
		name  string
		fen   string
		nodes []uint64 // indexed by depth-1
	}{
		{"initial", board.StartFEN, []uint64{20, 400, 8902}},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039}},
		{"position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
		{"position4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264}},
		{"position5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486}},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			for i, want := range tc.nodes {
				if got := board.Perft(p, i+1); got != want {
					t.Fatalf("perft(%d) = %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

func TestPerftDivideInitialDepth2(t *testing.T) {
	div := board.PerftDivide(board.StartPosition(), 2)
	if len(div) != 20 {
		t.Fatalf("divide length: got %d want 20", len(div))
	}
	var sum uint64
	for m, n := range div {
		if n != 20 {
			t.Fatalf("%s: %d children, want 20", m, n)
		}
		sum += n
	}
	if sum != 400 {
		t.Fatalf("divide sum: got %d want 400", sum)
	}
}

func TestPerftHashedMatchesPerft(t *testing.T) {
	table := board.NewPerftTable(1)
	for _, fen := range []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		p := mustFEN(t, fen)
		table.Clear()
		for depth := 1; depth <= 3; depth++ {
			want := board.Perft(p, depth)
			if got := board.PerftHashed(p, depth, table); got != want {
				t.Fatalf("%s: hashed perft(%d) = %d, want %d", fen, depth, got, want)
			}
		}
	}

	// Depth 5 is deep enough for move orders to transpose into the same position.
	table = board.NewPerftTable(16)
	p := mustFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if got := board.PerftHashed(p, 5, table); got != 674624 {
		t.Fatalf("hashed perft(5) = %d, want 674624", got)
	}
	if table.Hits == 0 {
		t.Fatalf("no table hits in %d probes", table.Probes)
	}
}
