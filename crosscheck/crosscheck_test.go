package crosscheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/crosscheck"
)

var positions = []string{
	board.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
}

func TestCompareAgrees(t *testing.T) {
	for _, fen := range positions {
		mm, ok := crosscheck.Compare(board.MustParseFEN(fen))
		assert.True(t, ok, mm.String())
	}
}

func TestWalk(t *testing.T) {
	for _, fen := range positions[:3] {
		mms := crosscheck.Walk(board.MustParseFEN(fen), 2, 5)
		assert.Empty(t, mms, fen)
	}
}

func TestReferencePerft(t *testing.T) {
	for _, fen := range positions {
		p := board.MustParseFEN(fen)
		assert.Equal(t, board.Perft(p, 2), crosscheck.Perft(fen, 2), fen)
	}
	assert.Equal(t, uint64(8902), crosscheck.Perft(board.StartFEN, 3))
}

func TestDivideDiff(t *testing.T) {
	p := board.MustParseFEN(positions[1])
	assert.Empty(t, crosscheck.DivideDiff(p, 2))
	div := crosscheck.Divide(positions[1], 1)
	require.Len(t, div, 48)
	for m, n := range div {
		assert.Equal(t, uint64(1), n, m)
	}
}

func TestMismatchString(t *testing.T) {
	mm := crosscheck.Mismatch{FEN: board.StartFEN, Missing: []string{"e2e4"}, Extra: []string{"e2e5", "a1a3"}}
	assert.Equal(t, board.StartFEN+": missing [e2e4] extra [e2e5 a1a3]", mm.String())
}
