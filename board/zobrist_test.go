package board_test

import (
	"testing"

	"github.com/EricGlover/chess-engine-sub000/board"
)

func TestHashStableAcrossApplyUndo(t *testing.T) {
	p := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	start := p.Hash()
	for _, m := range p.LegalMoves() {
		if err := p.Apply(m); err != nil {
			t.Fatal(err)
		}
		if p.Hash() == start {
			t.Fatalf("hash unchanged after %s", m)
		}
		if err := p.Undo(m); err != nil {
			t.Fatal(err)
		}
		if p.Hash() != start {
			t.Fatalf("hash not restored after undo of %s", m)
		}
	}
}

func TestHashTranspositionsAgree(t *testing.T) {
	a := board.StartPosition()
	for _, uci := range []string{"g1f3", "g8f6", "b1c3"} {
		if err := a.Apply(findMove(t, a, uci)); err != nil {
			t.Fatal(err)
		}
	}
	b := board.StartPosition()
	for _, uci := range []string{"b1c3", "g8f6", "g1f3"} {
		if err := b.Apply(findMove(t, b, uci)); err != nil {
			t.Fatal(err)
		}
	}
	if board.Hash(a) != board.Hash(b) {
		t.Fatalf("transposed positions hash differently")
	}
	flipped := a.WithTurn(board.White)
	if flipped.Hash() == a.Hash() {
		t.Fatalf("side to move is not part of the hash")
	}
}

func TestZobristSeeds(t *testing.T) {
	p := board.StartPosition()
	if board.NewZobrist(1).Hash(p) != board.NewZobrist(1).Hash(p) {
		t.Fatalf("same seed gave different keys")
	}
	if board.NewZobrist(1).Hash(p) == board.NewZobrist(2).Hash(p) {
		t.Fatalf("different seeds gave the same key")
	}
}
