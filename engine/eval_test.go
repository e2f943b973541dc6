package engine_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
)

const (
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	e := engine.Evaluate(board.StartPosition())
	if e.Score != 0 || e.Material != 0 || e.PawnStructure != 0 || e.Mobility != 0 {
		t.Fatalf("start position: got %+v, want all terms zero", e)
	}
	if _, ok := e.MatedSide(); ok {
		t.Fatalf("start position reported as having no moves")
	}
}

func TestMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want float64
	}{
		{"4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", 9},
		{"r3k3/8/8/8/8/8/8/4K3 w - - 0 1", -5},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"4k3/pppppppp/8/8/8/8/8/1NB1K3 w - - 0 1", -2},
	}
	for _, tc := range cases {
		e := engine.Evaluate(board.MustParseFEN(tc.fen))
		if e.Material != tc.want {
			t.Errorf("%s: material %v, want %v", tc.fen, e.Material, tc.want)
		}
	}
}

func TestPawnStructureCounts(t *testing.T) {
	// The white a-pawn is isolated and blocked by a black pawn. Black has doubled
	// c-pawns and tripled g-pawns with no neighbours.
	p := board.MustParseFEN("4k3/2p3p1/2p3p1/6p1/8/p7/P7/4K3 w - - 0 1")
	pc := engine.PawnStructure(p)

	if pc.Blocked[board.White] != 1 || pc.Blocked[board.Black] != 4 {
		t.Fatalf("blocked: got %v", pc.Blocked)
	}
	if pc.Doubled[board.White] != 0 || pc.Doubled[board.Black] != 5 {
		t.Fatalf("doubled: got %v", pc.Doubled)
	}
	if pc.Isolated[board.White] != 1 || pc.Isolated[board.Black] != 6 {
		t.Fatalf("isolated: got %v", pc.Isolated)
	}
	// White has 2 faults, Black 15.
	if got := pc.Score(); got != 6.5 {
		t.Fatalf("pawn score: got %v, want 6.5", got)
	}
}

func TestMobilityTerm(t *testing.T) {
	p := board.StartPosition()
	e := engine.EvaluateWithCounts(p, engine.MoveCounts{White: 30, Black: 20})
	if e.Mobility != 1 {
		t.Fatalf("mobility: got %v, want 1", e.Mobility)
	}
	if e.Score != e.Material+e.PawnStructure+e.Mobility {
		t.Fatalf("score %v is not the sum of its terms", e.Score)
	}
}

func TestEvaluateCheckmate(t *testing.T) {
	e := engine.Evaluate(board.MustParseFEN(foolsMateFEN))
	side, ok := e.MatedSide()
	if !ok || side != board.White || e.Stalemate {
		t.Fatalf("fool's mate: got side=%s noMoves=%v stalemate=%v", side, ok, e.Stalemate)
	}
}

func TestEvaluateStalemate(t *testing.T) {
	e := engine.Evaluate(board.MustParseFEN(stalemateFEN))
	side, ok := e.MatedSide()
	if !ok || side != board.Black || !e.Stalemate {
		t.Fatalf("stalemate: got side=%s noMoves=%v stalemate=%v", side, ok, e.Stalemate)
	}
}

func TestPrintEvaluation(t *testing.T) {
	var buf bytes.Buffer
	engine.PrintEvaluation(&buf, board.MustParseFEN(foolsMateFEN))
	out := buf.String()
	for _, want := range []string{"info string material", "info string white is checkmated", "info string total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPawnStructureMiddlegame(t *testing.T) {
	p := board.MustParseFEN("rnb1kr2/pp1p1p1p/1qB2n2/7Q/1P1pPP1p/b4N1R/P1P3P1/RNB1K3 b Qq - 4 10")
	pc := engine.PawnStructure(p)
	want := engine.PawnCounts{
		Doubled:  [2]int{0, 4},
		Isolated: [2]int{0, 5},
		Blocked:  [2]int{1, 3},
	}
	if pc != want {
		t.Fatalf("got %+v, want %+v", pc, want)
	}
	if got := engine.Evaluate(p).PawnStructure; got != 5.5 {
		t.Fatalf("pawn term %v, want 5.5", got)
	}
}
