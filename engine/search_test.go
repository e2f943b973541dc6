package engine_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
)

const (
	whiteMateInOne = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	blackMateInOne = "r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1"
)

func lineString(line []board.Move) string {
	parts := make([]string, len(line))
	for i, m := range line {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		maxDepth int
	}{
		{"initial", board.StartFEN, 3},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2},
		{"endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3},
		{"black to move", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 2", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := board.MustParseFEN(tc.fen)
			for depth := 1; depth <= tc.maxDepth; depth++ {
				mm, err := engine.Minimax(p, depth)
				if err != nil {
					t.Fatalf("minimax depth %d: %v", depth, err)
				}
				ab, err := engine.AlphaBeta(p, depth)
				if err != nil {
					t.Fatalf("alphabeta depth %d: %v", depth, err)
				}
				if mm.Move != ab.Move || mm.Score != ab.Score {
					t.Fatalf("depth %d: minimax %s (%v), alphabeta %s (%v)", depth, mm.Move, mm.Score, ab.Move, ab.Score)
				}
				if lineString(mm.Line) != lineString(ab.Line) {
					t.Fatalf("depth %d: lines differ: %q vs %q", depth, lineString(mm.Line), lineString(ab.Line))
				}
				if ab.Stats.Nodes > mm.Stats.Nodes {
					t.Fatalf("depth %d: alphabeta visited %d nodes, minimax %d", depth, ab.Stats.Nodes, mm.Stats.Nodes)
				}
			}
		})
	}
}

func TestSearchLeavesPositionUntouched(t *testing.T) {
	p := board.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *p
	for _, algo := range []engine.Algorithm{engine.AlgorithmMinimax, engine.AlgorithmAlphaBeta} {
		if _, err := engine.NewSearcher(algo).Search(p, 2); err != nil {
			t.Fatalf("%s: %v", algo, err)
		}
		if *p != before {
			t.Fatalf("%s modified the position: %s", algo, p.FEN())
		}
	}
}

func TestDepthOneTakesFirstBestMove(t *testing.T) {
	// Every reply scores the same, so the first generated move wins.
	p := board.MustParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	res, err := engine.Minimax(p, 1)
	if err != nil {
		t.Fatal(err)
	}
	legal := p.LegalMoves()
	best := res.Score
	for _, m := range legal {
		q, _ := board.Apply(*p, m)
		if s := engine.Evaluate(&q).Score; s > best {
			t.Fatalf("%s scores %v, better than chosen %s at %v", m, s, res.Move, best)
		}
	}
	for _, m := range legal {
		q, _ := board.Apply(*p, m)
		if engine.Evaluate(&q).Score == best {
			if m != res.Move {
				t.Fatalf("chose %s, first best move is %s", res.Move, m)
			}
			break
		}
	}
}

func TestFindsMateInOne(t *testing.T) {
	cases := []struct {
		fen   string
		move  string
		score float64
	}{
		{whiteMateInOne, "a1a8", engine.MateScore - 1},
		{blackMateInOne, "a8a1", -(engine.MateScore - 1)},
	}
	for _, tc := range cases {
		p := board.MustParseFEN(tc.fen)
		for depth := 1; depth <= 3; depth++ {
			for _, algo := range []engine.Algorithm{engine.AlgorithmMinimax, engine.AlgorithmAlphaBeta} {
				res, err := engine.NewSearcher(algo).Search(p, depth)
				if err != nil {
					t.Fatalf("%s depth %d: %v", algo, depth, err)
				}
				if res.Move.String() != tc.move || res.Score != tc.score {
					t.Fatalf("%s %s depth %d: got %s (%v), want %s (%v)", tc.fen, algo, depth, res.Move, res.Score, tc.move, tc.score)
				}
			}
		}
	}
}

func TestSearchWithoutMoves(t *testing.T) {
	for _, fen := range []string{stalemateFEN, foolsMateFEN} {
		p := board.MustParseFEN(fen)
		res, err := engine.AlphaBeta(p, 3)
		if err != nil {
			t.Fatal(err)
		}
		if res.Found() || len(res.Line) != 0 {
			t.Fatalf("%s: got move %s", fen, res.Move)
		}
		m, ok, err := engine.ChooseMove(p, p.Turn(), 2)
		if err != nil || ok || !m.IsZero() {
			t.Fatalf("%s: ChooseMove = %s, %v, %v", fen, m, ok, err)
		}
	}

	res, _ := engine.AlphaBeta(board.MustParseFEN(stalemateFEN), 2)
	if res.Score != engine.DrawScore {
		t.Fatalf("stalemate scored %v", res.Score)
	}
	res, _ = engine.AlphaBeta(board.MustParseFEN(foolsMateFEN), 2)
	if res.Score != -engine.MateScore {
		t.Fatalf("mated root scored %v, want %v", res.Score, -engine.MateScore)
	}
}

func TestSearchMissingKingEvaluates(t *testing.T) {
	p := board.MustParseFEN("8/8/8/8/8/8/8/K6q w - - 0 1")
	res, err := engine.AlphaBeta(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Found() {
		t.Fatalf("got move %s from a position without a black king", res.Move)
	}
	if want := engine.Evaluate(p).Score; res.Score != want {
		t.Fatalf("score %v, want static %v", res.Score, want)
	}
}

func TestSearchRejectsKingCapture(t *testing.T) {
	p := board.MustParseFEN("4k3/8/8/8/8/8/8/4RK2 w - - 0 1")
	_, err := engine.Minimax(p, 1)
	if !errors.Is(err, engine.ErrKingCapture) {
		t.Fatalf("got %v, want ErrKingCapture", err)
	}
}

func TestChooseMove(t *testing.T) {
	p := board.MustParseFEN(whiteMateInOne)
	m, ok, err := engine.ChooseMove(p, board.White, 0)
	if err != nil || !ok {
		t.Fatalf("ChooseMove: %v, ok=%v", err, ok)
	}
	if m.String() != "a1a8" {
		t.Fatalf("got %s, want a1a8", m)
	}

	// Asking for the side not to move searches as if it were that side's turn.
	flipped := board.MustParseFEN("6k1/5ppp/8/8/8/8/8/R5K1 b - - 0 1")
	m, ok, err = engine.ChooseMove(flipped, board.White, 1)
	if err != nil || !ok || m.String() != "a1a8" {
		t.Fatalf("flipped: got %s, %v, %v", m, ok, err)
	}
	if flipped.Turn() != board.Black {
		t.Fatalf("ChooseMove changed the side to move")
	}
}

func TestDefaultDepth(t *testing.T) {
	res, err := engine.AlphaBeta(board.MustParseFEN(whiteMateInOne), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Depth != engine.DefaultDepth {
		t.Fatalf("depth %d, want %d", res.Depth, engine.DefaultDepth)
	}
}

func TestSearchInfoLine(t *testing.T) {
	var buf bytes.Buffer
	s := engine.NewSearcher(engine.AlgorithmAlphaBeta)
	s.Info = &buf
	if _, err := s.Search(board.MustParseFEN(whiteMateInOne), 2); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "info depth 2 score mate 1 nodes ") || !strings.Contains(out, "pv a1a8") {
		t.Fatalf("unexpected info line %q", out)
	}

	buf.Reset()
	engine.PrintStats(&buf, engine.AlgorithmAlphaBeta, s.Stats())
	if !strings.Contains(buf.String(), "info string   nodes:") {
		t.Fatalf("unexpected stats %q", buf.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]engine.Algorithm{
		"minimax":   engine.AlgorithmMinimax,
		"AlphaBeta": engine.AlgorithmAlphaBeta,
		"ab":        engine.AlgorithmAlphaBeta,
	} {
		got, err := engine.ParseAlgorithm(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := engine.ParseAlgorithm("mcts"); err == nil {
		t.Fatalf("expected an error")
	}
}
