package bench

import (
	"testing"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
)

func benchSearch(b *testing.B, algo engine.Algorithm, fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	s := engine.NewSearcher(algo)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Search(pos, depth); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(s.Stats().Nodes), "nodes/op")
}

func BenchmarkMinimax_Initial_D3(b *testing.B) {
	benchSearch(b, engine.AlgorithmMinimax, board.StartFEN, 3)
}

func BenchmarkAlphaBeta_Initial_D3(b *testing.B) {
	benchSearch(b, engine.AlgorithmAlphaBeta, board.StartFEN, 3)
}

func BenchmarkAlphaBeta_Kiwipete_D2(b *testing.B) {
	benchSearch(b, engine.AlgorithmAlphaBeta, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	pos := board.MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(pos)
	}
}
