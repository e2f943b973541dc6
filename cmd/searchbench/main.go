package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultDepth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	algoFlag := flag.String("algo", "alphabeta", "search algorithm: alphabeta, minimax or both")
	statsFlag := flag.Bool("stats", false, "print search counters after each run")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	var algos []engine.Algorithm
	if *algoFlag == "both" {
		algos = []engine.Algorithm{engine.AlgorithmMinimax, engine.AlgorithmAlphaBeta}
	} else {
		algo, err := engine.ParseAlgorithm(*algoFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		algos = []engine.Algorithm{algo}
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := board.ParseFEN(fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	startAll := time.Now()
	for _, algo := range algos {
		s := engine.NewSearcher(algo)
		s.Info = os.Stdout
		for i := 0; i < repeat; i++ {
			res, err := s.Search(pos, depth)
			if err != nil {
				log.Fatalf("search failed: %v", err)
			}
			fmt.Printf("%s iteration %d: bestmove %s score %.2f time=%v\n", algo, i+1, res.Move, res.Score, res.Stats.Elapsed)
			if *statsFlag {
				engine.PrintStats(os.Stdout, algo, res.Stats)
			}
		}
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
