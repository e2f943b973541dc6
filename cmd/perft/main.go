package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/crosscheck"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	check := flag.Bool("crosscheck", false, "Compare counts with the dragontoothmg generator")
	hashMB := flag.Int("hash", 0, "Share subtree counts through a table of this many MB (0 = off)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := board.PerftDivide(pos, *depth)
		byText := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			byText[m.String()] = n
			sum += n
		}
		keys := maps.Keys(byText)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, byText[k])
		}
		fmt.Printf("Total: %d\n", sum)
		if *check {
			for _, line := range crosscheck.DivideDiff(pos, *depth) {
				fmt.Printf("mismatch (move ours reference): %s\n", line)
			}
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var table *board.PerftTable
	if *hashMB > 0 {
		table = board.NewPerftTable(*hashMB)
	}

	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if table != nil {
			table.Clear()
			nodes = board.PerftHashed(pos, *depth, table)
		} else {
			nodes = board.Perft(pos, *depth)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	if table != nil {
		fmt.Printf("hash hits %d of %d probes\n", table.Hits, table.Probes)
	}

	if *check {
		ref := crosscheck.Perft(pos.FEN(), *depth)
		if ref != nodes {
			fmt.Printf("crosscheck FAILED: ours %d, reference %d\n", nodes, ref)
			for _, line := range crosscheck.DivideDiff(pos, *depth) {
				fmt.Printf("mismatch (move ours reference): %s\n", line)
			}
			os.Exit(1)
		}
		fmt.Printf("crosscheck ok: %d\n", ref)
	}
}
