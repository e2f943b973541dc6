package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// goTool runs the go command with args, echoes what it printed and returns its exit status.
func goTool(args ...string) int {
	cmd := exec.Command("go", args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	fmt.Print(buf.String())

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "go %v: %v\n", args, err)
	return 1
}

// benchrun collects every throughput figure in one report: the bench package, perft
// with and without the subtree table, and the two search algorithms side by side.
func main() {
	fmt.Println("== bench package (name, iterations, ns/op, B/op, allocs/op)")
	if code := goTool("test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\n== perft (label, depth, nodes, time, nodes/s)")
	for _, depth := range []string{"3", "4"} {
		goTool("run", "./cmd/perft", "-depth", depth, "-label", "start")
		goTool("run", "./cmd/perft", "-depth", depth, "-hash", "16", "-label", "start+table")
	}
	if code := goTool("run", "./cmd/perft", "-fen", kiwipete, "-depth", "3", "-label", "kiwipete", "-crosscheck"); code != 0 {
		os.Exit(code)
	}

	fmt.Println("\n== search (minimax vs alpha-beta)")
	os.Exit(goTool("run", "./cmd/searchbench", "-depth", "3", "-algo", "both", "-stats"))
}
