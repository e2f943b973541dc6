package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
	"github.com/EricGlover/chess-engine-sub000/game"
	"github.com/EricGlover/chess-engine-sub000/render"
)

func main() {
	uciLoop(os.Stdin, os.Stdout)
}

// uciState is what the loop carries between commands.
type uciState struct {
	out      io.Writer
	game     *game.Game
	searcher *engine.Searcher
	depth    int
}

func uciLoop(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	st := &uciState{
		out:      out,
		game:     game.New(board.StartPosition()),
		searcher: engine.NewSearcher(engine.AlgorithmAlphaBeta),
		depth:    engine.DefaultDepth,
	}
	st.searcher.Info = out

	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-engine-sub000")
			fmt.Fprintln(out, "id author EricGlover")
			fmt.Fprintf(out, "option name Depth type spin default %d min 1 max 8\n", engine.DefaultDepth)
			fmt.Fprintln(out, "option name Algorithm type combo default alphabeta var alphabeta var minimax")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			st.game = game.New(board.StartPosition())
		case "quit":
			return
		case "position":
			st.position(tokens[1:])
		case "go":
			st.goCommand(tokens[1:])
		case "setoption":
			st.setOption(tokens[1:])
		case "eval":
			pos := st.game.Position()
			engine.PrintEvaluation(out, &pos)
		case "d":
			pos := st.game.Position()
			if err := render.Text(out, &pos, render.Options{}); err != nil {
				fmt.Fprintln(out, "info string", err)
			}
			fmt.Fprintln(out, "Fen:", pos.FEN())
			fmt.Fprintf(out, "Key: %016x\n", pos.Hash())
			if st.game.Over() {
				fmt.Fprintf(out, "Result: %s by %s\n", st.game.Outcome(), st.game.Method())
			}
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

// position handles "position [startpos | fen <fen>] [moves <m1> ...]". A bad FEN or an
// illegal move keeps the previous position.
func (st *uciState) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(st.out, "info string Malformed position command")
		return
	}
	var (
		pos  *board.Position
		rest []string
		err  error
	)
	switch strings.ToLower(args[0]) {
	case "startpos":
		pos, rest = board.StartPosition(), args[1:]
	case "fen":
		i := 1
		for i < len(args) && strings.ToLower(args[i]) != "moves" {
			i++
		}
		pos, err = board.ParseFEN(strings.Join(args[1:i], " "))
		if err != nil {
			fmt.Fprintln(st.out, "info string Invalid fen position:", err)
			return
		}
		rest = args[i:]
	default:
		fmt.Fprintln(st.out, "info string Invalid position subcommand")
		return
	}

	g := game.New(pos)
	if len(rest) > 0 && strings.ToLower(rest[0]) == "moves" {
		for _, mv := range rest[1:] {
			if _, err := g.PushText(mv); err != nil {
				fmt.Fprintln(st.out, "info string Move", mv, "not applied:", err)
				return
			}
		}
	}
	st.game = g
}

// goCommand handles "go [depth N]". Clock arguments are accepted and ignored.
func (st *uciState) goCommand(args []string) {
	depth := st.depth
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(st.out, "info string Malformed go command option depth")
				continue
			}
			d, err := strconv.Atoi(args[i+1])
			if err != nil || d <= 0 {
				fmt.Fprintln(st.out, "info string Malformed go command option; could not convert depth")
			} else {
				depth = d
			}
			i++
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime":
			i++
		case "infinite":
		default:
			fmt.Fprintln(st.out, "info string Unknown go subcommand", args[i])
		}
	}

	pos := st.game.Position()
	res, err := st.searcher.Search(&pos, depth)
	if err != nil {
		fmt.Fprintln(st.out, "info string search failed:", err)
		fmt.Fprintln(st.out, "bestmove 0000")
		return
	}
	fmt.Fprintln(st.out, "bestmove", res.Move)
}

// setOption handles "setoption name <Depth|Algorithm> value <v>".
func (st *uciState) setOption(args []string) {
	if len(args) != 4 || strings.ToLower(args[0]) != "name" || strings.ToLower(args[2]) != "value" {
		fmt.Fprintln(st.out, "info string Malformed setoption command")
		return
	}
	switch strings.ToLower(args[1]) {
	case "depth":
		d, err := strconv.Atoi(args[3])
		if err != nil || d <= 0 {
			fmt.Fprintln(st.out, "info string Malformed Depth value", args[3])
			return
		}
		st.depth = d
	case "algorithm":
		algo, err := engine.ParseAlgorithm(args[3])
		if err != nil {
			fmt.Fprintln(st.out, "info string", err)
			return
		}
		st.searcher.Algorithm = algo
	default:
		fmt.Fprintln(st.out, "info string Unknown option", args[1])
	}
}
