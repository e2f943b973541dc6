package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/engine"
	"github.com/EricGlover/chess-engine-sub000/game"
	"github.com/EricGlover/chess-engine-sub000/render"
)

func main() {
	fenFlag := flag.String("fen", board.StartFEN, "starting position")
	depthFlag := flag.Int("depth", engine.DefaultDepth, "engine search depth in plies")
	colorFlag := flag.String("color", "white", "the side you play: white or black")
	svgFlag := flag.String("svg", "", "write the board to this SVG file after every move")
	algoFlag := flag.String("algo", "alphabeta", "engine search: alphabeta or minimax")
	flag.Parse()

	pos, err := board.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}
	var human board.Color
	switch strings.ToLower(*colorFlag) {
	case "white", "w":
		human = board.White
	case "black", "b":
		human = board.Black
	default:
		log.Fatalf("color must be white or black, got %q", *colorFlag)
	}
	algo, err := engine.ParseAlgorithm(*algoFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	s := &session{
		game:     game.New(pos),
		human:    human,
		depth:    *depthFlag,
		searcher: engine.NewSearcher(algo),
		svgPath:  *svgFlag,
		out:      os.Stdout,
	}
	s.searcher.Info = os.Stdout
	s.run(os.Stdin)
}

type session struct {
	game     *game.Game
	human    board.Color
	depth    int
	searcher *engine.Searcher
	svgPath  string
	out      io.Writer
	lastMove board.Move
}

func (s *session) run(in io.Reader) {
	fmt.Fprintf(s.out, "game %s\n", s.game.ID())
	s.show()
	scanner := bufio.NewScanner(in)
	for {
		if s.game.Over() {
			fmt.Fprintf(s.out, "%s by %s\n%s\n", s.game.Outcome(), s.game.Method(), s.game.PGNMoves())
			return
		}
		pos := s.game.Position()
		if pos.Turn() != s.human {
			if !s.engineMove() {
				return
			}
			continue
		}

		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
		case "quit", "exit":
			return
		case "undo":
			// Take back the engine's reply and the human move before it.
			for i := 0; i < 2; i++ {
				if _, err := s.game.Undo(); err != nil {
					break
				}
			}
			s.lastMove = board.Move{}
			s.show()
		case "moves":
			var list []string
			for _, m := range pos.LegalMoves() {
				list = append(list, m.String())
			}
			fmt.Fprintln(s.out, strings.Join(list, " "))
		case "fen":
			fmt.Fprintln(s.out, pos.FEN())
		case "eval":
			engine.PrintEvaluation(s.out, &pos)
		case "resign":
			s.game.Resign(s.human)
		default:
			m, err := s.game.PushText(line)
			if err != nil {
				fmt.Fprintln(s.out, "error:", err)
				continue
			}
			s.lastMove = m
			s.show()
		}
	}
}

// engineMove lets the engine reply. It reports false when the session has to stop.
func (s *session) engineMove() bool {
	pos := s.game.Position()
	res, err := s.searcher.Search(&pos, s.depth)
	if err != nil {
		fmt.Fprintln(s.out, "engine error:", err)
		return false
	}
	if !res.Found() {
		return false
	}
	if err := s.game.Push(res.Move); err != nil {
		fmt.Fprintln(s.out, "engine error:", err)
		return false
	}
	sans := s.game.SANs()
	fmt.Fprintf(s.out, "engine plays %s\n", sans[len(sans)-1])
	s.lastMove = res.Move
	s.show()
	return true
}

func (s *session) show() {
	pos := s.game.Position()
	opts := render.Options{Flip: s.human == board.Black, LastMove: s.lastMove}
	if err := render.Text(s.out, &pos, opts); err != nil {
		log.Printf("render: %v", err)
	}
	if s.svgPath == "" {
		return
	}
	f, err := os.Create(s.svgPath)
	if err != nil {
		log.Printf("svg: %v", err)
		return
	}
	render.SVG(f, &pos, opts)
	if err := f.Close(); err != nil {
		log.Printf("svg: %v", err)
	}
}
