package engine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/EricGlover/chess-engine-sub000/board"
)

const (
	// DefaultDepth is used when a caller asks for a search depth of zero or less.
	DefaultDepth = 4

	// MateScore is the magnitude of a checkmate score at the root. Mates found deeper in the
	// tree score one point less per ply, so shorter mates are preferred.
	MateScore = 1000.0
	// DrawScore is returned for stalemate.
	DrawScore = 0.0

	maxMatePly = 100
)

// ErrKingCapture is returned when a search reaches a move that takes a king. It can only
// happen from a position where the side not to move is already in check.
var ErrKingCapture = errors.New("king capture attempted")

// Algorithm selects the tree search.
type Algorithm uint8

const (
	AlgorithmAlphaBeta Algorithm = iota
	AlgorithmMinimax
)

func (a Algorithm) String() string {
	if a == AlgorithmMinimax {
		return "minimax"
	}
	return "alphabeta"
}

// ParseAlgorithm maps "minimax" or "alphabeta" onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "minimax":
		return AlgorithmMinimax, nil
	case "alphabeta", "alpha-beta", "ab":
		return AlgorithmAlphaBeta, nil
	}
	return 0, fmt.Errorf("unknown search algorithm %q", s)
}

// Stats are the counters of one search. They are reset when a search starts.
type Stats struct {
	Nodes   uint64
	Leaves  uint64
	Cutoffs uint64
	Elapsed time.Duration
}

// Result is the outcome of a search. Move is the zero Move when the side to move has no
// legal move; Line is the principal variation starting with Move.
type Result struct {
	Move  board.Move
	Score float64
	Line  []board.Move
	Depth int
	Stats Stats
}

// Found reports whether the search produced a move.
func (r Result) Found() bool { return !r.Move.IsZero() }

// Searcher runs fixed-depth searches. A Searcher is not safe for concurrent use, but
// separate Searchers share nothing.
type Searcher struct {
	Algorithm Algorithm
	// Info receives an "info" line per completed search when non-nil.
	Info io.Writer

	pos   board.Position
	stats Stats
}

// NewSearcher returns a Searcher using the given algorithm.
func NewSearcher(algo Algorithm) *Searcher {
	return &Searcher{Algorithm: algo}
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats { return s.stats }

// Search explores p to depth plies for the side to move. p is not modified: the search
// runs on its own copy and walks the tree by applying and undoing moves on it.
func (s *Searcher) Search(p *board.Position, depth int) (Result, error) {
	if depth <= 0 {
		depth = DefaultDepth
	}
	s.pos = *p
	s.stats = Stats{}
	start := time.Now()

	var (
		score float64
		line  []board.Move
		err   error
	)
	switch s.Algorithm {
	case AlgorithmMinimax:
		score, line, err = s.minimax(depth, 0)
	default:
		score, line, err = s.alphaBeta(depth, 0, math.Inf(-1), math.Inf(1))
	}
	s.stats.Elapsed = time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s search at depth %d: %w", s.Algorithm, depth, err)
	}
	if s.pos != *p {
		return Result{}, fmt.Errorf("%s search at depth %d: %w: position not restored", s.Algorithm, depth, board.ErrInvalidMove)
	}

	res := Result{Score: score, Line: line, Depth: depth, Stats: s.stats}
	if len(line) > 0 {
		res.Move = line[0]
	}
	s.printInfo(res)
	return res, nil
}

// Minimax runs an exhaustive search of p to depth plies.
func Minimax(p *board.Position, depth int) (Result, error) {
	return NewSearcher(AlgorithmMinimax).Search(p, depth)
}

// AlphaBeta runs an alpha-beta search of p to depth plies. It returns the same move and
// score as Minimax.
func AlphaBeta(p *board.Position, depth int) (Result, error) {
	return NewSearcher(AlgorithmAlphaBeta).Search(p, depth)
}

// ChooseMove picks a move for color in p using alpha-beta search. ok is false when color
// has no legal move. If color is not the side to move, the search starts from p with color
// to move.
func ChooseMove(p *board.Position, color board.Color, depth int) (m board.Move, ok bool, err error) {
	work := p.WithTurn(color)
	res, err := AlphaBeta(&work, depth)
	if err != nil {
		return board.Move{}, false, err
	}
	return res.Move, res.Found(), nil
}

// minimax returns the value of the current position with White maximizing and Black
// minimizing, together with the line that reaches it. Among equal moves the first one
// generated is kept.
func (s *Searcher) minimax(depth, ply int) (float64, []board.Move, error) {
	s.stats.Nodes++
	moves, terminal, score := s.expand(depth, ply)
	if terminal {
		return score, nil, nil
	}

	maximizing := s.pos.Turn() == board.White
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	var line []board.Move
	for _, m := range moves {
		v, child, err := s.descend(m, func() (float64, []board.Move, error) {
			return s.minimax(depth-1, ply+1)
		})
		if err != nil {
			return 0, nil, err
		}
		if (maximizing && v > best) || (!maximizing && v < best) {
			best = v
			line = append([]board.Move{m}, child...)
		}
	}
	return best, line, nil
}

// alphaBeta is minimax with bounds: alpha is what White can already force elsewhere, beta
// what Black can. A node stops searching once alpha >= beta. The returned value is exact
// whenever it lies strictly between the bounds it was called with, which is what keeps
// the chosen root move identical to minimax.
func (s *Searcher) alphaBeta(depth, ply int, alpha, beta float64) (float64, []board.Move, error) {
	s.stats.Nodes++
	moves, terminal, score := s.expand(depth, ply)
	if terminal {
		return score, nil, nil
	}

	maximizing := s.pos.Turn() == board.White
	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}
	var line []board.Move
	for _, m := range moves {
		v, child, err := s.descend(m, func() (float64, []board.Move, error) {
			return s.alphaBeta(depth-1, ply+1, alpha, beta)
		})
		if err != nil {
			return 0, nil, err
		}
		if maximizing {
			if v > best {
				best = v
				line = append([]board.Move{m}, child...)
			}
			alpha = math.Max(alpha, best)
		} else {
			if v < best {
				best = v
				line = append([]board.Move{m}, child...)
			}
			beta = math.Min(beta, best)
		}
		if alpha >= beta {
			s.stats.Cutoffs++
			break
		}
	}
	return best, line, nil
}

// expand handles the base cases, in order: depth exhausted, a king missing, no legal
// moves. Otherwise it returns the legal moves to search.
func (s *Searcher) expand(depth, ply int) (moves []board.Move, terminal bool, score float64) {
	if depth == 0 {
		return nil, true, s.leaf(Evaluate(&s.pos), ply)
	}
	_, whiteKing := s.pos.King(board.White)
	_, blackKing := s.pos.King(board.Black)
	if !whiteKing || !blackKing {
		return nil, true, s.leaf(Evaluate(&s.pos), ply)
	}
	moves = board.LegalMoves(&s.pos, s.pos.Turn())
	if len(moves) == 0 {
		counts := MoveCounts{}
		if s.pos.Turn() == board.White {
			counts.Black = board.CountLegalMoves(&s.pos, board.Black)
		} else {
			counts.White = board.CountLegalMoves(&s.pos, board.White)
		}
		return nil, true, s.leaf(EvaluateWithCounts(&s.pos, counts), ply)
	}
	return moves, false, 0
}

// descend applies m, runs the child search and undoes m. The first failure aborts.
func (s *Searcher) descend(m board.Move, child func() (float64, []board.Move, error)) (float64, []board.Move, error) {
	if m.Captured == board.King {
		return 0, nil, fmt.Errorf("%w: %s", ErrKingCapture, m)
	}
	if err := s.pos.Apply(m); err != nil {
		return 0, nil, err
	}
	v, line, err := child()
	if uerr := s.pos.Undo(m); uerr != nil && err == nil {
		err = uerr
	}
	return v, line, err
}

// leaf converts an evaluation into a search score: checkmate scores as a mate at this
// ply, stalemate as a draw, everything else as the static score.
func (s *Searcher) leaf(e Evaluation, ply int) float64 {
	s.stats.Leaves++
	side, noMoves := e.MatedSide()
	switch {
	case !noMoves:
		return e.Score
	case e.Stalemate:
		return DrawScore
	case side == board.White:
		return -(MateScore - float64(ply))
	default:
		return MateScore - float64(ply)
	}
}

func (s *Searcher) printInfo(res Result) {
	if s.Info == nil {
		return
	}
	ms := res.Stats.Elapsed.Milliseconds()
	nps := uint64(0)
	if ms > 0 {
		nps = res.Stats.Nodes * 1000 / uint64(ms)
	}
	fmt.Fprintln(s.Info,
		"info depth", res.Depth,
		"score", scoreString(res.Score),
		"nodes", res.Stats.Nodes,
		"time", ms,
		"nps", nps,
		"pv", lineString(res.Line),
	)
}

// scoreString renders a score UCI style: "cp N" in hundredths of a pawn, or "mate N" in moves.
func scoreString(score float64) string {
	if math.Abs(score) >= MateScore-maxMatePly && math.Abs(score) <= MateScore {
		plies := int(MateScore - math.Abs(score))
		moves := (plies + 1) / 2
		if score < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", int(math.Round(score*100)))
}

func lineString(line []board.Move) string {
	parts := make([]string, len(line))
	for i, m := range line {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
