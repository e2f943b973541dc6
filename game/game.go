// Package game keeps the record of one game: its moves, the positions they lead through,
// and how the game ended.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/EricGlover/chess-engine-sub000/board"
	"github.com/EricGlover/chess-engine-sub000/notation"
)

// Outcome is the result of a game in PGN form.
type Outcome string

const (
	NoOutcome Outcome = "*"
	WhiteWon  Outcome = "1-0"
	BlackWon  Outcome = "0-1"
	Draw      Outcome = "1/2-1/2"
)

func (o Outcome) String() string { return string(o) }

// Method is how an outcome came about.
type Method uint8

const (
	NoMethod Method = iota
	Checkmate
	Resignation
	Stalemate
	ThreefoldRepetition
	FiftyMoveRule
	InsufficientMaterial
)

func (m Method) String() string {
	switch m {
	case Checkmate:
		return "checkmate"
	case Resignation:
		return "resignation"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "none"
}

const (
	halfMoveClockForFiftyMoveRule          = 100
	numOfRepetitionsForThreefoldRepetition = 3
)

var (
	// ErrGameOver is returned when a move is pushed after the game has ended.
	ErrGameOver = errors.New("game is over")
	// ErrNoMoves is returned by Undo on a game without moves.
	ErrNoMoves = errors.New("no moves to undo")
)

// Game is a sequence of moves from a starting position.
type Game struct {
	id    string
	start board.Position
	pos   board.Position

	moves  []board.Move
	sans   []string
	hashes []uint64 // hashes[i] is the position before moves[i]; the last is the current one

	outcome Outcome
	method  Method
}

// New starts a game from a copy of p. A position that is already decided (mate,
// stalemate, dead draw) yields a game that is already over.
func New(p *board.Position) *Game {
	g := &Game{
		id:      uuid.New().String(),
		start:   *p,
		pos:     *p,
		hashes:  []uint64{p.Hash()},
		outcome: NoOutcome,
	}
	g.evaluatePositionStatus()
	return g
}

// ID identifies the game.
func (g *Game) ID() string { return g.id }

// Position returns a copy of the current position.
func (g *Game) Position() board.Position { return g.pos }

// Start returns the position the game started from.
func (g *Game) Start() board.Position { return g.start }

// Moves returns the moves played so far.
func (g *Game) Moves() []board.Move { return slices.Clone(g.moves) }

// SANs returns the moves played so far in standard algebraic notation.
func (g *Game) SANs() []string { return slices.Clone(g.sans) }

// Outcome returns the result, NoOutcome while the game is running.
func (g *Game) Outcome() Outcome { return g.outcome }

// Method returns how the game ended.
func (g *Game) Method() Method { return g.method }

// Over reports whether the game has an outcome.
func (g *Game) Over() bool { return g.outcome != NoOutcome }

// Push plays m, which must be legal in the current position. Draws by rule (repetition,
// fifty moves, insufficient material) describe the current position only and do not stop
// further moves; checkmate, stalemate and resignation do.
func (g *Game) Push(m board.Move) error {
	if err := g.ended(); err != nil {
		return err
	}
	if !slices.Contains(g.pos.LegalMoves(), m) {
		return fmt.Errorf("%w: %s is not legal in %s", board.ErrInvalidMove, m, g.pos.FEN())
	}
	san := notation.SAN(&g.pos, m)
	if err := g.pos.Apply(m); err != nil {
		return err
	}
	g.moves = append(g.moves, m)
	g.sans = append(g.sans, san)
	g.hashes = append(g.hashes, g.pos.Hash())
	g.outcome, g.method = NoOutcome, NoMethod
	g.evaluatePositionStatus()
	return nil
}

// PushText resolves s as UCI or SAN and plays it.
func (g *Game) PushText(s string) (board.Move, error) {
	if err := g.ended(); err != nil {
		return board.Move{}, err
	}
	m, err := notation.Resolve(&g.pos, s)
	if err != nil {
		return board.Move{}, err
	}
	return m, g.Push(m)
}

// ended returns ErrGameOver once the game has been decided by a result that stops play.
func (g *Game) ended() error {
	if g.method == Checkmate || g.method == Stalemate || g.method == Resignation {
		return fmt.Errorf("%w: %s by %s", ErrGameOver, g.outcome, g.method)
	}
	return nil
}

// Undo takes back the last move and clears any outcome.
func (g *Game) Undo() (board.Move, error) {
	n := len(g.moves)
	if n == 0 {
		return board.Move{}, ErrNoMoves
	}
	m := g.moves[n-1]
	if err := g.pos.Undo(m); err != nil {
		return board.Move{}, err
	}
	g.moves = g.moves[:n-1]
	g.sans = g.sans[:n-1]
	g.hashes = g.hashes[:n]
	g.outcome, g.method = NoOutcome, NoMethod
	g.evaluatePositionStatus()
	return m, nil
}

// Resign ends the game in favour of color's opponent.
func (g *Game) Resign(color board.Color) {
	if g.Over() {
		return
	}
	g.outcome = WhiteWon
	if color == board.White {
		g.outcome = BlackWon
	}
	g.method = Resignation
}

// Repetitions counts how often the current position has occurred, itself included.
func (g *Game) Repetitions() int {
	cur := g.hashes[len(g.hashes)-1]
	n := 0
	for _, h := range g.hashes {
		if h == cur {
			n++
		}
	}
	return n
}

func (g *Game) evaluatePositionStatus() {
	if !g.pos.HasLegalMoves() {
		if g.pos.InCheck(g.pos.Turn()) {
			g.method = Checkmate
			g.outcome = WhiteWon
			if g.pos.Turn() == board.White {
				g.outcome = BlackWon
			}
		} else {
			g.method = Stalemate
			g.outcome = Draw
		}
		return
	}

	switch {
	case insufficientMaterial(&g.pos):
		g.outcome, g.method = Draw, InsufficientMaterial
	case g.Repetitions() >= numOfRepetitionsForThreefoldRepetition:
		g.outcome, g.method = Draw, ThreefoldRepetition
	case g.pos.HalfMoveClock() >= halfMoveClockForFiftyMoveRule:
		g.outcome, g.method = Draw, FiftyMoveRule
	}
}

// insufficientMaterial covers king against king and king and one minor piece against king.
func insufficientMaterial(p *board.Position) bool {
	minors := 0
	for _, sq := range p.Squares() {
		switch p.PieceAt(sq).Type {
		case board.NoType, board.King:
		case board.Knight, board.Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}

// PGNMoves renders the move list as numbered SAN text followed by the result, e.g.
// "1. e4 e5 2. Nf3 *".
func (g *Game) PGNMoves() string {
	var sb strings.Builder
	number := g.start.FullMoveNumber()
	turn := g.start.Turn()
	for i, san := range g.sans {
		if turn == board.White {
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString(". ")
		} else if i == 0 {
			sb.WriteString(strconv.Itoa(number))
			sb.WriteString("... ")
		}
		sb.WriteString(san)
		sb.WriteByte(' ')
		if turn == board.Black {
			number++
		}
		turn = turn.Other()
	}
	sb.WriteString(g.outcome.String())
	return sb.String()
}
