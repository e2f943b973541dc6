package engine

import (
	"fmt"
	"io"

	"github.com/EricGlover/chess-engine-sub000/board"
)

// Piece weights for the material term.
var PieceValue = [7]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   20,
}

const (
	// PawnStructureWeight scales the doubled + isolated + blocked pawn difference.
	PawnStructureWeight = 0.5
	// MobilityWeight scales the legal move count difference.
	MobilityWeight = 0.1
)

// MoveCounts carries already known legal move counts so the evaluator need not regenerate them.
type MoveCounts struct {
	White int
	Black int
}

// Of returns the count for one side.
func (mc MoveCounts) Of(c board.Color) int {
	if c == board.White {
		return mc.White
	}
	return mc.Black
}

// Evaluation is the static verdict on a position. Score is from White's point of view.
type Evaluation struct {
	Score float64

	Material      float64
	PawnStructure float64
	Mobility      float64

	// NoMoves is set when the side to move has no legal move; Mated then names that side.
	// Stalemate distinguishes the case where that side is not in check.
	NoMoves   bool
	Mated     board.Color
	Stalemate bool
}

// MatedSide returns the side that has no legal move, if any.
func (e Evaluation) MatedSide() (board.Color, bool) { return e.Mated, e.NoMoves }

// Evaluate scores p, generating both sides' legal moves for the mobility term.
func Evaluate(p *board.Position) Evaluation {
	return EvaluateWithCounts(p, MoveCounts{
		White: board.CountLegalMoves(p, board.White),
		Black: board.CountLegalMoves(p, board.Black),
	})
}

// EvaluateWithCounts scores p using the supplied legal move counts.
func EvaluateWithCounts(p *board.Position, counts MoveCounts) Evaluation {
	e := Evaluation{
		Material:      material(p),
		PawnStructure: PawnStructure(p).Score(),
		Mobility:      MobilityWeight * float64(counts.White-counts.Black),
	}
	e.Score = e.Material + e.Mobility + e.PawnStructure

	if counts.Of(p.Turn()) == 0 {
		e.NoMoves = true
		e.Mated = p.Turn()
		e.Stalemate = !p.InCheck(p.Turn())
	}
	return e
}

func material(p *board.Position) float64 {
	var score float64
	for _, sq := range p.Squares() {
		pc := p.PieceAt(sq)
		if pc.IsEmpty() {
			continue
		}
		if pc.Color == board.White {
			score += PieceValue[pc.Type]
		} else {
			score -= PieceValue[pc.Type]
		}
	}
	return score
}

// PawnCounts holds per-side pawn structure faults, indexed by board.Color.
type PawnCounts struct {
	Doubled  [2]int
	Isolated [2]int
	Blocked  [2]int
}

// Score turns the counts into the pawn-structure term. Faults count against their owner,
// so the term is negative when White has more of them.
func (pc PawnCounts) Score() float64 {
	diff := (pc.Doubled[board.White] - pc.Doubled[board.Black]) +
		(pc.Isolated[board.White] - pc.Isolated[board.Black]) +
		(pc.Blocked[board.White] - pc.Blocked[board.Black])
	return PawnStructureWeight * float64(-diff)
}

// PawnStructure counts doubled, isolated and blocked pawns for both sides.
//
//   - doubled: for every file holding two or more of a side's pawns, all of them
//   - isolated: pawns with no friendly pawn on either neighbouring file
//   - blocked: pawns with any piece directly in front of them
func PawnStructure(p *board.Position) PawnCounts {
	var perFile [2][10]int // files 1..8, padded for neighbour lookups
	var pawns []board.Piece
	for _, sq := range p.Squares() {
		pc := p.PieceAt(sq)
		if pc.Type != board.Pawn {
			continue
		}
		perFile[pc.Color][sq.File]++
		pawns = append(pawns, pc)
	}

	var counts PawnCounts
	for c := range perFile {
		for f := 1; f <= 8; f++ {
			if perFile[c][f] >= 2 {
				counts.Doubled[c] += perFile[c][f]
			}
		}
	}
	for _, pc := range pawns {
		f := pc.Square.File
		if perFile[pc.Color][f-1] == 0 && perFile[pc.Color][f+1] == 0 {
			counts.Isolated[pc.Color]++
		}
		dir := 1
		if pc.Color == board.Black {
			dir = -1
		}
		if ahead := p.PieceAt(pc.Square.Offset(0, dir)); !ahead.IsEmpty() {
			counts.Blocked[pc.Color]++
		}
	}
	return counts
}

// PrintEvaluation writes the term breakdown in the engine's "info string" style.
func PrintEvaluation(w io.Writer, p *board.Position) {
	e := Evaluate(p)
	pc := PawnStructure(p)
	fmt.Fprintf(w, "info string material %.2f\n", e.Material)
	fmt.Fprintf(w, "info string pawns %.2f doubled %d/%d isolated %d/%d blocked %d/%d\n",
		e.PawnStructure,
		pc.Doubled[board.White], pc.Doubled[board.Black],
		pc.Isolated[board.White], pc.Isolated[board.Black],
		pc.Blocked[board.White], pc.Blocked[board.Black])
	fmt.Fprintf(w, "info string mobility %.2f\n", e.Mobility)
	if side, ok := e.MatedSide(); ok {
		if e.Stalemate {
			fmt.Fprintf(w, "info string %s is stalemated\n", side)
		} else {
			fmt.Fprintf(w, "info string %s is checkmated\n", side)
		}
	}
	fmt.Fprintf(w, "info string total %.2f\n", e.Score)
}
