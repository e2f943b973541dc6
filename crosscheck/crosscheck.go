// Package crosscheck compares the board package's move generator with
// github.com/dylhunn/dragontoothmg, move list by move list and perft count by perft count.
package crosscheck

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/EricGlover/chess-engine-sub000/board"
)

// Mismatch describes a position where the two generators disagree.
type Mismatch struct {
	FEN string
	// Missing are moves only the reference generates, Extra moves only ours does.
	Missing []string
	Extra   []string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: missing [%s] extra [%s]", m.FEN, strings.Join(m.Missing, " "), strings.Join(m.Extra, " "))
}

// Ours returns the legal moves of p in UCI form, sorted.
func Ours(p *board.Position) []string {
	moves := p.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// Reference returns the reference generator's legal moves for fen in UCI form, sorted.
func Reference(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	return referenceMoves(&b)
}

func referenceMoves(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = strings.ToLower(moves[i].String())
	}
	slices.Sort(out)
	return out
}

// Compare diffs the legal move sets of p. ok is true when they agree.
func Compare(p *board.Position) (Mismatch, bool) {
	return diff(p.FEN(), Ours(p), Reference(p.FEN()))
}

func diff(fen string, ours, theirs []string) (Mismatch, bool) {
	set := make(map[string]int, len(ours))
	for _, m := range ours {
		set[m]++
	}
	for _, m := range theirs {
		set[m]--
	}
	mm := Mismatch{FEN: fen}
	keys := maps.Keys(set)
	slices.Sort(keys)
	for _, k := range keys {
		switch {
		case set[k] > 0:
			mm.Extra = append(mm.Extra, k)
		case set[k] < 0:
			mm.Missing = append(mm.Missing, k)
		}
	}
	return mm, len(mm.Missing) == 0 && len(mm.Extra) == 0
}

// Walk compares move sets at every node of the tree below p down to depth plies and
// returns the disagreements, stopping after limit of them (limit <= 0 means no limit).
func Walk(p *board.Position, depth, limit int) []Mismatch {
	var out []Mismatch
	work := *p
	var walk func(d int) bool
	walk = func(d int) bool {
		if mm, ok := Compare(&work); !ok {
			out = append(out, mm)
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		if d == 0 {
			return true
		}
		for _, m := range work.LegalMoves() {
			if err := work.Apply(m); err != nil {
				panic(err)
			}
			cont := walk(d - 1)
			if err := work.Undo(m); err != nil {
				panic(err)
			}
			if !cont {
				return false
			}
		}
		return true
	}
	walk(depth)
	return out
}

// Perft counts leaves with the reference generator.
func Perft(fen string, depth int) uint64 {
	b := dragontoothmg.ParseFen(fen)
	return perft(&b, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide maps each reference root move to its leaf count, keyed by UCI text.
func Divide(fen string, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	for i := range moves {
		unapply := b.Apply(moves[i])
		out[strings.ToLower(moves[i].String())] = perft(&b, depth-1)
		unapply()
	}
	return out
}

// DivideDiff compares our divide output with the reference and lists the root moves whose
// counts differ, as "move ours theirs" lines in move order.
func DivideDiff(p *board.Position, depth int) []string {
	ours := make(map[string]uint64)
	for m, n := range board.PerftDivide(p, depth) {
		ours[m.String()] = n
	}
	theirs := Divide(p.FEN(), depth)

	keys := maps.Keys(ours)
	for k := range theirs {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	var out []string
	for _, k := range keys {
		if ours[k] != theirs[k] {
			out = append(out, fmt.Sprintf("%s %d %d", k, ours[k], theirs[k]))
		}
	}
	return out
}
