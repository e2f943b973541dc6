// Package notation converts between moves and their textual forms: UCI long algebraic
// ("e2e4", "e7e8q") and standard algebraic notation ("Nbd7", "exd6", "O-O", "e8=Q+").
// Text is always resolved against the legal moves of a position, so a parsed move can be
// applied directly.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/EricGlover/chess-engine-sub000/board"
)

var (
	// ErrUnknownMove means the text does not match any legal move.
	ErrUnknownMove = errors.New("unknown move")
	// ErrAmbiguousMove means SAN text matches more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")
)

// ParseUCI resolves a long algebraic move string against the legal moves of p.
func ParseUCI(p *board.Position, s string) (board.Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	from, err := board.ParseCoordinate(s[0:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q: %v", ErrUnknownMove, s, err)
	}
	to, err := board.ParseCoordinate(s[2:4])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q: %v", ErrUnknownMove, s, err)
	}
	promote := board.NoType
	if len(s) == 5 {
		promote = board.TypeFromLetter(s[4])
		if promote == board.NoType || promote == board.Pawn || promote == board.King {
			return board.Move{}, fmt.Errorf("%w: %q: bad promotion piece", ErrUnknownMove, s)
		}
	}
	for _, m := range p.LegalMoves() {
		if m.From == from && m.To == to && m.Promote == promote {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("%w: %s is not legal in %s", ErrUnknownMove, s, p.FEN())
}

// SAN renders m, a legal move of p, in standard algebraic notation including the check
// or mate suffix.
func SAN(p *board.Position, m board.Move) string {
	var sb strings.Builder
	switch {
	case m.Kind == board.Castle && m.To.File == 7:
		sb.WriteString("O-O")
	case m.Kind == board.Castle:
		sb.WriteString("O-O-O")
	case m.Piece == board.Pawn:
		if m.IsCapture() {
			sb.WriteByte(m.From.String()[0])
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.Kind == board.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(m.Promote.Letter())
		}
	default:
		sb.WriteByte(m.Piece.Letter())
		sb.WriteString(disambiguation(p, m))
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
	}
	sb.WriteString(checkSuffix(p, m))
	return sb.String()
}

// disambiguation returns the file, rank or full square of the origin when another piece
// of the same type can reach the same destination.
func disambiguation(p *board.Position, m board.Move) string {
	var rivals []board.Move
	for _, o := range p.LegalMoves() {
		if o.Piece == m.Piece && o.To == m.To && o.From != m.From {
			rivals = append(rivals, o)
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, o := range rivals {
		if o.From.File == m.From.File {
			sameFile = true
		}
		if o.From.Rank == m.From.Rank {
			sameRank = true
		}
	}
	from := m.From.String()
	switch {
	case !sameFile:
		return from[:1]
	case !sameRank:
		return from[1:]
	}
	return from
}

func checkSuffix(p *board.Position, m board.Move) string {
	after, err := board.Apply(*p, m)
	if err != nil {
		return ""
	}
	if !after.InCheck(after.Turn()) {
		return ""
	}
	if !after.HasLegalMoves() {
		return "#"
	}
	return "+"
}

// ParseSAN resolves standard algebraic notation against the legal moves of p. Check and
// annotation marks are ignored; "0-0" is accepted for castling.
func ParseSAN(p *board.Position, s string) (board.Move, error) {
	text := strings.TrimRight(strings.TrimSpace(s), "+#!?")
	if text == "" {
		return board.Move{}, fmt.Errorf("%w: empty move", ErrUnknownMove)
	}
	legal := p.LegalMoves()

	switch strings.ReplaceAll(text, "0", "O") {
	case "O-O":
		return pickCastle(legal, 7, s)
	case "O-O-O":
		return pickCastle(legal, 3, s)
	}

	piece := board.Pawn
	if c := text[0]; c >= 'A' && c <= 'Z' {
		piece = board.TypeFromLetter(c)
		if piece == board.NoType || piece == board.Pawn {
			return board.Move{}, fmt.Errorf("%w: %q: unknown piece letter", ErrUnknownMove, s)
		}
		text = text[1:]
	}

	promote := board.NoType
	if i := strings.IndexByte(text, '='); i >= 0 {
		if i+2 != len(text) {
			return board.Move{}, fmt.Errorf("%w: %q: bad promotion", ErrUnknownMove, s)
		}
		promote = board.TypeFromLetter(text[i+1])
		text = text[:i]
	} else if n := len(text); piece == board.Pawn && n >= 3 && text[n-1] >= 'A' && text[n-1] <= 'Z' {
		promote = board.TypeFromLetter(text[n-1])
		text = text[:n-1]
	}
	if promote == board.Pawn || promote == board.King {
		return board.Move{}, fmt.Errorf("%w: %q: bad promotion", ErrUnknownMove, s)
	}

	if len(text) < 2 {
		return board.Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	to, err := board.ParseCoordinate(text[len(text)-2:])
	if err != nil {
		return board.Move{}, fmt.Errorf("%w: %q: %v", ErrUnknownMove, s, err)
	}
	hint := strings.ReplaceAll(text[:len(text)-2], "x", "")
	fromFile, fromRank := 0, 0
	for i := 0; i < len(hint); i++ {
		switch c := hint[i]; {
		case c >= 'a' && c <= 'h':
			fromFile = int(c-'a') + 1
		case c >= '1' && c <= '8':
			fromRank = int(c-'1') + 1
		default:
			return board.Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
		}
	}

	var matches []board.Move
	for _, m := range legal {
		if m.Piece != piece || m.To != to || m.Promote != promote || m.Kind == board.Castle {
			continue
		}
		if fromFile != 0 && m.From.File != fromFile {
			continue
		}
		if fromRank != 0 && m.From.Rank != fromRank {
			continue
		}
		matches = append(matches, m)
	}
	switch len(matches) {
	case 0:
		return board.Move{}, fmt.Errorf("%w: %s is not legal in %s", ErrUnknownMove, s, p.FEN())
	case 1:
		return matches[0], nil
	}
	return board.Move{}, fmt.Errorf("%w: %s matches %d moves", ErrAmbiguousMove, s, len(matches))
}

func pickCastle(legal []board.Move, kingFile int, s string) (board.Move, error) {
	for _, m := range legal {
		if m.Kind == board.Castle && m.To.File == kingFile {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("%w: %s", ErrUnknownMove, s)
}

// Resolve accepts either notation, trying UCI first.
func Resolve(p *board.Position, s string) (board.Move, error) {
	if m, err := ParseUCI(p, s); err == nil {
		return m, nil
	}
	return ParseSAN(p, s)
}

// Line renders a sequence of moves played from p as SAN. Rendering stops at the first
// move that does not apply.
func Line(p *board.Position, moves []board.Move) []string {
	work := *p
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		san := SAN(&work, m)
		if err := work.Apply(m); err != nil {
			break
		}
		out = append(out, san)
	}
	return out
}
