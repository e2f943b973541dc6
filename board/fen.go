package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the standard initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN wraps every FEN parsing failure.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN parses a FEN string. The two move counters may be omitted and default to 0 and 1.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("expected 4 to 6 fields, got %d", len(fields))
	}

	var turn Color
	switch fields[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b', got %q", fields[1])
	}

	var cr CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				cr.WhiteKingSide = true
			case 'Q':
				cr.WhiteQueenSide = true
			case 'k':
				cr.BlackKingSide = true
			case 'q':
				cr.BlackQueenSide = true
			default:
				return nil, fenError("invalid castling rights character %q", ch)
			}
		}
	}

	ep := NoCoordinate
	if fields[3] != "-" {
		c, err := ParseCoordinate(fields[3])
		if err != nil {
			return nil, fenError("en passant square: %v", err)
		}
		if c.Rank != 3 && c.Rank != 6 {
			return nil, fenError("en passant square %s is not on rank 3 or 6", c)
		}
		ep = c
	}

	half, full := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError("half-move clock %q is not a number", fields[4])
		}
		half = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError("full-move number %q is not a positive number", fields[5])
		}
		full = n
	}

	p, err := NewPosition(turn, cr.WhiteKingSide, cr.WhiteQueenSide, cr.BlackKingSide, cr.BlackQueenSide, ep, half, full)
	if err != nil {
		return nil, fenError("%v", err)
	}
	if err := p.LoadPlacement(fields[0]); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParseFEN is ParseFEN for literals; it panics on malformed input.
func MustParseFEN(fen string) *Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// LoadPlacement fills an empty board from the piece placement field of a FEN string.
func (p *Position) LoadPlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError("expected 8 ranks, got %d", len(ranks))
	}
	var squares [64]Piece
	for i, rankStr := range ranks {
		if rankStr == "" {
			return fenError("empty rank description")
		}
		rank := 8 - i
		file := 1
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			t := TypeFromLetter(byte(ch))
			if t == NoType || ch > 'z' {
				return fenError("unrecognized piece character %q", ch)
			}
			if file > 8 {
				return fenError("too many squares in rank %d", rank)
			}
			color := White
			if ch >= 'a' {
				color = Black
			}
			c := Coord(file, rank)
			squares[c.index()] = Piece{Type: t, Color: color, Square: c}
			file++
		}
		if file != 9 {
			return fenError("rank %d does not have 8 columns", rank)
		}
	}
	p.squares = squares
	return nil
}

// Placement renders the piece placement field of the FEN.
func (p *Position) Placement() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			pc := p.squares[Coord(file, rank).index()]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(pc.Rune())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN produces the FEN string of the position.
func (p *Position) FEN() string {
	var sb strings.Builder
	sb.WriteString(p.Placement())
	if p.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	cr := ""
	if p.castling.WhiteKingSide {
		cr += "K"
	}
	if p.castling.WhiteQueenSide {
		cr += "Q"
	}
	if p.castling.BlackKingSide {
		cr += "k"
	}
	if p.castling.BlackQueenSide {
		cr += "q"
	}
	if cr == "" {
		cr = "-"
	}
	sb.WriteString(cr)
	sb.WriteByte(' ')
	sb.WriteString(p.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMove))
	return sb.String()
}
