package board

import "strings"

// MoveKind tags the special handling a move needs when it is applied or undone.
type MoveKind uint8

const (
	Plain MoveKind = iota
	Castle
	EnPassant
	Promotion
)

func (k MoveKind) String() string {
	switch k {
	case Castle:
		return "castle"
	case EnPassant:
		return "en passant"
	case Promotion:
		return "promotion"
	}
	return "plain"
}

// Move describes one transition between two positions. It carries everything needed to
// apply it and to reverse it exactly, including the parts of the game state that the
// move destroys (castling rights, en passant target, half-move clock).
type Move struct {
	From  Coordinate
	To    Coordinate
	Piece PieceType
	Color Color
	Kind  MoveKind

	// Promote is the new piece type when Kind == Promotion.
	Promote PieceType
	// RookFrom and RookTo describe the rook hop when Kind == Castle.
	RookFrom Coordinate
	RookTo   Coordinate

	// Captured is the type of the captured piece, NoType for a quiet move.
	Captured PieceType

	PrevCastling  CastlingRights
	PrevEnPassant Coordinate
	PrevHalfMove  int
}

// IsCapture reports whether the move removes an enemy piece (including en passant).
func (m Move) IsCapture() bool { return m.Captured != NoType }

// IsZero reports whether m is the zero Move (no move).
func (m Move) IsZero() bool { return m == Move{} }

// capturedSquare is where the captured piece stands before the move.
func (m Move) capturedSquare() Coordinate {
	if m.Kind == EnPassant {
		return Coordinate{File: m.To.File, Rank: m.From.Rank}
	}
	return m.To
}

// String produces the long algebraic (UCI) form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind == Promotion {
		s += strings.ToLower(string(m.Promote.Letter()))
	}
	return s
}

// newMove fills in the undo snapshot from the position the move is generated in.
func (p *Position) newMove(from, to Coordinate, t PieceType, c Color) Move {
	return Move{
		From:          from,
		To:            to,
		Piece:         t,
		Color:         c,
		Captured:      p.squares[to.index()].Type,
		PrevCastling:  p.castling,
		PrevEnPassant: p.enPassant,
		PrevHalfMove:  p.halfMove,
	}
}
