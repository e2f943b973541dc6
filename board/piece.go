package board

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank direction pawns of this color advance in.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the back rank of the color.
func (c Color) homeRank() int {
	if c == White {
		return 1
	}
	return 8
}

// PieceType is a colorless piece kind.
type PieceType uint8

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PromotionTypes lists the types a pawn may promote to, in generation order.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Letter returns the upper-case letter used in notation ('P' for pawns, 0 for NoType).
func (t PieceType) Letter() byte {
	switch t {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return 0
}

// TypeFromLetter is the inverse of Letter and accepts either case.
func TypeFromLetter(ch byte) PieceType {
	switch ch {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoType
}

// Piece is a typed, colored piece together with the square it stands on.
// The zero value (Type == NoType) is an empty square.
type Piece struct {
	Type   PieceType
	Color  Color
	Square Coordinate
}

// IsEmpty reports whether the value stands for an empty square.
func (p Piece) IsEmpty() bool { return p.Type == NoType }

// Rune returns the FEN character for the piece ('.' for an empty square).
func (p Piece) Rune() rune {
	l := p.Type.Letter()
	if l == 0 {
		return '.'
	}
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return rune(l)
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Color.String() + " " + p.Type.String() + " on " + p.Square.String()
}
