package board

import (
	"errors"
	"fmt"
)

// CastlingRights holds the four independent castling permissions.
type CastlingRights struct {
	WhiteKingSide  bool
	WhiteQueenSide bool
	BlackKingSide  bool
	BlackQueenSide bool
}

// Has reports whether the color may still castle on the given wing.
func (cr CastlingRights) Has(c Color, kingSide bool) bool {
	switch {
	case c == White && kingSide:
		return cr.WhiteKingSide
	case c == White:
		return cr.WhiteQueenSide
	case kingSide:
		return cr.BlackKingSide
	default:
		return cr.BlackQueenSide
	}
}

// revoke clears a single right.
func (cr *CastlingRights) revoke(c Color, kingSide bool) {
	switch {
	case c == White && kingSide:
		cr.WhiteKingSide = false
	case c == White:
		cr.WhiteQueenSide = false
	case kingSide:
		cr.BlackKingSide = false
	default:
		cr.BlackQueenSide = false
	}
}

// bits packs the rights into 0..15 for hashing.
func (cr CastlingRights) bits() int {
	var b int
	if cr.WhiteKingSide {
		b |= 1
	}
	if cr.WhiteQueenSide {
		b |= 2
	}
	if cr.BlackKingSide {
		b |= 4
	}
	if cr.BlackQueenSide {
		b |= 8
	}
	return b
}

// Position is one board state: piece placement, side to move, castling rights,
// en passant target and the two move counters.
//
// Position is a plain value. Copying it yields an independent position and two
// positions compare equal with == exactly when every field agrees.
type Position struct {
	// squares is indexed a1=0 .. h8=63; every stored piece carries its own square.
	squares [64]Piece

	turn      Color
	castling  CastlingRights
	enPassant Coordinate

	// halfMove counts plies since the last capture or pawn move (fifty-move rule).
	halfMove int
	// fullMove starts at 1 and is incremented after Black's move.
	fullMove int
}

// NewPosition returns an empty board with the given game state. Pieces are added with
// Place or LoadPlacement. An en passant target of NoCoordinate means none.
func NewPosition(turn Color, whiteKingSide, whiteQueenSide, blackKingSide, blackQueenSide bool, enPassant Coordinate, halfMove, fullMove int) (*Position, error) {
	if enPassant != NoCoordinate && !enPassant.Valid() {
		return nil, fmt.Errorf("en passant target: %w: %s", ErrInvalidCoordinate, enPassant)
	}
	if halfMove < 0 || fullMove < 1 {
		return nil, fmt.Errorf("invalid move counters: half-move %d, full-move %d", halfMove, fullMove)
	}
	return &Position{
		turn: turn,
		castling: CastlingRights{
			WhiteKingSide:  whiteKingSide,
			WhiteQueenSide: whiteQueenSide,
			BlackKingSide:  blackKingSide,
			BlackQueenSide: blackQueenSide,
		},
		enPassant: enPassant,
		halfMove:  halfMove,
		fullMove:  fullMove,
	}, nil
}

// StartPosition returns the standard initial position.
func StartPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// Turn reports which side is to play.
func (p *Position) Turn() Color { return p.turn }

// CastlingRights returns a copy of the castling permissions.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EnPassant returns the en passant target square, or NoCoordinate.
func (p *Position) EnPassant() Coordinate { return p.enPassant }

// HalfMoveClock returns the number of plies since the last capture or pawn move.
func (p *Position) HalfMoveClock() int { return p.halfMove }

// FullMoveNumber returns the full move counter.
func (p *Position) FullMoveNumber() int { return p.fullMove }

// PieceAt returns the piece on c. Empty and off-board squares yield an empty Piece.
func (p *Position) PieceAt(c Coordinate) Piece {
	if !c.Valid() {
		return Piece{}
	}
	return p.squares[c.index()]
}

// IsEmpty reports whether c is on the board and holds no piece.
func (p *Position) IsEmpty(c Coordinate) bool {
	return c.Valid() && p.squares[c.index()].IsEmpty()
}

// Squares lists every square from a1 to h8, rank by rank.
func (p *Position) Squares() []Coordinate {
	out := make([]Coordinate, 64)
	for i := range out {
		out[i] = coordFromIndex(i)
	}
	return out
}

// Rank returns the contents of rank r (1..8) from the a-file to the h-file.
func (p *Position) Rank(r int) [8]Piece {
	var out [8]Piece
	for f := 1; f <= 8; f++ {
		out[f-1] = p.PieceAt(Coord(f, r))
	}
	return out
}

// File returns the contents of file f (1..8) from rank 1 to rank 8.
func (p *Position) File(f int) [8]Piece {
	var out [8]Piece
	for r := 1; r <= 8; r++ {
		out[r-1] = p.PieceAt(Coord(f, r))
	}
	return out
}

// Pieces returns every piece of the given color in square order.
func (p *Position) Pieces(c Color) []Piece {
	out := make([]Piece, 0, 16)
	for _, pc := range p.squares {
		if !pc.IsEmpty() && pc.Color == c {
			out = append(out, pc)
		}
	}
	return out
}

// King returns the square of the color's king and whether one is on the board.
func (p *Position) King(c Color) (Coordinate, bool) {
	for i := range p.squares {
		if pc := p.squares[i]; pc.Type == King && pc.Color == c {
			return pc.Square, true
		}
	}
	return NoCoordinate, false
}

// Place puts a piece on its Square. The square must be on the board and empty.
func (p *Position) Place(pc Piece) error {
	if pc.IsEmpty() {
		return errors.New("place: empty piece")
	}
	if !pc.Square.Valid() {
		return fmt.Errorf("place: %w: %s", ErrInvalidCoordinate, pc.Square)
	}
	if !p.squares[pc.Square.index()].IsEmpty() {
		return fmt.Errorf("place: %s is occupied by %s", pc.Square, p.squares[pc.Square.index()])
	}
	p.squares[pc.Square.index()] = pc
	return nil
}

// Remove clears a square and returns what stood there.
func (p *Position) Remove(c Coordinate) Piece {
	if !c.Valid() {
		return Piece{}
	}
	pc := p.squares[c.index()]
	p.squares[c.index()] = Piece{}
	return pc
}

// put stores a piece on a valid square, keeping its Square field in sync.
func (p *Position) put(c Coordinate, t PieceType, color Color) {
	p.squares[c.index()] = Piece{Type: t, Color: color, Square: c}
}

// clear empties a valid square.
func (p *Position) clear(c Coordinate) { p.squares[c.index()] = Piece{} }

// WithTurn returns a copy of the position with c to move. When the side changes, the
// en passant target is dropped since it only ever belongs to the side to move.
func (p *Position) WithTurn(c Color) Position {
	q := *p
	if q.turn != c {
		q.turn = c
		q.enPassant = NoCoordinate
	}
	return q
}

// Validate checks the placement invariants: every piece records the square it stands on,
// and each side has at most one king.
func (p *Position) Validate() error {
	var kings [2]int
	for i, pc := range p.squares {
		if pc.IsEmpty() {
			if pc != (Piece{}) {
				return fmt.Errorf("square %s holds a typeless piece", coordFromIndex(i))
			}
			continue
		}
		if pc.Square != coordFromIndex(i) {
			return fmt.Errorf("%s stored on %s", pc, coordFromIndex(i))
		}
		if pc.Type == King {
			kings[pc.Color]++
		}
	}
	for c, n := range kings {
		if n > 1 {
			return fmt.Errorf("%s has %d kings", Color(c), n)
		}
	}
	if p.enPassant != NoCoordinate && !p.enPassant.Valid() {
		return fmt.Errorf("en passant target %s is off the board", p.enPassant)
	}
	return nil
}

// String returns the FEN of the position.
func (p *Position) String() string { return p.FEN() }
