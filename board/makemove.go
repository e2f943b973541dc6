package board

import (
	"errors"
	"fmt"
)

// ErrInvalidMove means a move does not fit the position it was applied to. Moves produced
// by the generator for that position never trigger it; seeing it is a programming error.
var ErrInvalidMove = errors.New("invalid move")

func invalidMove(m Move, format string, args ...any) error {
	return fmt.Errorf("%w %s: %s", ErrInvalidMove, m, fmt.Sprintf(format, args...))
}

// Apply returns the position reached by playing m from p. p itself is not modified.
func Apply(p Position, m Move) (Position, error) {
	err := p.Apply(m)
	return p, err
}

// Undo returns the position before m was played, given the position after it.
func Undo(p Position, m Move) (Position, error) {
	err := p.Undo(m)
	return p, err
}

// Apply plays m in place. On error the position is left untouched.
func (p *Position) Apply(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return invalidMove(m, "square off the board")
	}
	mover := p.squares[m.From.index()]
	if mover.IsEmpty() {
		return invalidMove(m, "no piece on %s", m.From)
	}
	if mover.Type != m.Piece || mover.Color != m.Color {
		return invalidMove(m, "expected %s %s on %s, found %s", m.Color, m.Piece, m.From, mover)
	}
	target := p.squares[m.To.index()]
	if !target.IsEmpty() && target.Color == mover.Color {
		return invalidMove(m, "destination holds own %s", target.Type)
	}

	// Everything is checked before the first write.
	switch m.Kind {
	case EnPassant:
		victim := p.squares[m.capturedSquare().index()]
		if !target.IsEmpty() || victim.Type != Pawn || victim.Color == mover.Color || m.Captured != Pawn {
			return invalidMove(m, "no pawn to take en passant")
		}
	case Castle:
		if !m.RookFrom.Valid() || !m.RookTo.Valid() {
			return invalidMove(m, "castle without rook squares")
		}
		rook := p.squares[m.RookFrom.index()]
		if rook.Type != Rook || rook.Color != mover.Color || !p.IsEmpty(m.RookTo) || !target.IsEmpty() {
			return invalidMove(m, "castling path is not clear")
		}
	case Promotion:
		if mover.Type != Pawn || m.Promote == NoType || m.Promote == Pawn || m.Promote == King {
			return invalidMove(m, "bad promotion to %s", m.Promote)
		}
	}
	if m.Kind != EnPassant && target.Type != m.Captured {
		return invalidMove(m, "expected capture of %s, found %s", m.Captured, target.Type)
	}

	if m.Kind == EnPassant {
		p.clear(m.capturedSquare())
	}
	p.clear(m.From)
	newType := mover.Type
	if m.Kind == Promotion {
		newType = m.Promote
	}
	p.put(m.To, newType, mover.Color)
	if m.Kind == Castle {
		p.clear(m.RookFrom)
		p.put(m.RookTo, Rook, mover.Color)
	}

	// Castling rights: any king move drops both, a rook leaving or being taken on its
	// corner drops that wing.
	if mover.Type == King {
		p.castling.revoke(mover.Color, true)
		p.castling.revoke(mover.Color, false)
	}
	if mover.Type == Rook {
		p.revokeCorner(m.From, mover.Color)
	}
	if m.Captured == Rook {
		p.revokeCorner(m.To, mover.Color.Other())
	}

	p.enPassant = NoCoordinate
	if mover.Type == Pawn && abs(m.To.Rank-m.From.Rank) == 2 {
		p.enPassant = Coordinate{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
	}

	if mover.Type == Pawn || m.Captured != NoType {
		p.halfMove = 0
	} else {
		p.halfMove++
	}
	if mover.Color == Black {
		p.fullMove++
	}
	p.turn = mover.Color.Other()
	return nil
}

// Undo reverses m, which must be the last move applied to the position.
func (p *Position) Undo(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return invalidMove(m, "square off the board")
	}
	landed := p.squares[m.To.index()]
	want := m.Piece
	if m.Kind == Promotion {
		want = m.Promote
	}
	if landed.Type != want || landed.Color != m.Color {
		return invalidMove(m, "undo expected %s %s on %s, found %s", m.Color, want, m.To, landed)
	}
	if !p.IsEmpty(m.From) {
		return invalidMove(m, "undo found %s occupied", m.From)
	}
	if m.Kind == Castle {
		rook := p.PieceAt(m.RookTo)
		if rook.Type != Rook || rook.Color != m.Color || !m.RookFrom.Valid() || !p.IsEmpty(m.RookFrom) {
			return invalidMove(m, "undo cannot find castled rook")
		}
	}
	if m.Kind == EnPassant && !p.IsEmpty(m.capturedSquare()) {
		return invalidMove(m, "undo found en passant square occupied")
	}

	p.clear(m.To)
	p.put(m.From, m.Piece, m.Color)
	if m.Captured != NoType {
		p.put(m.capturedSquare(), m.Captured, m.Color.Other())
	}
	if m.Kind == Castle {
		p.clear(m.RookTo)
		p.put(m.RookFrom, Rook, m.Color)
	}

	p.castling = m.PrevCastling
	p.enPassant = m.PrevEnPassant
	p.halfMove = m.PrevHalfMove
	if m.Color == Black {
		p.fullMove--
	}
	p.turn = m.Color
	return nil
}

// revokeCorner drops the right tied to a rook's home corner.
func (p *Position) revokeCorner(sq Coordinate, c Color) {
	if sq.Rank != c.homeRank() {
		return
	}
	switch sq.File {
	case 1:
		p.castling.revoke(c, false)
	case 8:
		p.castling.revoke(c, true)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
