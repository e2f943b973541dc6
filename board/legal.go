package board

// LegalMoves returns the moves of color that do not leave color's king attacked.
//
// Each pseudo-legal candidate is applied, the opponent's pseudo-legal moves are generated
// against the result, and the candidate is dropped if any of them lands on the king. The
// candidate is undone either way. Castling additionally requires that the king is not in
// check and does not pass over an attacked square.
//
// p is not modified. When color is not the side to move, the moves are generated on a copy
// with color to move and no en passant target; such moves are only good for counting.
func LegalMoves(p *Position, color Color) []Move {
	work := p.WithTurn(color)
	candidates := PseudoLegalMoves(&work, color)
	legal := candidates[:0]
	for _, m := range candidates {
		if work.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// LegalMoves is the method form of LegalMoves for the side to move.
func (p *Position) LegalMoves() []Move { return LegalMoves(p, p.turn) }

// CountLegalMoves returns len(LegalMoves(p, color)).
func CountLegalMoves(p *Position, color Color) int {
	work := p.WithTurn(color)
	n := 0
	work.eachPseudoMove(color, func(m Move) bool {
		if work.isLegal(m) {
			n++
		}
		return true
	})
	return n
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	work := *p
	found := false
	work.eachPseudoMove(work.turn, func(m Move) bool {
		found = work.isLegal(m)
		return !found
	})
	return found
}

// InCheck reports whether color's king is attacked. A side without a king is never in check.
func (p *Position) InCheck(color Color) bool {
	k, ok := p.King(color)
	return ok && p.IsAttacked(k, color.Other())
}

// InCheckmate reports whether the side to move is checkmated.
func (p *Position) InCheckmate() bool { return p.InCheck(p.turn) && !p.HasLegalMoves() }

// InStalemate reports whether the side to move has no legal move but is not in check.
func (p *Position) InStalemate() bool { return !p.InCheck(p.turn) && !p.HasLegalMoves() }

// isLegal tests one pseudo-legal move of the side to move by playing it out.
func (p *Position) isLegal(m Move) bool {
	if m.Kind == Castle {
		them := m.Color.Other()
		passing := Coord((m.From.File+m.To.File)/2, m.From.Rank)
		if p.IsAttacked(m.From, them) || p.IsAttacked(passing, them) {
			return false
		}
	}

	king, hasKing := p.King(m.Color)
	if m.Piece == King {
		king, hasKing = m.To, true
	}
	if err := p.Apply(m); err != nil {
		panic("board: generated move does not apply: " + err.Error())
	}
	legal := !hasKing || !p.attackedByMoves(king, m.Color.Other())
	if err := p.Undo(m); err != nil {
		panic("board: generated move does not undo: " + err.Error())
	}
	return legal
}

// attackedByMoves reports whether any pseudo-legal move of by lands on sq.
func (p *Position) attackedByMoves(sq Coordinate, by Color) bool {
	return !p.eachPseudoMove(by, func(m Move) bool { return m.To != sq })
}

// IsAttacked reports whether a piece of color by attacks sq, looking outward from sq.
// Unlike move generation it counts attacks on empty and friendly squares, which is what
// castling needs.
func (p *Position) IsAttacked(sq Coordinate, by Color) bool {
	if !sq.Valid() {
		return false
	}
	// A pawn of color by attacks sq from one rank behind sq, seen from by's side.
	for _, df := range [2]int{-1, 1} {
		from := sq.Offset(df, -by.forward())
		if from.Valid() {
			if pc := p.squares[from.index()]; pc.Type == Pawn && pc.Color == by {
				return true
			}
		}
	}
	if p.stepAttacker(sq, by, knightOffsets[:], Knight) || p.stepAttacker(sq, by, kingOffsets[:], King) {
		return true
	}
	return p.rayAttacker(sq, by, rookDirs[:], Rook) || p.rayAttacker(sq, by, bishopDirs[:], Bishop)
}

func (p *Position) stepAttacker(sq Coordinate, by Color, offsets [][2]int, t PieceType) bool {
	for _, o := range offsets {
		from := sq.Offset(o[0], o[1])
		if !from.Valid() {
			continue
		}
		if pc := p.squares[from.index()]; pc.Type == t && pc.Color == by {
			return true
		}
	}
	return false
}

// rayAttacker looks along each ray for the first piece and checks whether it is a t or a queen of color by.
func (p *Position) rayAttacker(sq Coordinate, by Color, dirs [][2]int, t PieceType) bool {
	for _, d := range dirs {
		for from := sq.Offset(d[0], d[1]); from.Valid(); from = from.Offset(d[0], d[1]) {
			pc := p.squares[from.index()]
			if pc.IsEmpty() {
				continue
			}
			if pc.Color == by && (pc.Type == t || pc.Type == Queen) {
				return true
			}
			break
		}
	}
	return false
}
