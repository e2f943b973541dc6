package board

// Direction tables. Order matters: generation order is part of the search's tie-break.
var (
	// rookDirs: N, S, E, W
	rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	// bishopDirs: NE, NW, SE, SW
	bishopDirs = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	queenDirs  = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

	knightOffsets = [8][2]int{
		{1, 2}, {-1, 2}, {2, 1}, {-2, 1},
		{2, -1}, {-2, -1}, {1, -2}, {-1, -2},
	}
	kingOffsets = [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	}
)

// emit receives generated moves; returning false stops generation.
type emit func(Move) bool

// PseudoLegalMoves returns every move of color's pieces that satisfies piece geometry and
// occupancy, without regard to the mover's king safety. Pieces are visited from a1 to h8.
func PseudoLegalMoves(p *Position, color Color) []Move {
	moves := make([]Move, 0, 64)
	p.eachPseudoMove(color, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// PieceMoves returns the pseudo-legal moves of the piece standing on sq.
func (p *Position) PieceMoves(sq Coordinate) []Move {
	var moves []Move
	if !sq.Valid() {
		return moves
	}
	pc := p.squares[sq.index()]
	if pc.IsEmpty() {
		return moves
	}
	p.pieceMoves(pc, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// eachPseudoMove streams pseudo-legal moves for color. It reports false if fn stopped early.
func (p *Position) eachPseudoMove(color Color, fn emit) bool {
	for i := range p.squares {
		pc := p.squares[i]
		if pc.IsEmpty() || pc.Color != color {
			continue
		}
		if !p.pieceMoves(pc, fn) {
			return false
		}
	}
	return true
}

func (p *Position) pieceMoves(pc Piece, fn emit) bool {
	switch pc.Type {
	case Pawn:
		return p.pawnMoves(pc, fn)
	case Knight:
		return p.stepMoves(pc, knightOffsets[:], fn)
	case Bishop:
		return p.slidingMoves(pc, bishopDirs[:], fn)
	case Rook:
		return p.slidingMoves(pc, rookDirs[:], fn)
	case Queen:
		return p.slidingMoves(pc, queenDirs[:], fn)
	case King:
		if !p.stepMoves(pc, kingOffsets[:], fn) {
			return false
		}
		return p.castlingMoves(pc, fn)
	}
	return true
}

// slidingMoves walks each ray until it leaves the board or meets a piece. An enemy piece
// is included as a capture, a friendly one is not.
func (p *Position) slidingMoves(pc Piece, dirs [][2]int, fn emit) bool {
	for _, d := range dirs {
		for to := pc.Square.Offset(d[0], d[1]); to.Valid(); to = to.Offset(d[0], d[1]) {
			occ := p.squares[to.index()]
			if !occ.IsEmpty() && occ.Color == pc.Color {
				break
			}
			if !fn(p.newMove(pc.Square, to, pc.Type, pc.Color)) {
				return false
			}
			if !occ.IsEmpty() {
				break
			}
		}
	}
	return true
}

// stepMoves handles the fixed-offset pieces (knight, king).
func (p *Position) stepMoves(pc Piece, offsets [][2]int, fn emit) bool {
	for _, o := range offsets {
		to := pc.Square.Offset(o[0], o[1])
		if !to.Valid() {
			continue
		}
		occ := p.squares[to.index()]
		if !occ.IsEmpty() && occ.Color == pc.Color {
			continue
		}
		if !fn(p.newMove(pc.Square, to, pc.Type, pc.Color)) {
			return false
		}
	}
	return true
}

// castlingMoves requires the right, the king and rook on their home squares and every
// square between them empty. Whether the king crosses an attacked square is decided by
// the legality filter.
func (p *Position) castlingMoves(pc Piece, fn emit) bool {
	home := Coord(5, pc.Color.homeRank())
	if pc.Square != home {
		return true
	}
	wings := [2]struct {
		kingSide bool
		rookFile int
		kingTo   int
		rookTo   int
	}{
		{true, 8, 7, 6},
		{false, 1, 3, 4},
	}
	for _, w := range wings {
		if !p.castling.Has(pc.Color, w.kingSide) {
			continue
		}
		rookFrom := Coord(w.rookFile, home.Rank)
		rook := p.squares[rookFrom.index()]
		if rook.Type != Rook || rook.Color != pc.Color {
			continue
		}
		lo, hi := w.rookFile+1, home.File-1
		if w.kingSide {
			lo, hi = home.File+1, w.rookFile-1
		}
		clear := true
		for f := lo; f <= hi; f++ {
			if !p.IsEmpty(Coord(f, home.Rank)) {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		m := p.newMove(home, Coord(w.kingTo, home.Rank), King, pc.Color)
		m.Kind = Castle
		m.RookFrom = rookFrom
		m.RookTo = Coord(w.rookTo, home.Rank)
		if !fn(m) {
			return false
		}
	}
	return true
}

// pawnMoves generates single and double advances, diagonal captures, en passant and
// promotions (one move per promotable type).
func (p *Position) pawnMoves(pc Piece, fn emit) bool {
	dir := pc.Color.forward()
	startRank, lastRank := 2, 8
	if pc.Color == Black {
		startRank, lastRank = 7, 1
	}

	one := pc.Square.Offset(0, dir)
	if one.Valid() && p.IsEmpty(one) {
		if !p.emitPawn(pc, one, lastRank, fn) {
			return false
		}
		two := one.Offset(0, dir)
		if pc.Square.Rank == startRank && p.IsEmpty(two) {
			if !fn(p.newMove(pc.Square, two, Pawn, pc.Color)) {
				return false
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := pc.Square.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		occ := p.squares[to.index()]
		switch {
		case !occ.IsEmpty() && occ.Color != pc.Color:
			if !p.emitPawn(pc, to, lastRank, fn) {
				return false
			}
		case occ.IsEmpty() && to == p.enPassant && p.epCapturer(to) == pc.Color && p.epVictim(to, pc):
			m := p.newMove(pc.Square, to, Pawn, pc.Color)
			m.Kind = EnPassant
			m.Captured = Pawn
			if !fn(m) {
				return false
			}
		}
	}
	return true
}

// epCapturer returns the color entitled to capture onto an en passant target: a target on
// rank 6 was left by a black pawn, so only White may take it, and vice versa.
func (p *Position) epCapturer(target Coordinate) Color {
	if target.Rank == 6 {
		return White
	}
	return Black
}

// epVictim reports whether an enemy pawn stands beside pc, behind the target.
func (p *Position) epVictim(target Coordinate, pc Piece) bool {
	v := p.squares[Coord(target.File, pc.Square.Rank).index()]
	return v.Type == Pawn && v.Color != pc.Color
}

func (p *Position) emitPawn(pc Piece, to Coordinate, lastRank int, fn emit) bool {
	if to.Rank != lastRank {
		return fn(p.newMove(pc.Square, to, Pawn, pc.Color))
	}
	for _, t := range PromotionTypes {
		m := p.newMove(pc.Square, to, Pawn, pc.Color)
		m.Kind = Promotion
		m.Promote = t
		if !fn(m) {
			return false
		}
	}
	return true
}
