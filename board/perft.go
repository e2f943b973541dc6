package board

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	work := *p
	return perftRec(&work, depth)
}

func perftRec(p *Position, depth int) uint64 {
	moves := LegalMoves(p, p.turn)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if err := p.Apply(m); err != nil {
			panic(err)
		}
		nodes += perftRec(p, depth-1)
		if err := p.Undo(m); err != nil {
			panic(err)
		}
	}
	return nodes
}

// PerftDivide maps each legal root move to the number of leaves below it. Useful for
// locating generator bugs against a reference engine.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	work := *p
	for _, m := range LegalMoves(&work, work.turn) {
		if err := work.Apply(m); err != nil {
			panic(err)
		}
		result[m] = Perft(&work, depth-1)
		if err := work.Undo(m); err != nil {
			panic(err)
		}
	}
	return result
}
