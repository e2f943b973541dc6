package board

import "math/rand"

// Zobrist holds the random keys used to hash positions. Tables are filled once and only
// read afterwards, so a Zobrist value may be shared freely.
type Zobrist struct {
	piece     [2][7][64]uint64 // [color][type][square]
	castle    [16]uint64       // one key per castling-rights set
	enPassant [8]uint64        // en passant file
	side      uint64           // black to move
}

// DefaultZobrist is the process-wide key set, seeded once at package initialization.
var DefaultZobrist *Zobrist

func init() {
	// Fixed seed so hashes are reproducible across runs and in tests.
	DefaultZobrist = NewZobrist(0xC0DE)
}

// NewZobrist builds a key set from a seed.
func NewZobrist(seed int64) *Zobrist {
	rnd := rand.New(rand.NewSource(seed))
	z := &Zobrist{}
	for c := 0; c < 2; c++ {
		for t := 1; t < 7; t++ {
			for sq := 0; sq < 64; sq++ {
				z.piece[c][t][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range z.castle {
		z.castle[cr] = rnd.Uint64()
	}
	for f := range z.enPassant {
		z.enPassant[f] = rnd.Uint64()
	}
	z.side = rnd.Uint64()
	return z
}

// Hash computes the key of a position. Equal positions (ignoring the move counters) hash equally.
func (z *Zobrist) Hash(p *Position) uint64 {
	var key uint64
	for sq, pc := range p.squares {
		if !pc.IsEmpty() {
			key ^= z.piece[pc.Color][pc.Type][sq]
		}
	}
	if p.turn == Black {
		key ^= z.side
	}
	key ^= z.castle[p.castling.bits()]
	if p.enPassant != NoCoordinate {
		key ^= z.enPassant[p.enPassant.File-1]
	}
	return key
}

// Hash returns the position's key under DefaultZobrist.
func Hash(p *Position) uint64 { return DefaultZobrist.Hash(p) }

// Hash returns the position's key under DefaultZobrist.
func (p *Position) Hash() uint64 { return DefaultZobrist.Hash(p) }
