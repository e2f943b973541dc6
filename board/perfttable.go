package board

import "unsafe"

const perftClusterSize = 4

// PerftTable caches subtree counts by position hash and remaining depth. Entries live in
// clusters of four; a store replaces the first slot with the same key, else the shallowest.
type PerftTable struct {
	entries      []perftEntry
	clusterCount uint64

	Hits   uint64
	Probes uint64
}

type perftEntry struct {
	hash  uint64
	depth int32
	nodes uint64
}

// NewPerftTable allocates a table of roughly sizeMB megabytes.
func NewPerftTable(sizeMB int) *PerftTable {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	entrySize := uint64(unsafe.Sizeof(perftEntry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * perftClusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &PerftTable{
		entries:      make([]perftEntry, clusterCount*perftClusterSize),
		clusterCount: clusterCount,
	}
}

// Clear drops every entry and resets the counters.
func (t *PerftTable) Clear() {
	for i := range t.entries {
		t.entries[i] = perftEntry{}
	}
	t.Hits, t.Probes = 0, 0
}

func (t *PerftTable) cluster(hash uint64) []perftEntry {
	start := (hash % t.clusterCount) * perftClusterSize
	return t.entries[start : start+perftClusterSize]
}

func (t *PerftTable) probe(hash uint64, depth int) (uint64, bool) {
	t.Probes++
	for _, e := range t.cluster(hash) {
		if e.hash == hash && e.depth == int32(depth) {
			t.Hits++
			return e.nodes, true
		}
	}
	return 0, false
}

func (t *PerftTable) store(hash uint64, depth int, nodes uint64) {
	c := t.cluster(hash)
	victim := 0
	for i := range c {
		if c[i].hash == hash && c[i].depth == int32(depth) {
			victim = i
			break
		}
		if c[i].depth < c[victim].depth {
			victim = i
		}
	}
	c[victim] = perftEntry{hash: hash, depth: int32(depth), nodes: nodes}
}

// PerftHashed is Perft with subtree counts shared through t. Hash collisions can in
// principle corrupt the count; with 64-bit keys they are not expected at perft depths.
func PerftHashed(p *Position, depth int, t *PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}
	work := *p
	return perftHashedRec(&work, depth, t)
}

func perftHashedRec(p *Position, depth int, t *PerftTable) uint64 {
	if depth == 1 {
		return uint64(CountLegalMoves(p, p.turn))
	}
	hash := p.Hash()
	if n, ok := t.probe(hash, depth); ok {
		return n
	}
	var nodes uint64
	for _, m := range LegalMoves(p, p.turn) {
		if err := p.Apply(m); err != nil {
			panic(err)
		}
		nodes += perftHashedRec(p, depth-1, t)
		if err := p.Undo(m); err != nil {
			panic(err)
		}
	}
	t.store(hash, depth, nodes)
	return nodes
}
