package engine

import "github.com/talonchess/talon/board"

// TTEntry is one stored transposition-table record: the position's hash
// (for collision detection), its best move, its score (mate-distance
// rebased to "from this node" per plyToTT), the depth it was searched to,
// the bound it represents, and the search generation it was written in.
type TTEntry struct {
	Key        uint64
	Move       board.Move
	Score      int
	Depth      int
	Bound      Bound
	Generation uint8
}

// TranspositionTable is a fixed-capacity, power-of-two-sized table keyed by
// Zobrist hash, owned by a single search session (spec §4.4/§5: no
// internal locking, single-threaded core). Each slot holds exactly one
// entry; a full 64-bit key match distinguishes a hit from a collision,
// which spec §4.4 accepts as negligibly rare rather than chaining buckets
// — the same single-entry-per-slot layout as the teacher's
// deepReplaceTransTable in engine/transtable.go, minus that version's
// atomic CAS gate, which exists there only to guard concurrent probes from
// the teacher's parallel search and has no role in Talon's single-threaded
// core.
type TranspositionTable struct {
	entries    []TTEntry
	mask       uint64
	generation uint8
}

// NewTranspositionTable builds a table sized to the largest power of two
// of TTEntry-sized slots that fits in megabytes.
func NewTranspositionTable(megabytes int) *TranspositionTable {
	size := roundDownPowerOfTwo(megabytes * 1024 * 1024 / ttEntrySize)
	if size < 1 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, size),
		mask:    uint64(size - 1),
	}
}

// ttEntrySize approximates TTEntry's in-memory footprint for sizing
// purposes (the struct has padding; this is intentionally conservative
// rather than exact, matching the teacher's own "/16" approximation for
// its smaller entry in engine/transtable.go).
const ttEntrySize = 64

func roundDownPowerOfTwo(size int) int {
	x := 1
	for x<<1 <= size {
		x <<= 1
	}
	return x
}

// NewSearch increments the generation counter, called once per top-level
// search so stale entries from prior searches age out of the replacement
// policy's first tier (spec §4.4).
func (tt *TranspositionTable) NewSearch() {
	tt.generation++
}

// Clear empties every slot.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Probe looks up hash, returning ok=false on a miss (empty slot, or a
// stored key that does not match).
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	e := tt.entries[hash&tt.mask]
	if e.Key != hash {
		return TTEntry{}, false
	}
	return e, true
}

// Store inserts entry, replacing the slot's current occupant per spec
// §4.4's ordered policy:
//  1. empty slot, or one from an earlier generation — always replace.
//  2. the stored entry's depth is <= the new entry's depth — replace.
//  3. otherwise replace only if the new entry is Exact and the stored one
//     is not.
func (tt *TranspositionTable) Store(entry TTEntry) {
	slot := &tt.entries[entry.Key&tt.mask]
	entry.Generation = tt.generation

	empty := slot.Key == 0 && slot.Generation == 0 && slot.Depth == 0 && slot.Bound == Exact
	stale := slot.Generation != tt.generation
	shallower := slot.Depth <= entry.Depth
	upgrade := entry.Bound == Exact && slot.Bound != Exact

	if empty || stale || shallower || upgrade {
		*slot = entry
	}
}
