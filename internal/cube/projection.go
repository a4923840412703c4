package cube

import "sync"

// Key is a fixed-width integer projection of a State used as a pruning-table
// and visited-set key. Each phase packs a different, smaller amount of state
// into it; spec.md section 8's congruence invariant guarantees two states
// sharing a Key behave identically under that phase's moveset.
type Key uint64

// edgeFlipVector packs the 12 edge flip bits into the low 12 bits of a Key.
// This is the G0 projection: G0 is solved when it is zero.
func edgeFlipVector(s State) Key {
	var v Key
	for i, e := range s.Edges {
		if e.Flip == 1 {
			v |= 1 << uint(i)
		}
	}
	return v
}

// cornerOrientVector packs the 8 corner orientations (base 3) into a Key.
func cornerOrientVector(s State) Key {
	var v Key
	mul := Key(1)
	for _, c := range s.Corners {
		v += Key(c.Orient) * mul
		mul *= 3
	}
	return v
}

// eSliceMask sets bit j when edge slot j currently holds one of the four
// E-slice edges (FR, FL, BL, BR — ids 8..11).
func eSliceMask(s State) Key {
	var v Key
	for i, e := range s.Edges {
		if eSliceEdge(e.ID) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// eSliceSolvedMask is the eSliceMask value when all four E-slice edges sit
// in slots 8..11, in any order: bits 8-11 set, all others clear.
const eSliceSolvedMask Key = 0x0F00

// ProjectG0 is the G0 phase key: the edge-flip vector alone.
func ProjectG0(s State) Key {
	return edgeFlipVector(s)
}

// IsG0Solved reports whether every edge is flipped correctly.
func IsG0Solved(s State) bool {
	return edgeFlipVector(s) == 0
}

// ProjectG1 is the G1 phase key: corner orientation vector and E-slice mask
// packed into one integer.
func ProjectG1(s State) Key {
	return cornerOrientVector(s)<<12 | eSliceMask(s)
}

// IsG1Solved reports whether all corners are oriented and the E-slice edges
// occupy the E-slice slots (in any order).
func IsG1Solved(s State) bool {
	return cornerOrientVector(s) == 0 && eSliceMask(s) == eSliceSolvedMask
}

var factorial = [...]uint64{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

// lehmerCode returns the Lehmer-code rank of a permutation of 0..n-1, a
// dense integer in [0, n!).
func lehmerCode(perm []uint8) uint64 {
	n := len(perm)
	var code uint64
	for i := 0; i < n; i++ {
		smaller := uint64(0)
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		code += smaller * factorial[n-1-i]
	}
	return code
}

func cornerPermIDs(s State) []uint8 {
	ids := make([]uint8, 8)
	for i, c := range s.Corners {
		ids[i] = c.ID
	}
	return ids
}

func edgePermIDs(s State) []uint8 {
	ids := make([]uint8, 12)
	for i, e := range s.Edges {
		ids[i] = e.ID
	}
	return ids
}

// unrankPermutation returns the permutation of 0..n-1 with the given
// Lehmer-code rank, the inverse of lehmerCode.
func unrankPermutation(n int, rank uint64) []uint8 {
	available := make([]uint8, n)
	for i := range available {
		available[i] = uint8(i)
	}
	perm := make([]uint8, n)
	for i := 0; i < n; i++ {
		f := factorial[n-1-i]
		idx := rank / f
		rank %= f
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return perm
}

// cosetFloodDepth bounds the BFS used to trace out one coset of the
// half-turn-only subgroup (g3Moves) inside the much larger corner or edge
// permutation space. Each coset is small (96 corner or 6912 edge
// permutations), so the frontier empties well before this cap is reached; it exists only
// to satisfy bfsExpand's signature.
const cosetFloodDepth = 64

func rawCornerPermKey(s State) Key {
	return Key(lehmerCode(cornerPermIDs(s)))
}

func rawEdgePermKey(s State) Key {
	return Key(lehmerCode(edgePermIDs(s)))
}

func stateFromCornerPerm(perm []uint8) State {
	s := Solved()
	for i, id := range perm {
		s.Corners[i] = Corner{ID: id, Orient: 0}
	}
	return s
}

func stateFromEdgePerm(perm []uint8) State {
	s := Solved()
	for i, id := range perm {
		s.Edges[i] = Edge{ID: id, Flip: 0}
	}
	return s
}

// buildCornerCosetTable partitions all 8! corner permutations into cosets of
// the subgroup reachable from the identity using only half turns (g3Moves —
// see spec.md section 3's G2/G3 coset construction). Each not-yet-classified
// permutation's whole coset is discovered by flooding it with bfsExpand, the
// same frontier machinery the pruning tables use, rather than by hand-coding
// the coset formula.
func buildCornerCosetTable() map[uint64]Key {
	const n = 8
	total := factorial[n]
	table := make(map[uint64]Key, total)
	var next Key
	for rank := uint64(0); rank < total; rank++ {
		if _, ok := table[rank]; ok {
			continue
		}
		seed := stateFromCornerPerm(unrankPermutation(n, rank))
		visited := bfsExpand([]State{seed}, g3Moves, cosetFloodDepth, rawCornerPermKey)
		for k := range visited {
			table[uint64(k)] = next
		}
		next++
	}
	return table
}

// buildEdgeCosetTable is buildCornerCosetTable's edge counterpart, over the
// 8! x 4! legal edge-permutation space (U/D-layer edges times E-slice
// edges). The E-slice coupling matters here — a coset is a property of the
// full 12-edge permutation, not the 8 U/D-layer edges alone — so each seed
// is built from a full 12-edge permutation before flooding.
func buildEdgeCosetTable() map[uint64]Key {
	const udN, eslN = 8, 4
	total := factorial[udN] * factorial[eslN]
	table := make(map[uint64]Key, total)
	var next Key
	for udRank := uint64(0); udRank < factorial[udN]; udRank++ {
		udPerm := unrankPermutation(udN, udRank)
		for eslRank := uint64(0); eslRank < factorial[eslN]; eslRank++ {
			eslPerm := unrankPermutation(eslN, eslRank)
			full := make([]uint8, 12)
			copy(full, udPerm)
			for i, id := range eslPerm {
				full[8+i] = 8 + id
			}
			rank := lehmerCode(full)
			if _, ok := table[rank]; ok {
				continue
			}
			seed := stateFromEdgePerm(full)
			visited := bfsExpand([]State{seed}, g3Moves, cosetFloodDepth, rawEdgePermKey)
			for k := range visited {
				table[uint64(k)] = next
			}
			next++
		}
	}
	return table
}

var (
	cornerCosetOnce sync.Once
	cornerCosetMap  map[uint64]Key

	edgeCosetOnce sync.Once
	edgeCosetMap  map[uint64]Key
)

func cornerCosetID(s State) Key {
	cornerCosetOnce.Do(func() {
		cornerCosetMap = buildCornerCosetTable()
	})
	ids := cornerPermIDs(s)
	inv := make([]uint8, len(ids))
	for slot, id := range ids {
		inv[id] = uint8(slot)
	}
	return cornerCosetMap[lehmerCode(inv)]
}

func edgeCosetID(s State) Key {
	edgeCosetOnce.Do(func() {
		edgeCosetMap = buildEdgeCosetTable()
	})
	ids := edgePermIDs(s)
	inv := make([]uint8, len(ids))
	for slot, id := range ids {
		inv[id] = uint8(slot)
	}
	return edgeCosetMap[lehmerCode(inv)]
}

// ProjectG2 is the G2 phase key: the pair of cosets (corner permutation,
// edge permutation) a state falls into under the half-turn-only subgroup
// that generates G3 — spec.md section 3's compact coset-representative key.
// The coset ids are looked up for the inverse of each permutation: moves
// compose on the right of a state's permutation, so the coset that
// determines the remaining distance to G3 is that of the inverse, and
// keying on it keeps the projection congruent under g2Moves.
// The raw corner and edge permutation spaces (8! and 8!x4!) are far larger
// than [G2:G3] = 29400, the true number of distinct phase-3 targets; keying
// on full permutations instead (as earlier versions of this function did)
// forces the phase-3 pruning table to cover G2's full ~19.5 billion-element
// permutation space rather than its 29400-element quotient by G3, which is
// infeasible. Collapsing each permutation to its coset id first keeps the
// table within spec.md section 5's bound.
func ProjectG2(s State) Key {
	return cornerCosetID(s)<<16 | edgeCosetID(s)
}

// IsG2Solved reports whether s already lies in G3: both its corner and edge
// permutations are in the identity coset of the half-turn-only subgroup.
// cosetFloodDepth's BFS assigns coset id 0 to whichever permutation it
// classifies first, which is always rank 0 — the identity permutation,
// since ranks are visited in order — so the identity coset is always id 0.
func IsG2Solved(s State) bool {
	return cornerCosetID(s) == 0 && edgeCosetID(s) == 0
}

// ProjectG3 keys a state by its exact corner and edge permutation. G3's goal
// is the single identity permutation rather than a 29400-way quotient, so —
// unlike ProjectG2 — the full Lehmer-code pair is both lossless and small
// enough (|G3| = 663552 reachable states) to use directly.
func ProjectG3(s State) Key {
	cornerRank := lehmerCode(cornerPermIDs(s))
	edgeRank := lehmerCode(edgePermIDs(s))
	return Key(cornerRank)<<40 | Key(edgeRank)
}

// IsG3Solved reports whether s is the fully solved cube.
func IsG3Solved(s State) bool {
	return s.IsSolved()
}
