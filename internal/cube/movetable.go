package cube

// moveDescriptor is a dense permutation+orientation-delta table for a single
// move, in the same (dst, src) sense as spec.md's corner_perm/edge_perm: the
// corner arriving at slot dst is read from slot cornerSrc[dst], with
// cornerTwist[dst] added to its orientation. Slots a move doesn't touch are
// identity (cornerSrc[i] == i, delta 0).
//
// These are transcribed directly from the Thistlethwaite prototype's
// cubie_move_maps.py MOVES table for the six quarter turns; the Python
// table's half-turn entries are placeholders (empty permutation lists), so
// half turns and counter-clockwise quarters are derived below by composing
// the quarter-turn descriptor with itself rather than carried over broken.
type moveDescriptor struct {
	cornerSrc   [8]int
	cornerTwist [8]int
	edgeSrc     [12]int
	edgeFlip    [12]int
}

func identityDescriptor() moveDescriptor {
	var d moveDescriptor
	for i := range d.cornerSrc {
		d.cornerSrc[i] = i
	}
	for i := range d.edgeSrc {
		d.edgeSrc[i] = i
	}
	return d
}

// quarterTurns holds the clockwise quarter-turn descriptor for each face,
// transcribed from cubie_move_maps.py's MOVES dict.
var quarterTurns = map[Face]moveDescriptor{
	U: {
		cornerSrc:   [8]int{3, 0, 1, 2, 4, 5, 6, 7},
		cornerTwist: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		edgeSrc:     [12]int{3, 0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11},
		edgeFlip:    [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	D: {
		cornerSrc:   [8]int{0, 1, 2, 3, 7, 4, 5, 6},
		cornerTwist: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		edgeSrc:     [12]int{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11},
		edgeFlip:    [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	L: {
		cornerSrc:   [8]int{0, 2, 6, 3, 4, 1, 5, 7},
		cornerTwist: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		edgeSrc:     [12]int{0, 1, 10, 3, 4, 5, 9, 7, 8, 2, 6, 11},
		edgeFlip:    [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R: {
		cornerSrc:   [8]int{4, 1, 2, 0, 7, 5, 6, 3},
		cornerTwist: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		edgeSrc:     [12]int{8, 1, 2, 3, 11, 5, 6, 7, 4, 9, 10, 0},
		edgeFlip:    [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F: {
		cornerSrc:   [8]int{1, 5, 2, 3, 0, 4, 6, 7},
		cornerTwist: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		edgeSrc:     [12]int{0, 9, 2, 3, 4, 8, 6, 7, 1, 5, 10, 11},
		edgeFlip:    [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	B: {
		cornerSrc:   [8]int{0, 1, 3, 7, 4, 5, 2, 6},
		cornerTwist: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		edgeSrc:     [12]int{0, 1, 2, 11, 4, 5, 6, 10, 8, 9, 3, 7},
		edgeFlip:    [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// compose returns the descriptor for "apply first, then second".
func compose(first, second moveDescriptor) moveDescriptor {
	var out moveDescriptor
	for dst := 0; dst < 8; dst++ {
		mid := second.cornerSrc[dst]
		out.cornerSrc[dst] = first.cornerSrc[mid]
		out.cornerTwist[dst] = (first.cornerTwist[mid] + second.cornerTwist[dst]) % 3
	}
	for dst := 0; dst < 12; dst++ {
		mid := second.edgeSrc[dst]
		out.edgeSrc[dst] = first.edgeSrc[mid]
		out.edgeFlip[dst] = (first.edgeFlip[mid] + second.edgeFlip[dst]) % 2
	}
	return out
}

// Quarters selects how many clockwise quarter turns a Move applies: 1 is a
// plain clockwise quarter, 2 a half turn, 3 a counter-clockwise quarter
// (three clockwise quarters).
const (
	QuarterCW  = 1
	Half       = 2
	QuarterCCW = 3
)

// descriptorTable[face][quarters] is built once at init time from the
// quarter-turn tables by repeated composition.
var descriptorTable [6][4]moveDescriptor

func init() {
	for _, face := range allFaces {
		q1 := quarterTurns[face]
		q2 := compose(q1, q1)
		q3 := compose(q2, q1)
		descriptorTable[face][QuarterCW] = q1
		descriptorTable[face][Half] = q2
		descriptorTable[face][QuarterCCW] = q3
	}
}

func descriptorFor(m Move) moveDescriptor {
	return descriptorTable[m.Face][m.Quarters]
}
