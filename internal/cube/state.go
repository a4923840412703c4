// Package cube implements the cubie-level representation of a 3x3x3 Rubik's
// cube and Thistlethwaite's four-phase group-reduction solver.
package cube

// Face identifies one of the six face-turn axes.
type Face int

const (
	U Face = iota
	D
	L
	R
	F
	B
)

func (f Face) String() string {
	return [...]string{"U", "D", "L", "R", "F", "B"}[f]
}

var allFaces = [6]Face{U, D, L, R, F, B}

// Corner holds the identity of the physical cubie occupying a corner slot
// and its orientation (0, 1 or 2 clockwise twists relative to U/D).
type Corner struct {
	ID     uint8
	Orient uint8
}

// Edge holds the identity of the physical cubie occupying an edge slot and
// its flip (0 or 1) relative to its reference orientation.
type Edge struct {
	ID   uint8
	Flip uint8
}

// State is the full cubie-level state of a 3x3x3 cube: 8 corner slots and
// 12 edge slots. Centers are fixed and carry no state. Corner and edge slot
// numbering follows the standard URF/UFL/ULB/UBR/DFR/DLF/DBL/DRB corner
// order and UR/UF/UL/UB/DR/DF/DL/DB/FR/FL/BL/BR edge order.
type State struct {
	Corners [8]Corner
	Edges   [12]Edge
}

// Solved returns the identity cube state.
func Solved() State {
	var s State
	for i := range s.Corners {
		s.Corners[i] = Corner{ID: uint8(i), Orient: 0}
	}
	for j := range s.Edges {
		s.Edges[j] = Edge{ID: uint8(j), Flip: 0}
	}
	return s
}

// IsSolved reports whether the state is the identity cube.
func (s State) IsSolved() bool {
	return s == Solved()
}

// eSliceEdge reports whether an edge id belongs to the E-slice (the four
// edges that never touch U or D in the solved state: FR, FL, BL, BR).
func eSliceEdge(id uint8) bool {
	return id >= 8 && id <= 11
}

// cornerOrientSum and edgeFlipSum are used by the invariant checks in
// apply_test.go; they are not needed on the solving hot path.
func (s State) cornerOrientSum() int {
	sum := 0
	for _, c := range s.Corners {
		sum += int(c.Orient)
	}
	return sum % 3
}

func (s State) edgeFlipSum() int {
	sum := 0
	for _, e := range s.Edges {
		sum += int(e.Flip)
	}
	return sum % 2
}
