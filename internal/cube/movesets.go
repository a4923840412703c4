package cube

// Phase identifies a stage of Thistlethwaite's subgroup chain.
type Phase int

const (
	PhaseG0 Phase = iota // G0 -> G1: all edges flipped correctly
	PhaseG1               // G1 -> G2: corners oriented, E-slice edges in the E-slice
	PhaseG2               // G2 -> G3: reduced to the half-turn group <U2,D2,L2,R2,F2,B2>
	PhaseG3               // G3 -> solved: half turns only
)

func allMoves() []Move {
	moves := make([]Move, 0, 18)
	for _, face := range allFaces {
		moves = append(moves,
			Move{Face: face, Quarters: QuarterCW},
			Move{Face: face, Quarters: Half},
			Move{Face: face, Quarters: QuarterCCW},
		)
	}
	return moves
}

// g0Moves is every move: G0's goal (all edges flipped correctly) has no
// structure to preserve yet.
var g0Moves = allMoves()

// g1Moves excludes quarter turns of F and B, which are the only moves that
// flip edges.
var g1Moves = []Move{
	{Face: U, Quarters: QuarterCW}, {Face: U, Quarters: Half}, {Face: U, Quarters: QuarterCCW},
	{Face: D, Quarters: QuarterCW}, {Face: D, Quarters: Half}, {Face: D, Quarters: QuarterCCW},
	{Face: L, Quarters: QuarterCW}, {Face: L, Quarters: Half}, {Face: L, Quarters: QuarterCCW},
	{Face: R, Quarters: QuarterCW}, {Face: R, Quarters: Half}, {Face: R, Quarters: QuarterCCW},
	{Face: F, Quarters: Half},
	{Face: B, Quarters: Half},
}

// g2Moves is spec.md's ten-move G2 set: quarter turns of U/D plus half turns
// of L/R/F/B. This is a superset of the Python prototype's narrower six-move
// g2_moves; both generate a group that keeps corner orientation and edge
// flip at zero, so the wider set stays admissible while reducing phase-three
// solution length.
var g2Moves = []Move{
	{Face: U, Quarters: QuarterCW}, {Face: U, Quarters: Half}, {Face: U, Quarters: QuarterCCW},
	{Face: D, Quarters: QuarterCW}, {Face: D, Quarters: Half}, {Face: D, Quarters: QuarterCCW},
	{Face: L, Quarters: Half},
	{Face: R, Quarters: Half},
	{Face: F, Quarters: Half},
	{Face: B, Quarters: Half},
}

// g3Moves: half turns only.
var g3Moves = []Move{
	{Face: U, Quarters: Half},
	{Face: D, Quarters: Half},
	{Face: L, Quarters: Half},
	{Face: R, Quarters: Half},
	{Face: F, Quarters: Half},
	{Face: B, Quarters: Half},
}

// MovesetFor returns the legal moveset for a phase.
func MovesetFor(phase Phase) []Move {
	switch phase {
	case PhaseG0:
		return g0Moves
	case PhaseG1:
		return g1Moves
	case PhaseG2:
		return g2Moves
	case PhaseG3:
		return g3Moves
	default:
		return nil
	}
}

// Default per-phase IDDFS depth limits, per spec.md section 4.5. Tuned down
// from the Python prototype's facelet-string constants since dense cubie
// keys search roughly an order of magnitude faster.
const (
	DefaultG0DepthLimit = 7
	DefaultG1DepthLimit = 10
	DefaultG2DepthLimit = 13
	DefaultG3DepthLimit = 15
)
