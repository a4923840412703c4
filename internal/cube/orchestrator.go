package cube

import (
	"fmt"
	"sync"
)

// PruningTables holds the four phase pruning tables. It is immutable once
// built and safe to share across concurrent solves — building it is the
// expensive part; using it is read-only map lookups.
type PruningTables struct {
	G0 map[Key]uint8
	G1 map[Key]uint8
	G2 map[Key]uint8
	G3 map[Key]uint8
}

var (
	tablesOnce sync.Once
	tables     *PruningTables
)

// GetPruningTables builds (once, lazily) and returns the shared pruning
// tables used by Solve. Building is idempotent and safe to call from
// multiple goroutines.
func GetPruningTables() *PruningTables {
	tablesOnce.Do(func() {
		tables = buildPruningTables()
	})
	return tables
}

func buildPruningTables() *PruningTables {
	solved := []State{Solved()}
	return &PruningTables{
		G0: BuildPruningTable(solved, g0Moves, DefaultG0DepthLimit, ProjectG0),
		G1: BuildPruningTable(solved, g1Moves, DefaultG1DepthLimit, ProjectG1),
		G2: BuildPruningTable(solved, g2Moves, DefaultG2DepthLimit, ProjectG2),
		G3: BuildPruningTable(solved, g3Moves, DefaultG3DepthLimit, ProjectG3),
	}
}

// DepthLimits configures the per-phase IDDFS bound used by Solve. The zero
// value allows no moves in any phase, so Solve fails on any cube that is not
// already solved; DefaultDepthLimits gives the usual bounds.
type DepthLimits struct {
	G0, G1, G2, G3 int
}

// DefaultDepthLimits mirrors spec.md section 4.5's suggested defaults.
func DefaultDepthLimits() DepthLimits {
	return DepthLimits{
		G0: DefaultG0DepthLimit,
		G1: DefaultG1DepthLimit,
		G2: DefaultG2DepthLimit,
		G3: DefaultG3DepthLimit,
	}
}

// PhaseResult captures which phase ran and the move sequence it produced
// during a solve, for callers that want per-phase visibility (the CLI's solve
// command reports phase move counts).
type PhaseResult struct {
	Phase Phase
	Moves []Move
}

// Solve runs Thistlethwaite's four phases in sequence against state and
// returns the concatenated move sequence that solves it. It returns an
// error naming the phase that exceeded its depth limit, per spec.md
// section 7 — this is a search failure, not a corrupted-state panic.
func Solve(state State, limits DepthLimits) ([]Move, []PhaseResult, error) {
	t := GetPruningTables()

	type phaseSpec struct {
		phase      Phase
		moveset    []Move
		depthLimit int
		project    func(State) Key
		table      map[Key]uint8
		tableMax   int
		isGoal     func(State) bool
	}

	phases := []phaseSpec{
		{PhaseG0, g0Moves, limits.G0, ProjectG0, t.G0, DefaultG0DepthLimit, IsG0Solved},
		{PhaseG1, g1Moves, limits.G1, ProjectG1, t.G1, DefaultG1DepthLimit, IsG1Solved},
		{PhaseG2, g2Moves, limits.G2, ProjectG2, t.G2, DefaultG2DepthLimit, IsG2Solved},
		{PhaseG3, g3Moves, limits.G3, ProjectG3, t.G3, DefaultG3DepthLimit, IsG3Solved},
	}

	var solution []Move
	var results []PhaseResult
	cur := state
	for _, p := range phases {
		moves, ok := SolvePhase(cur, p.moveset, p.depthLimit, p.project, p.table, p.tableMax, p.isGoal)
		if !ok {
			return nil, nil, fmt.Errorf("cube: phase %d failed to reach goal within depth limit %d", p.phase, p.depthLimit)
		}
		solution = append(solution, moves...)
		results = append(results, PhaseResult{Phase: p.phase, Moves: moves})
		cur = ApplySequence(cur, moves)
	}
	return solution, results, nil
}
