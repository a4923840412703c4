package cube

// SolverResult is the outcome of a solve attempt: the optimized move
// sequence, the per-phase breakdown, and a human-readable algorithm name.
type SolverResult struct {
	Algorithm string
	Moves     []Move
	Phases    []PhaseResult
}

// Solver produces a move sequence that solves a given cube state.
type Solver interface {
	Solve(state State, limits DepthLimits) (*SolverResult, error)
}

// ThistlethwaiteSolver is the only Solver this package implements: the
// four-phase group-reduction algorithm described in spec.md. The teacher's
// placeholder Beginner/CFOP/Kociemba solvers are gone — this repo solves one
// way.
type ThistlethwaiteSolver struct{}

func NewThistlethwaiteSolver() *ThistlethwaiteSolver {
	return &ThistlethwaiteSolver{}
}

func (s *ThistlethwaiteSolver) Solve(state State, limits DepthLimits) (*SolverResult, error) {
	moves, phases, err := Solve(state, limits)
	if err != nil {
		return nil, err
	}
	return &SolverResult{
		Algorithm: "thistlethwaite",
		Moves:     OptimizeMoves(moves),
		Phases:    phases,
	}, nil
}
