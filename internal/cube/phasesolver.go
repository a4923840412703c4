package cube

// SolvePhase runs iterative-deepening DFS from state, using moveset, bounded
// by depthLimit plies, pruned by table (a BFS distance table built up to
// tableMaxDepth). isGoal tests whether a state satisfies this phase's goal.
// Consecutive moves on the same face are suppressed — they're always
// dominated by a single combined move — grounded on the Thistlethwaite
// prototype's `move[0] == solution[-1][0]` check.
//
// Returns the move sequence and true on success, or nil and false if no
// solution exists within depthLimit.
func SolvePhase(state State, moveset []Move, depthLimit int, project func(State) Key, table map[Key]uint8, tableMaxDepth int, isGoal func(State) bool) ([]Move, bool) {
	if isGoal(state) {
		return nil, true
	}
	for limit := 1; limit <= depthLimit; limit++ {
		path := make([]Move, 0, limit)
		if result, ok := phaseDFS(state, moveset, limit, project, table, tableMaxDepth, isGoal, path, -1); ok {
			return result, true
		}
	}
	return nil, false
}

// lastFace of -1 means "no previous move in this branch."
func phaseDFS(state State, moveset []Move, depthRemaining int, project func(State) Key, table map[Key]uint8, tableMaxDepth int, isGoal func(State) bool, path []Move, lastFace int) ([]Move, bool) {
	if isGoal(state) {
		out := make([]Move, len(path))
		copy(out, path)
		return out, true
	}
	if depthRemaining == 0 {
		return nil, false
	}
	if lb, ok := table[project(state)]; ok {
		if int(lb) > depthRemaining {
			return nil, false
		}
	} else if tableMaxDepth+1 > depthRemaining {
		return nil, false
	}
	for _, m := range moveset {
		if int(m.Face) == lastFace {
			continue
		}
		ns := Apply(state, m)
		path = append(path, m)
		if result, ok := phaseDFS(ns, moveset, depthRemaining-1, project, table, tableMaxDepth, isGoal, path, int(m.Face)); ok {
			return result, true
		}
		path = path[:len(path)-1]
	}
	return nil, false
}
