package cube

// stateAtDepth remembers one representative State reaching a Key, along with
// the BFS depth at which it was first reached.
type stateAtDepth struct {
	state State
	depth uint8
}

// bfsExpand runs a breadth-first search over the move graph starting from
// seeds, applying moveset at each step, up to maxDepth plies. It returns one
// entry per distinct key reached (seeds included, at depth 0), keyed by
// project. This is the frontier construction spec.md section 4.3 describes,
// grounded on the Thistlethwaite prototype's gen_pruning_table.
func bfsExpand(seeds []State, moveset []Move, maxDepth int, project func(State) Key) map[Key]stateAtDepth {
	visited := make(map[Key]stateAtDepth)
	frontier := make([]State, 0, len(seeds))
	for _, s := range seeds {
		k := project(s)
		if _, ok := visited[k]; !ok {
			visited[k] = stateAtDepth{state: s, depth: 0}
			frontier = append(frontier, s)
		}
	}
	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		next := make([]State, 0, len(frontier)*len(moveset))
		for _, s := range frontier {
			for _, m := range moveset {
				ns := Apply(s, m)
				k := project(ns)
				if _, ok := visited[k]; ok {
					continue
				}
				visited[k] = stateAtDepth{state: ns, depth: uint8(depth)}
				next = append(next, ns)
			}
		}
		frontier = next
	}
	return visited
}

// BuildPruningTable builds a Key -> minimum-distance-to-goal table by BFS
// from the goal states, up to maxDepth plies, over moveset.
func BuildPruningTable(goalStates []State, moveset []Move, maxDepth int, project func(State) Key) map[Key]uint8 {
	visited := bfsExpand(goalStates, moveset, maxDepth, project)
	table := make(map[Key]uint8, len(visited))
	for k, sd := range visited {
		table[k] = sd.depth
	}
	return table
}

