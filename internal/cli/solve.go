package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/cfen"
	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/history"
)

var (
	solveStart     string
	solveDBPath    string
	solveNoHistory bool
	solveJSON      bool
	solveDepth0    int
	solveDepth1    int
	solveDepth2    int
	solveDepth3    int
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube using Thistlethwaite's algorithm",
	Long: `Solve parses a move sequence, applies it to the solved cube (or to
--start if given), and runs the four-phase group-reduction solver against
the result. An empty scramble solves the already-solved cube.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveStart, "start", "", "starting CFEN state (default: solved cube)")
	solveCmd.Flags().StringVar(&solveDBPath, "db", "", "history database path (default: ~/.thistlecube/history.db)")
	solveCmd.Flags().BoolVar(&solveNoHistory, "no-history", false, "don't log this solve to history")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the result as JSON")
	solveCmd.Flags().IntVar(&solveDepth0, "depth0", cube.DefaultG0DepthLimit, "phase G0 depth limit")
	solveCmd.Flags().IntVar(&solveDepth1, "depth1", cube.DefaultG1DepthLimit, "phase G1 depth limit")
	solveCmd.Flags().IntVar(&solveDepth2, "depth2", cube.DefaultG2DepthLimit, "phase G2 depth limit")
	solveCmd.Flags().IntVar(&solveDepth3, "depth3", cube.DefaultG3DepthLimit, "phase G3 depth limit")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := ""
	if len(args) == 1 {
		scramble = args[0]
	}
	scrambleMoves, err := cube.ParseSequence(scramble)
	if err != nil {
		return fmt.Errorf("parsing scramble: %w", err)
	}

	start := cube.Solved()
	if solveStart != "" {
		cfenState, err := cfen.Parse(solveStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
		start, err = cfenState.ToState()
		if err != nil {
			return fmt.Errorf("resolving --start: %w", err)
		}
	}
	scrambled := cube.ApplySequence(start, scrambleMoves)

	limits := cube.DepthLimits{G0: solveDepth0, G1: solveDepth1, G2: solveDepth2, G3: solveDepth3}
	solver := cube.NewThistlethwaiteSolver()

	startedAt := time.Now()
	result, err := solver.Solve(scrambled, limits)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "solve failed: %v\n", err)
		os.Exit(1)
	}
	endedAt := time.Now()

	solution := cube.FormatSequence(result.Moves)
	phaseCounts := make([]int, len(result.Phases))
	for i, p := range result.Phases {
		phaseCounts[i] = len(p.Moves)
	}

	if !solveNoHistory {
		recordSolve(cmd, solveDBPath, startedAt, endedAt, scramble, solution, cube.GetMoveCount(result.Moves), result.Algorithm)
	}

	if solveJSON {
		out := map[string]any{
			"solution":          solution,
			"move_count":        cube.GetMoveCount(result.Moves),
			"phase_move_counts": phaseCounts,
			"elapsed":           endedAt.Sub(startedAt).String(),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Solution (%d moves): %s\n", cube.GetMoveCount(result.Moves), solution)
	fmt.Fprintf(cmd.OutOrStdout(), "Phase move counts: %v\n", phaseCounts)
	fmt.Fprintf(cmd.OutOrStdout(), "Elapsed: %s\n", endedAt.Sub(startedAt))
	return nil
}

func recordSolve(cmd *cobra.Command, dbPath string, startedAt, endedAt time.Time, scramble, solution string, moveCount int, algorithm string) {
	db, err := openHistoryDB(dbPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open history database: %v\n", err)
		return
	}
	defer db.Close()
	repo := history.NewSolveRepository(db)
	if _, err := repo.Record(startedAt, endedAt, scramble, solution, moveCount, algorithm); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not log solve to history: %v\n", err)
	}
}

func openHistoryDB(path string) (*history.DB, error) {
	if path == "" {
		return history.OpenDefault()
	}
	return history.Open(path)
}
