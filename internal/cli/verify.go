package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/cfen"
	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/facelet"
)

const defaultSolvedCFEN = "UF|U9/R9/F9/D9/L9/B9"

var (
	verifyStart   string
	verifyTarget  string
	verifyVerbose bool
	verifyQuiet   bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify <algorithm>",
	Short: "Verify an algorithm transforms start state to target state",
	Long: `Verify that an algorithm correctly transforms a cube from a start state to
a target state. Both states are given as CFEN strings with wildcard support.

Examples:
  # Verify a commutator solves to the identity
  cube verify "R U R' U' U R U' R'"

  # Verify an algorithm leaves the first two layers intact
  cube verify "R U R' U R U2 R'" \
    --target "UF|?9/?3R6/?3F6/D9/?3L6/?3B6"`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyStart, "start", "", "starting CFEN state (default: solved)")
	verifyCmd.Flags().StringVar(&verifyTarget, "target", "", "target CFEN state (default: solved)")
	verifyCmd.Flags().BoolVarP(&verifyVerbose, "verbose", "v", false, "show cube states and transformations")
	verifyCmd.Flags().BoolVar(&verifyQuiet, "headless", false, "only set the exit code; no output")
}

func runVerify(cmd *cobra.Command, args []string) error {
	algorithm := args[0]
	startCFEN := verifyStart
	if startCFEN == "" {
		startCFEN = defaultSolvedCFEN
	}
	targetCFEN := verifyTarget
	if targetCFEN == "" {
		targetCFEN = defaultSolvedCFEN
	}

	startState, err := cfen.Parse(startCFEN)
	if err != nil {
		if !verifyQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "error parsing start CFEN: %v\n", err)
		}
		os.Exit(1)
	}
	targetState, err := cfen.Parse(targetCFEN)
	if err != nil {
		if !verifyQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "error parsing target CFEN: %v\n", err)
		}
		os.Exit(1)
	}

	state, err := startState.ToState()
	if err != nil {
		if !verifyQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "error converting start CFEN: %v\n", err)
		}
		os.Exit(1)
	}

	if verifyVerbose && !verifyQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Start state (from CFEN):")
		fmt.Fprintln(cmd.OutOrStdout(), facelet.FromState(state).UnfoldedString(true))
	}

	moves, err := cube.ParseSequence(algorithm)
	if err != nil {
		if !verifyQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "error parsing algorithm: %v\n", err)
		}
		os.Exit(1)
	}
	state = cube.ApplySequence(state, moves)

	if verifyVerbose && !verifyQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nAfter algorithm (%s):\n", algorithm)
		fmt.Fprintln(cmd.OutOrStdout(), facelet.FromState(state).UnfoldedString(true))
	}

	matches, err := targetState.Matches(state)
	if err != nil {
		if !verifyQuiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "error matching result to target: %v\n", err)
		}
		os.Exit(1)
	}

	actual := cfen.GenerateCFEN(state)
	if matches {
		if !verifyQuiet {
			fmt.Fprintln(cmd.OutOrStdout(), "PASS: algorithm transforms start to target state")
			fmt.Fprintf(cmd.OutOrStdout(), "Algorithm: %s\n", algorithm)
			fmt.Fprintf(cmd.OutOrStdout(), "Move count: %d\n", cube.GetMoveCount(moves))
			if verifyVerbose {
				fmt.Fprintf(cmd.OutOrStdout(), "Start:  %s\n", startCFEN)
				fmt.Fprintf(cmd.OutOrStdout(), "Target: %s\n", targetCFEN)
				fmt.Fprintf(cmd.OutOrStdout(), "Actual: %s\n", actual)
			}
		}
		return nil
	}

	if !verifyQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "FAIL: algorithm does not reach target state")
		fmt.Fprintf(cmd.OutOrStdout(), "Algorithm: %s\n", algorithm)
		fmt.Fprintf(cmd.OutOrStdout(), "Start:  %s\n", startCFEN)
		fmt.Fprintf(cmd.OutOrStdout(), "Target: %s\n", targetCFEN)
		fmt.Fprintf(cmd.OutOrStdout(), "Actual: %s\n", actual)
	}
	os.Exit(1)
	return nil
}
