package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/cfen"
	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/facelet"
)

var (
	twistStart     string
	twistCfenOut   bool
	twistUseColor  bool
	twistUseLetter bool
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a cube and display the result",
	Long: `Twist applies a sequence of moves to a cube and displays the resulting
state. It does not solve the cube — it just applies the moves and shows the
result. Useful for exploring algorithms and patterns.

Examples:
  cube twist "R U R' U'"
  cube twist "F R U' R' F'" --cfen`,
	Args: cobra.ExactArgs(1),
	RunE: runTwist,
}

func init() {
	twistCmd.Flags().StringVar(&twistStart, "start", "", "starting CFEN state (default: solved cube)")
	twistCmd.Flags().BoolVar(&twistCfenOut, "cfen", false, "output the resulting state as CFEN instead of a facelet net")
	twistCmd.Flags().BoolVarP(&twistUseColor, "color", "c", true, "use colored glyph output for the facelet net")
	twistCmd.Flags().BoolVar(&twistUseLetter, "letters", false, "use plain face letters instead of colored glyphs")
}

func runTwist(cmd *cobra.Command, args []string) error {
	start := cube.Solved()
	if twistStart != "" {
		cfenState, err := cfen.Parse(twistStart)
		if err != nil {
			return fmt.Errorf("parsing --start: %w", err)
		}
		start, err = cfenState.ToState()
		if err != nil {
			return fmt.Errorf("resolving --start: %w", err)
		}
	}

	moves, err := cube.ParseSequence(args[0])
	if err != nil {
		if !twistCfenOut {
			fmt.Fprintf(cmd.ErrOrStderr(), "error parsing moves: %v\n", err)
		}
		os.Exit(1)
	}
	result := cube.ApplySequence(start, moves)

	if twistCfenOut {
		fmt.Fprint(cmd.OutOrStdout(), cfen.GenerateCFEN(result))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applying moves: %s\n\n", args[0])
	glyphs := twistUseColor && !twistUseLetter
	fmt.Fprint(cmd.OutOrStdout(), facelet.FromState(result).UnfoldedString(glyphs))
	fmt.Fprintf(cmd.OutOrStdout(), "Moves applied: %d\n", cube.GetMoveCount(moves))
	if result.IsSolved() {
		fmt.Fprintln(cmd.OutOrStdout(), "Status: SOLVED")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Status: scrambled")
	}
	return nil
}
