package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/cfen"
	"github.com/behrlich/thistlecube/internal/cube"
	"github.com/behrlich/thistlecube/internal/facelet"
)

var (
	showUseColor  bool
	showUseLetter bool
)

var showCmd = &cobra.Command{
	Use:   "show [cfen-or-scramble]",
	Short: "Show a cube state as an unfolded facelet net",
	Long: `Show displays a cube state. The argument is either a CFEN string
(if it contains a '|') or a move sequence applied to the solved cube.
With no argument, displays the solved cube.

Examples:
  cube show
  cube show "R U R' U'"
  cube show "UF|U9/R9/F9/D9/L9/B9"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showUseColor, "color", "c", true, "use colored glyph output")
	showCmd.Flags().BoolVar(&showUseLetter, "letters", false, "use plain face letters instead of colored glyphs")
}

func runShow(cmd *cobra.Command, args []string) error {
	var state cube.State
	var label string

	if len(args) == 0 || args[0] == "" {
		state = cube.Solved()
		label = "Solved cube state:"
	} else if strings.Contains(args[0], "|") {
		cfenState, err := cfen.Parse(args[0])
		if err != nil {
			return fmt.Errorf("parsing CFEN: %w", err)
		}
		state, err = cfenState.ToState()
		if err != nil {
			return fmt.Errorf("resolving CFEN: %w", err)
		}
		label = fmt.Sprintf("Cube state from CFEN %s:", args[0])
	} else {
		moves, err := cube.ParseSequence(args[0])
		if err != nil {
			return fmt.Errorf("parsing scramble: %w", err)
		}
		state = cube.ApplySequence(cube.Solved(), moves)
		label = fmt.Sprintf("Cube state after scramble: %s", args[0])
	}

	fmt.Fprintln(cmd.OutOrStdout(), label)
	fmt.Fprintln(cmd.OutOrStdout())
	glyphs := showUseColor && !showUseLetter
	fmt.Fprint(cmd.OutOrStdout(), facelet.FromState(state).UnfoldedString(glyphs))
	return nil
}
