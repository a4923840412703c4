package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/cube"
)

var scrambleLength int

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Scramble prints a random sequence of moves drawn from the full 18-move
set, never repeating the same face turn twice in a row.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 20, "number of moves in the scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	moves := cube.RandomScramble(scrambleLength)
	fmt.Fprintln(cmd.OutOrStdout(), cube.FormatSequence(moves))
	return nil
}
