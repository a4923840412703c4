package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/history"
)

var (
	historyDBPath string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently logged solves",
	Long:  `History lists the most recent solves recorded by "cube solve" and the HTTP API.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDBPath, "db", "", "history database path (default: ~/.thistlecube/history.db)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of solves to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openHistoryDB(historyDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	repo := history.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("listing solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No solves recorded.")
		return nil
	}

	for _, s := range solves {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s  %4d moves  %6dms  scramble=%q\n",
			s.StartedAt.Format("2006-01-02 15:04:05"), s.Algorithm, s.MoveCount, s.DurationMs, s.Scramble)
	}
	return nil
}
