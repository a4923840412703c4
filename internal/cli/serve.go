package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/behrlich/thistlecube/internal/history"
	"github.com/behrlich/thistlecube/internal/web"
)

var (
	servePort   string
	serveHost   string
	serveDBPath string
	serveNoDB   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON solve API",
	Long: `Serve starts an HTTP server exposing the Thistlethwaite solver as a
small JSON API.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "localhost", "host to bind the server to")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "history database path (default: ~/.thistlecube/history.db)")
	serveCmd.Flags().BoolVar(&serveNoDB, "no-history", false, "don't log solves served over HTTP to history")
}

func runServe(cmd *cobra.Command, args []string) error {
	var db *history.DB
	if !serveNoDB {
		var err error
		db, err = openHistoryDB(serveDBPath)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open history database, solves won't be logged: %v\n", err)
		} else {
			defer db.Close()
		}
	}

	server := web.NewServer(db)
	fmt.Fprintf(cmd.OutOrStdout(), "Starting web server at http://%s:%s\n", serveHost, servePort)
	return server.Start(serveHost + ":" + servePort)
}
