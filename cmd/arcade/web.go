package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gamealchemy/arcade/internal/storage"
	"github.com/gamealchemy/arcade/internal/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the leaderboard web API",
	Long: `Serve the score database as a read-only JSON API.

Endpoints:
  GET /healthz                    - Liveness check
  GET /api/games                  - List available games
  GET /api/games/{id}/scores      - Top scores (?limit=1-100)
  GET /api/games/{id}/stats       - Aggregate statistics

Examples:
  arcade web
  arcade web --http :9090 --db ./scores.db`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "http", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := web.NewServer(store)
	if err := server.ListenAndServe(flagWebAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
