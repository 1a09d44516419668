package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gamealchemy/arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server",
	Long: `Serve the arcade over SSH. Every connection gets its own session
with the game picker menu; all players share one leaderboard.

Without --host-key a key is generated at ~/.arcade/host_key on first
start. Pair with 'arcade web' to publish the shared leaderboard.

Examples:
  arcade serve
  arcade serve --ssh :2222 --idle-timeout 10m
  arcade serve --host-key ./host_key --db ./scores.db`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when omitted)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", defaults.DBPath, "Path to scores database")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagIdleTimeout <= 0 {
		return fmt.Errorf("--idle-timeout must be positive, got %s", flagIdleTimeout)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagSSHDBPath
	cfg.IdleTimeout = flagIdleTimeout

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	port := cfg.Address
	if i := strings.LastIndex(port, ":"); i >= 0 {
		port = port[i+1:]
	}
	fmt.Fprintf(os.Stderr, "Arcade listening on %s, connect with: ssh <host> -p %s\n", cfg.Address, port)

	return server.ListenAndServe()
}
