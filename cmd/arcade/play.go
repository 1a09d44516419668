package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/platform/tui"
	"github.com/gamealchemy/arcade/internal/registry"
	"github.com/gamealchemy/arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Board game controls:
  Arrows/WASD  - Move
  Space/Enter  - Drop / reveal / confirm
  F            - Flag (minesweeper)
  P/Esc        - Pause / back
  R            - Restart
  Q/Ctrl+C     - Quit

Word game controls:
  A-Z          - Type letters
  Enter        - Commit guess
  Backspace    - Delete letter
  Ctrl+R       - Restart

Difficulty presets: easy, normal, hard, expert (extreme for pipeline).

Examples:
  arcade play bricklayer
  arcade play minesweeper --difficulty expert
  arcade play snake --config ./my-snake.yaml
  arcade play wordit --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert, extreme")
}

// parsePreset validates the --difficulty flag value.
func parsePreset(raw string) (config.DifficultyPreset, error) {
	if raw == "" {
		return "", nil
	}
	for _, p := range config.KnownPresets() {
		if raw == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (expected one of: easy, normal, hard, expert, extreme)", raw)
}

// terminalSize returns the stdout terminal dimensions, with sane fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	entry, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	preset, err := parsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := entry.New(registry.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage, the game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg, flagDifficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
