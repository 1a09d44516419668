// Package registry holds the closed table of playable games. Games do
// not register themselves from init functions; the table below is the
// single authority for what the arcade ships, and construction errors
// surface to the caller instead of panicking at import time.
package registry

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/games/bricklayer"
	"github.com/gamealchemy/arcade/internal/games/hangman"
	"github.com/gamealchemy/arcade/internal/games/minesweeper"
	"github.com/gamealchemy/arcade/internal/games/pipeline"
	"github.com/gamealchemy/arcade/internal/games/snake"
	"github.com/gamealchemy/arcade/internal/games/wordit"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

// Game is the contract every engine implements. Engines are pure state
// machines: Step consumes one normalized input frame per tick and
// Render draws onto an abstract screen, so the same engine runs under
// the local TUI and the SSH server unchanged.
type Game interface {
	ID() string
	Title() string
	Reset(core.RuntimeConfig)
	Step(core.InputFrame) core.StepResult
	Render(s *core.Screen)
	State() core.GameState
}

// Options carries everything a constructor may need.
type Options struct {
	// ConfigPath overrides the config search chain when non-empty.
	ConfigPath string
	// Preset overwrites the difficulty-controlled fields when non-empty.
	Preset config.DifficultyPreset
	// Words backs the word games. May be nil for the others.
	Words *wordlist.Repository
}

// Entry describes one playable game.
type Entry struct {
	ID      string
	Title   string
	Tagline string
	build   func(Options) (Game, error)
}

// New constructs a fresh instance of the entry's game.
func (e Entry) New(opts Options) (Game, error) {
	g, err := e.build(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", e.ID, err)
	}
	return g, nil
}

var entries = []Entry{
	{
		ID:      "bricklayer",
		Title:   "Brick Layer",
		Tagline: "stack falling pieces, clear lines",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadBrickLayer(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplyBrickLayerPreset(&cfg, opts.Preset)
			}
			return bricklayer.New(cfg)
		},
	},
	{
		ID:      "minesweeper",
		Title:   "Minesweeper",
		Tagline: "flag the mines, open the rest",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadMinesweeper(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplyMinesweeperPreset(&cfg, opts.Preset)
			}
			return minesweeper.New(cfg)
		},
	},
	{
		ID:      "pipeline",
		Title:   "Pipeline",
		Tagline: "route every pipe, cover the board",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadPipeline(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplyPipelinePreset(&cfg, opts.Preset)
			}
			return pipeline.New(cfg)
		},
	},
	{
		ID:      "snake",
		Title:   "Snake",
		Tagline: "grow long, dodge the poison",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadSnake(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplySnakePreset(&cfg, opts.Preset)
			}
			return snake.New(cfg)
		},
	},
	{
		ID:      "wordit",
		Title:   "WordIt",
		Tagline: "six tries at a five-letter word",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadWordIt(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplyWordItPreset(&cfg, opts.Preset)
			}
			words, err := requireWords(opts)
			if err != nil {
				return nil, err
			}
			return wordit.New(cfg, words)
		},
	},
	{
		ID:      "hangman",
		Title:   "Hangman",
		Tagline: "guess the phrase before the rope",
		build: func(opts Options) (Game, error) {
			cfg, err := config.LoadHangman(opts.ConfigPath)
			if err != nil {
				return nil, err
			}
			if opts.Preset != "" {
				config.ApplyHangmanPreset(&cfg, opts.Preset)
			}
			words, err := requireWords(opts)
			if err != nil {
				return nil, err
			}
			return hangman.New(cfg, words)
		},
	},
}

func requireWords(opts Options) (*wordlist.Repository, error) {
	if opts.Words != nil {
		return opts.Words, nil
	}
	return wordlist.NewRepository()
}

// All returns the entries in menu order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup finds an entry by its ID.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
