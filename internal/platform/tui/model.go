package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/registry"
	"github.com/gamealchemy/arcade/internal/storage"
)

// wordGames name the entries that consume plain letters as typed
// input instead of movement shortcuts.
var wordGames = map[string]bool{
	"wordit":  true,
	"hangman": true,
}

// GameModel is the Bubble Tea model for running one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	difficulty string
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	toMenu     bool
	quitting   bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		difficulty: difficulty,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, wordGames[m.game.ID()]) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step and persists finished runs.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.ReturnToMenu {
		m.saveOnce()
		m.toMenu = true
		return m, tea.Quit
	}

	if (m.gameState.GameOver || m.gameState.Won) && !m.scoreSaved {
		m.saveOnce()
	}
	if !m.gameState.GameOver && !m.gameState.Won {
		// A restart started a new run; allow another save.
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveOnce records the score, best effort.
func (m *GameModel) saveOnce() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		m.scoreSaved = true
		return
	}
	//nolint:errcheck // Best-effort save, play continues regardless
	m.store.SaveScore(m.game.ID(), m.difficulty, m.gameState.Score)
	m.scoreSaved = true
}

// ReturnedToMenu reports whether the game asked to go back to the menu.
func (m GameModel) ReturnedToMenu() bool {
	return m.toMenu
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a standalone Bubble Tea program for one game and reports
// whether the player asked for the menu afterwards.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, difficulty string) (bool, error) {
	model := NewGameModel(game, store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.ReturnedToMenu(), nil
	}
	return false, nil
}
