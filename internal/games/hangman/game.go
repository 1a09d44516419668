package hangman

import (
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

// Game is the hangman engine. The answer may be a phrase; spaces are
// revealed from the start and only letters count as guesses.
type Game struct {
	cfg   config.HangmanConfig
	words *wordlist.Repository
	rt    core.RuntimeConfig
	rng   *rand.Rand

	answer   string
	revealed map[rune]bool
	guessed  map[rune]bool
	mistakes int

	// Letter board position, updated each Render for pointer hits.
	kbX, kbY int

	won      bool
	gameOver bool
	toMenu   bool
}

// New builds a hangman game backed by the list the config names.
func New(cfg config.HangmanConfig, words *wordlist.Repository) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := words.HangmanWords(cfg.ListKey); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, words: words}, nil
}

func (g *Game) ID() string    { return "hangman" }
func (g *Game) Title() string { return "Hangman" }

// Reset picks a fresh answer for the run's seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	answer, err := g.words.PickHangmanWord(g.cfg.ListKey, g.rng)
	if err != nil {
		// New already proved the list exists and is non-empty.
		answer = "ARCADE"
	}
	g.answer = answer
	g.revealed = map[rune]bool{' ': true}
	g.guessed = make(map[rune]bool)
	g.mistakes = 0
	g.won = false
	g.gameOver = false
	g.toMenu = false
	g.kbX = (rt.ScreenW - 26*2) / 2
	g.kbY = letterBoardY
}

// letterAt maps a screen position onto the rendered letter board.
func (g *Game) letterAt(x, y int) (rune, bool) {
	if y != g.kbY {
		return 0, false
	}
	dx := x - g.kbX
	if dx < 0 || dx >= 26*2 || dx%2 != 0 {
		return 0, false
	}
	return rune('A' + dx/2), true
}

// State scores the mistake budget left, zero on a loss.
func (g *Game) State() core.GameState {
	score := 0
	if g.won {
		score = (g.cfg.MaxMistakes - g.mistakes) * 50
	}
	return core.GameState{Score: score, GameOver: g.gameOver, Won: g.won}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionBack) || in.Has(core.ActionQuit) {
		g.toMenu = true
	}
	if g.toMenu {
		return core.StepResult{State: g.State(), ReturnToMenu: true}
	}
	if in.Has(core.ActionRestart) {
		g.rt.Seed++
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	for _, r := range in.Letters {
		g.guess(r)
	}
	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress || ev.Secondary {
			continue
		}
		if r, ok := g.letterAt(ev.X, ev.Y); ok {
			g.guess(r)
		}
	}
	return core.StepResult{State: g.State()}
}

// guess processes one letter. Repeats are ignored and cost nothing.
func (g *Game) guess(r rune) {
	if g.guessed[r] {
		return
	}
	g.guessed[r] = true
	if g.contains(r) {
		g.revealed[r] = true
		if g.solved() {
			g.won = true
		}
		return
	}
	g.mistakes++
	if g.mistakes >= g.cfg.MaxMistakes {
		g.gameOver = true
	}
}

func (g *Game) contains(r rune) bool {
	for _, a := range g.answer {
		if a == r {
			return true
		}
	}
	return false
}

func (g *Game) solved() bool {
	for _, a := range g.answer {
		if !g.revealed[a] {
			return false
		}
	}
	return true
}

// masked returns the answer with unrevealed letters blanked.
func (g *Game) masked() string {
	out := make([]rune, 0, len(g.answer))
	for _, a := range g.answer {
		if g.revealed[a] {
			out = append(out, a)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}
