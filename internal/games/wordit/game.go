package wordit

import (
	"errors"
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

// MaxTries is the number of guesses a round allows.
const MaxTries = 6

// Game is the word-guessing engine: six attempts at a five-letter
// word, with per-letter verdicts after each committed guess. Hard mode
// additionally forces every guess to honor earlier verdicts.
type Game struct {
	cfg   config.WordItConfig
	words *wordlist.Repository
	rt    core.RuntimeConfig
	rng   *rand.Rand

	answer  string
	guesses []string
	marks   [][]Mark
	current []rune
	notice  string

	// Letter board position, updated each Render for pointer hits.
	kbX, kbY int

	won      bool
	gameOver bool
	toMenu   bool
}

// New builds a word game backed by the guess-word list.
func New(cfg config.WordItConfig, words *wordlist.Repository) (*Game, error) {
	if len(words.GuessWords()) == 0 {
		return nil, errors.New("wordit: empty guess-word list")
	}
	return &Game{cfg: cfg, words: words}, nil
}

func (g *Game) ID() string    { return "wordit" }
func (g *Game) Title() string { return "WordIt" }

// Reset picks a fresh answer for the run's seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.answer = g.words.PickGuessWord(g.rng)
	g.guesses = nil
	g.marks = nil
	g.current = nil
	g.notice = ""
	g.won = false
	g.gameOver = false
	g.toMenu = false
	g.kbX = (rt.ScreenW - 26*2) / 2
	g.kbY = 3 + MaxTries*2 + 3
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

// State scores unused attempts, so faster solves rank higher.
func (g *Game) State() core.GameState {
	score := 0
	if g.won {
		score = (MaxTries - len(g.guesses) + 1) * 100
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

	letters := in.Letters
	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress || ev.Secondary {
			continue
		}
		if r, ok := g.letterAt(ev.X, ev.Y); ok {
			letters = append(letters, r)
		}
	}
	for _, r := range letters {
		if len(g.current) < wordlist.GuessWordLen {
			g.current = append(g.current, r)
			g.notice = ""
		}
	}
	if in.Has(core.ActionDelete) && len(g.current) > 0 {
		g.current = g.current[:len(g.current)-1]
		g.notice = ""
	}
	if in.Has(core.ActionConfirm) {
		g.commit()
	}
	return core.StepResult{State: g.State()}
}

// commit grades the typed word if it is complete and, in hard mode,
// consistent with everything learned so far.
func (g *Game) commit() {
	if len(g.current) != wordlist.GuessWordLen {
		g.notice = "Not enough letters"
		return
	}
	guess := string(g.current)
	if g.cfg.HardMode {
		if reason, ok := ValidateHard(guess, g.guesses, g.marks); !ok {
			g.notice = reason
			return
		}
	}
	marks := Score(guess, g.answer)
	g.guesses = append(g.guesses, guess)
	g.marks = append(g.marks, marks)
	g.current = nil
	g.notice = ""

	if guess == g.answer {
		g.won = true
		return
	}
	if len(g.guesses) >= MaxTries {
		g.gameOver = true
	}
}
