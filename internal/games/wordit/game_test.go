package wordit

import (
	"testing"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

func newTestGame(t *testing.T, hard bool) *Game {
	t.Helper()
	words, err := wordlist.NewRepository()
	if err != nil {
		t.Fatalf("wordlist: %v", err)
	}
	g, err := New(config.WordItConfig{HardMode: hard}, words)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 21})
	return g
}

func typeWord(g *Game, word string) {
	for _, r := range word {
		in := core.NewInputFrame()
		in.AddLetter(r)
		g.Step(in)
	}
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
}

func TestShortGuessNotCommitted(t *testing.T) {
	g := newTestGame(t, false)
	typeWord(g, "CAT")
	if len(g.guesses) != 0 {
		t.Error("three-letter guess was committed")
	}
	if g.notice == "" {
		t.Error("no notice shown for a short guess")
	}
}

func TestBackspaceRemovesLetter(t *testing.T) {
	g := newTestGame(t, false)
	in := core.NewInputFrame()
	in.AddLetter('A')
	g.Step(in)
	in = core.NewInputFrame()
	in.Set(core.ActionDelete)
	g.Step(in)
	if len(g.current) != 0 {
		t.Errorf("current = %q after backspace", string(g.current))
	}
}

func TestLowercaseInputNormalized(t *testing.T) {
	g := newTestGame(t, false)
	in := core.NewInputFrame()
	in.AddLetter('q')
	g.Step(in)
	if len(g.current) != 1 || g.current[0] != 'Q' {
		t.Errorf("current = %q, want Q", string(g.current))
	}
}

func TestCorrectGuessWins(t *testing.T) {
	g := newTestGame(t, false)
	typeWord(g, g.answer)
	if !g.won {
		t.Fatal("guessing the answer did not win")
	}
	if got := g.State().Score; got != MaxTries*100 {
		t.Errorf("score %d for a first-try solve, want %d", got, MaxTries*100)
	}
}

func TestSixMissesEndGame(t *testing.T) {
	g := newTestGame(t, false)
	wrong := "QQQQQ"
	if g.answer == wrong {
		t.Skip("improbable answer")
	}
	for i := 0; i < MaxTries; i++ {
		g.current = []rune(wrong)
		g.commit()
	}
	if !g.gameOver {
		t.Errorf("game still open after %d misses", MaxTries)
	}
	if g.won {
		t.Error("lost game reported as won")
	}
}

func TestHardModeBlocksInconsistentGuess(t *testing.T) {
	g := newTestGame(t, true)
	g.answer = "CLOUD"
	typeWord(g, "CRANE")
	if len(g.guesses) != 1 {
		t.Fatal("setup guess did not commit")
	}
	typeWord(g, "SHORT")
	if len(g.guesses) != 1 {
		t.Error("hard mode committed a guess that drops a green")
	}
	if g.notice != ReasonKeepGreens {
		t.Errorf("notice %q, want %q", g.notice, ReasonKeepGreens)
	}
}

func TestNormalModeAllowsInconsistentGuess(t *testing.T) {
	g := newTestGame(t, false)
	g.answer = "CLOUD"
	typeWord(g, "CRANE")
	typeWord(g, "SHORT")
	if len(g.guesses) != 2 {
		t.Error("normal mode rejected an inconsistent guess")
	}
}

func TestPointerClickTypesLetter(t *testing.T) {
	g := newTestGame(t, false)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: g.kbX + 2*2, Y: g.kbY})
	g.Step(in)
	if string(g.current) != "C" {
		t.Errorf("current = %q after clicking C on the letter board", string(g.current))
	}
}

func TestPointerClickOffBoardIgnored(t *testing.T) {
	g := newTestGame(t, false)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: g.kbX + 1, Y: g.kbY})
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: g.kbX, Y: g.kbY + 1})
	g.Step(in)
	if len(g.current) != 0 {
		t.Errorf("current = %q after off-board clicks", string(g.current))
	}
}
