package registry

import (
	"testing"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

func TestAllEntriesConstruct(t *testing.T) {
	words, err := wordlist.NewRepository()
	if err != nil {
		t.Fatalf("wordlist: %v", err)
	}
	for _, e := range All() {
		g, err := e.New(Options{Words: words})
		if err != nil {
			t.Errorf("%s: %v", e.ID, err)
			continue
		}
		if g.ID() != e.ID {
			t.Errorf("entry %s built a game reporting ID %s", e.ID, g.ID())
		}
		g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 1})
		res := g.Step(core.NewInputFrame())
		if res.ReturnToMenu {
			t.Errorf("%s asked for menu return on the first tick", e.ID)
		}
		s := core.NewScreen(100, 40)
		g.Render(s)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("snake"); !ok {
		t.Error("snake missing from the table")
	}
	if _, ok := Lookup("doom"); ok {
		t.Error("unknown ID resolved")
	}
}

func TestPresetChangesConstruction(t *testing.T) {
	e, ok := Lookup("minesweeper")
	if !ok {
		t.Fatal("minesweeper missing")
	}
	if _, err := e.New(Options{Preset: config.DifficultyExpert}); err != nil {
		t.Errorf("expert preset failed: %v", err)
	}
}

func TestStableMenuOrder(t *testing.T) {
	want := []string{"bricklayer", "minesweeper", "pipeline", "snake", "wordit", "hangman"}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("%d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.ID != want[i] {
			t.Errorf("entry %d = %s, want %s", i, e.ID, want[i])
		}
	}
}
