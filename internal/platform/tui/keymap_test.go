package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamealchemy/arcade/internal/core"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestArrowKeysMapToActions(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame, false)
	if !frame.Has(core.ActionUp) {
		t.Error("up arrow did not set ActionUp")
	}
}

func TestWASDInBoardGames(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(keyMsg('a'), &frame, false)
	if !frame.Has(core.ActionLeft) {
		t.Error("a did not set ActionLeft in board-game mode")
	}
	if len(frame.Letters) != 0 {
		t.Error("board-game mode leaked a letter")
	}
}

func TestLettersInWordGames(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapKeyToFrame(keyMsg('a'), &frame, true)
	if frame.Has(core.ActionLeft) {
		t.Error("word-game mode still mapped a to an action")
	}
	if len(frame.Letters) != 1 || frame.Letters[0] != 'A' {
		t.Errorf("letters = %v, want [A]", frame.Letters)
	}
}

func TestQuitKeys(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame, true) {
		t.Error("ctrl+c not treated as quit")
	}
}

func TestMouseMapping(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{
		X: 10, Y: 5,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
	}, &frame)
	if len(frame.Pointer) != 1 {
		t.Fatalf("%d pointer events, want 1", len(frame.Pointer))
	}
	ev := frame.Pointer[0]
	if ev.Kind != core.PointerPress || ev.X != 10 || ev.Y != 5 || !ev.Secondary {
		t.Errorf("event = %+v", ev)
	}
}

func TestMenuActions(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(keyMsg('j')); got != MenuActionDown {
		t.Errorf("j mapped to %v", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab mapped to %v", got)
	}
}
