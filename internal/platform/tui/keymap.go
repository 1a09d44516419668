package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gamealchemy/arcade/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes the bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case "z":
		return core.ActionRotateBack, false
	case " ":
		return core.ActionDrop, false
	case "enter":
		return core.ActionConfirm, false
	case "backspace":
		return core.ActionDelete, false
	case "esc":
		return core.ActionBack, false
	case "ctrl+p":
		return core.ActionPause, false
	case "ctrl+r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame from a key message. Plain
// letters go in as letter input so the word games see them; the word
// games' control letters stay on modified keys, while f/r/p double as
// actions for the board games through the frame's action set.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, lettersAsInput bool) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
		return isQuit
	}

	key := msg.String()
	if len(key) == 1 {
		r := rune(key[0])
		if lettersAsInput {
			frame.AddLetter(r)
			return false
		}
		switch r {
		case 'w':
			frame.Set(core.ActionUp)
		case 's':
			frame.Set(core.ActionDown)
		case 'a':
			frame.Set(core.ActionLeft)
		case 'd':
			frame.Set(core.ActionRight)
		case 'f':
			frame.Set(core.ActionFlag)
		case 'r':
			frame.Set(core.ActionRestart)
		case 'p':
			frame.Set(core.ActionPause)
		case 'q':
			frame.Set(core.ActionQuit)
			return true
		}
	}
	return false
}

// MapMouseToFrame converts a mouse message into a normalized pointer
// event on the frame. Right button maps to the secondary flag.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	var kind core.PointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		kind = core.PointerPress
	case tea.MouseActionMotion:
		kind = core.PointerMotion
	case tea.MouseActionRelease:
		kind = core.PointerRelease
	default:
		return
	}
	frame.AddPointer(core.PointerEvent{
		Kind:      kind,
		X:         msg.X,
		Y:         msg.Y,
		Secondary: msg.Button == tea.MouseButtonRight,
	})
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
