package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor / rotate piece / steer up
	ActionDown           // S, Down arrow - move cursor / soft drop / steer down
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionRotateBack     // Z - counter-clockwise rotation
	ActionDrop           // Space - hard drop
	ActionConfirm        // Enter - reveal cell, submit guess, select menu item
	ActionFlag           // F - toggle flag (minesweeper)
	ActionDelete         // Backspace - erase last typed letter
	ActionBack           // Esc - return to menu
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateBack:
		return "RotateBack"
	case ActionDrop:
		return "Drop"
	case ActionConfirm:
		return "Confirm"
	case ActionFlag:
		return "Flag"
	case ActionDelete:
		return "Delete"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the phases of a pointer (mouse) gesture.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a single pointer event in screen coordinates.
// Games convert positions to board cells through their Grid.
type PointerEvent struct {
	Kind      PointerKind
	X, Y      int
	Secondary bool // Right button (flagging)
}

// InputFrame represents the normalized input state for one simulation tick.
// Typed letters and clicked on-screen keys both arrive through Letters, so
// engines never distinguish the two (one LetterInput path).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Letters holds A-Z input accumulated this frame, already upper-cased.
	Letters []rune

	// Pointer holds pointer events in the order they arrived.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddLetter appends a typed or clicked letter, normalizing to upper case.
// Non A-Z runes are dropped.
func (f *InputFrame) AddLetter(r rune) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return
	}
	f.Letters = append(f.Letters, r)
}

// AddPointer appends a pointer event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Letters = f.Letters[:0]
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Letters = append(clone.Letters, f.Letters...)
	clone.Pointer = append(clone.Pointer, f.Pointer...)
	return clone
}
