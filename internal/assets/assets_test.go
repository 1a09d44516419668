package assets

import (
	"testing"

	"github.com/gamealchemy/arcade/internal/core"
)

func TestLookupKnown(t *testing.T) {
	s := Lookup("mine")
	if s.Rune != '✸' || s.Color != core.ColorBrightRed {
		t.Errorf("Unexpected mine sprite: %+v", s)
	}
	if !Known("apple") || Known("no-such-part") {
		t.Error("Known() misreports table membership")
	}
}

func TestLookupFallbackDeterministic(t *testing.T) {
	a := Lookup("mystery-part")
	b := Lookup("mystery-part")
	if a != b {
		t.Errorf("Fallback must be stable: %+v vs %+v", a, b)
	}
	if a.Rune != '▒' {
		t.Errorf("Fallback rune should be the shade block, got %q", a.Rune)
	}
	if a.Color == core.ColorDefault || a.Color == core.ColorGray {
		t.Error("Fallback color should be visible")
	}
}
