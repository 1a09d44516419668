package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Expected '#' at (3,2), got %q", s.Get(3, 2))
	}

	// Out of bounds writes are silently ignored
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds reads should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, '@', ColorBrightGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorBrightGreen {
		t.Errorf("Expected colored cell, got %+v", cell)
	}

	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset rune and color, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Unexpected row content: %q", s.Row(1))
	}

	// Clipped text must not wrap
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("Text should clip at the right edge")
	}
	if s.Get(0, 1) != ' ' && s.Row(1) != "  hello   " {
		t.Error("Clipped text must not wrap to the next row")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, '*')

	s.Resize(8, 6)
	if s.Get(2, 2) != '*' {
		t.Error("Resize should preserve content in the overlapping region")
	}
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("Expected 8x6 after resize, got %dx%d", s.Width(), s.Height())
	}

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Error("Shrinking resize should apply")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box corners not drawn")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 3) != '│' {
		t.Error("Box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("Unexpected screen string: %q", str)
	}
}
