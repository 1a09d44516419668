package core

import "testing"

func TestGridRoundTrip(t *testing.T) {
	g := NewGrid(10, 15, 2, 1, 5, 3)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			x, y := g.CellToScreen(row, col)
			r, c, ok := g.ScreenToCell(x, y)
			if !ok {
				t.Fatalf("ScreenToCell(%d, %d) reported out of bounds for cell (%d, %d)", x, y, row, col)
			}
			if r != row || c != col {
				t.Errorf("Round trip mismatch: (%d, %d) -> (%d, %d) -> (%d, %d)", row, col, x, y, r, c)
			}
		}
	}
}

func TestGridScreenToCellBounds(t *testing.T) {
	g := NewGrid(5, 5, 2, 1, 10, 4)

	cases := []struct {
		x, y int
		ok   bool
	}{
		{10, 4, true},    // Top-left corner
		{19, 8, true},    // Bottom-right corner (col 4, row 4)
		{9, 4, false},    // One left of origin
		{10, 3, false},   // One above origin
		{20, 4, false},   // Past last column
		{10, 9, false},   // Past last row
		{-1, -1, false},   // Far outside
		{100, 100, false}, // Far outside
	}

	for _, tc := range cases {
		_, _, ok := g.ScreenToCell(tc.x, tc.y)
		if ok != tc.ok {
			t.Errorf("ScreenToCell(%d, %d): got ok=%v, want %v", tc.x, tc.y, ok, tc.ok)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := NewGrid(3, 4, 1, 1, 0, 0)

	if !g.Contains(0, 0) || !g.Contains(2, 3) {
		t.Error("Contains should accept corner cells")
	}
	if g.Contains(-1, 0) || g.Contains(0, -1) || g.Contains(3, 0) || g.Contains(0, 4) {
		t.Error("Contains should reject out-of-range cells")
	}
}

func TestCenterGrid(t *testing.T) {
	g := CenterGrid(10, 10, 2, 1, 80, 24, 2)

	if g.OriginX != (80-20)/2 {
		t.Errorf("Expected OriginX %d, got %d", (80-20)/2, g.OriginX)
	}
	if g.OriginY < 2 {
		t.Errorf("OriginY %d must not intrude into the HUD margin", g.OriginY)
	}

	// A board taller than the screen still starts below the margin.
	tall := CenterGrid(100, 10, 2, 1, 80, 24, 2)
	if tall.OriginY != 2 {
		t.Errorf("Expected clamped OriginY 2, got %d", tall.OriginY)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Rect should contain its top-left and bottom-right interior points")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("Rect should not contain edge-exclusive or outside points")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise below-min values")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower above-max values")
	}
}
