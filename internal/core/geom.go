// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Grid maps a rows×cols board onto screen cells. It owns geometry only:
// the rules of whatever lives on the board are each game's business.
type Grid struct {
	Rows, Cols int
	CellW      int // Screen cells per board column (2 looks square in a terminal)
	CellH      int // Screen cells per board row
	OriginX    int // Top-left corner of the board on screen
	OriginY    int
}

// NewGrid creates a grid with the given dimensions and cell footprint.
func NewGrid(rows, cols, cellW, cellH, originX, originY int) Grid {
	return Grid{
		Rows:    rows,
		Cols:    cols,
		CellW:   cellW,
		CellH:   cellH,
		OriginX: originX,
		OriginY: originY,
	}
}

// CellToScreen returns the top-left screen position of the cell (row, col).
// The caller is responsible for passing in-bounds coordinates.
func (g Grid) CellToScreen(row, col int) (int, int) {
	return g.OriginX + col*g.CellW, g.OriginY + row*g.CellH
}

// ScreenToCell converts a screen position to board coordinates.
// Returns false when the position falls outside the board.
func (g Grid) ScreenToCell(x, y int) (row, col int, ok bool) {
	if g.CellW <= 0 || g.CellH <= 0 {
		return 0, 0, false
	}
	dx := x - g.OriginX
	dy := y - g.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	col = dx / g.CellW
	row = dy / g.CellH
	if row >= g.Rows || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Contains reports whether (row, col) is a valid board coordinate.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Width returns the board footprint width in screen cells.
func (g Grid) Width() int {
	return g.Cols * g.CellW
}

// Height returns the board footprint height in screen cells.
func (g Grid) Height() int {
	return g.Rows * g.CellH
}

// CenterGrid places a rows×cols board centered on a screen of the given size,
// offset vertically by topMargin to leave room for a HUD.
func CenterGrid(rows, cols, cellW, cellH, screenW, screenH, topMargin int) Grid {
	g := NewGrid(rows, cols, cellW, cellH, 0, 0)
	g.OriginX = (screenW - g.Width()) / 2
	g.OriginY = topMargin + (screenH-topMargin-g.Height())/2
	if g.OriginY < topMargin {
		g.OriginY = topMargin
	}
	return g
}

// Rect represents an axis-aligned box used for hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
