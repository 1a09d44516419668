package bricklayer

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/core"
)

// Render draws the board, the active piece and the HUD.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	if g.rt.ScreenW != s.Width() || g.rt.ScreenH != s.Height() {
		g.rt.ScreenW, g.rt.ScreenH = s.Width(), s.Height()
		g.layout()
	}
	if g.tooSmall {
		s.DrawTextCentered(s.Height()/2, "terminal too small")
		return
	}

	s.DrawTextCentered(0, g.Title())
	s.DrawTextCentered(1, fmt.Sprintf("score %d  lines %d", g.score, g.lines))

	frame := core.NewRect(g.grid.OriginX-1, g.grid.OriginY-1,
		g.grid.Width()+2, g.grid.Height()+2)
	s.DrawBox(frame)

	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			if g.cells[r][c] != ShapeNone {
				g.drawCell(s, r, c, g.cells[r][c].Color())
			}
		}
	}
	for _, cell := range g.piece.Cells() {
		if cell.Row >= 0 {
			g.drawCell(s, cell.Row, cell.Col, g.piece.Kind.Color())
		}
	}

	switch {
	case g.gameOver:
		s.DrawTextCentered(frame.Bottom()+1, "game over - r to restart, esc for menu")
	case g.paused:
		s.DrawTextCentered(frame.Bottom()+1, "paused")
	}
}

func (g *Game) drawCell(s *core.Screen, row, col int, color core.Color) {
	x, y := g.grid.CellToScreen(row, col)
	s.SetColored(x, y, '█', color)
	s.SetColored(x+1, y, '█', color)
}
