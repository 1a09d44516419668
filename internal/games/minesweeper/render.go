package minesweeper

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/assets"
	"github.com/gamealchemy/arcade/internal/core"
)

var countColors = []core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorBrightGreen,
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// Render draws the board, the cursor, and the mine counter.
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
	s.DrawTextCentered(1, fmt.Sprintf("mines %d  flags %d  time %ds",
		g.cfg.MineCount, g.flagCount, int(g.elapsed)))

	frame := core.NewRect(g.grid.OriginX-1, g.grid.OriginY-1,
		g.grid.Width()+2, g.grid.Height()+2)
	s.DrawBox(frame)

	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			g.drawCell(s, r, c)
		}
	}

	switch {
	case g.won:
		s.DrawTextCentered(frame.Bottom()+1, "cleared! r to restart, esc for menu")
	case g.gameOver:
		s.DrawTextCentered(frame.Bottom()+1, "boom - r to restart, esc for menu")
	case g.paused:
		s.DrawTextCentered(frame.Bottom()+1, "paused")
	}
}

func (g *Game) drawCell(s *core.Screen, row, col int) {
	x, y := g.grid.CellToScreen(row, col)

	var r rune
	var color core.Color
	switch {
	case g.flagged[row][col] && !g.revealed[row][col]:
		sp := assets.Lookup("flag")
		r, color = sp.Rune, sp.Color
	case !g.revealed[row][col]:
		// Show every mine once the run is lost.
		if g.gameOver && g.mine[row][col] {
			sp := assets.Lookup("mine")
			r, color = sp.Rune, sp.Color
		} else {
			sp := assets.Lookup("tile")
			r, color = sp.Rune, sp.Color
		}
	case g.mine[row][col]:
		sp := assets.Lookup("mine")
		r, color = sp.Rune, sp.Color
	case g.adjacent[row][col] > 0:
		n := g.adjacent[row][col]
		r = rune('0' + n)
		color = countColors[n]
	default:
		r, color = ' ', core.ColorDefault
	}

	s.SetColored(x, y, r, color)
	if !g.gameOver && !g.won && row == g.curRow && col == g.curCol {
		s.SetColored(x+1, y, '<', core.ColorBrightYellow)
	}
}
