package snake

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/assets"
	"github.com/gamealchemy/arcade/internal/core"
)

// Render draws the arena, the snake and the consumables.
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
	s.DrawTextCentered(1, fmt.Sprintf("score %d  length %d", g.score, len(g.body)))

	frame := core.NewRect(g.grid.OriginX-1, g.grid.OriginY-1,
		g.grid.Width()+2, g.grid.Height()+2)
	s.DrawBox(frame)

	for _, it := range g.items {
		name := "apple"
		if it.Harmful {
			name = "apple-poison"
		}
		sp := assets.Lookup(name)
		x, y := g.grid.CellToScreen(it.Cell.Row, it.Cell.Col)
		s.SetColored(x, y, sp.Rune, sp.Color)
	}

	for i, b := range g.body {
		name := "snake-body"
		if i == len(g.body)-1 {
			name = "snake-head"
		}
		sp := assets.Lookup(name)
		x, y := g.grid.CellToScreen(b.Row, b.Col)
		s.SetColored(x, y, sp.Rune, sp.Color)
	}

	switch {
	case g.gameOver:
		s.DrawTextCentered(frame.Bottom()+1, "game over - r to restart, esc for menu")
	case g.paused:
		s.DrawTextCentered(frame.Bottom()+1, "paused")
	}
}
