package pipeline

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/assets"
	"github.com/gamealchemy/arcade/internal/core"
)

// pairColors cycles over the pipe colors by pair index.
var pairColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightBlue,
	core.ColorBrightYellow,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorOrange,
	core.ColorPink,
	core.ColorWhite,
}

func pairColor(pair int) core.Color {
	return pairColors[pair%len(pairColors)]
}

// pipeGlyph picks the box-drawing rune for a pipe cell from the
// directions of its neighbors on the path.
func pipeGlyph(prev, cur, next Cell) rune {
	in := direction(prev, cur)
	out := direction(cur, next)
	switch {
	case in == 'h' && out == 'h':
		return '━'
	case in == 'v' && out == 'v':
		return '┃'
	}
	// Corner: one horizontal and one vertical leg.
	up := prev.Row < cur.Row || next.Row < cur.Row
	left := prev.Col < cur.Col || next.Col < cur.Col
	switch {
	case up && left:
		return '┛'
	case up && !left:
		return '┗'
	case !up && left:
		return '┓'
	default:
		return '┏'
	}
}

func direction(from, to Cell) byte {
	if from.Row == to.Row {
		return 'h'
	}
	return 'v'
}

// Render draws the endpoints, committed pipes and the live drag.
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
	if g.genErr != nil {
		s.DrawTextCentered(s.Height()/2, g.genErr.Error())
		return
	}

	done := 0
	for pair := range g.paths {
		if g.completed(pair) {
			done++
		}
	}
	s.DrawTextCentered(0, g.Title())
	s.DrawTextCentered(1, fmt.Sprintf("pairs %d/%d  moves %d", done, g.cfg.PairCount, g.moves))

	frame := core.NewRect(g.grid.OriginX-1, g.grid.OriginY-1,
		g.grid.Width()+2, g.grid.Height()+2)
	s.DrawBox(frame)

	for _, path := range g.paths {
		g.drawPath(s, path, g.pairOf(path))
	}
	if g.dragging {
		g.drawPath(s, g.dragPath, g.dragPair)
	}
	for pair, ends := range g.board.Endpoints {
		for _, e := range ends {
			x, y := g.grid.CellToScreen(e.Row, e.Col)
			s.SetColored(x, y, assets.Lookup("pipe-node").Rune, pairColor(pair))
		}
	}

	if g.won {
		s.DrawTextCentered(frame.Bottom()+1, "all routed! r for a new board, esc for menu")
	}
}

func (g *Game) pairOf(path []Cell) int {
	if len(path) == 0 {
		return 0
	}
	return g.endpointAt[path[0].Row][path[0].Col]
}

func (g *Game) drawPath(s *core.Screen, path []Cell, pair int) {
	color := pairColor(pair)
	for i, c := range path {
		x, y := g.grid.CellToScreen(c.Row, c.Col)
		var r rune
		switch {
		case len(path) == 1:
			r = assets.Lookup("pipe-node").Rune
		case i == 0:
			r = pipeGlyph(path[1], c, path[1])
		case i == len(path)-1:
			r = pipeGlyph(path[i-1], c, path[i-1])
		default:
			r = pipeGlyph(path[i-1], c, path[i+1])
		}
		s.SetColored(x, y, r, color)
		// Bridge the horizontal gap between cell columns.
		if i+1 < len(path) && path[i+1].Row == c.Row {
			nx, _ := g.grid.CellToScreen(c.Row, core.Min(c.Col, path[i+1].Col)+1)
			s.SetColored(nx-1, y, '━', color)
		}
	}
}
