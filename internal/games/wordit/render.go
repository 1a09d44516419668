package wordit

import (
	"fmt"

	"github.com/gamealchemy/arcade/internal/core"
	"github.com/gamealchemy/arcade/internal/wordlist"
)

func markColor(m Mark) core.Color {
	switch m {
	case MarkCorrect:
		return core.ColorBrightGreen
	case MarkPresent:
		return core.ColorBrightYellow
	default:
		return core.ColorGray
	}
}

// Render draws the guess grid and the on-screen keyboard hints.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	s.DrawTextCentered(0, g.Title())
	if g.cfg.HardMode {
		s.DrawTextCentered(1, "hard mode")
	}

	cellW := 4
	gridW := wordlist.GuessWordLen * cellW
	x0 := (s.Width() - gridW) / 2
	y0 := 3

	for row := 0; row < MaxTries; row++ {
		y := y0 + row*2
		for col := 0; col < wordlist.GuessWordLen; col++ {
			x := x0 + col*cellW
			var r rune = '_'
			color := core.ColorDefault
			switch {
			case row < len(g.guesses):
				r = rune(g.guesses[row][col])
				color = markColor(g.marks[row][col])
			case row == len(g.guesses) && col < len(g.current):
				r = g.current[col]
				color = core.ColorBrightWhite
			}
			s.SetColored(x, y, r, color)
		}
	}

	msgY := y0 + MaxTries*2 + 1
	switch {
	case g.won:
		s.DrawTextCentered(msgY, fmt.Sprintf("solved in %d! r for a new word, esc for menu", len(g.guesses)))
	case g.gameOver:
		s.DrawTextCentered(msgY, fmt.Sprintf("the word was %s - r for a new word", g.answer))
	case g.notice != "":
		s.DrawTextCentered(msgY, g.notice)
	}

	g.drawLetterBoard(s, msgY+2)
}

// drawLetterBoard shows the best-known verdict for every letter.
func (g *Game) drawLetterBoard(s *core.Screen, y int) {
	best := make(map[byte]Mark)
	seen := make(map[byte]bool)
	for gi, guess := range g.guesses {
		for i := 0; i < len(guess); i++ {
			b := guess[i]
			m := g.marks[gi][i]
			if !seen[b] || m > best[b] {
				best[b] = m
			}
			seen[b] = true
		}
	}
	x0 := (s.Width() - 26*2) / 2
	g.kbX, g.kbY = x0, y
	for i := 0; i < 26; i++ {
		b := byte('A' + i)
		color := core.ColorDefault
		if seen[b] {
			color = markColor(best[b])
		}
		s.SetColored(x0+i*2, y, rune(b), color)
	}
}
