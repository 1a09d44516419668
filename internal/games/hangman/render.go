package hangman

import (
	"fmt"
	"strings"

	"github.com/gamealchemy/arcade/internal/core"
)

// gallowsStages has one picture per mistake count, index 0 empty.
var gallowsStages = []string{
	"\n\n\n\n\n\n=========",
	"\n  |\n  |\n  |\n  |\n  |\n=========",
	"  +----+\n  |\n  |\n  |\n  |\n  |\n=========",
	"  +----+\n  |    O\n  |\n  |\n  |\n  |\n=========",
	"  +----+\n  |    O\n  |    |\n  |    |\n  |\n  |\n=========",
	"  +----+\n  |    O\n  |   /|\\\n  |    |\n  |\n  |\n=========",
	"  +----+\n  |    O\n  |   /|\\\n  |    |\n  |   /\n  |\n=========",
	"  +----+\n  |    O\n  |   /|\\\n  |    |\n  |   / \\\n  |\n=========",
}

func stageFor(mistakes, maxMistakes int) string {
	idx := mistakes * (len(gallowsStages) - 1) / maxMistakes
	return gallowsStages[core.Clamp(idx, 0, len(gallowsStages)-1)]
}

// Render draws the gallows, the masked answer and the guessed letters.
func (g *Game) Render(s *core.Screen) {
	s.Clear()
	s.DrawTextCentered(0, g.Title())
	s.DrawTextCentered(1, fmt.Sprintf("mistakes %d/%d", g.mistakes, g.cfg.MaxMistakes))

	for i, line := range strings.Split(stageFor(g.mistakes, g.cfg.MaxMistakes), "\n") {
		s.DrawText(4, 3+i, line)
	}

	maskY := 12
	spaced := strings.Join(strings.Split(g.masked(), ""), " ")
	s.DrawTextCentered(maskY, spaced)

	g.drawLetterBoard(s)

	switch {
	case g.won:
		s.DrawTextCentered(letterBoardY+2, "saved! r for a new word, esc for menu")
	case g.gameOver:
		s.DrawTextCentered(letterBoardY+2, fmt.Sprintf("it was %q - r for a new word", g.answer))
	}
}

// letterBoardY anchors the A-Z row below the masked answer.
const letterBoardY = 15

// drawLetterBoard shows every letter with its guess outcome, and doubles
// as the click target row for mouse input.
func (g *Game) drawLetterBoard(s *core.Screen) {
	g.kbX = (s.Width() - 26*2) / 2
	g.kbY = letterBoardY
	for i := 0; i < 26; i++ {
		r := rune('A' + i)
		color := core.ColorDefault
		if g.guessed[r] {
			if g.contains(r) {
				color = core.ColorBrightGreen
			} else {
				color = core.ColorGray
			}
		}
		s.SetColored(g.kbX+i*2, g.kbY, r, color)
	}
}
