package minesweeper

import (
	"testing"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

func newTestGame(t *testing.T, cfg config.MinesweeperConfig, seed int64) *Game {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: seed})
	return g
}

func TestNewRejectsOvercrowdedBoard(t *testing.T) {
	_, err := New(config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 20})
	if err == nil {
		t.Fatal("expected an error for 20 mines on a 5x5 board")
	}
}

func TestFirstRevealIsAlwaysSafe(t *testing.T) {
	cfg := config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGame(t, cfg, seed)
		g.reveal(2, 2)
		if g.gameOver {
			t.Fatalf("seed %d: first reveal hit a mine", seed)
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if g.mine[2+dr][2+dc] {
					t.Fatalf("seed %d: mine inside the safe 3x3 at (%d,%d)", seed, 2+dr, 2+dc)
				}
			}
		}
	}
}

func TestMineCountExact(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 9, Cols: 9, MineCount: 10}, 7)
	g.reveal(4, 4)
	mines := 0
	for r := range g.mine {
		for _, m := range g.mine[r] {
			if m {
				mines++
			}
		}
	}
	if mines != 10 {
		t.Errorf("placed %d mines, want 10", mines)
	}
}

func TestAdjacencyCounts(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 1)
	g.reveal(2, 2)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					rr, cc := r+dr, c+dc
					if rr >= 0 && rr < 5 && cc >= 0 && cc < 5 && g.mine[rr][cc] {
						want++
					}
				}
			}
			if g.adjacent[r][c] != want {
				t.Errorf("adjacent[%d][%d] = %d, want %d", r, c, g.adjacent[r][c], want)
			}
		}
	}
}

func TestFloodFillOpensZeroRegion(t *testing.T) {
	// One mine in a corner leaves a huge zero region around the center.
	g := newTestGame(t, config.MinesweeperConfig{Rows: 9, Cols: 9, MineCount: 1}, 3)
	g.reveal(4, 4)
	if g.revealedCount < 2 {
		t.Errorf("flood fill opened only %d cells", g.revealedCount)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.revealed[r][c] && g.mine[r][c] {
				t.Fatalf("flood fill revealed the mine at (%d,%d)", r, c)
			}
		}
	}
}

func TestFloodFillSkipsFlagged(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 9, Cols: 9, MineCount: 1}, 3)
	g.toggleFlag(4, 5)
	g.reveal(4, 4)
	if g.revealed[4][5] {
		t.Error("flood fill opened a flagged cell")
	}
}

func TestRevealMineLosesAndShowsBoard(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 9)
	g.reveal(2, 2)
	var mr, mc int
	found := false
	for r := range g.mine {
		for c := range g.mine[r] {
			if g.mine[r][c] && !g.revealed[r][c] {
				mr, mc, found = r, c, true
			}
		}
	}
	if !found {
		t.Fatal("no unrevealed mine left to click")
	}
	g.reveal(mr, mc)
	if !g.gameOver {
		t.Error("revealing a mine did not end the game")
	}
}

func TestFlaggedCellCannotBeRevealed(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 9)
	g.toggleFlag(2, 2)
	g.reveal(2, 2)
	if g.revealed[2][2] {
		t.Error("flagged cell was revealed")
	}
	g.toggleFlag(2, 2)
	if g.flagged[2][2] {
		t.Error("second toggle did not clear the flag")
	}
}

func TestWinWhenAllSafeCellsRevealed(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 11)
	g.reveal(2, 2)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if !g.mine[r][c] {
				g.reveal(r, c)
			}
		}
	}
	if !g.won {
		t.Error("revealing every safe cell did not win")
	}
	if g.gameOver {
		t.Error("winning also flagged a loss")
	}
}

func TestPointerRevealMapsThroughGrid(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 13)
	x, y := g.grid.CellToScreen(2, 2)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y})
	g.Step(in)
	if !g.revealed[2][2] {
		t.Error("pointer press did not reveal the cell under it")
	}
}

func TestSecondaryPointerFlags(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 13)
	x, y := g.grid.CellToScreen(1, 3)
	in := core.NewInputFrame()
	in.AddPointer(core.PointerEvent{Kind: core.PointerPress, X: x, Y: y, Secondary: true})
	g.Step(in)
	if !g.flagged[1][3] {
		t.Error("secondary press did not flag the cell")
	}
}

func TestKeyboardCursorReveal(t *testing.T) {
	g := newTestGame(t, config.MinesweeperConfig{Rows: 5, Cols: 5, MineCount: 4}, 13)
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	if !g.revealed[2][2] {
		t.Error("confirm did not reveal the cursor cell")
	}
}
