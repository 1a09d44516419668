package minesweeper

import (
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

// Game is the mine-board engine. Mines are placed on the first reveal,
// never inside the 3x3 area around it, so the opening click is always
// safe and usually opens a region.
type Game struct {
	cfg config.MinesweeperConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	grid     core.Grid
	mine     [][]bool
	revealed [][]bool
	flagged  [][]bool
	adjacent [][]int

	placed        bool
	revealedCount int
	flagCount     int
	elapsed       float64

	curRow, curCol int

	gameOver bool
	won      bool
	paused   bool
	toMenu   bool
	tooSmall bool
}

// New builds a mine-board game from a validated config.
func New(cfg config.MinesweeperConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func (g *Game) ID() string    { return "minesweeper" }
func (g *Game) Title() string { return "Minesweeper" }

// Reset starts a fresh board. Mines stay unplaced until the first reveal.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.mine = makeBoolGrid(g.cfg.Rows, g.cfg.Cols)
	g.revealed = makeBoolGrid(g.cfg.Rows, g.cfg.Cols)
	g.flagged = makeBoolGrid(g.cfg.Rows, g.cfg.Cols)
	g.adjacent = make([][]int, g.cfg.Rows)
	for r := range g.adjacent {
		g.adjacent[r] = make([]int, g.cfg.Cols)
	}
	g.placed = false
	g.revealedCount = 0
	g.flagCount = 0
	g.elapsed = 0
	g.curRow, g.curCol = g.cfg.Rows/2, g.cfg.Cols/2
	g.gameOver = false
	g.won = false
	g.paused = false
	g.toMenu = false
	g.layout()
}

func makeBoolGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	return grid
}

func (g *Game) layout() {
	g.grid = core.CenterGrid(g.cfg.Rows, g.cfg.Cols, 2, 1, g.rt.ScreenW, g.rt.ScreenH, 3)
	g.tooSmall = g.rt.ScreenW < g.cfg.Cols*2+4 || g.rt.ScreenH < g.cfg.Rows+5
}

// State reports revealed-cell count as the score.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.revealedCount,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionBack) || in.Has(core.ActionQuit) {
		g.toMenu = true
	}
	if g.toMenu {
		return core.StepResult{State: g.State(), ReturnToMenu: true}
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}
	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	if g.placed {
		g.elapsed += g.rt.Dt()
	}

	for _, ev := range in.Pointer {
		if ev.Kind != core.PointerPress {
			continue
		}
		row, col, ok := g.grid.ScreenToCell(ev.X, ev.Y)
		if !ok {
			continue
		}
		g.curRow, g.curCol = row, col
		if ev.Secondary {
			g.toggleFlag(row, col)
		} else {
			g.reveal(row, col)
		}
	}

	if in.Has(core.ActionUp) {
		g.curRow = core.Clamp(g.curRow-1, 0, g.cfg.Rows-1)
	}
	if in.Has(core.ActionDown) {
		g.curRow = core.Clamp(g.curRow+1, 0, g.cfg.Rows-1)
	}
	if in.Has(core.ActionLeft) {
		g.curCol = core.Clamp(g.curCol-1, 0, g.cfg.Cols-1)
	}
	if in.Has(core.ActionRight) {
		g.curCol = core.Clamp(g.curCol+1, 0, g.cfg.Cols-1)
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionDrop) {
		g.reveal(g.curRow, g.curCol)
	}
	if in.Has(core.ActionFlag) {
		g.toggleFlag(g.curRow, g.curCol)
	}

	return core.StepResult{State: g.State()}
}

// placeMines scatters mines everywhere except the 3x3 block around the
// first revealed cell, then computes adjacency counts.
func (g *Game) placeMines(safeRow, safeCol int) {
	type cell struct{ r, c int }
	candidates := make([]cell, 0, g.cfg.Rows*g.cfg.Cols)
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			if core.Abs(r-safeRow) <= 1 && core.Abs(c-safeCol) <= 1 {
				continue
			}
			candidates = append(candidates, cell{r, c})
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, m := range candidates[:g.cfg.MineCount] {
		g.mine[m.r][m.c] = true
	}
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			g.adjacent[r][c] = g.countAdjacent(r, c)
		}
	}
	g.placed = true
}

func (g *Game) countAdjacent(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r >= 0 && r < g.cfg.Rows && c >= 0 && c < g.cfg.Cols && g.mine[r][c] {
				n++
			}
		}
	}
	return n
}

// reveal opens a cell. A zero-adjacency cell flood-fills its region
// with an explicit stack; flagged cells are never opened by the flood.
func (g *Game) reveal(row, col int) {
	if g.revealed[row][col] || g.flagged[row][col] {
		return
	}
	if !g.placed {
		g.placeMines(row, col)
	}
	if g.mine[row][col] {
		g.revealed[row][col] = true
		g.gameOver = true
		return
	}

	type cell struct{ r, c int }
	stack := []cell{{row, col}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.revealed[cur.r][cur.c] || g.flagged[cur.r][cur.c] {
			continue
		}
		g.revealed[cur.r][cur.c] = true
		g.revealedCount++
		if g.adjacent[cur.r][cur.c] != 0 {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, c := cur.r+dr, cur.c+dc
				if r < 0 || r >= g.cfg.Rows || c < 0 || c >= g.cfg.Cols {
					continue
				}
				if !g.revealed[r][c] && !g.flagged[r][c] {
					stack = append(stack, cell{r, c})
				}
			}
		}
	}

	if g.revealedCount == g.cfg.Rows*g.cfg.Cols-g.cfg.MineCount {
		g.won = true
	}
}

func (g *Game) toggleFlag(row, col int) {
	if g.revealed[row][col] {
		return
	}
	if g.flagged[row][col] {
		g.flagged[row][col] = false
		g.flagCount--
	} else {
		g.flagged[row][col] = true
		g.flagCount++
	}
}
