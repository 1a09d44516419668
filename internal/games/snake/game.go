package snake

import (
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

// Dir is a movement direction.
type Dir struct {
	DRow, DCol int
}

var (
	DirUp    = Dir{-1, 0}
	DirDown  = Dir{1, 0}
	DirLeft  = Dir{0, -1}
	DirRight = Dir{0, 1}
)

func (d Dir) opposite(o Dir) bool {
	return d.DRow == -o.DRow && d.DCol == -o.DCol
}

// Item is a consumable on the board. Harmful items carry a despawn
// deadline on the game clock.
type Item struct {
	Cell    Cell
	Harmful bool
	Born    float64
	Despawn float64
}

// Game is the snake engine. Movement is discrete: an accumulated time
// budget is spent against a fixed step interval of 1/speed seconds.
// All item scheduling runs on the accumulated game clock, so pausing
// the driver pauses every timer with it.
type Game struct {
	cfg config.SnakeConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	grid core.Grid

	// body is ordered tail first, head last.
	body    []Cell
	dir     Dir
	pending Dir

	clock  float64
	budget float64

	items []Item
	// extraSpawns are due times for bonus spawns queued by harmful
	// items, processed in FIFO order.
	extraSpawns []float64

	// penalty is the shrink applied on the next harmful hit. Doubles
	// after each harmful hit, resets to 1 after a benign one.
	penalty int

	eaten    int
	score    int
	gameOver bool
	paused   bool
	toMenu   bool
	tooSmall bool
}

// New builds a snake game from a validated config.
func New(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func (g *Game) ID() string    { return "snake" }
func (g *Game) Title() string { return "Snake" }

// Reset starts a fresh run: a three-segment snake heading right from
// the board center, with one item on the board.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	midR, midC := g.cfg.Rows/2, g.cfg.Cols/2
	g.body = []Cell{{midR, midC - 2}, {midR, midC - 1}, {midR, midC}}
	g.dir = DirRight
	g.pending = DirRight
	g.clock = 0
	g.budget = 0
	g.items = nil
	g.extraSpawns = nil
	g.penalty = 1
	g.eaten = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.toMenu = false
	g.layout()
	g.spawnItem()
}

func (g *Game) layout() {
	g.grid = core.CenterGrid(g.cfg.Rows, g.cfg.Cols, 2, 1, g.rt.ScreenW, g.rt.ScreenH, 3)
	g.tooSmall = g.rt.ScreenW < g.cfg.Cols*2+4 || g.rt.ScreenH < g.cfg.Rows+5
}

func (g *Game) head() Cell { return g.body[len(g.body)-1] }

// State reports the current score and lifecycle flags.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Paused: g.paused}
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
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.buffer(in)
	g.advance(g.rt.Dt())
	return core.StepResult{State: g.State()}
}

// buffer records the latest direction press. Reversals are rejected
// against the heading actually in use, not the pending one.
func (g *Game) buffer(in core.InputFrame) {
	var want Dir
	switch {
	case in.Has(core.ActionUp):
		want = DirUp
	case in.Has(core.ActionDown):
		want = DirDown
	case in.Has(core.ActionLeft):
		want = DirLeft
	case in.Has(core.ActionRight):
		want = DirRight
	default:
		return
	}
	if want.opposite(g.dir) {
		return
	}
	g.pending = want
}

// advance spends the accumulated budget on movement steps and runs the
// item schedule against the game clock.
func (g *Game) advance(dt float64) {
	g.clock += dt
	g.budget += dt
	g.runSchedule()
	interval := 1.0 / g.cfg.Speed
	for g.budget >= interval && !g.gameOver {
		g.budget -= interval
		g.step()
	}
}

// runSchedule expires overdue harmful items and fires due extra
// spawns in the order they were queued.
func (g *Game) runSchedule() {
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Harmful && g.clock >= it.Despawn {
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept

	for len(g.extraSpawns) > 0 && g.clock >= g.extraSpawns[0] {
		g.extraSpawns = g.extraSpawns[1:]
		g.spawnItem()
	}
}

// step commits one movement: collision check, head append, then the
// food economy.
func (g *Game) step() {
	g.dir = g.pending
	next := Cell{g.head().Row + g.dir.DRow, g.head().Col + g.dir.DCol}
	if next.Row < 0 || next.Row >= g.cfg.Rows || next.Col < 0 || next.Col >= g.cfg.Cols {
		g.gameOver = true
		return
	}
	for _, b := range g.body {
		if b == next {
			g.gameOver = true
			return
		}
	}
	g.body = append(g.body, next)

	idx := g.itemAt(next)
	if idx < 0 {
		g.body = g.body[1:]
		return
	}
	harmful := g.items[idx].Harmful
	g.items = append(g.items[:idx], g.items[idx+1:]...)
	g.eaten++

	if harmful {
		if g.penalty >= len(g.body) {
			g.gameOver = true
			return
		}
		g.body = g.body[g.penalty:]
		g.penalty *= 2
		if g.score > 0 {
			g.score -= 5
		}
	} else {
		// Benign: keep the tail, net growth of one.
		g.penalty = 1
		g.score += 10
	}
	g.spawnItem()
}

func (g *Game) itemAt(c Cell) int {
	for i, it := range g.items {
		if it.Cell == c {
			return i
		}
	}
	return -1
}

// spawnItem drops a new consumable on a random free cell, evicting the
// oldest item first when the cap is reached. Harmful items get a
// despawn deadline and queue a bonus spawn after a fixed delay.
func (g *Game) spawnItem() {
	if len(g.items) >= g.cfg.MaxItems {
		g.items = g.items[1:]
	}
	free := g.freeCells()
	if len(free) == 0 {
		return
	}
	cell := free[g.rng.Intn(len(free))]
	it := Item{Cell: cell, Born: g.clock}
	if g.rng.Float64() >= g.cfg.AppleRatio {
		it.Harmful = true
		life := g.cfg.PoisonLifeMin + g.rng.Float64()*(g.cfg.PoisonLifeMax-g.cfg.PoisonLifeMin)
		it.Despawn = g.clock + life
		g.extraSpawns = append(g.extraSpawns, g.clock+g.cfg.PoisonExtraSpawn)
	}
	g.items = append(g.items, it)
}

func (g *Game) freeCells() []Cell {
	occupied := make(map[Cell]bool, len(g.body)+len(g.items))
	for _, b := range g.body {
		occupied[b] = true
	}
	for _, it := range g.items {
		occupied[it.Cell] = true
	}
	free := make([]Cell, 0, g.cfg.Rows*g.cfg.Cols-len(occupied))
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			if !occupied[Cell{r, c}] {
				free = append(free, Cell{r, c})
			}
		}
	}
	return free
}
