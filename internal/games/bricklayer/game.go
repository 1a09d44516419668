package bricklayer

import (
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

// wallKicks are the horizontal shifts tried, in order, when a rotated
// piece does not fit in place.
var wallKicks = []int{0, -1, 1, -2, 2}

const minBoardMargin = 4

// Game is the falling-block engine. Pieces spawn at the top, descend on
// a gravity timer that speeds up with elapsed play time, and lock into
// the board when they can no longer fall. Completed rows clear together
// and score super-linearly.
type Game struct {
	cfg config.BrickLayerConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	grid  core.Grid
	cells [][]ShapeKind
	piece Piece

	elapsed float64
	timer   float64
	soft    bool
	// softTicks is the remaining hold window for soft drop. Terminals
	// deliver auto-repeat presses instead of key-up events, so each
	// ActionDown refreshes the window and expiry means release.
	softTicks int

	score    int
	lines    int
	gameOver bool
	paused   bool
	toMenu   bool
	tooSmall bool
}

// New builds a falling-block game from a validated config.
func New(cfg config.BrickLayerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func (g *Game) ID() string    { return "bricklayer" }
func (g *Game) Title() string { return "Brick Layer" }

// Reset starts a fresh run with the given runtime settings.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.cells = make([][]ShapeKind, g.cfg.Rows)
	for r := range g.cells {
		g.cells[r] = make([]ShapeKind, g.cfg.Cols)
	}
	g.elapsed = 0
	g.timer = 0
	g.soft = false
	g.softTicks = 0
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.paused = false
	g.toMenu = false
	g.layout()
	g.spawn()
}

func (g *Game) layout() {
	g.grid = core.CenterGrid(g.cfg.Rows, g.cfg.Cols, 2, 1, g.rt.ScreenW, g.rt.ScreenH, 3)
	g.tooSmall = g.rt.ScreenW < g.cfg.Cols*2+minBoardMargin || g.rt.ScreenH < g.cfg.Rows+minBoardMargin
}

// State reports the current score and lifecycle flags.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.gameOver, Paused: g.paused}
}

// softHoldTicks is how many ticks a single ActionDown press keeps soft
// drop engaged before it is considered released.
func (g *Game) softHoldTicks() int {
	t := g.rt.TickRate / 6
	if t < 1 {
		t = 1
	}
	return t
}

// gravityStep returns the current seconds-per-row interval.
func (g *Game) gravityStep(soft bool) float64 {
	step := g.cfg.GravityBase - g.cfg.GravityAccel*g.elapsed
	if step < g.cfg.GravityMin {
		step = g.cfg.GravityMin
	}
	if soft {
		step *= g.cfg.SoftFactor
	}
	return step
}

// setSoft toggles soft drop, rescaling the pending timer so the
// fraction of the interval already elapsed carries over.
func (g *Game) setSoft(on bool) {
	if g.soft == on {
		return
	}
	oldStep := g.gravityStep(g.soft)
	g.soft = on
	newStep := g.gravityStep(g.soft)
	if oldStep > 0 {
		g.timer *= newStep / oldStep
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
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.tryShift(-1)
	}
	if in.Has(core.ActionRight) {
		g.tryShift(1)
	}
	if in.Has(core.ActionUp) {
		g.tryRotate(1)
	}
	if in.Has(core.ActionRotateBack) {
		g.tryRotate(-1)
	}
	if in.Has(core.ActionDrop) || in.Has(core.ActionConfirm) {
		g.hardDrop()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionDown) {
		g.setSoft(true)
		g.softTicks = g.softHoldTicks()
	} else if g.soft {
		g.softTicks--
		if g.softTicks <= 0 {
			g.setSoft(false)
		}
	}

	g.advance(g.rt.Dt())
	return core.StepResult{State: g.State()}
}

// advance runs the gravity timer, dropping the piece one row per
// expired interval and locking it when it cannot fall.
func (g *Game) advance(dt float64) {
	g.elapsed += dt
	g.timer += dt
	for {
		step := g.gravityStep(g.soft)
		if g.timer < step {
			return
		}
		g.timer -= step
		if !g.fallOne() {
			g.lock()
			return
		}
	}
}

// fallOne moves the piece down a row if the space is free.
func (g *Game) fallOne() bool {
	next := g.piece
	next.Row++
	if !g.fits(next) {
		return false
	}
	g.piece = next
	return true
}

func (g *Game) tryShift(dc int) {
	next := g.piece
	next.Col += dc
	if g.fits(next) {
		g.piece = next
	}
}

func (g *Game) tryRotate(dir int) {
	n := len(Rotations(g.piece.Kind))
	next := g.piece
	next.Rot = (g.piece.Rot + dir + n) % n
	for _, kick := range wallKicks {
		cand := next
		cand.Col += kick
		if g.fits(cand) {
			g.piece = cand
			return
		}
	}
}

func (g *Game) hardDrop() {
	for g.fallOne() {
	}
	g.lock()
}

// fits reports whether the piece overlaps nothing and stays inside the
// side walls and floor. Cells above the top edge are allowed: pieces
// spawn partially hidden.
func (g *Game) fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Col < 0 || c.Col >= g.cfg.Cols || c.Row >= g.cfg.Rows {
			return false
		}
		if c.Row >= 0 && g.cells[c.Row][c.Col] != ShapeNone {
			return false
		}
	}
	return true
}

// lock settles the piece into the board. Any cell still above the top
// edge ends the game.
func (g *Game) lock() {
	for _, c := range g.piece.Cells() {
		if c.Row < 0 {
			g.gameOver = true
			continue
		}
		g.cells[c.Row][c.Col] = g.piece.Kind
	}
	if g.gameOver {
		return
	}
	g.clearLines()
	g.spawn()
	g.timer = 0
}

// clearLines removes full rows and scores k²*100 for k rows at once.
func (g *Game) clearLines() {
	kept := make([][]ShapeKind, 0, g.cfg.Rows)
	cleared := 0
	for _, row := range g.cells {
		full := true
		for _, c := range row {
			if c == ShapeNone {
				full = false
				break
			}
		}
		if full {
			cleared++
		} else {
			kept = append(kept, row)
		}
	}
	if cleared == 0 {
		return
	}
	for i := 0; i < cleared; i++ {
		kept = append([][]ShapeKind{make([]ShapeKind, g.cfg.Cols)}, kept...)
	}
	g.cells = kept
	g.lines += cleared
	g.score += cleared * cleared * 100
}

func (g *Game) spawn() {
	kind := Shapes[g.rng.Intn(len(Shapes))]
	g.piece = Piece{Kind: kind, Rot: 0, Row: 0, Col: g.cfg.Cols / 2}
	if !g.fits(g.piece) {
		g.gameOver = true
	}
}
