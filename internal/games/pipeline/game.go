package pipeline

import (
	"math/rand"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

// noPair marks an empty ownership cell.
const noPair = -1

// Game is the pipe-routing engine. Each color has two fixed endpoint
// nodes; the player drags a pipe between them. The board is solved when
// every pair is connected and every cell carries a pipe or a node.
type Game struct {
	cfg config.PipelineConfig
	rt  core.RuntimeConfig
	rng *rand.Rand

	grid  core.Grid
	board *Board

	// endpointAt maps a cell to its pair, noPair elsewhere.
	endpointAt [][]int
	// paths holds the committed pipe per pair, nil when unrouted.
	paths [][]Cell

	dragging bool
	dragPair int
	dragPath []Cell

	moves    int
	won      bool
	toMenu   bool
	tooSmall bool
	genErr   error
}

// New builds a pipe-routing game from a validated config. Board
// generation happens on Reset, once the seed is known.
func New(cfg config.PipelineConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg}, nil
}

func (g *Game) ID() string    { return "pipeline" }
func (g *Game) Title() string { return "Pipeline" }

// Reset generates a new board for the run's seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.board, g.genErr = Generate(g.cfg.Rows, g.cfg.Cols, g.cfg.PairCount,
		g.cfg.MinSegment, g.cfg.MaxAttempts, g.rng)
	g.endpointAt = make([][]int, g.cfg.Rows)
	for r := range g.endpointAt {
		g.endpointAt[r] = make([]int, g.cfg.Cols)
		for c := range g.endpointAt[r] {
			g.endpointAt[r][c] = noPair
		}
	}
	g.paths = make([][]Cell, g.cfg.PairCount)
	if g.board != nil {
		for pair, ends := range g.board.Endpoints {
			g.endpointAt[ends[0].Row][ends[0].Col] = pair
			g.endpointAt[ends[1].Row][ends[1].Col] = pair
		}
	}
	g.dragging = false
	g.dragPath = nil
	g.moves = 0
	g.won = false
	g.toMenu = false
	g.layout()
}

func (g *Game) layout() {
	g.grid = core.CenterGrid(g.cfg.Rows, g.cfg.Cols, 2, 1, g.rt.ScreenW, g.rt.ScreenH, 3)
	g.tooSmall = g.rt.ScreenW < g.cfg.Cols*2+4 || g.rt.ScreenH < g.cfg.Rows+5
}

// State scores completed pairs, with a coverage bonus on a win.
func (g *Game) State() core.GameState {
	score := 0
	for pair := range g.paths {
		if g.completed(pair) {
			score += 100
		}
	}
	if g.won {
		score += g.cfg.Rows * g.cfg.Cols
	}
	return core.GameState{Score: score, Won: g.won, GameOver: g.genErr != nil}
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
		g.rt.Seed++
		g.Reset(g.rt)
		return core.StepResult{State: g.State()}
	}
	if g.won || g.genErr != nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range in.Pointer {
		row, col, ok := g.grid.ScreenToCell(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerPress:
			if ok {
				g.beginDrag(Cell{row, col})
			}
		case core.PointerMotion:
			if ok && g.dragging {
				g.extendDrag(Cell{row, col})
			}
		case core.PointerRelease:
			g.endDrag()
		}
	}
	return core.StepResult{State: g.State()}
}

// owner returns which pair claims a cell through an endpoint or a
// committed path, or noPair.
func (g *Game) owner(c Cell) int {
	if p := g.endpointAt[c.Row][c.Col]; p != noPair {
		return p
	}
	for pair, path := range g.paths {
		for _, pc := range path {
			if pc == c {
				return pair
			}
		}
	}
	return noPair
}

// beginDrag starts routing. Only an endpoint node accepts a press; it
// starts a fresh pipe and discards any committed route for that pair.
func (g *Game) beginDrag(c Cell) {
	pair := g.endpointAt[c.Row][c.Col]
	if pair == noPair {
		return
	}
	g.dragging = true
	g.dragPair = pair
	g.dragPath = []Cell{c}
	g.paths[pair] = nil
}

// extendDrag grows the pipe toward the pointer one adjacent cell at a
// time. Moving back over the previous cell truncates; cells owned by
// another color are refused; crossing the pipe's own tail cuts it
// back to the crossing point.
func (g *Game) extendDrag(c Cell) {
	last := g.dragPath[len(g.dragPath)-1]
	if c == last {
		return
	}
	// Non-adjacent motion is ignored outright, even onto the pipe's
	// own cells; only a step does anything.
	if !c.adjacent(last) {
		return
	}
	for i, pc := range g.dragPath {
		if pc == c {
			g.dragPath = g.dragPath[:i+1]
			return
		}
	}
	// A finished pipe stops at the far endpoint.
	if g.endpointAt[last.Row][last.Col] == g.dragPair && len(g.dragPath) > 1 {
		return
	}
	if owner := g.owner(c); owner != noPair && owner != g.dragPair {
		return
	}
	g.dragPath = append(g.dragPath, c)
}

// endDrag commits the pipe if it ends on the pair's other endpoint,
// otherwise rolls the route back leaving only the fixed nodes.
func (g *Game) endDrag() {
	if !g.dragging {
		return
	}
	g.dragging = false
	path := g.dragPath
	g.dragPath = nil
	if len(path) < 2 {
		return
	}
	last := path[len(path)-1]
	if g.endpointAt[last.Row][last.Col] != g.dragPair || last == path[0] {
		return
	}
	g.paths[g.dragPair] = path
	g.moves++
	g.checkWin()
}

func (g *Game) completed(pair int) bool {
	return len(g.paths[pair]) >= 2
}

// checkWin requires every pair routed and every cell covered.
func (g *Game) checkWin() {
	for pair := range g.paths {
		if !g.completed(pair) {
			return
		}
	}
	covered := 0
	for _, path := range g.paths {
		covered += len(path)
	}
	if covered == g.cfg.Rows*g.cfg.Cols {
		g.won = true
	}
}
