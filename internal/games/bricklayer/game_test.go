package bricklayer

import (
	"testing"

	"github.com/gamealchemy/arcade/internal/config"
	"github.com/gamealchemy/arcade/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultBrickLayerConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRotationCounts(t *testing.T) {
	want := map[ShapeKind]int{
		ShapeI: 2, ShapeJ: 4, ShapeL: 4, ShapeO: 1,
		ShapeS: 2, ShapeT: 4, ShapeZ: 2,
	}
	for kind, n := range want {
		if got := len(Rotations(kind)); got != n {
			t.Errorf("shape %v: %d orientations, want %d", kind, got, n)
		}
	}
}

func TestRotationsStayFourCells(t *testing.T) {
	for _, kind := range Shapes {
		for i, rot := range Rotations(kind) {
			if len(rot) != 4 {
				t.Errorf("shape %v rot %d has %d cells", kind, i, len(rot))
			}
		}
	}
}

func TestSpawnPosition(t *testing.T) {
	g := newTestGame(t)
	if g.piece.Row != 0 || g.piece.Col != g.cfg.Cols/2 {
		t.Errorf("spawned at (%d,%d), want (0,%d)", g.piece.Row, g.piece.Col, g.cfg.Cols/2)
	}
	if g.piece.Rot != 0 {
		t.Errorf("spawned with rot %d, want 0", g.piece.Rot)
	}
}

func TestShiftBlockedByWall(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < g.cfg.Cols+2; i++ {
		g.tryShift(-1)
	}
	for _, c := range g.piece.Cells() {
		if c.Col < 0 {
			t.Fatalf("piece pushed through the wall: col %d", c.Col)
		}
	}
}

func TestWallKickNearEdge(t *testing.T) {
	g := newTestGame(t)
	g.piece = Piece{Kind: ShapeI, Rot: 0, Row: 5, Col: 0}
	g.tryRotate(1)
	if g.piece.Rot != 1 {
		t.Fatalf("rotation failed at the wall, rot = %d", g.piece.Rot)
	}
	for _, c := range g.piece.Cells() {
		if c.Col < 0 || c.Col >= g.cfg.Cols {
			t.Errorf("kicked cell out of bounds: col %d", c.Col)
		}
	}
}

func TestRotateBackInverts(t *testing.T) {
	g := newTestGame(t)
	g.piece = Piece{Kind: ShapeT, Rot: 0, Row: 5, Col: 5}
	g.tryRotate(1)
	g.tryRotate(-1)
	if g.piece.Rot != 0 {
		t.Errorf("rot = %d after rotate and counter-rotate, want 0", g.piece.Rot)
	}
}

func TestHardDropLocksPiece(t *testing.T) {
	g := newTestGame(t)
	kind := g.piece.Kind
	g.Step(frame(core.ActionDrop))
	settled := 0
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			if g.cells[r][c] == kind {
				settled++
			}
		}
	}
	if settled != 4 {
		t.Errorf("%d cells settled after hard drop, want 4", settled)
	}
}

func TestLineClearScoring(t *testing.T) {
	g := newTestGame(t)
	cases := []struct {
		cleared int
		want    int
	}{
		{1, 100},
		{2, 400},
		{3, 900},
		{4, 1600},
	}
	for _, tc := range cases {
		g.Reset(g.rt)
		for k := 0; k < tc.cleared; k++ {
			row := g.cfg.Rows - 1 - k
			for c := 0; c < g.cfg.Cols; c++ {
				g.cells[row][c] = ShapeO
			}
		}
		g.clearLines()
		if g.score != tc.want {
			t.Errorf("clearing %d rows scored %d, want %d", tc.cleared, g.score, tc.want)
		}
		if g.lines != tc.cleared {
			t.Errorf("lines = %d, want %d", g.lines, tc.cleared)
		}
	}
}

func TestClearShiftsRowsDown(t *testing.T) {
	g := newTestGame(t)
	for c := 0; c < g.cfg.Cols; c++ {
		g.cells[g.cfg.Rows-1][c] = ShapeO
	}
	g.cells[g.cfg.Rows-2][0] = ShapeT
	g.clearLines()
	if g.cells[g.cfg.Rows-1][0] != ShapeT {
		t.Error("surviving cell did not fall into the cleared row")
	}
	if g.cells[g.cfg.Rows-2][0] != ShapeNone {
		t.Error("old position of the surviving cell was not emptied")
	}
}

func TestGravitySpeedsUp(t *testing.T) {
	g := newTestGame(t)
	start := g.gravityStep(false)
	g.elapsed = 120
	if later := g.gravityStep(false); later >= start {
		t.Errorf("gravity interval %v did not shrink from %v", later, start)
	}
	g.elapsed = 1e6
	if floor := g.gravityStep(false); floor != g.cfg.GravityMin {
		t.Errorf("gravity floor = %v, want %v", floor, g.cfg.GravityMin)
	}
}

func TestSoftDropRescalesTimer(t *testing.T) {
	g := newTestGame(t)
	g.timer = g.gravityStep(false) / 2
	before := g.timer
	g.setSoft(true)
	want := before * g.cfg.SoftFactor
	if diff := g.timer - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("timer = %v after soft engage, want %v", g.timer, want)
	}
	g.setSoft(false)
	if diff := g.timer - before; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("timer = %v after soft release, want %v", g.timer, before)
	}
}

func TestSoftDropHoldWindow(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionDown))
	if !g.soft {
		t.Fatal("soft drop did not engage on ActionDown")
	}
	for i := 0; i <= g.softHoldTicks(); i++ {
		g.Step(frame())
	}
	if g.soft {
		t.Error("soft drop still engaged after the hold window expired")
	}
}

func TestStackToTopEndsGame(t *testing.T) {
	g := newTestGame(t)
	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			if c != g.cfg.Cols-1 {
				g.cells[r][c] = ShapeZ
			}
		}
	}
	for i := 0; i < 200 && !g.gameOver; i++ {
		g.Step(frame(core.ActionDrop))
	}
	if !g.gameOver {
		t.Fatal("game kept running with the stack at the ceiling")
	}
	res := g.Step(frame(core.ActionDown))
	if !res.State.GameOver {
		t.Error("GameOver flag not reported after the run ended")
	}
}

func TestEscapeReturnsToMenu(t *testing.T) {
	g := newTestGame(t)
	res := g.Step(frame(core.ActionBack))
	if !res.ReturnToMenu {
		t.Error("ActionBack did not request menu return")
	}
}

func TestRestartResetsState(t *testing.T) {
	g := newTestGame(t)
	g.score = 500
	g.gameOver = true
	g.Step(frame(core.ActionRestart))
	if g.score != 0 || g.gameOver {
		t.Errorf("restart left score=%d gameOver=%v", g.score, g.gameOver)
	}
}

func TestDeterministicSpawnSequence(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)
	for i := 0; i < 10; i++ {
		if a.piece.Kind != b.piece.Kind {
			t.Fatalf("spawn %d diverged: %v vs %v", i, a.piece.Kind, b.piece.Kind)
		}
		a.Step(frame(core.ActionDrop))
		b.Step(frame(core.ActionDrop))
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 30)
	g.Render(s)
	s.Resize(10, 5)
	g.Render(s)
}
