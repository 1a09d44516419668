package pipeline

import (
	"fmt"
	"math/rand"
)

// walkRetries bounds the random-walk attempts per segment before the
// whole board layout is thrown away and regenerated.
const walkRetries = 200

// Cell is a board coordinate.
type Cell struct {
	Row, Col int
}

func (c Cell) adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Board is a generated puzzle: one endpoint pair per color. Every
// board produced by Generate has at least one full-coverage solution,
// the set of walks that carved it.
type Board struct {
	Rows, Cols int
	Endpoints  [][2]Cell
	// Solution keeps the carving walks, one full route per pair.
	Solution [][]Cell
}

// Generate carves the board into pairCount snake-shaped segments that
// together cover every cell, then keeps only the segment endpoints.
// Each segment is laid by a self-avoiding random walk over the cells
// the earlier segments left free. A walk that corners itself is
// retried; when a segment exhausts its retries the entire layout is
// discarded. After maxAttempts whole-board discards an error is
// returned instead of looping forever.
func Generate(rows, cols, pairCount, minSegment, maxAttempts int, rng *rand.Rand) (*Board, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		b, ok := tryGenerate(rows, cols, pairCount, minSegment, rng)
		if ok {
			return b, nil
		}
	}
	return nil, fmt.Errorf("pipeline: no solvable %dx%d layout with %d pairs after %d attempts",
		rows, cols, pairCount, maxAttempts)
}

func tryGenerate(rows, cols, pairCount, minSegment int, rng *rand.Rand) (*Board, bool) {
	lengths := splitLengths(rows*cols, pairCount, minSegment, rng)
	used := make([]bool, rows*cols)
	board := &Board{Rows: rows, Cols: cols}

	for _, length := range lengths {
		path, ok := layWalk(rows, cols, length, used, rng)
		if !ok {
			return nil, false
		}
		for _, c := range path {
			used[c.Row*cols+c.Col] = true
		}
		board.Endpoints = append(board.Endpoints, [2]Cell{path[0], path[len(path)-1]})
		board.Solution = append(board.Solution, path)
	}
	return board, true
}

// splitLengths partitions the cell count into pairCount segment
// lengths of at least minSegment each. Every draw leaves enough cells
// for the segments still to come; the last segment takes the rest.
func splitLengths(total, pairCount, minSegment int, rng *rand.Rand) []int {
	lengths := make([]int, 0, pairCount)
	rem := total
	for i := pairCount; i > 1; i-- {
		max := rem - minSegment*(i-1)
		n := minSegment + rng.Intn(max-minSegment+1)
		lengths = append(lengths, n)
		rem -= n
	}
	return append(lengths, rem)
}

// layWalk grows a self-avoiding walk of the given length across free
// cells, restarting from a fresh random cell on every dead end.
func layWalk(rows, cols, length int, used []bool, rng *rand.Rand) ([]Cell, bool) {
	free := make([]Cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !used[r*cols+c] {
				free = append(free, Cell{r, c})
			}
		}
	}
	if len(free) < length {
		return nil, false
	}

	for try := 0; try < walkRetries; try++ {
		start := free[rng.Intn(len(free))]
		path := []Cell{start}
		onPath := map[Cell]bool{start: true}
		for len(path) < length {
			cur := path[len(path)-1]
			var options []Cell
			for _, d := range [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				next := Cell{cur.Row + d.Row, cur.Col + d.Col}
				if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
					continue
				}
				if used[next.Row*cols+next.Col] || onPath[next] {
					continue
				}
				options = append(options, next)
			}
			if len(options) == 0 {
				break
			}
			next := options[rng.Intn(len(options))]
			path = append(path, next)
			onPath[next] = true
		}
		if len(path) == length {
			return path, true
		}
	}
	return nil, false
}
