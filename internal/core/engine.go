package core

import "time"

// Result carries the outcome of one generation advance: the freshly
// allocated next grid and the wall-clock time the computation took. Elapsed
// is observability data only and may be 0 on coarse clocks.
type Result struct {
	Grid    *Grid
	Elapsed time.Duration
}

// Advance applies the Game of Life transition rule to every cell of g
// simultaneously and returns the next generation as a new grid. The source
// grid is read in full before any cell of the result exists, so the outcome
// never depends on traversal order and g is never mutated.
//
// Rules: a live cell survives with 2 or 3 live neighbors, a dead cell is
// born with exactly 3.
func Advance(g *Grid) Result {
	start := time.Now()
	n := g.Size()
	next := &Grid{n: n, data: make([]uint8, n*n)}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			neighbors := AliveNeighbors(g, x, y)
			if neighbors == 3 || (neighbors == 2 && g.at(x, y)) {
				next.data[y*n+x] = 1
			}
		}
	}
	return Result{Grid: next, Elapsed: time.Since(start)}
}
