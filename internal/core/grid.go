package core

import "fmt"

// Grid stores a square toroidal board of cell states in row-major order.
// A zero byte is a dead cell, anything else is alive; the grid itself only
// ever writes 0 or 1.
type Grid struct {
	n    int
	data []uint8
}

// NewGrid allocates an n×n grid with every cell dead. Sizes below 1 are
// refused with ErrInvalidSize.
func NewGrid(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	return &Grid{n: n, data: make([]uint8, n*n)}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// Cells exposes the backing slice so renderers can read values directly.
// The slice must be treated as read-only.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.n + x }

// Wrap applies toroidal wrapping to the provided coordinates. The double
// modulo keeps the result non-negative for negative inputs.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.n + g.n) % g.n
	y = (y%g.n + g.n) % g.n
	return x, y
}

// Get reports whether the cell at (x, y) is alive. Coordinates outside
// [0, N) are refused with ErrOutOfBounds.
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) on %d×%d", ErrOutOfBounds, x, y, g.n, g.n)
	}
	return g.at(x, y), nil
}

// Set assigns the alive flag of exactly one cell, with the same bounds
// contract as Get.
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %d×%d", ErrOutOfBounds, x, y, g.n, g.n)
	}
	if alive {
		g.data[g.Index(x, y)] = 1
	} else {
		g.data[g.Index(x, y)] = 0
	}
	return nil
}

// Toggle flips the alive flag of one cell.
func (g *Grid) Toggle(x, y int) error {
	alive, err := g.Get(x, y)
	if err != nil {
		return err
	}
	return g.Set(x, y, !alive)
}

// Each calls fn once for every cell, row by row. The pass is complete and
// stable: each of the N² coordinates is visited exactly once.
func (g *Grid) Each(fn func(x, y int, alive bool)) {
	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			fn(x, y, g.data[y*g.n+x] != 0)
		}
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.data {
		if c != 0 {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{n: g.n, data: data}
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.n && y >= 0 && y < g.n
}

// at reads a cell without bounds checking. Callers pass wrapped coordinates.
func (g *Grid) at(x, y int) bool { return g.data[y*g.n+x] != 0 }
