package core

// AliveNeighbors counts the live cells among the 8 toroidal neighbors of
// (x, y). Opposite edges are adjacent, so edge and corner cells need no
// special casing. On a 1×1 grid all 8 offsets wrap back to the cell itself,
// giving 0 or 8 depending on its own state.
func AliveNeighbors(g *Grid, x, y int) int {
	n := g.Size()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			// The +n guard keeps the modulo non-negative at the edges.
			nx := (x + dx + n) % n
			ny := (y + dy + n) % n
			if g.at(nx, ny) {
				count++
			}
		}
	}
	return count
}
