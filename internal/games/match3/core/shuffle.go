package core

// Shuffle permutes tile positions in place. Each cell, in row-major order, is
// swapped with a random cell of the already visited sub-grid, its own position
// included. Kind counts are preserved.
func Shuffle(g *Grid, rng Rand) {
	for r := range g.rows {
		for c := range g.cols {
			//nolint:errcheck // Both cells are in range
			g.Swap(At(r, c), At(rng.Intn(r+1), rng.Intn(c+1)))
		}
	}
}
