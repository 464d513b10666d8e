package grid

import "github.com/xernobyl/distnets/vec"

// Cells holds per-cell bookkeeping for Surface Nets (C6): the world-space
// center of every cell, and the index of the dual vertex anchored in it,
// or -1 if the cell has not produced one yet.
type Cells struct {
	Center []vec.Vec3
	Anchor []int
}

// AssignCells implements C6: it allocates Center and Anchor for every cell
// of g, with every Anchor initialized to -1 (no dual vertex yet). A no-op,
// returning an empty Cells, if the grid is degenerate (spec.md §7's "no-op
// if phi is empty": a degenerate grid is exactly the case Evaluate would
// have produced an empty field for).
func AssignCells(g Grid) Cells {
	if !g.Valid() {
		return Cells{}
	}

	n := g.NumCells()
	c := Cells{
		Center: make([]vec.Vec3, n),
		Anchor: make([]int, n),
	}

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				c.Center[g.CellIndex(i, j, k)] = g.CellCenter(i, j, k)
			}
		}
	}
	for i := range c.Anchor {
		c.Anchor[i] = -1
	}

	return c
}
