package surfacenets

import (
	"math"

	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

var cellCorners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// Relax implements C8: for every cell that emitted an anchor in
// Reconstruct, it moves the anchor to the average of its qualifying
// corner candidates. A candidate is a corner grid node translated by
// -|phi|*grad (attracting it toward the isosurface); a corner qualifies
// if its border flag is set, and the fallback of averaging all eight
// translated corners applies when none do (spec.md §4.8).
func Relax(g grid.Grid, f grid.Field, cells grid.Cells, m *mesh.Mesh) {
	if !g.Valid() || len(f.Phi) == 0 {
		return
	}

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				anchor := cells.Anchor[g.CellIndex(i, j, k)]
				if anchor == -1 {
					continue
				}
				m.Vertices[anchor].Pos = relaxedPosition(g, f, i, j, k)
			}
		}
	}
}

func relaxedPosition(g grid.Grid, f grid.Field, i, j, k int) vec.Vec3 {
	var borderSum vec.Vec3
	borderCount := 0
	var allSum vec.Vec3

	for _, c := range cellCorners {
		ni, nj, nk := i+c[0], j+c[1], k+c[2]
		idx := g.NodeIndex(ni, nj, nk)

		translated := vec.Sub(g.NodePosition(ni, nj, nk), vec.Scale(f.Grad[idx], math.Abs(f.Phi[idx])))
		allSum = vec.Add(allSum, translated)

		if f.Border[idx] {
			borderSum = vec.Add(borderSum, translated)
			borderCount++
		}
	}

	if borderCount > 0 {
		return vec.Scale(borderSum, 1.0/float64(borderCount))
	}
	return vec.Scale(allSum, 1.0/float64(len(cellCorners)))
}
