// Package surfacenets reconstructs a triangle mesh from a signed distance
// field by Surface Nets dual contouring (C7) and relaxes the resulting
// vertices toward the isosurface (C8).
package surfacenets

import (
	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

// edgeConfig names one of the six (of twelve possible) cell-edge
// configurations Reconstruct tests, per spec.md §4.7's table. nodeA/nodeB
// are the grid-node offsets (relative to the cell's own (i,j,k)) whose
// gradients are compared; neighborA/neighborB are the cell offsets of the
// two neighbors a triangle is emitted against.
type edgeConfig struct {
	name                 string
	nodeA, nodeB         [3]int
	neighborA, neighborB [3]int
}

var edgeConfigs = [6]edgeConfig{
	{"up-right", [3]int{1, 0, 1}, [3]int{1, 1, 1}, [3]int{0, 0, 1}, [3]int{1, 0, 0}},
	{"down-left", [3]int{0, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, -1}, [3]int{-1, 0, 0}},
	{"up-front", [3]int{0, 0, 1}, [3]int{1, 0, 1}, [3]int{0, 0, 1}, [3]int{0, -1, 0}},
	{"down-back", [3]int{0, 1, 0}, [3]int{1, 1, 0}, [3]int{0, 0, -1}, [3]int{0, 1, 0}},
	{"front-right", [3]int{1, 0, 1}, [3]int{1, 0, 0}, [3]int{0, -1, 0}, [3]int{1, 0, 0}},
	{"back-left", [3]int{0, 1, 0}, [3]int{0, 1, 1}, [3]int{0, 1, 0}, [3]int{-1, 0, 0}},
}

// Reconstruct implements C7: for every cell it tests the six edge
// configurations above and, for each whose node-pair gradients point in
// opposing senses, lazily creates anchor vertices (at the cell's center)
// for the cell and its two named neighbors and emits one triangle
// connecting them. Cells whose anchor already exists (set by a previous
// configuration, this cell's or a neighbor's) are reused rather than
// duplicated.
//
// Neighbor cells that would fall outside the grid are skipped without
// emitting (spec.md §4.7/§9): the original implementation does not guard
// this and can read out of bounds at the grid faces.
func Reconstruct(g grid.Grid, f grid.Field, cells grid.Cells) *mesh.Mesh {
	m := mesh.New()

	if !g.Valid() || len(f.Grad) == 0 {
		return m
	}

	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			for k := 0; k < g.Nz; k++ {
				reconstructCell(g, f, cells, m, i, j, k)
			}
		}
	}

	return m
}

func reconstructCell(g grid.Grid, f grid.Field, cells grid.Cells, m *mesh.Mesh, i, j, k int) {
	cellIdx := g.CellIndex(i, j, k)

	for _, cfg := range edgeConfigs {
		ni, nj, nk := i+cfg.neighborA[0], j+cfg.neighborA[1], k+cfg.neighborA[2]
		mi, mj, mk := i+cfg.neighborB[0], j+cfg.neighborB[1], k+cfg.neighborB[2]
		if !inCellBounds(g, ni, nj, nk) || !inCellBounds(g, mi, mj, mk) {
			continue
		}

		gradA := f.Grad[g.NodeIndex(i+cfg.nodeA[0], j+cfg.nodeA[1], k+cfg.nodeA[2])]
		gradB := f.Grad[g.NodeIndex(i+cfg.nodeB[0], j+cfg.nodeB[1], k+cfg.nodeB[2])]
		if vec.Dot(gradA, gradB) >= 0 {
			continue
		}

		neighborAIdx := g.CellIndex(ni, nj, nk)
		neighborBIdx := g.CellIndex(mi, mj, mk)

		v0 := ensureAnchor(cells, m, cellIdx)
		v1 := ensureAnchor(cells, m, neighborAIdx)
		v2 := ensureAnchor(cells, m, neighborBIdx)

		m.AddTriangle(v0, v1, v2)
	}
}

func inCellBounds(g grid.Grid, i, j, k int) bool {
	return i >= 0 && i < g.Nx && j >= 0 && j < g.Ny && k >= 0 && k < g.Nz
}

func ensureAnchor(cells grid.Cells, m *mesh.Mesh, cellIdx int) int {
	if cells.Anchor[cellIdx] == -1 {
		cells.Anchor[cellIdx] = m.AddVertex(cells.Center[cellIdx])
	}
	return cells.Anchor[cellIdx]
}
