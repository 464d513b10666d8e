// Package grid implements the uniform voxel lattice the distance field is
// sampled on (C4, C5, C6 of spec.md §4): parallel grid evaluation, a
// finite-difference alternate gradient source, and cell-center bookkeeping
// for Surface Nets.
package grid

import (
	"math"

	"github.com/xernobyl/distnets/vec"
)

// DefaultCellSize is the cell size the original pipeline hard-codes,
// overriding whatever resolution estimate the mesh provider supplies
// (spec.md §6/§9 Open Question). Kept here, named, as a documented
// compatibility default rather than a silent override: callers must pass H
// explicitly to NewGrid.
const DefaultCellSize = 800

// Grid is an axis-aligned lattice with origin Min, uniform spacing H, and
// Nx x Ny x Nz cells (Nx+1, Ny+1, Nz+1 nodes along each axis).
type Grid struct {
	Min        vec.Vec3
	H          float64
	Nx, Ny, Nz int
}

// NewGrid builds a Grid covering [boundsMin, boundsMax] expanded outward by
// one cell of size h on every face (spec.md §3).
func NewGrid(boundsMin, boundsMax vec.Vec3, h float64) Grid {
	pad := vec.Vec3{h, h, h}
	min := vec.Sub(boundsMin, pad)
	max := vec.Add(boundsMax, pad)

	return Grid{
		Min: min,
		H:   h,
		Nx:  int(math.Floor((max[0]-min[0])/h)) + 1,
		Ny:  int(math.Floor((max[1]-min[1])/h)) + 1,
		Nz:  int(math.Floor((max[2]-min[2])/h)) + 1,
	}
}

// NumNodes returns (Nx+1)(Ny+1)(Nz+1), the length of the field arrays.
func (g Grid) NumNodes() int {
	return (g.Nx + 1) * (g.Ny + 1) * (g.Nz + 1)
}

// NumCells returns Nx*Ny*Nz, the length of the cell array.
func (g Grid) NumCells() int {
	return g.Nx * g.Ny * g.Nz
}

// NodeIndex implements idx(i,j,k) from spec.md §3.
func (g Grid) NodeIndex(i, j, k int) int {
	return (g.Nx+1)*(g.Ny+1)*k + (g.Nx+1)*j + i
}

// CellIndex implements idxC(i,j,k) from spec.md §3.
func (g Grid) CellIndex(i, j, k int) int {
	return g.Nx*g.Ny*k + g.Nx*j + i
}

// NodePosition returns the world-space position of grid node (i,j,k).
func (g Grid) NodePosition(i, j, k int) vec.Vec3 {
	return vec.Add(g.Min, vec.Scale(vec.Vec3{float64(i), float64(j), float64(k)}, g.H))
}

// CellCenter returns the world-space center of cell (i,j,k).
func (g Grid) CellCenter(i, j, k int) vec.Vec3 {
	return vec.Add(g.Min, vec.Scale(vec.Vec3{float64(i) + 0.5, float64(j) + 0.5, float64(k) + 0.5}, g.H))
}

// Valid reports whether the grid has at least one cell along every axis.
func (g Grid) Valid() bool {
	return g.Nx >= 1 && g.Ny >= 1 && g.Nz >= 1
}

// Field holds the per-node signed distance, gradient, and border flag
// produced by Evaluate (C4) or restored by dfio.Load + ComputeGradients (C5).
type Field struct {
	Phi    []float64
	Grad   []vec.Vec3
	Border []bool
}
