package surfacenets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

func cubeMesh() *mesh.Mesh {
	m, err := mesh.LoadOBJ("testdata/cube.obj")
	if err != nil {
		panic(err)
	}
	mesh.ClassifyBorders(m)
	return m
}

func TestReconstructProducesNonEmptyMesh(t *testing.T) {
	src := cubeMesh()
	min, max := src.BoundingBox()
	g := grid.NewGrid(min, max, 0.5)

	f := grid.Evaluate(g, src, grid.Config{})
	cells := grid.AssignCells(g)

	out := Reconstruct(g, f, cells)

	assert.NotEmpty(t, out.Vertices)
	assert.NotEmpty(t, out.Triangles)

	// every triangle must reference valid vertex indices.
	for _, tri := range out.Triangles {
		for _, vi := range tri {
			require.True(t, vi >= 0 && vi < len(out.Vertices))
		}
	}
}

func TestReconstructSkipsOutOfBoundsNeighbors(t *testing.T) {
	// A 1x1x1 grid has no interior neighbor cells at all for any
	// configuration; Reconstruct must not panic and must produce no
	// triangles.
	g := grid.Grid{Min: vec.Vec3{0, 0, 0}, H: 1, Nx: 1, Ny: 1, Nz: 1}
	f := grid.Field{
		Phi:    make([]float64, g.NumNodes()),
		Grad:   make([]vec.Vec3, g.NumNodes()),
		Border: make([]bool, g.NumNodes()),
	}
	for i := range f.Grad {
		f.Grad[i] = vec.Vec3{1, 0, 0}
	}
	cells := grid.AssignCells(g)

	out := Reconstruct(g, f, cells)
	assert.Empty(t, out.Triangles)
}

func TestReconstructEmptyGrid(t *testing.T) {
	g := grid.Grid{Nx: 0, Ny: 1, Nz: 1}
	out := Reconstruct(g, grid.Field{}, grid.Cells{})
	assert.Empty(t, out.Vertices)
	assert.Empty(t, out.Triangles)
}
