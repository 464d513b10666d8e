package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xernobyl/distnets/vec"
)

func TestAssignCells(t *testing.T) {
	g := Grid{Min: vec.Vec3{0, 0, 0}, H: 2, Nx: 2, Ny: 2, Nz: 2}
	c := AssignCells(g)

	require.Equal(t, g.NumCells(), len(c.Center))
	require.Equal(t, g.NumCells(), len(c.Anchor))

	for _, a := range c.Anchor {
		assert.Equal(t, -1, a)
	}

	assert.Equal(t, vec.Vec3{1, 1, 1}, c.Center[g.CellIndex(0, 0, 0)])
	assert.Equal(t, vec.Vec3{3, 3, 3}, c.Center[g.CellIndex(1, 1, 1)])
}

func TestAssignCellsDegenerateGrid(t *testing.T) {
	g := Grid{Nx: 0, Ny: 1, Nz: 1}
	c := AssignCells(g)
	assert.Empty(t, c.Center)
	assert.Empty(t, c.Anchor)
}
