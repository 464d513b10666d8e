package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xernobyl/distnets/vec"
)

func TestNewGridExpandsByOneCell(t *testing.T) {
	min := vec.Vec3{0, 0, 0}
	max := vec.Vec3{10, 10, 10}
	g := NewGrid(min, max, 1.0)

	assert.Equal(t, vec.Vec3{-1, -1, -1}, g.Min)
	// padded extent 12, floor(12/1)+1 = 13
	assert.Equal(t, 13, g.Nx)
	assert.Equal(t, 13, g.Ny)
	assert.Equal(t, 13, g.Nz)
}

func TestNodeAndCellIndex(t *testing.T) {
	g := Grid{Min: vec.Vec3{}, H: 1, Nx: 3, Ny: 4, Nz: 5}

	assert.Equal(t, 0, g.NodeIndex(0, 0, 0))
	assert.Equal(t, 1, g.NodeIndex(1, 0, 0))
	assert.Equal(t, (g.Nx+1)*(g.Ny+1)+(g.Nx+1)+2, g.NodeIndex(2, 1, 1))

	assert.Equal(t, 0, g.CellIndex(0, 0, 0))
	assert.Equal(t, g.Nx*g.Ny+g.Nx+1, g.CellIndex(1, 1, 1))
}

func TestNodePositionAndCellCenter(t *testing.T) {
	g := Grid{Min: vec.Vec3{1, 2, 3}, H: 2, Nx: 2, Ny: 2, Nz: 2}

	assert.Equal(t, vec.Vec3{1, 2, 3}, g.NodePosition(0, 0, 0))
	assert.Equal(t, vec.Vec3{3, 4, 5}, g.NodePosition(1, 1, 1))
	assert.Equal(t, vec.Vec3{2, 3, 4}, g.CellCenter(0, 0, 0))
}

func TestGridValid(t *testing.T) {
	assert.True(t, Grid{Nx: 1, Ny: 1, Nz: 1}.Valid())
	assert.False(t, Grid{Nx: 0, Ny: 1, Nz: 1}.Valid())
}
