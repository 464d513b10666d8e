package dfio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

func flatTriangleMesh() *mesh.Mesh {
	m := mesh.New()
	v1 := m.AddVertex(vec.Vec3{-5, -5, 0})
	v2 := m.AddVertex(vec.Vec3{5, -5, 0})
	v3 := m.AddVertex(vec.Vec3{0, 5, 0})
	m.AddTriangle(v1, v2, v3)
	mesh.ClassifyBorders(m)
	return m
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := flatTriangleMesh()
	min, max := m.BoundingBox()
	g := grid.NewGrid(min, max, 1.0)
	f := grid.Evaluate(g, m, grid.Config{})

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g, f))

	// Load takes the padded bounding box NewGrid used: the mesh box grown by
	// one cell on every face.
	paddedMax := vec.Add(max, vec.Vec3{g.H, g.H, g.H})
	g2, f2, err := Load(&buf, g.Min, paddedMax)
	require.NoError(t, err)

	assert.Equal(t, g.Nx, g2.Nx)
	assert.Equal(t, g.Ny, g2.Ny)
	assert.Equal(t, g.Nz, g2.Nz)
	assert.InDelta(t, g.H, g2.H, 1e-12)

	require.Equal(t, len(f.Phi), len(f2.Phi))
	for i := range f.Phi {
		assert.InDelta(t, f.Phi[i], f2.Phi[i], 1e-9)
	}
}

func TestSaveFormat(t *testing.T) {
	g := grid.Grid{Min: vec.Vec3{}, H: 2.5, Nx: 1, Ny: 1, Nz: 1}
	f := grid.Field{Phi: []float64{1, 2, 3, 4, 5, 6, 7, 8}}

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, g, f))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "size = 2.5", lines[0])
	assert.Equal(t, "# BEGIN VOXELS", lines[1])
	assert.Equal(t, "# END VOXELS", lines[len(lines)-1])
}

func TestLoadUnparsableLinesContributeZero(t *testing.T) {
	in := "size = 1\n# BEGIN VOXELS\nnot-a-number\n3.5\n# END VOXELS\n"
	g, f, err := Load(strings.NewReader(in), vec.Vec3{0, 0, 0}, vec.Vec3{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), len(f.Phi))
	assert.Equal(t, 0.0, f.Phi[0])
	assert.Equal(t, 3.5, f.Phi[1])
}
