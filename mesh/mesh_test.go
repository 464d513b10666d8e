package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xernobyl/distnets/vec"
)

func tetrahedron() *Mesh {
	m := New()
	v0 := m.AddVertex(vec.Vec3{0, 0, 0})
	v1 := m.AddVertex(vec.Vec3{1, 0, 0})
	v2 := m.AddVertex(vec.Vec3{0, 1, 0})
	v3 := m.AddVertex(vec.Vec3{0, 0, 1})

	m.AddTriangle(v0, v2, v1)
	m.AddTriangle(v0, v1, v3)
	m.AddTriangle(v0, v3, v2)
	m.AddTriangle(v1, v2, v3)

	return m
}

func TestAddTriangleIncidence(t *testing.T) {
	m := tetrahedron()

	for ti, tri := range m.Triangles {
		for _, vi := range tri {
			assert.Contains(t, m.Vertices[vi].Triangles, ti)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	m := tetrahedron()
	min, max := m.BoundingBox()
	assert.Equal(t, vec.Vec3{0, 0, 0}, min)
	assert.Equal(t, vec.Vec3{1, 1, 1}, max)
}

func TestLoadOBJ(t *testing.T) {
	m, err := LoadOBJ("testdata/tetrahedron.obj")
	require.NoError(t, err)
	assert.Equal(t, 4, len(m.Vertices))
	assert.Equal(t, 4, len(m.Triangles))
}

func TestLoadOBJMissingFile(t *testing.T) {
	_, err := LoadOBJ("testdata/does-not-exist.obj")
	assert.Error(t, err)
}
