package geom

import (
	"math"

	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

// MeshResult is the outcome of C2: the signed distance from a point to the
// closest point on a mesh, together with the parametric footprint, the
// closest triangle, and whether that footprint lies on the mesh boundary.
type MeshResult struct {
	Dist     float64 // signed distance
	S, T     float64
	Triangle int
	OnBorder bool
}

// ClosestPointMesh implements C2: it evaluates ClosestPointTriangle against
// every triangle of m, retains the candidate with the smallest unsigned
// distance, and derives the sign from the un-normalized normal of the
// retained triangle, N = (V1-V2) x (V1-V3) (the inconsistent-orientation
// convention spec.md §4.2/§9 calls out and asks implementers to reproduce
// exactly). m must have at least one triangle.
func ClosestPointMesh(p vec.Vec3, m mesh.MeshProvider) MeshResult {
	minDistSq := math.Inf(1)

	var best Result
	bestTriangle := -1

	n := m.NumTriangles()
	for ti := 0; ti < n; ti++ {
		a, b, c := m.TriangleVertexPositions(ti)
		r := ClosestPointTriangle(p, a, b, c)

		if r.DistSq < minDistSq {
			minDistSq = r.DistSq
			best = r
			bestTriangle = ti
		}
	}

	tri := m.TriangleIndices(bestTriangle)
	v1 := m.VertexPosition(tri[0])
	v2 := m.VertexPosition(tri[1])
	v3 := m.VertexPosition(tri[2])

	normal := vec.Cross(vec.Sub(v1, v2), vec.Sub(v1, v3))
	toPoint := vec.Sub(p, v1)

	dist := best.Dist
	if vec.Dot(toPoint, normal) < 0 {
		dist = -dist
	}

	onBorder := OnTriangleBorder(
		best.S, best.T,
		m.VertexProp(tri[0], mesh.BorderProp) != 0,
		m.VertexProp(tri[1], mesh.BorderProp) != 0,
		m.VertexProp(tri[2], mesh.BorderProp) != 0,
	)

	return MeshResult{
		Dist:     dist,
		S:        best.S,
		T:        best.T,
		Triangle: bestTriangle,
		OnBorder: onBorder,
	}
}

// Footprint returns the closest point on the mesh (the point Q the result
// was computed against), given the same mesh queried by ClosestPointMesh.
func Footprint(m mesh.MeshProvider, r MeshResult) vec.Vec3 {
	tri := m.TriangleIndices(r.Triangle)
	v1 := m.VertexPosition(tri[0])
	edge0 := vec.Sub(m.VertexPosition(tri[1]), v1)
	edge1 := vec.Sub(m.VertexPosition(tri[2]), v1)
	return vec.Add(v1, vec.Add(vec.Scale(edge0, r.S), vec.Scale(edge1, r.T)))
}
