package mesh

// ClassifyBorders implements C3: it marks each vertex as lying on the
// boundary of the mesh (an open half-edge) and stores the flag in property
// slot 0. It is run once after mesh load and never invalidated thereafter
// (spec.md §4.3).
//
// A vertex v is on the boundary iff it belongs to exactly one triangle, or
// some triangle incident to v has another vertex u such that the edge v-u
// is shared by only one triangle containing v. This is the approximation
// the pipeline commits to rather than an exact half-edge "open edge" test.
func ClassifyBorders(m *Mesh) {
	for vi := range m.Vertices {
		border := 0.0
		if isInBorder(m, vi) {
			border = 1.0
		}
		m.Vertices[vi].Props[BorderProp] = border
	}
}

func isInBorder(m *Mesh, v int) bool {
	triList := m.Vertices[v].Triangles

	if len(triList) == 1 {
		return true
	}

	for _, ti := range triList {
		tri := m.Triangles[ti]
		for _, u := range tri {
			if u == v {
				continue
			}
			if countTrianglesSharingEdge(m, u, v) == 1 {
				return true
			}
		}
	}

	return false
}

// countTrianglesSharingEdge counts how many triangles incident to u also
// name v, i.e. how many triangles contain the edge u-v.
func countTrianglesSharingEdge(m *Mesh, u, v int) int {
	count := 0
	for _, ti := range m.Vertices[u].Triangles {
		tri := m.Triangles[ti]
		if tri[0] == v || tri[1] == v || tri[2] == v {
			count++
		}
	}
	return count
}
