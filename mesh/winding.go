package mesh

import (
	"fmt"
	"runtime"
	"sync"
)

// WindingIssue is one inconsistency CheckWinding found.
type WindingIssue struct {
	Triangle int
	Message  string
}

// CheckWinding reports triangles whose winding disagrees with an adjacent
// triangle across a shared edge, and triangles that share no edge with any
// other triangle at all. It is a diagnostic pass over an already-built
// Mesh, not a repair: like the teacher's own fixTriangle/fixTriangles (which
// only ever warned -- the repair itself was commented out), it surfaces
// problems in the input surface rather than silently correcting them.
//
// Unlike the teacher's O(triangles^2) adjacency scan, candidate triangles
// are found through each vertex's incidence list, and the work is split
// across GOMAXPROCS goroutines.
func CheckWinding(m *Mesh) []WindingIssue {
	n := len(m.Triangles)
	if n == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	slab := (n + workers - 1) / workers
	results := make([][]WindingIssue, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * slab
		end := start + slab
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			results[w] = checkWindingRange(m, start, end)
		}(w, start, end)
	}
	wg.Wait()

	var issues []WindingIssue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues
}

func checkWindingRange(m *Mesh, start, end int) []WindingIssue {
	var issues []WindingIssue

	for ti := start; ti < end; ti++ {
		triA := m.Triangles[ti]
		adjacentCount := 0

		for _, v := range triA {
			for _, tj := range m.Vertices[v].Triangles {
				if tj == ti {
					continue
				}

				triB := m.Triangles[tj]
				adjacent, shared := isAdjacent(triA, triB)
				if !adjacent {
					continue
				}
				adjacentCount++

				if !sameWindingOrder(triA, triB, shared) {
					issues = append(issues, WindingIssue{
						Triangle: tj,
						Message:  fmt.Sprintf("triangle %d is wound inconsistently with triangle %d", tj, ti),
					})
				}
			}
		}

		if adjacentCount == 0 {
			issues = append(issues, WindingIssue{
				Triangle: ti,
				Message:  fmt.Sprintf("triangle %d shares no edge with any other triangle", ti),
			})
		}
	}

	return issues
}

func isAdjacent(a, b Triangle) (bool, [2]int) {
	shared := [2]int{}
	count := 0

	for _, va := range a {
		for _, vb := range b {
			if va == vb {
				if count < 2 {
					shared[count] = va
				}
				count++
			}
		}
	}

	return count == 2, shared
}

func sameWindingOrder(triangleA, triangleB Triangle, shared [2]int) bool {
	for i, a := range triangleA {
		if a != shared[0] {
			continue
		}

		if triangleA[(i+1)%3] == shared[1] {
			for j, b := range triangleB {
				if b == shared[0] {
					return triangleB[(j+2)%3] == shared[1]
				}
			}
		} else {
			for j, b := range triangleB {
				if b == shared[0] {
					return triangleB[(j+1)%3] == shared[1]
				}
			}
		}
	}

	return false
}
