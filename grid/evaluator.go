package grid

import (
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/xernobyl/distnets/geom"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/vec"
)

// Config controls how Evaluate partitions and reports its work. The zero
// value is usable: GOMAXPROCS goroutines, no progress output.
type Config struct {
	// MaxGoroutines bounds the number of worker goroutines. 0 means
	// runtime.GOMAXPROCS(0).
	MaxGoroutines int

	// Progress, when non-nil, receives terse "\r%d%%" updates. Reporting is
	// best-effort: only the goroutine whose slab contains the i=0 plane
	// writes, and it estimates against its own slab rather than coordinate
	// with the others, so the hot loop never synchronizes on a shared
	// counter.
	Progress io.Writer
}

// Evaluate implements C4: it samples ClosestPointMesh at every node of g,
// partitioning the outer i index into slabs run on separate goroutines
// (spec.md §5, generalizing the teacher's per-layer goroutine pattern from
// per-z to per-slab so it scales past one goroutine per layer). Field
// arrays are written at disjoint indices, so no locking is needed around
// them.
func Evaluate(g Grid, m mesh.MeshProvider, cfg Config) Field {
	if !g.Valid() {
		return Field{}
	}

	n := g.NumNodes()
	f := Field{
		Phi:    make([]float64, n),
		Grad:   make([]vec.Vec3, n),
		Border: make([]bool, n),
	}

	nodesI := g.Nx + 1

	workers := cfg.MaxGoroutines
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > nodesI {
		workers = nodesI
	}
	if workers < 1 {
		workers = 1
	}

	slab := (nodesI + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * slab
		end := start + slab
		if end > nodesI {
			end = nodesI
		}
		if start >= end {
			continue
		}

		report := cfg.Progress != nil && start == 0

		wg.Add(1)
		go func(start, end int, report bool) {
			defer wg.Done()
			evaluateSlab(g, m, f, start, end, cfg.Progress, report)
		}(start, end, report)
	}
	wg.Wait()

	if cfg.Progress != nil {
		fmt.Fprintln(cfg.Progress)
	}

	return f
}

func evaluateSlab(g Grid, m mesh.MeshProvider, f Field, start, end int, progress io.Writer, report bool) {
	sliceNodes := (end - start) * (g.Ny + 1) * (g.Nz + 1)
	done := 0
	lastPercent := -1

	for i := start; i < end; i++ {
		for j := 0; j <= g.Ny; j++ {
			for k := 0; k <= g.Nz; k++ {
				p := g.NodePosition(i, j, k)
				r := geom.ClosestPointMesh(p, m)
				idx := g.NodeIndex(i, j, k)

				f.Phi[idx] = r.Dist
				footprint := geom.Footprint(m, r)
				f.Grad[idx] = vec.Normalize(vec.Sub(p, footprint))
				f.Border[idx] = r.OnBorder

				if report {
					done++
					if percent := done * 100 / sliceNodes; percent != lastPercent {
						lastPercent = percent
						fmt.Fprintf(progress, "\r%d%%", percent)
					}
				}
			}
		}
	}
}
