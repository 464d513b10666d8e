// Package engine wires the pipeline's components together: border
// classification, grid evaluation, cell assignment, Surface Nets
// reconstruction, and relaxation (spec.md's C3 through C8). It replaces
// the "global mutable pointers" the original tool passed its intermediate
// arrays through (spec.md §9) with a single Result value threaded
// explicitly between stages.
package engine

import (
	"io"

	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/mesh"
	"github.com/xernobyl/distnets/surfacenets"
)

// GradientSource selects which of C4's analytic footprint gradient or C5's
// finite-difference gradient feeds C8's relaxation (spec.md §4.8/§9: the
// pipeline does not care which is current).
type GradientSource int

const (
	// GradientAnalytic keeps C4's gradient, derived from each node's
	// closest-point footprint direction.
	GradientAnalytic GradientSource = iota
	// GradientFiniteDifference overwrites it with C5's central-difference
	// gradient of |phi|.
	GradientFiniteDifference
)

// DefaultH is the cell size distcalc.h hardcodes (d_size = 800), applied
// only when a caller passes H == 0. It is a documented compatibility
// default, not a silent override: callers that want a different
// resolution must say so.
const DefaultH = grid.DefaultCellSize

// Options configures a Run.
type Options struct {
	// H is the grid cell size. 0 selects DefaultH.
	H float64

	// MaxGoroutines bounds C4's worker count. 0 selects GOMAXPROCS.
	MaxGoroutines int

	// Progress, when non-nil, receives C4's "\r%d%%" updates.
	Progress io.Writer

	// Gradients selects which gradient source C8 relaxes against.
	Gradients GradientSource
}

// Result holds every intermediate artifact produced while reconstructing
// src: the grid it was sampled on, the sampled field, the cell bookkeeping
// Surface Nets used, and the output mesh after relaxation.
type Result struct {
	Grid  grid.Grid
	Field grid.Field
	Cells grid.Cells
	Mesh  *mesh.Mesh
}

// Run executes the full pipeline over src: classify borders (C3), sample
// the distance field (C4), optionally recompute gradients by finite
// difference (C5), assign cells (C6), reconstruct the dual mesh (C7), and
// relax its vertices onto the isosurface (C8).
func Run(src *mesh.Mesh, opts Options) Result {
	h := opts.H
	if h == 0 {
		h = DefaultH
	}

	mesh.ClassifyBorders(src)

	min, max := src.BoundingBox()
	g := grid.NewGrid(min, max, h)

	field := grid.Evaluate(g, src, grid.Config{
		MaxGoroutines: opts.MaxGoroutines,
		Progress:      opts.Progress,
	})

	if opts.Gradients == GradientFiniteDifference {
		grid.ComputeGradients(g, &field)
	}

	cells := grid.AssignCells(g)
	out := surfacenets.Reconstruct(g, field, cells)
	surfacenets.Relax(g, field, cells, out)

	return Result{
		Grid:  g,
		Field: field,
		Cells: cells,
		Mesh:  out,
	}
}
