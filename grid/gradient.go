package grid

import (
	"math"

	"github.com/xernobyl/distnets/vec"
)

// ComputeGradients implements C5: it overwrites f.Grad with the finite
// difference gradient of |phi| (central differences at interior nodes,
// one-sided at the faces of the grid), matching distcalc.cpp's
// CalculateGradients exactly. It is the alternate gradient source spec.md
// §9 allows C8 to consume instead of C4's analytic footprint gradient.
//
// A no-op if f.Phi is empty (spec.md §7).
func ComputeGradients(g Grid, f *Field) {
	if len(f.Phi) == 0 {
		return
	}

	n := g.NumNodes()
	if len(f.Grad) != n {
		f.Grad = make([]vec.Vec3, n)
	}

	for i := 0; i <= g.Nx; i++ {
		for j := 0; j <= g.Ny; j++ {
			for k := 0; k <= g.Nz; k++ {
				f.Grad[g.NodeIndex(i, j, k)] = vec.Vec3{
					partial(g, f, i, j, k, 1, 0, 0),
					partial(g, f, i, j, k, 0, 1, 0),
					partial(g, f, i, j, k, 0, 0, 1),
				}
			}
		}
	}
}

// partial computes the one-dimensional finite difference of |phi| along
// the axis given by (di,dj,dk), which must be a unit step on exactly one
// axis.
func partial(g Grid, f *Field, i, j, k, di, dj, dk int) float64 {
	lo, hi := 0, 0
	switch {
	case di != 0:
		lo, hi = 0, g.Nx
	case dj != 0:
		lo, hi = 0, g.Ny
	default:
		lo, hi = 0, g.Nz
	}

	coord := i*di + j*dj + k*dk

	switch {
	case coord == lo:
		a := math.Abs(f.Phi[g.NodeIndex(i, j, k)])
		b := math.Abs(f.Phi[g.NodeIndex(i+di, j+dj, k+dk)])
		return (b - a) / g.H
	case coord == hi:
		a := math.Abs(f.Phi[g.NodeIndex(i-di, j-dj, k-dk)])
		b := math.Abs(f.Phi[g.NodeIndex(i, j, k)])
		return (b - a) / g.H
	default:
		a := math.Abs(f.Phi[g.NodeIndex(i-di, j-dj, k-dk)])
		b := math.Abs(f.Phi[g.NodeIndex(i+di, j+dj, k+dk)])
		return (b - a) / (2 * g.H)
	}
}
