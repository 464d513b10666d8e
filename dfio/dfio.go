// Package dfio implements the ".df" text persistence format for a signed
// distance field (spec.md §6): a "size = <h>" header line, an
// "# BEGIN VOXELS" / "# END VOXELS" bracketed list of phi values (one per
// line), following the line-oriented, tolerant-parsing idiom the teacher
// uses for its own OBJ loader.
package dfio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xernobyl/distnets/grid"
	"github.com/xernobyl/distnets/vec"
)

// Save writes g's cell size and f.Phi to w in the .df format.
func Save(w io.Writer, g grid.Grid, f grid.Field) error {
	if _, err := fmt.Fprintf(w, "size = %v\n", g.H); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# BEGIN VOXELS"); err != nil {
		return err
	}
	for _, phi := range f.Phi {
		if _, err := fmt.Fprintln(w, phi); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "# END VOXELS")
	return err
}

// Load reads a .df stream and rebuilds the Grid and phi-only Field it
// describes. boundsMin and boundsMax are the already-padded bounding box
// the field was originally computed over (the mesh bounding box grown by
// one cell on every face, as grid.NewGrid pads it; boundsMin is the
// grid's Min) -- the .df format carries only the cell size, not the
// bounds, mirroring the original tool keeping its bounding box resident on
// the calculator object across save/load rather than in the file.
//
// The returned Field has Grad and Border left nil: callers that need them
// must run grid.ComputeGradients (C5) and re-derive borders, since neither
// is part of this wire format.
//
// Lines are parsed permissively, matching the original _String2Double:
// a value line's first whitespace-delimited token is parsed as a float64,
// and any line that fails to parse (or is empty) contributes 0, silently.
func Load(r io.Reader, boundsMin, boundsMax vec.Vec3) (grid.Grid, grid.Field, error) {
	var g grid.Grid
	var phi []float64
	sized := false
	i := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if idx := strings.Index(line, "size = "); idx >= 0 {
			h := parseFirstDouble(line[idx+len("size = "):])
			g = grid.Grid{
				Min: boundsMin,
				H:   h,
				Nx:  int((boundsMax[0]-boundsMin[0])/h) + 1,
				Ny:  int((boundsMax[1]-boundsMin[1])/h) + 1,
				Nz:  int((boundsMax[2]-boundsMin[2])/h) + 1,
			}
			phi = make([]float64, g.NumNodes())
			sized = true
			continue
		}

		if strings.Contains(line, "#") {
			continue
		}

		if !sized || i >= len(phi) {
			continue
		}

		phi[i] = parseFirstDouble(line)
		i++
	}

	if err := scanner.Err(); err != nil {
		return grid.Grid{}, grid.Field{}, err
	}

	return g, grid.Field{Phi: phi}, nil
}

func parseFirstDouble(s string) float64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}
	return v
}
