// Command distnets is a thin example CLI wiring engine.Run end to end: it
// loads an OBJ mesh, reconstructs it through the distance-field and
// surface-nets pipeline, and writes the result back out. Flag parsing and
// file I/O here are a CLI concern, not part of the reusable core the
// engine/grid/surfacenets packages provide.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xernobyl/distnets/dfio"
	"github.com/xernobyl/distnets/engine"
	"github.com/xernobyl/distnets/export"
	"github.com/xernobyl/distnets/mesh"
)

func main() {
	filePathPtr := flag.String("file", "", ".obj file path")
	cellSizePtr := flag.Float64("h", 0, "grid cell size (0 selects the pipeline's default)")
	bitsPtr := flag.Int("bits", 8, "packed volume precision, 8 or 16")
	fdGradientsPtr := flag.Bool("fd-gradients", false, "relax against finite-difference gradients instead of the analytic ones")
	flag.Parse()

	if *filePathPtr == "" {
		fmt.Println("missing -file")
		os.Exit(1)
	}

	if *bitsPtr != 8 && *bitsPtr != 16 {
		fmt.Println("-bits must be 8 or 16")
		os.Exit(1)
	}

	src, err := mesh.LoadOBJ(*filePathPtr)
	if err != nil {
		fmt.Println("error loading mesh:", err)
		os.Exit(1)
	}

	gradients := engine.GradientAnalytic
	if *fdGradientsPtr {
		gradients = engine.GradientFiniteDifference
	}

	fmt.Println("reconstructing surface...")
	result := engine.Run(src, engine.Options{
		H:         *cellSizePtr,
		Progress:  os.Stdout,
		Gradients: gradients,
	})

	ext := filepath.Ext(*filePathPtr)
	pathNoExt := strings.TrimSuffix(*filePathPtr, ext)

	if err := writeOBJ(pathNoExt+"_net.obj", result.Mesh); err != nil {
		fmt.Println("error writing reconstructed mesh:", err)
		os.Exit(1)
	}

	dfFile, err := os.Create(pathNoExt + ".df")
	if err != nil {
		fmt.Println("error creating .df file:", err)
		os.Exit(1)
	}
	err = dfio.Save(dfFile, result.Grid, result.Field)
	dfFile.Close()
	if err != nil {
		fmt.Println("error writing .df file:", err)
		os.Exit(1)
	}

	packed, minD, maxD := export.PackVolume(result.Field.Phi, export.Options{Bits16: *bitsPtr == 16})
	if err := os.WriteFile(pathNoExt+".bin", packed, 0644); err != nil {
		fmt.Println("error writing packed volume:", err)
		os.Exit(1)
	}

	if err := export.SaveDDS3DTexture(pathNoExt+".dds", packed, result.Grid.Nx+1, result.Grid.Ny+1, result.Grid.Nz+1, *bitsPtr); err != nil {
		fmt.Println("error writing dds volume:", err)
		os.Exit(1)
	}

	jsonData, err := json.MarshalIndent(map[string]any{
		"distance_min":     minD,
		"distance_max":     maxD,
		"cell_size":        result.Grid.H,
		"grid_nx":          result.Grid.Nx,
		"grid_ny":          result.Grid.Ny,
		"grid_nz":          result.Grid.Nz,
		"bounding_box_min": result.Grid.Min,
		"texture_format":   fmt.Sprintf("u%d", *bitsPtr),
		"texture_data":     pathNoExt + ".bin",
	}, "", "  ")
	if err != nil {
		fmt.Println("error encoding sidecar json:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(pathNoExt+".json", jsonData, 0644); err != nil {
		fmt.Println("error writing sidecar json:", err)
		os.Exit(1)
	}

	fmt.Println("done.")
}

func writeOBJ(path string, m *mesh.Mesh) error {
	var b strings.Builder
	for _, v := range m.Vertices {
		fmt.Fprintf(&b, "v %g %g %g\n", v.Pos[0], v.Pos[1], v.Pos[2])
	}
	for _, tri := range m.Triangles {
		fmt.Fprintf(&b, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
