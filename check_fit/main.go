// Command check_fit verifies that a mesh written by
// render_views is centered at the origin and fits inside
// the envelope recorded in its metadata.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/print-views/printview"
)

func main() {
	var epsilon float64
	var dataDir string
	var meshPath string
	flag.Float64Var(&epsilon, "epsilon", 1e-3,
		"tolerance in mm for containment and centering (raised to the STL float32 resolution)")
	flag.StringVar(&dataDir, "data-dir", "", "output directory of render_views")
	flag.StringVar(&meshPath, "mesh-path", "", "normalized STL written by render_views")
	flag.Parse()
	if dataDir == "" || meshPath == "" {
		essentials.Die("Must specify -data-dir and -mesh-path")
	}

	log.Println("Reading metadata...")
	var metadata printview.RenderContext
	f, err := os.Open(filepath.Join(dataDir, "metadata.json"))
	essentials.Must(err)
	err = json.NewDecoder(f).Decode(&metadata)
	f.Close()
	essentials.Must(err)

	log.Println("Loading mesh...")
	f, err = os.Open(meshPath)
	essentials.Must(err)
	triangles, err := model3d.ReadSTL(f)
	f.Close()
	essentials.Must(err)
	obj := printview.NewMeshObject(model3d.NewMeshTriangles(triangles))

	envelope := metadata.Result.FinalDimensions
	epsilon = math.Max(epsilon, printview.STLTolerance(envelope))
	report, err := printview.CheckFit(obj.WorldBoundingBoxCorners(), envelope, epsilon)
	essentials.Must(err)

	fmt.Printf("envelope:  %v\n", envelope)
	fmt.Printf("mesh:      %v\n", report.Extents)
	fmt.Printf("clearance: %v\n", report.Clearance)
	fmt.Printf("offset:    %v\n", report.Offset)
	for _, plan := range metadata.Plans {
		fmt.Printf("%-6s %dx%d px, ortho scale %g\n", plan.View, plan.PixelWidth, plan.PixelHeight,
			plan.OrthoScale)
	}

	if !report.Contained {
		essentials.Die("mesh exceeds its envelope")
	}
	if !report.Centered {
		essentials.Die("mesh is not centered at the origin")
	}
	log.Println("Mesh fits its envelope.")
}
