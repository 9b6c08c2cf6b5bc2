// Command render_views scales an STL model to fit a print
// envelope and writes orthographic view plans for it,
// optionally rendering a preview of every view.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/print-views/printview"
)

func main() {
	var dpi float64
	var render bool
	var lightBrightness float64
	var meshOutput string
	var frameOutput string
	var width, height, depth OptionalFloatFlag
	views := ViewsFlag{Views: printview.AllViews()}
	color := VectorFlag{Value: model3d.XYZ(0.7, 0.7, 0.7)}

	flag.Var(&width, "block-width", "block width in mm (X axis)")
	flag.Var(&height, "block-height", "block height in mm (Z axis)")
	flag.Var(&depth, "block-depth", "block depth in mm (Y axis)")
	flag.Float64Var(&dpi, "dpi", printview.DefaultDPI, "print density of the rendered views")
	flag.Var(&views, "views", "comma-separated views to plan")
	flag.BoolVar(&render, "render", false, "render a preview image of every view")
	flag.Float64Var(&lightBrightness, "light-brightness", 0.8, "brightness of the key light")
	flag.Var(&color, "color", "color of the model, as 'r,g,b'")
	flag.StringVar(&meshOutput, "mesh-output", "", "optional path to save the normalized STL")
	flag.StringVar(&frameOutput, "frame-output", "", "optional path to save the envelope frame STL")

	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: render_views [flags] <input.stl> <output-dir>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	flag.Parse()
	if len(flag.Args()) != 2 {
		flag.Usage()
	}

	inputPath := flag.Args()[0]
	if _, err := os.Stat(inputPath); err != nil {
		essentials.Die("model file does not exist: " + inputPath)
	}
	if strings.ToLower(filepath.Ext(inputPath)) != ".stl" {
		essentials.Die("model file must be .stl, got " + filepath.Ext(inputPath))
	}

	target := printview.TargetEnvelope{
		Width:  width.Value,
		Height: height.Value,
		Depth:  depth.Value,
	}
	if err := target.Validate(); err != nil {
		essentials.Die(err)
	}
	log.Printf("Arguments: model=%s, width=%s, height=%s, depth=%s", inputPath,
		width.String(), height.String(), depth.String())

	outputDir := flag.Args()[1]
	log.Printf("Creating output directory: %s...", outputDir)
	if stats, err := os.Stat(outputDir); err == nil && !stats.IsDir() {
		essentials.Die("output path is not a directory: " + outputDir)
	} else if os.IsNotExist(err) {
		essentials.Must(os.MkdirAll(outputDir, 0755))
	}

	log.Println("Loading model...")
	obj := printview.NewMeshObject(ReadMesh(inputPath))

	log.Println("Normalizing model...")
	ctx, err := printview.Normalize(obj, target, views.Views, dpi)
	if err != nil {
		essentials.Die("normalize model:", err)
	}
	log.Printf("Scaled object by %g. Target: %v, Scaled: %v", ctx.Result.ScaleFactor,
		ctx.Result.FinalDimensions, ctx.Result.ScaledDimensions)

	var object render3d.Object
	var lights []*render3d.PointLight
	if render {
		for _, plan := range ctx.Plans {
			if plan.PixelWidth == 0 || plan.PixelHeight == 0 {
				essentials.Die(fmt.Sprintf("%s view is empty at %g dpi", plan.View, dpi))
			}
		}
		object = Objectify(obj.Mesh, color.Value)
		lights = PreviewLights(ctx.Result.FinalDimensions, lightBrightness)
	}

	if meshOutput != "" {
		log.Printf("Saving normalized mesh: %s...", meshOutput)
		essentials.Must(obj.Mesh.SaveGroupedSTL(meshOutput))
	}
	if frameOutput != "" {
		log.Printf("Saving envelope frame: %s...", frameOutput)
		essentials.Must(printview.FrameMesh(ctx.Result.FinalDimensions).SaveGroupedSTL(frameOutput))
	}

	log.Println("Writing metadata...")
	WriteGlobalMetadata(outputDir, ctx)

	for _, plan := range ctx.Plans {
		if render {
			log.Printf("Rendering %s view (%dx%d)...", plan.View, plan.PixelWidth, plan.PixelHeight)
			caster := &render3d.RayCaster{
				Camera: PreviewCamera(plan),
				Lights: lights,
			}
			viewImage := render3d.NewImage(plan.PixelWidth, plan.PixelHeight)
			caster.Render(viewImage, object)
			imagePath := filepath.Join(outputDir, plan.View.String()+".png")
			essentials.Must(viewImage.Save(imagePath))
		}

		metaPath := filepath.Join(outputDir, plan.View.String()+".json")
		f, err := os.Create(metaPath)
		essentials.Must(err)
		essentials.Must(json.NewEncoder(f).Encode(plan))
		essentials.Must(f.Close())
	}

	log.Printf("Planned %d views in %s", len(ctx.Plans), outputDir)
}

func ReadMesh(path string) *model3d.Mesh {
	r, err := os.Open(path)
	essentials.Must(err)
	defer r.Close()

	triangles, err := model3d.ReadSTL(r)
	essentials.Must(err)
	return model3d.NewMeshTriangles(triangles)
}

func Objectify(mesh *model3d.Mesh, color model3d.Coord3D) render3d.Object {
	collider := model3d.MeshToCollider(mesh)
	return render3d.Objectify(
		collider,
		func(c model3d.Coord3D, rc model3d.RayCollision) render3d.Color {
			return render3d.NewColorRGB(color.X, color.Y, color.Z)
		},
	)
}

func WriteGlobalMetadata(outputDir string, ctx *printview.RenderContext) {
	globalMetadataPath := filepath.Join(outputDir, "metadata.json")
	f, err := os.Create(globalMetadataPath)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(json.NewEncoder(f).Encode(ctx))
}
