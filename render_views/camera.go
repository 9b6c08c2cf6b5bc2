package main

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/print-views/printview"
)

// previewDistance is how far away the preview camera sits,
// in multiples of the ortho scale. The further away, the
// closer a perspective camera gets to orthographic.
const previewDistance = 100.0

// PreviewCamera approximates the orthographic camera of a
// plan with a distant, narrow perspective camera, since
// render3d only has perspective cameras.
func PreviewCamera(plan *printview.RenderPlan) *render3d.Camera {
	dist := previewDistance * plan.OrthoScale
	return &render3d.Camera{
		Origin:      plan.Forward.Scale(-dist),
		ScreenX:     plan.View.Spec().Right(),
		ScreenY:     plan.Up.Scale(-1),
		FieldOfView: 2 * math.Atan(plan.OrthoScale/(2*dist)),
	}
}

// A previewLight is an area light from the print setup,
// reduced to a point light.
type previewLight struct {
	Origin model3d.Coord3D

	// Energy is relative to the key light.
	Energy float64
}

var previewLights = []previewLight{
	{Origin: model3d.XYZ(100, -100, 100), Energy: 1},     // key
	{Origin: model3d.XYZ(0, 100, 50), Energy: 0.5},       // fill
	{Origin: model3d.XYZ(-100, -100, 100), Energy: 0.25}, // rim
}

// PreviewLights creates the key, fill and rim lights,
// pushed out far enough to clear an object of the given
// size.
func PreviewLights(size printview.Dimensions, brightness float64) []*render3d.PointLight {
	c := size.Coord()
	scale := math.Max(1, math.Max(math.Max(c.X, c.Y), c.Z)/100)
	res := make([]*render3d.PointLight, len(previewLights))
	for i, l := range previewLights {
		res[i] = &render3d.PointLight{
			Origin: l.Origin.Scale(scale),
			Color:  render3d.NewColor(brightness * l.Energy),
		}
	}
	return res
}
