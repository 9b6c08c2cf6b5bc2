package printview

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// CameraDistance is how far each view camera sits from the
// origin. Orthographic framing does not depend on it, it
// only has to clear the largest supported model.
const CameraDistance = 200.0

// A View is one of the fixed orthographic views.
type View int

const (
	Front View = iota
	Back
	Left
	Right
	Top
)

// A ViewSpec is the fixed camera placement for a View and
// the envelope axes that span its image.
type ViewSpec struct {
	Name string

	Position model3d.Coord3D

	// Rotation holds XYZ Euler angles in radians, applied to
	// a camera which looks down -Z with +Y up.
	Rotation model3d.Coord3D

	WidthAxis  Axis
	HeightAxis Axis
}

var viewSpecs = [...]ViewSpec{
	Front: {
		Name:       "front",
		Position:   model3d.XYZ(0, CameraDistance, 0),
		Rotation:   model3d.XYZ(math.Pi/2, 0, math.Pi),
		WidthAxis:  Width,
		HeightAxis: Height,
	},
	Back: {
		Name:       "back",
		Position:   model3d.XYZ(0, -CameraDistance, 0),
		Rotation:   model3d.XYZ(math.Pi/2, 0, 0),
		WidthAxis:  Width,
		HeightAxis: Height,
	},
	Left: {
		Name:       "left",
		Position:   model3d.XYZ(CameraDistance, 0, 0),
		Rotation:   model3d.XYZ(math.Pi/2, 0, math.Pi/2),
		WidthAxis:  Depth,
		HeightAxis: Height,
	},
	Right: {
		Name:       "right",
		Position:   model3d.XYZ(-CameraDistance, 0, 0),
		Rotation:   model3d.XYZ(math.Pi/2, 0, -math.Pi/2),
		WidthAxis:  Depth,
		HeightAxis: Height,
	},
	Top: {
		Name:       "top",
		Position:   model3d.XYZ(0, 0, CameraDistance),
		Rotation:   model3d.XYZ(0, 0, 0),
		WidthAxis:  Width,
		HeightAxis: Depth,
	},
}

// AllViews returns every View in rendering order.
func AllViews() []View {
	res := make([]View, len(viewSpecs))
	for i := range res {
		res[i] = View(i)
	}
	return res
}

// ParseView looks up a View by name.
func ParseView(name string) (View, error) {
	for i, spec := range viewSpecs {
		if spec.Name == name {
			return View(i), nil
		}
	}
	return 0, errors.Errorf("unknown view: %q", name)
}

// ParseViews parses a comma-separated list of view names.
// Duplicates are rejected.
func ParseViews(list string) ([]View, error) {
	var res []View
	seen := map[View]bool{}
	for _, name := range strings.Split(list, ",") {
		v, err := ParseView(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		if seen[v] {
			return nil, errors.Errorf("duplicate view: %q", v)
		}
		seen[v] = true
		res = append(res, v)
	}
	return res, nil
}

// Spec returns the placement of the view.
func (v View) Spec() ViewSpec {
	if v < 0 || int(v) >= len(viewSpecs) {
		panic(fmt.Sprintf("unknown view: %d", int(v)))
	}
	return viewSpecs[v]
}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewSpecs) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewSpecs[v].Name
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Forward gets the unit direction the camera looks in.
func (v ViewSpec) Forward() model3d.Coord3D {
	return v.orient(model3d.XYZ(0, 0, -1))
}

// Up gets the unit direction of the top of the image.
func (v ViewSpec) Up() model3d.Coord3D {
	return v.orient(model3d.XYZ(0, 1, 0))
}

// Right gets the unit direction of the right edge of the
// image.
func (v ViewSpec) Right() model3d.Coord3D {
	return v.orient(model3d.XYZ(1, 0, 0))
}

func (v ViewSpec) orient(c model3d.Coord3D) model3d.Coord3D {
	c = model3d.Rotation(model3d.XYZ(1, 0, 0), v.Rotation.X).Apply(c)
	c = model3d.Rotation(model3d.XYZ(0, 1, 0), v.Rotation.Y).Apply(c)
	return model3d.Rotation(model3d.XYZ(0, 0, 1), v.Rotation.Z).Apply(c)
}

// RenderSize gets the physical width and height of the
// view's image for an envelope.
func (v ViewSpec) RenderSize(d Dimensions) (width, height float64) {
	return d.Get(v.WidthAxis), d.Get(v.HeightAxis)
}

// OrthoScale gets the orthographic projection extent which
// keeps the whole envelope in frame. The smaller image axis
// gets proportionally more margin.
func (v ViewSpec) OrthoScale(d Dimensions) float64 {
	return math.Max(v.RenderSize(d))
}
