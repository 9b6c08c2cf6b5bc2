// Package printview normalizes a mesh to fit inside a
// print envelope and plans orthographic views of it at a
// given print density.
//
// The envelope axes follow the print convention: width is
// the X axis, depth is the Y axis, and height is the Z
// axis. All lengths are in millimeters.
package printview

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// An Axis names one dimension of an envelope.
type Axis int

const (
	Width Axis = iota
	Height
	Depth
)

// Axes lists every Axis in canonical order.
var Axes = [3]Axis{Width, Height, Depth}

func (a Axis) String() string {
	switch a {
	case Width:
		return "width"
	case Height:
		return "height"
	case Depth:
		return "depth"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis parses the name of an Axis.
func ParseAxis(name string) (Axis, error) {
	for _, a := range Axes {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, errors.Errorf("unknown axis: %q", name)
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Dimensions is a resolved size for every Axis.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Extents is the size of a bounding box along each Axis.
type Extents = Dimensions

// DimensionsOf creates Dimensions from an X/Y/Z size
// vector.
func DimensionsOf(size model3d.Coord3D) Dimensions {
	return Dimensions{Width: size.X, Height: size.Z, Depth: size.Y}
}

// Get returns the size along an axis.
func (d Dimensions) Get(a Axis) float64 {
	switch a {
	case Width:
		return d.Width
	case Height:
		return d.Height
	case Depth:
		return d.Depth
	}
	panic("unknown axis: " + a.String())
}

// Set updates the size along an axis.
func (d *Dimensions) Set(a Axis, v float64) {
	switch a {
	case Width:
		d.Width = v
	case Height:
		d.Height = v
	case Depth:
		d.Depth = v
	default:
		panic("unknown axis: " + a.String())
	}
}

// Scale multiplies every axis by s.
func (d Dimensions) Scale(s float64) Dimensions {
	return Dimensions{Width: d.Width * s, Height: d.Height * s, Depth: d.Depth * s}
}

// Sub subtracts d1 from d on every axis.
func (d Dimensions) Sub(d1 Dimensions) Dimensions {
	return Dimensions{
		Width:  d.Width - d1.Width,
		Height: d.Height - d1.Height,
		Depth:  d.Depth - d1.Depth,
	}
}

// Coord returns the dimensions as an X/Y/Z size vector.
func (d Dimensions) Coord() model3d.Coord3D {
	return model3d.XYZ(d.Width, d.Depth, d.Height)
}

// Array returns the sizes in canonical Axes order.
func (d Dimensions) Array() [3]float64 {
	return [3]float64{d.Width, d.Height, d.Depth}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("{width: %g, height: %g, depth: %g}", d.Width, d.Height, d.Depth)
}

// ExtentsOf computes the extents of a bounding box.
//
// It fails with ErrDegenerateMesh if the box is flat along
// any axis.
func ExtentsOf(box BoundingBox) (Extents, error) {
	e := DimensionsOf(box.Max().Sub(box.Min()))
	for _, a := range Axes {
		v := e.Get(a)
		if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return e, errors.Wrapf(ErrDegenerateMesh, "model %s is %g", a, v)
		}
	}
	return e, nil
}
