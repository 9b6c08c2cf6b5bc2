package printview

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

const (
	// DefaultDPI is the print density used when none is
	// requested.
	DefaultDPI = 300.0

	MillimetersPerInch = 25.4

	maxPixels = 1 << (bits.UintSize - 1)
)

// PixelSize converts a physical length to a pixel count at
// the given density, truncating any partial pixel.
//
// It fails with ErrInvalidSize if the count is negative or
// does not fit in an int.
func PixelSize(mm, dpi float64) (int, error) {
	if err := checkDPI(dpi); err != nil {
		return 0, err
	}
	px := math.Floor(mm * dpi / MillimetersPerInch)
	if !(px >= 0) || px >= maxPixels {
		return 0, errors.Wrapf(ErrInvalidSize, "%gmm at %g dpi", mm, dpi)
	}
	return int(px), nil
}

func checkDPI(dpi float64) error {
	if !(dpi > 0) || math.IsInf(dpi, 1) {
		return errors.Wrapf(ErrInvalidDPI, "dpi must be positive, got %g", dpi)
	}
	return nil
}

// A RenderPlan is everything a renderer needs to produce
// one view: the camera, its projection extent, and the
// image resolution.
type RenderPlan struct {
	View View `json:"view"`

	Position model3d.Coord3D `json:"position"`
	Rotation model3d.Coord3D `json:"rotation"`
	Forward  model3d.Coord3D `json:"forward"`
	Up       model3d.Coord3D `json:"up"`

	OrthoScale float64 `json:"ortho_scale"`

	WidthMM     float64 `json:"width_mm"`
	HeightMM    float64 `json:"height_mm"`
	PixelWidth  int     `json:"pixel_width"`
	PixelHeight int     `json:"pixel_height"`
}

// PlanView computes the RenderPlan for one view of an
// envelope.
func PlanView(v View, d Dimensions, dpi float64) (*RenderPlan, error) {
	spec := v.Spec()
	widthMM, heightMM := spec.RenderSize(d)
	pixelWidth, err := PixelSize(widthMM, dpi)
	if err != nil {
		return nil, err
	}
	pixelHeight, err := PixelSize(heightMM, dpi)
	if err != nil {
		return nil, err
	}
	return &RenderPlan{
		View:        v,
		Position:    spec.Position,
		Rotation:    spec.Rotation,
		Forward:     spec.Forward(),
		Up:          spec.Up(),
		OrthoScale:  spec.OrthoScale(d),
		WidthMM:     widthMM,
		HeightMM:    heightMM,
		PixelWidth:  pixelWidth,
		PixelHeight: pixelHeight,
	}, nil
}

// PlanViews plans every view in views. Either every plan is
// returned, or none are.
func PlanViews(views []View, d Dimensions, dpi float64) ([]*RenderPlan, error) {
	if err := checkDPI(dpi); err != nil {
		return nil, err
	}
	res := make([]*RenderPlan, 0, len(views))
	for _, v := range views {
		plan, err := PlanView(v, d, dpi)
		if err != nil {
			return nil, errors.Wrapf(err, "plan %s view", v)
		}
		res = append(res, plan)
	}
	return res, nil
}
