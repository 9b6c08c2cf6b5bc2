package printview

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// A FitReport compares a normalized object against the
// envelope it was scaled into.
type FitReport struct {
	Extents   Extents
	Clearance Dimensions
	Offset    model3d.Coord3D

	// Contained is true if no axis exceeds the envelope by
	// more than the tolerance.
	Contained bool

	// Centered is true if the box centroid is within the
	// tolerance of the origin on every axis.
	Centered bool
}

// CheckFit measures box against an envelope. The tolerance
// is absolute, in millimeters.
func CheckFit(box BoundingBox, envelope Dimensions, epsilon float64) (*FitReport, error) {
	extents, err := ExtentsOf(box)
	if err != nil {
		return nil, err
	}
	res := &FitReport{
		Extents:   extents,
		Clearance: envelope.Sub(extents),
		Offset:    box.Centroid(),
		Contained: true,
	}
	for _, c := range res.Clearance.Array() {
		if c < -epsilon {
			res.Contained = false
		}
	}
	res.Centered = true
	for _, c := range res.Offset.Array() {
		if math.Abs(c) > epsilon {
			res.Centered = false
		}
	}
	return res, nil
}

// STLTolerance is the smallest CheckFit tolerance which
// accepts a mesh that went through an STL file, since STL
// stores vertices as float32.
func STLTolerance(envelope Dimensions) float64 {
	m := math.Max(math.Max(envelope.Width, envelope.Height), envelope.Depth)
	f := float32(m)
	ulp := float64(math.Nextafter32(f, float32(math.Inf(1))) - f)
	return 4 * ulp
}
