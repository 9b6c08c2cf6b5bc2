package printview

import "github.com/unixpickle/model3d/model3d"

// A BoundingBox is the eight world-space corners of an
// object's bounds. The corners need not be axis-aligned
// with respect to each other, only the min and max over
// all of them matter.
type BoundingBox [8]model3d.Coord3D

// CornerBox creates the eight corners of the axis-aligned
// box spanning min to max.
func CornerBox(min, max model3d.Coord3D) BoundingBox {
	var res BoundingBox
	for i := range res {
		c := min
		if i&1 != 0 {
			c.X = max.X
		}
		if i&2 != 0 {
			c.Y = max.Y
		}
		if i&4 != 0 {
			c.Z = max.Z
		}
		res[i] = c
	}
	return res
}

// Min gets the component-wise minimum over the corners.
func (b BoundingBox) Min() model3d.Coord3D {
	res := b[0]
	for _, c := range b[1:] {
		res = res.Min(c)
	}
	return res
}

// Max gets the component-wise maximum over the corners.
func (b BoundingBox) Max() model3d.Coord3D {
	res := b[0]
	for _, c := range b[1:] {
		res = res.Max(c)
	}
	return res
}

// Centroid gets the arithmetic mean of the corners.
func (b BoundingBox) Centroid() model3d.Coord3D {
	var sum model3d.Coord3D
	for _, c := range b {
		sum = sum.Add(c)
	}
	return sum.Scale(1.0 / float64(len(b)))
}

// CenteringTranslation computes the translation which
// moves the centroid of b to the origin.
//
// The box must be fetched after any scale was applied to
// the object, since a stale box has the wrong centroid.
func CenteringTranslation(b BoundingBox) model3d.Coord3D {
	return b.Centroid().Scale(-1)
}
