package printview

import "github.com/pkg/errors"

var (
	// ErrDegenerateMesh is returned when a bounding box has
	// zero size along at least one axis, which would make
	// the scale factor undefined.
	ErrDegenerateMesh = errors.New("degenerate mesh")

	// ErrInvalidEnvelope is returned when no target axis is
	// set, or when a set axis is not positive.
	ErrInvalidEnvelope = errors.New("invalid target envelope")

	// ErrInvalidDPI is returned for a non-positive print
	// density.
	ErrInvalidDPI = errors.New("invalid dpi")

	// ErrInvalidSize is returned when a length has no valid
	// pixel count.
	ErrInvalidSize = errors.New("invalid render size")

	// ErrStage is returned when a Pipeline step is run out
	// of order.
	ErrStage = errors.New("pipeline step out of order")
)
