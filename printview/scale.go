package printview

import (
	"math"

	"github.com/pkg/errors"
)

// A TargetEnvelope is a partial print envelope. A nil
// field leaves that axis free to follow the model's
// proportions.
type TargetEnvelope struct {
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Depth  *float64 `json:"depth,omitempty"`
}

// Float returns a pointer to x, for filling in a
// TargetEnvelope.
func Float(x float64) *float64 {
	return &x
}

// Get returns the requested size along an axis, and
// whether it was set at all.
func (t TargetEnvelope) Get(a Axis) (float64, bool) {
	var p *float64
	switch a {
	case Width:
		p = t.Width
	case Height:
		p = t.Height
	case Depth:
		p = t.Depth
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// Len returns the number of axes which are set.
func (t TargetEnvelope) Len() int {
	var n int
	for _, a := range Axes {
		if _, ok := t.Get(a); ok {
			n++
		}
	}
	return n
}

// Validate checks that at least one axis is set and that
// every set axis is positive.
func (t TargetEnvelope) Validate() error {
	if t.Len() == 0 {
		return errors.Wrap(ErrInvalidEnvelope, "at least one of width, height, or depth must be provided")
	}
	return t.validateSet()
}

func (t TargetEnvelope) validateSet() error {
	for _, a := range Axes {
		if v, ok := t.Get(a); ok && (!(v > 0) || math.IsInf(v, 1)) {
			return errors.Wrapf(ErrInvalidEnvelope, "block %s must be positive and finite, got %g", a, v)
		}
	}
	return nil
}

// NormalizationResult describes how a model is scaled into
// a TargetEnvelope.
type NormalizationResult struct {
	// FinalDimensions is the resolved envelope. Axes set in
	// the target are copied exactly, while free axes follow
	// the scaled model.
	FinalDimensions Dimensions `json:"final_dimensions"`

	// ScaledDimensions is the size of the model after
	// scaling, which never exceeds FinalDimensions.
	ScaledDimensions Dimensions `json:"scaled_dimensions"`

	ScaleFactor float64 `json:"scale_factor"`

	// BindingAxis is the set axis with the smallest ratio.
	// When no axis is set, it is Width and the scale is 1.
	BindingAxis Axis `json:"binding_axis"`
}

// Clearance returns the slack between the scaled model and
// the envelope on every axis.
func (n *NormalizationResult) Clearance() Dimensions {
	return n.FinalDimensions.Sub(n.ScaledDimensions)
}

// SolveScale finds the largest uniform scale at which a
// model of extents e fits inside every set axis of t.
//
// An empty target is a no-op with a scale of 1. Callers
// that require a target should check t.Validate() first.
func SolveScale(e Extents, t TargetEnvelope) (*NormalizationResult, error) {
	for _, a := range Axes {
		if !(e.Get(a) > 0) || math.IsInf(e.Get(a), 1) {
			return nil, errors.Wrapf(ErrDegenerateMesh, "model %s is %g, cannot scale", a, e.Get(a))
		}
	}
	if err := t.validateSet(); err != nil {
		return nil, err
	}

	res := &NormalizationResult{ScaleFactor: 1, BindingAxis: Width}
	if t.Len() > 0 {
		res.ScaleFactor = math.Inf(1)
		for _, a := range Axes {
			if v, ok := t.Get(a); ok {
				if r := v / e.Get(a); r < res.ScaleFactor {
					res.ScaleFactor = r
					res.BindingAxis = a
				}
			}
		}
	}

	if !(res.ScaleFactor > 0) || math.IsInf(res.ScaleFactor, 1) {
		return nil, errors.Wrapf(ErrInvalidEnvelope, "scale factor %g out of range", res.ScaleFactor)
	}

	// Rounding in E*(T/E) may land just above T.
	for _, a := range Axes {
		if v, ok := t.Get(a); ok {
			for e.Get(a)*res.ScaleFactor > v {
				res.ScaleFactor = math.Nextafter(res.ScaleFactor, 0)
			}
		}
	}

	res.ScaledDimensions = e.Scale(res.ScaleFactor)
	res.FinalDimensions = res.ScaledDimensions
	for _, a := range Axes {
		if v, ok := t.Get(a); ok {
			res.FinalDimensions.Set(a, v)
		}
	}
	for _, a := range Axes {
		if v := res.ScaledDimensions.Get(a); !(v > 0) || math.IsInf(v, 1) {
			return nil, errors.Wrapf(ErrInvalidEnvelope, "scaled model %s is %g", a, v)
		}
	}
	return res, nil
}
