package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/print-views/printview"
)

// A VectorFlag is a flag.Value for an RGB color or other
// comma-delimited 3D vector, e.g. "0.7, 0.7, 0.7".
type VectorFlag struct {
	Value model3d.Coord3D
}

func (v *VectorFlag) String() string {
	var parts [3]string
	for i, x := range v.Value.Array() {
		parts[i] = strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strings.Join(parts[:], ",")
}

func (v *VectorFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("vector does not have exactly two commas: %s", s)
	}
	var res [3]float64
	for i, x := range parts {
		f, err := parseNumber(x)
		if err != nil {
			return fmt.Errorf("invalid component in vector '%s': %s", s, err.Error())
		}
		res[i] = f
	}
	v.Value = model3d.NewCoord3DArray(res)
	return nil
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number '%s'", s)
	}
	return f, nil
}

// An OptionalFloatFlag is a flag.Value for a number which
// may be left out entirely. Value is nil until the flag is
// passed.
type OptionalFloatFlag struct {
	Value *float64
}

func (o *OptionalFloatFlag) String() string {
	if o.Value == nil {
		return ""
	}
	return strconv.FormatFloat(*o.Value, 'f', -1, 64)
}

func (o *OptionalFloatFlag) Set(s string) error {
	f, err := parseNumber(s)
	if err != nil {
		return err
	}
	o.Value = &f
	return nil
}

// A ViewsFlag is a flag.Value for a comma-separated list of
// view names, e.g. "front,top".
type ViewsFlag struct {
	Views []printview.View
}

func (v *ViewsFlag) String() string {
	names := make([]string, len(v.Views))
	for i, view := range v.Views {
		names[i] = view.String()
	}
	return strings.Join(names, ",")
}

func (v *ViewsFlag) Set(s string) error {
	views, err := printview.ParseViews(s)
	if err != nil {
		return err
	}
	v.Views = views
	return nil
}
