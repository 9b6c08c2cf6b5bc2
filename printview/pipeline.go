package printview

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Stage is how far a Pipeline has transformed its object.
type Stage int

const (
	StageRaw Stage = iota
	StageScaled
	StageCentered
)

func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageScaled:
		return "scaled"
	case StageCentered:
		return "centered"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// A RenderContext carries the outcome of normalizing one
// object to the renderer.
type RenderContext struct {
	Result      NormalizationResult `json:"result"`
	Translation model3d.Coord3D     `json:"translation"`
	DPI         float64             `json:"dpi"`
	Plans       []*RenderPlan       `json:"plans"`
}

// A Pipeline normalizes a single SceneObject, moving it
// from StageRaw to StageScaled to StageCentered.
//
// Every step reads a fresh bounding box from the object,
// so a box from before a transform is never reused.
//
// A Pipeline exclusively owns its object until it reaches
// StageCentered, and is not safe for concurrent use.
type Pipeline struct {
	obj         SceneObject
	stage       Stage
	result      *NormalizationResult
	translation model3d.Coord3D
}

// NewPipeline creates a Pipeline for an untransformed
// object.
func NewPipeline(obj SceneObject) *Pipeline {
	return &Pipeline{obj: obj}
}

// Stage gets the current stage.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// Scale measures the object, solves for the scale that fits
// it into t, and applies it.
//
// If an error is returned, the object is left untouched.
func (p *Pipeline) Scale(t TargetEnvelope) (*NormalizationResult, error) {
	if err := p.expect(StageRaw); err != nil {
		return nil, err
	}
	extents, err := ExtentsOf(p.obj.WorldBoundingBoxCorners())
	if err != nil {
		return nil, err
	}
	result, err := SolveScale(extents, t)
	if err != nil {
		return nil, err
	}
	p.obj.ApplyUniformScale(result.ScaleFactor)
	p.result = result
	p.stage = StageScaled
	return result, nil
}

// Center re-measures the scaled object and translates it so
// that its bounding box centroid is at the origin.
//
// If the scaled object measures as flat, the scale is undone
// and the Pipeline returns to StageRaw.
func (p *Pipeline) Center() (model3d.Coord3D, error) {
	if err := p.expect(StageScaled); err != nil {
		return model3d.Coord3D{}, err
	}
	box := p.obj.WorldBoundingBoxCorners()
	if _, err := ExtentsOf(box); err != nil {
		p.obj.ApplyUniformScale(1 / p.result.ScaleFactor)
		p.result = nil
		p.stage = StageRaw
		return model3d.Coord3D{}, errors.Wrap(err, "after scaling")
	}
	p.translation = CenteringTranslation(box)
	p.obj.ApplyTranslation(p.translation)
	p.stage = StageCentered
	return p.translation, nil
}

// Plan computes the render plans for the normalized
// object. A nil views slice plans every view.
func (p *Pipeline) Plan(views []View, dpi float64) (*RenderContext, error) {
	if err := p.expect(StageCentered); err != nil {
		return nil, err
	}
	if views == nil {
		views = AllViews()
	}
	plans, err := PlanViews(views, p.result.FinalDimensions, dpi)
	if err != nil {
		return nil, err
	}
	return &RenderContext{
		Result:      *p.result,
		Translation: p.translation,
		DPI:         dpi,
		Plans:       plans,
	}, nil
}

func (p *Pipeline) expect(s Stage) error {
	if p.stage != s {
		return errors.Wrapf(ErrStage, "expected %s object but it is %s", s, p.stage)
	}
	return nil
}

// Normalize scales and centers obj to fit target, then
// plans views at the given dpi.
//
// All inputs are validated before obj is modified, so on
// error no transform has been applied.
func Normalize(obj SceneObject, target TargetEnvelope, views []View, dpi float64) (*RenderContext, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := checkDPI(dpi); err != nil {
		return nil, err
	}
	p := NewPipeline(obj)
	if _, err := p.Scale(target); err != nil {
		return nil, err
	}
	if _, err := p.Center(); err != nil {
		return nil, err
	}
	return p.Plan(views, dpi)
}
