package printview_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/print-views/printview"
)

// recordingObject is an axis-aligned box which logs every
// call made on it.
type recordingObject struct {
	min, max model3d.Coord3D
	calls    []string
}

func newRecordingObject(min, max model3d.Coord3D) *recordingObject {
	return &recordingObject{min: min, max: max}
}

func (r *recordingObject) WorldBoundingBoxCorners() printview.BoundingBox {
	r.calls = append(r.calls, "bounds")
	return printview.CornerBox(r.min, r.max)
}

func (r *recordingObject) ApplyUniformScale(factor float64) {
	r.calls = append(r.calls, "scale")
	r.min = r.min.Scale(factor)
	r.max = r.max.Scale(factor)
}

func (r *recordingObject) ApplyTranslation(v model3d.Coord3D) {
	r.calls = append(r.calls, "translate")
	r.min = r.min.Add(v)
	r.max = r.max.Add(v)
}

func TestNormalizeMesh(t *testing.T) {
	mesh := model3d.NewMeshRect(model3d.XYZ(10, 20, 30), model3d.XYZ(60, 50, 110))
	obj := printview.NewMeshObject(mesh)

	ctx, err := printview.Normalize(obj, printview.TargetEnvelope{Width: printview.Float(100)},
		nil, printview.DefaultDPI)
	if err != nil {
		t.Fatal(err)
	}

	if ctx.Result.ScaleFactor != 2 {
		t.Errorf("expected scale 2 but got %f", ctx.Result.ScaleFactor)
	}
	expected := printview.Dimensions{Width: 100, Height: 160, Depth: 60}
	if ctx.Result.FinalDimensions != expected {
		t.Errorf("expected %v but got %v", expected, ctx.Result.FinalDimensions)
	}

	center := obj.Mesh.Min().Mid(obj.Mesh.Max())
	if center.Norm() > 1e-9 {
		t.Errorf("mesh should be centered but center is %v", center)
	}
	size := obj.Mesh.Max().Sub(obj.Mesh.Min())
	if size.Dist(expected.Coord()) > 1e-9 {
		t.Errorf("expected size %v but got %v", expected.Coord(), size)
	}

	if len(ctx.Plans) != 5 {
		t.Fatalf("expected 5 plans but got %d", len(ctx.Plans))
	}
	front := ctx.Plans[0]
	if front.View != printview.Front || front.OrthoScale != 160 ||
		front.PixelWidth != 1181 || front.PixelHeight != 1889 {
		t.Errorf("unexpected front plan: %+v", front)
	}
	if top := ctx.Plans[4]; top.View != printview.Top || top.OrthoScale != 100 {
		t.Errorf("unexpected top plan: %+v", top)
	}
}

func TestPipelineFreshBounds(t *testing.T) {
	obj := newRecordingObject(model3d.XYZ(1, 1, 1), model3d.XYZ(3, 5, 9))
	p := printview.NewPipeline(obj)
	if p.Stage() != printview.StageRaw {
		t.Fatalf("unexpected stage %s", p.Stage())
	}
	if _, err := p.Scale(printview.TargetEnvelope{Height: printview.Float(4)}); err != nil {
		t.Fatal(err)
	}
	tr, err := p.Center()
	if err != nil {
		t.Fatal(err)
	}
	if p.Stage() != printview.StageCentered {
		t.Fatalf("unexpected stage %s", p.Stage())
	}

	expectedCalls := []string{"bounds", "scale", "bounds", "translate"}
	if len(obj.calls) != len(expectedCalls) {
		t.Fatalf("expected calls %v but got %v", expectedCalls, obj.calls)
	}
	for i, c := range expectedCalls {
		if obj.calls[i] != c {
			t.Errorf("call %d: expected %s but got %s", i, c, obj.calls[i])
		}
	}

	// Scaled by 0.5, the box spans (0.5, 0.5, 0.5) to (1.5, 2.5, 4.5).
	expectedTr := model3d.XYZ(-1, -1.5, -2.5)
	if tr.Dist(expectedTr) > 1e-12 {
		t.Errorf("expected translation %v but got %v", expectedTr, tr)
	}
	if c := obj.min.Mid(obj.max); c.Norm() > 1e-12 {
		t.Errorf("object not centered: %v", c)
	}
}

func TestPipelineOrder(t *testing.T) {
	obj := newRecordingObject(model3d.Coord3D{}, model3d.XYZ(1, 1, 1))
	p := printview.NewPipeline(obj)
	if _, err := p.Center(); !errors.Is(err, printview.ErrStage) {
		t.Errorf("center before scale: unexpected error %v", err)
	}
	if _, err := p.Plan(nil, 300); !errors.Is(err, printview.ErrStage) {
		t.Errorf("plan before center: unexpected error %v", err)
	}
	if _, err := p.Scale(printview.TargetEnvelope{Width: printview.Float(2)}); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Scale(printview.TargetEnvelope{Width: printview.Float(2)}); !errors.Is(err, printview.ErrStage) {
		t.Errorf("scale twice: unexpected error %v", err)
	}
	if len(obj.calls) != 2 {
		t.Errorf("out of order steps touched the object: %v", obj.calls)
	}
}

func TestNormalizeErrorsLeaveObject(t *testing.T) {
	good := printview.TargetEnvelope{Depth: printview.Float(5)}
	cases := []struct {
		name   string
		max    model3d.Coord3D
		target printview.TargetEnvelope
		dpi    float64
		err    error
	}{
		{"Degenerate", model3d.XYZ(1, 1, 0), good, 300, printview.ErrDegenerateMesh},
		{"EmptyEnvelope", model3d.XYZ(1, 1, 1), printview.TargetEnvelope{}, 300, printview.ErrInvalidEnvelope},
		{"ZeroAxis", model3d.XYZ(1, 1, 1), printview.TargetEnvelope{Width: printview.Float(0)}, 300,
			printview.ErrInvalidEnvelope},
		{"ZeroDPI", model3d.XYZ(1, 1, 1), good, 0, printview.ErrInvalidDPI},
		{"NegativeDPI", model3d.XYZ(1, 1, 1), good, -1, printview.ErrInvalidDPI},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			obj := newRecordingObject(model3d.Coord3D{}, c.max)
			ctx, err := printview.Normalize(obj, c.target, nil, c.dpi)
			if !errors.Is(err, c.err) {
				t.Errorf("expected %v but got %v", c.err, err)
			}
			if ctx != nil {
				t.Error("expected no render context")
			}
			for _, call := range obj.calls {
				if call != "bounds" {
					t.Errorf("object was transformed: %v", obj.calls)
					break
				}
			}
		})
	}
}

func TestFrameMesh(t *testing.T) {
	d := printview.Dimensions{Width: 100, Height: 160, Depth: 60}
	frame := printview.FrameMesh(d)
	if frame.Max().Dist(model3d.XYZ(50, 30, 80)) > 1e-12 {
		t.Errorf("unexpected frame max %v", frame.Max())
	}
	if frame.Min().Dist(model3d.XYZ(-50, -30, -80)) > 1e-12 {
		t.Errorf("unexpected frame min %v", frame.Min())
	}
}

func TestCheckFit(t *testing.T) {
	envelope := printview.Dimensions{Width: 100, Height: 160, Depth: 60}

	box := printview.CornerBox(model3d.XYZ(-50, -20, -80), model3d.XYZ(50, 20, 80))
	report, err := printview.CheckFit(box, envelope, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if !report.Contained || !report.Centered {
		t.Errorf("expected centered and contained: %+v", report)
	}
	if report.Clearance.Depth != 20 || report.Clearance.Width != 0 {
		t.Errorf("unexpected clearance %v", report.Clearance)
	}

	box = printview.CornerBox(model3d.XYZ(-40, -20, -70), model3d.XYZ(70, 20, 90))
	report, err = printview.CheckFit(box, envelope, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if report.Contained || report.Centered {
		t.Errorf("expected off-center overflow: %+v", report)
	}
}

// flatteningObject measures as flat once it has been scaled.
type flatteningObject struct {
	recordingObject
	scales []float64
}

func (f *flatteningObject) WorldBoundingBoxCorners() printview.BoundingBox {
	box := f.recordingObject.WorldBoundingBoxCorners()
	if len(f.scales)%2 == 1 {
		box = printview.CornerBox(f.min, model3d.XYZ(f.max.X, f.max.Y, f.min.Z))
	}
	return box
}

func (f *flatteningObject) ApplyUniformScale(factor float64) {
	f.scales = append(f.scales, factor)
	f.recordingObject.ApplyUniformScale(factor)
}

func TestPipelineUndoesFlatScale(t *testing.T) {
	obj := &flatteningObject{recordingObject: *newRecordingObject(model3d.Coord3D{},
		model3d.XYZ(2, 2, 2))}
	_, err := printview.Normalize(obj, printview.TargetEnvelope{Width: printview.Float(8)}, nil, 300)
	if !errors.Is(err, printview.ErrDegenerateMesh) {
		t.Fatalf("expected degenerate mesh but got %v", err)
	}
	if len(obj.scales) != 2 || obj.scales[0] != 4 || obj.scales[1] != 0.25 {
		t.Errorf("expected scale to be undone but got scales %v", obj.scales)
	}
	if obj.max != model3d.XYZ(2, 2, 2) {
		t.Errorf("object not restored: max is %v", obj.max)
	}
	for _, call := range obj.calls {
		if call == "translate" {
			t.Errorf("object was translated: %v", obj.calls)
		}
	}
}

func TestCheckFitAfterSTL(t *testing.T) {
	gen := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		min := model3d.XYZ(gen.Float64()*100-50, gen.Float64()*100-50, gen.Float64()*100-50)
		size := model3d.XYZ(gen.Float64()*100+1, gen.Float64()*100+1, gen.Float64()*100+1)
		obj := printview.NewMeshObject(model3d.NewMeshRect(min, min.Add(size)))
		ctx, err := printview.Normalize(obj, printview.TargetEnvelope{Height: printview.Float(157.3)},
			nil, 300)
		if err != nil {
			t.Fatal(err)
		}

		var buf bytes.Buffer
		if err := model3d.WriteSTL(&buf, obj.Mesh.TriangleSlice()); err != nil {
			t.Fatal(err)
		}
		triangles, err := model3d.ReadSTL(&buf)
		if err != nil {
			t.Fatal(err)
		}
		loaded := printview.NewMeshObject(model3d.NewMeshTriangles(triangles))

		envelope := ctx.Result.FinalDimensions
		report, err := printview.CheckFit(loaded.WorldBoundingBoxCorners(), envelope,
			printview.STLTolerance(envelope))
		if err != nil {
			t.Fatal(err)
		}
		if !report.Contained || !report.Centered {
			t.Fatalf("case %d: saved mesh rejected: clearance %v, offset %v", i, report.Clearance,
				report.Offset)
		}
	}
}

func TestSTLTolerance(t *testing.T) {
	small := printview.STLTolerance(printview.Dimensions{Width: 1, Height: 1, Depth: 1})
	large := printview.STLTolerance(printview.Dimensions{Width: 10, Height: 1000, Depth: 10})
	if !(small > 0) || !(large > small) {
		t.Errorf("unexpected tolerances %g, %g", small, large)
	}
	if large > 1e-3 {
		t.Errorf("tolerance %g too loose for a 1m envelope", large)
	}
}
