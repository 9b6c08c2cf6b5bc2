package printview

import "github.com/unixpickle/model3d/model3d"

// A SceneObject is an object whose transform the pipeline
// mutates. Every transform must be committed before the
// method returns, so that a following call to
// WorldBoundingBoxCorners reflects it.
type SceneObject interface {
	WorldBoundingBoxCorners() BoundingBox
	ApplyUniformScale(factor float64)
	ApplyTranslation(v model3d.Coord3D)
}

// MeshObject is a SceneObject backed by a triangle mesh.
// Transforms are baked into the vertices.
type MeshObject struct {
	Mesh *model3d.Mesh
}

// NewMeshObject wraps a mesh. The mesh is replaced, not
// modified, by later transforms.
func NewMeshObject(m *model3d.Mesh) *MeshObject {
	return &MeshObject{Mesh: m}
}

func (m *MeshObject) WorldBoundingBoxCorners() BoundingBox {
	return CornerBox(m.Mesh.Min(), m.Mesh.Max())
}

func (m *MeshObject) ApplyUniformScale(factor float64) {
	m.Mesh = m.Mesh.Scale(factor)
}

func (m *MeshObject) ApplyTranslation(v model3d.Coord3D) {
	m.Mesh = m.Mesh.Translate(v)
}

// FrameMesh creates a closed box the size of an envelope,
// centered at the origin. It is useful for checking a
// normalized mesh against its envelope in a viewer.
func FrameMesh(d Dimensions) *model3d.Mesh {
	half := d.Coord().Scale(0.5)
	return model3d.NewMeshRect(half.Scale(-1), half)
}
