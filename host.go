package halo

import "github.com/go-gl/mathgl/mgl64"

// Transform is a decomposed world transform: translation, rotation, and
// per-axis scale. Halo copies transforms component-wise rather than as
// composed matrices, so a non-uniformly scaled source cannot shear its
// outline.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// IdentityTransform returns the identity transform (unit scale, no rotation).
func IdentityTransform() Transform {
	return Transform{Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// Mat4 composes the transform into a column-major matrix as T * R * S.
func (t Transform) Mat4() mgl64.Mat4 {
	m := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(t.Rotation.Mat4())
	return m.Mul4(mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// Mesh is the capability set halo needs from a host scene mesh. The engine
// holds Mesh references without owning them: the host remains free to dispose
// a mesh at any time, and the engine checks IsDisposed before touching one.
//
// Meshes created by the engine itself (outline duplicates) are obtained from
// [Scene.CreateMesh] and are exclusively owned by the engine.
type Mesh interface {
	// ID returns a scene-unique identity that remains stable across the
	// mesh's lifetime, including after disposal.
	ID() uint64
	Name() string

	// Geometry returns the mesh's triangle data, or nil if it has none.
	// Callers must not retain the returned buffers across frames; halo
	// snapshots them with Clone.
	Geometry() *Geometry

	// WorldTransform returns the mesh's current world-space transform.
	WorldTransform() Transform
	// SetWorldTransform moves the mesh so that its world-space transform
	// equals t, regardless of where it sits in the scene hierarchy.
	SetWorldTransform(t Transform)

	// RenderGroup is the draw-pass bucket the mesh is submitted in. Lower
	// groups draw first. Groups order draw submission only; they are
	// independent of spatial depth.
	RenderGroup() int
	SetRenderGroup(group int)

	// SetMaterial replaces the mesh's surface material.
	SetMaterial(m Material)

	// LODLevels returns the mesh's level-of-detail variants in activation
	// order, nearest first. Meshes without LOD return an empty slice.
	LODLevels() []Mesh

	Dispose()
	IsDisposed() bool
}

// Material is the capability set halo needs from a host material.
type Material interface {
	Color() Color
	SetColor(c Color)

	// Unlit materials ignore scene lighting and render flat color.
	Unlit() bool
	SetUnlit(unlit bool)

	// BackFaceCulling reports whether back faces are skipped. The outline
	// material disables culling so the silhouette stays visible from
	// inside concave regions.
	BackFaceCulling() bool
	SetBackFaceCulling(cull bool)

	// RenderBias is a small depth nudge applied at draw time, pushing the
	// surface away from the camera to avoid z-fighting with a coincident
	// surface. Zero means no bias.
	RenderBias() float64
	SetRenderBias(bias float64)

	Dispose()
	IsDisposed() bool
}

// Scene is the capability set halo needs from the host scene graph.
type Scene interface {
	// CreateMesh registers a new mesh node carrying the given geometry and
	// returns it. The caller owns the mesh and must Dispose it.
	CreateMesh(name string, geom *Geometry) (Mesh, error)

	// CreateMaterial registers a new material with host defaults.
	CreateMaterial(name string) (Material, error)

	// OnBeforeRender subscribes fn to run once per frame, before draw
	// submission. The returned cancel func removes the subscription and is
	// safe to call more than once.
	OnBeforeRender(fn func()) (cancel func())

	// NodeCount returns the number of live nodes registered in the scene.
	NodeCount() int
}
