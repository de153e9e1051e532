package halo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSyncCopiesWorldTransform(t *testing.T) {
	s := newMockScene()
	src := newSceneMesh(s, "hero")
	src.transform = Transform{
		Position: mgl64.Vec3{10, -4, 2},
		Rotation: mgl64.QuatRotate(0.5, mgl64.Vec3{0, 1, 0}),
		Scale:    mgl64.Vec3{2, 2, 2},
	}
	mat, _ := newOutlineMaterial(s, DefaultColor)
	d, _ := duplicateMesh(s, src, mat, -1)

	syncTransforms(src, []*duplicate{d}, 1.5)

	got := d.mesh.WorldTransform()
	if !vec3Near(got.Position, src.transform.Position) {
		t.Errorf("Position = %v, want %v", got.Position, src.transform.Position)
	}
	if got.Rotation != src.transform.Rotation {
		t.Errorf("Rotation = %v, want %v", got.Rotation, src.transform.Rotation)
	}
	if !vec3Near(got.Scale, mgl64.Vec3{3, 3, 3}) {
		t.Errorf("Scale = %v, want (3, 3, 3)", got.Scale)
	}
}

func TestSyncHandlesNonUniformScale(t *testing.T) {
	s := newMockScene()
	src := newSceneMesh(s, "stretched")
	src.transform.Scale = mgl64.Vec3{1, 4, 0.5}
	mat, _ := newOutlineMaterial(s, DefaultColor)
	d, _ := duplicateMesh(s, src, mat, -1)

	syncTransforms(src, []*duplicate{d}, 2)

	// Each axis scales by the same factor; the outline stays proportional
	// to the source instead of shearing.
	if got := d.mesh.WorldTransform().Scale; !vec3Near(got, mgl64.Vec3{2, 8, 1}) {
		t.Errorf("Scale = %v, want (2, 8, 1)", got)
	}
}

func TestSyncConcentricity(t *testing.T) {
	// The outline's world bounding box must stay centered on the source's
	// pivot for any thickness and any world position.
	s := newMockScene()
	src := s.addMesh("box", unitBoxGeometry())
	mat, _ := newOutlineMaterial(s, DefaultColor)
	d, _ := duplicateMesh(s, src, mat, -1)

	positions := []mgl64.Vec3{{0, 0, 0}, {100, -3, 7}, {-0.5, 2000, 1}}
	for _, pos := range positions {
		src.transform.Position = pos
		syncTransforms(src, []*duplicate{d}, 1.8)

		tr := d.mesh.WorldTransform()
		min, max := d.mesh.Geometry().Bounds()
		worldMin := tr.Mat4().Mul4x1(min.Vec4(1)).Vec3()
		worldMax := tr.Mat4().Mul4x1(max.Vec4(1)).Vec3()
		center := worldMin.Add(worldMax).Mul(0.5)
		if !vec3Near(center, pos) {
			t.Errorf("outline center = %v at pivot %v, want coincident", center, pos)
		}
		// Extent scales by exactly the thickness factor.
		if got := worldMax.Sub(worldMin); !vec3Near(got, mgl64.Vec3{1.8, 1.8, 1.8}) {
			t.Errorf("outline extent = %v, want (1.8, 1.8, 1.8)", got)
		}
	}
}

func TestSyncThicknessNotCompounded(t *testing.T) {
	s := newMockScene()
	src := newSceneMesh(s, "hero")
	src.transform.Scale = mgl64.Vec3{1, 1, 1}
	mat, _ := newOutlineMaterial(s, DefaultColor)
	d, _ := duplicateMesh(s, src, mat, -1)

	for i := 0; i < 5; i++ {
		syncTransforms(src, []*duplicate{d}, 1.1)
	}
	if got := d.mesh.WorldTransform().Scale; !vec3Near(got, mgl64.Vec3{1.1, 1.1, 1.1}) {
		t.Errorf("Scale after repeated sync = %v, want (1.1, 1.1, 1.1)", got)
	}
}

func TestSyncToleratesDisposedSource(t *testing.T) {
	s := newMockScene()
	src := newSceneMesh(s, "hero")
	mat, _ := newOutlineMaterial(s, DefaultColor)
	d, _ := duplicateMesh(s, src, mat, -1)

	src.Dispose()
	before := d.mesh.WorldTransform()
	syncTransforms(src, []*duplicate{d}, 1.5)
	if got := d.mesh.WorldTransform(); got != before {
		t.Error("sync against a disposed source must leave duplicates untouched")
	}
	syncTransforms(nil, []*duplicate{d}, 1.5) // nil target is a no-op too
}
