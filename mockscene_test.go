package halo

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Test double for the host capability set. Tracks every mesh and material
// the engine creates so cleanup properties can be asserted exactly.

type mockScene struct {
	nextID    uint64
	meshes    []*mockMesh
	materials []*mockMaterial

	hookID uint64
	hooks  map[uint64]func()

	failMesh     bool // CreateMesh refuses
	failMaterial bool // CreateMaterial refuses
}

func newMockScene() *mockScene {
	return &mockScene{hooks: make(map[uint64]func())}
}

func (s *mockScene) CreateMesh(name string, geom *Geometry) (Mesh, error) {
	if s.failMesh {
		return nil, errors.New("mock scene: mesh creation refused")
	}
	return s.addMesh(name, geom), nil
}

func (s *mockScene) CreateMaterial(name string) (Material, error) {
	if s.failMaterial {
		return nil, errors.New("mock scene: material creation refused")
	}
	m := &mockMaterial{name: name, color: Color{1, 1, 1, 1}, backFaceCulling: true}
	s.materials = append(s.materials, m)
	return m, nil
}

func (s *mockScene) OnBeforeRender(fn func()) func() {
	s.hookID++
	id := s.hookID
	s.hooks[id] = fn
	return func() { delete(s.hooks, id) }
}

func (s *mockScene) NodeCount() int {
	count := 0
	for _, m := range s.meshes {
		if !m.disposed {
			count++
		}
	}
	return count
}

// frame simulates one render tick: every registered before-render hook runs.
func (s *mockScene) frame() {
	for _, fn := range s.hooks {
		fn()
	}
}

func (s *mockScene) addMesh(name string, geom *Geometry) *mockMesh {
	s.nextID++
	m := &mockMesh{
		scene:     s,
		id:        s.nextID,
		name:      name,
		geom:      geom,
		transform: IdentityTransform(),
	}
	s.meshes = append(s.meshes, m)
	return m
}

func (s *mockScene) liveMaterialCount() int {
	count := 0
	for _, m := range s.materials {
		if !m.disposed {
			count++
		}
	}
	return count
}

type mockMesh struct {
	scene     *mockScene
	id        uint64
	name      string
	geom      *Geometry
	transform Transform
	group     int
	material  Material
	lods      []Mesh
	disposed  bool
}

func (m *mockMesh) ID() uint64                   { return m.id }
func (m *mockMesh) Name() string                 { return m.name }
func (m *mockMesh) Geometry() *Geometry          { return m.geom }
func (m *mockMesh) WorldTransform() Transform    { return m.transform }
func (m *mockMesh) SetWorldTransform(t Transform) { m.transform = t }
func (m *mockMesh) RenderGroup() int             { return m.group }
func (m *mockMesh) SetRenderGroup(group int)     { m.group = group }
func (m *mockMesh) SetMaterial(mat Material)     { m.material = mat }
func (m *mockMesh) LODLevels() []Mesh            { return m.lods }
func (m *mockMesh) Dispose()                     { m.disposed = true }
func (m *mockMesh) IsDisposed() bool             { return m.disposed }

type mockMaterial struct {
	name            string
	color           Color
	unlit           bool
	backFaceCulling bool
	renderBias      float64
	disposed        bool
}

func (m *mockMaterial) Color() Color              { return m.color }
func (m *mockMaterial) SetColor(c Color)          { m.color = c }
func (m *mockMaterial) Unlit() bool               { return m.unlit }
func (m *mockMaterial) SetUnlit(u bool)           { m.unlit = u }
func (m *mockMaterial) BackFaceCulling() bool     { return m.backFaceCulling }
func (m *mockMaterial) SetBackFaceCulling(c bool) { m.backFaceCulling = c }
func (m *mockMaterial) RenderBias() float64       { return m.renderBias }
func (m *mockMaterial) SetRenderBias(b float64)   { m.renderBias = b }
func (m *mockMaterial) Dispose()                  { m.disposed = true }
func (m *mockMaterial) IsDisposed() bool          { return m.disposed }

// triangleGeometry returns a single right triangle in the XY plane.
func triangleGeometry() *Geometry {
	return &Geometry{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
}

// unitBoxGeometry returns a unit cube spanning [-0.5, 0.5] on each axis,
// with only the corner vertices (bounds are what the tests care about).
func unitBoxGeometry() *Geometry {
	g := &Geometry{}
	for _, x := range []float32{-0.5, 0.5} {
		for _, y := range []float32{-0.5, 0.5} {
			for _, z := range []float32{-0.5, 0.5} {
				g.Positions = append(g.Positions, x, y, z)
			}
		}
	}
	g.Indices = []uint32{0, 1, 2}
	return g
}

// newSceneMesh adds a mesh with triangle geometry directly to the mock
// scene, as if the host had created it.
func newSceneMesh(s *mockScene, name string) *mockMesh {
	return s.addMesh(name, triangleGeometry())
}

// vec3Near reports whether two vectors match within a small epsilon.
func vec3Near(a, b mgl64.Vec3) bool {
	const eps = 1e-9
	return a.Sub(b).Len() < eps
}
