package scene3d

import (
	"fmt"

	"github.com/phanxgames/halo"
)

// renderHook is one before-render subscription.
type renderHook struct {
	id uint64
	fn func()
}

// Scene owns the node tree, the camera, before-render subscriptions, and the
// render buffers. It implements the halo.Scene capability set.
type Scene struct {
	root   *Node
	camera *Camera

	hooks  []renderHook
	hookID uint64

	materials []*Material

	commands []renderCommand

	// ClearColor fills the screen before drawing.
	ClearColor halo.Color
}

// NewScene creates a scene with a pre-created root container and a default
// camera.
func NewScene() *Scene {
	return &Scene{
		root:       NewContainer("root"),
		camera:     NewCamera(),
		ClearColor: halo.Color{R: 0.08, G: 0.08, B: 0.12, A: 1},
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node { return s.root }

// Camera returns the scene's camera. Mutate its fields directly.
func (s *Scene) Camera() *Camera { return s.camera }

// Update fires before-render subscriptions, in registration order. Call once
// per frame before Draw so subscribers (such as halo's transform sync) run
// ahead of draw submission.
func (s *Scene) Update() {
	// Snapshot: a hook may cancel itself or register others while running.
	hooks := make([]renderHook, len(s.hooks))
	copy(hooks, s.hooks)
	for _, h := range hooks {
		h.fn()
	}
}

// CreateMesh registers a new mesh node under the scene root and returns it.
// Fails if the geometry is nil or has no vertices.
func (s *Scene) CreateMesh(name string, geom *halo.Geometry) (halo.Mesh, error) {
	if geom == nil || geom.VertexCount() == 0 {
		return nil, fmt.Errorf("scene3d: create mesh %q: geometry has no vertices", name)
	}
	n := NewMeshNode(name, geom)
	s.root.AddChild(n)
	return n, nil
}

// CreateMaterial registers a new material with scene defaults (white, lit,
// back-face culled).
func (s *Scene) CreateMaterial(name string) (halo.Material, error) {
	m := NewMaterial(name)
	s.materials = append(s.materials, m)
	return m, nil
}

// OnBeforeRender subscribes fn to run during Update, before draw submission.
// The returned cancel func removes the subscription; calling it more than
// once is safe.
func (s *Scene) OnBeforeRender(fn func()) (cancel func()) {
	s.hookID++
	id := s.hookID
	s.hooks = append(s.hooks, renderHook{id: id, fn: fn})
	return func() {
		for i, h := range s.hooks {
			if h.id == id {
				s.hooks = append(s.hooks[:i], s.hooks[i+1:]...)
				return
			}
		}
	}
}

// NodeCount returns the number of live nodes in the tree, excluding the
// root container.
func (s *Scene) NodeCount() int {
	return countDescendants(s.root)
}

// MaterialCount returns the number of created materials not yet disposed.
func (s *Scene) MaterialCount() int {
	count := 0
	for _, m := range s.materials {
		if !m.disposed {
			count++
		}
	}
	return count
}

func countDescendants(n *Node) int {
	count := len(n.children)
	for _, child := range n.children {
		count += countDescendants(child)
	}
	return count
}
