package scene3d

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/halo"
)

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeMesh                      // renders triangle geometry
)

// nodeIDCounter is a plain counter (no atomic — scene3d is single-threaded).
var nodeIDCounter uint64

func nextNodeID() uint64 {
	nodeIDCounter++
	return nodeIDCounter
}

// lodLevel pairs an activation distance with the mesh node whose geometry
// substitutes for the base geometry at that distance.
type lodLevel struct {
	distance float64
	mesh     *Node
}

// Node is the scene graph element. A single flat struct covers containers
// and meshes to avoid interface dispatch on the render path. Node implements
// the halo.Mesh capability set.
type Node struct {
	id   uint64
	name string
	typ  NodeType

	parent   *Node
	children []*Node

	// local is the node's transform relative to its parent.
	local halo.Transform

	Visible bool

	renderGroup int

	// Mesh fields (NodeTypeMesh)
	geom     *halo.Geometry
	material halo.Material
	lods     []lodLevel // sorted by ascending distance
	isLOD    bool       // true when registered as another mesh's LOD level

	disposed bool
}

func nodeDefaults(n *Node) {
	n.id = nextNodeID()
	n.local = halo.IdentityTransform()
	n.Visible = true
}

// NewContainer creates a detached container node with no visual output.
func NewContainer(name string) *Node {
	n := &Node{name: name, typ: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewMeshNode creates a detached mesh node carrying the given geometry.
// The node renders with the default material until SetMaterial is called.
func NewMeshNode(name string, geom *halo.Geometry) *Node {
	n := &Node{name: name, typ: NodeTypeMesh, geom: geom}
	nodeDefaults(n)
	return n
}

// ID returns the node's scene-unique identity. It is stable for the node's
// whole lifetime, including after disposal.
func (n *Node) ID() uint64 { return n.id }

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Type returns the node's type.
func (n *Node) Type() NodeType { return n.typ }

// Geometry returns the node's triangle data, or nil for containers.
func (n *Node) Geometry() *halo.Geometry { return n.geom }

// RenderGroup returns the node's draw-pass bucket. Lower groups draw first.
func (n *Node) RenderGroup() int { return n.renderGroup }

// SetRenderGroup assigns the node's draw-pass bucket.
func (n *Node) SetRenderGroup(group int) { n.renderGroup = group }

// Material returns the node's material, or nil if none was set.
func (n *Node) Material() halo.Material { return n.material }

// SetMaterial replaces the node's surface material.
func (n *Node) SetMaterial(m halo.Material) { n.material = m }

// --- LOD ---

// AddLODLevel registers mesh as a level-of-detail variant that substitutes
// for this node's geometry once the camera is at least distance away. The
// variant node stops rendering on its own; its geometry is drawn in place of
// the base geometry with the base node's transform and render group.
// Panics if either node is not a mesh node.
func (n *Node) AddLODLevel(distance float64, mesh *Node) {
	if n.typ != NodeTypeMesh || mesh.typ != NodeTypeMesh {
		panic("scene3d: AddLODLevel requires mesh nodes")
	}
	mesh.isLOD = true
	n.lods = append(n.lods, lodLevel{distance: distance, mesh: mesh})
	sort.Slice(n.lods, func(i, j int) bool { return n.lods[i].distance < n.lods[j].distance })
}

// LODLevels returns the node's LOD variant meshes in activation order,
// nearest first.
func (n *Node) LODLevels() []halo.Mesh {
	out := make([]halo.Mesh, len(n.lods))
	for i, l := range n.lods {
		out[i] = l.mesh
	}
	return out
}

// activeGeometry returns the geometry to draw for the camera at camPos:
// the base geometry, or the furthest LOD level whose activation distance has
// been reached. Disposed or empty LOD variants are passed over.
func (n *Node) activeGeometry(camPos mgl64.Vec3) *halo.Geometry {
	geom := n.geom
	if len(n.lods) == 0 {
		return geom
	}
	d := n.WorldTransform().Position.Sub(camPos).Len()
	for _, l := range n.lods {
		if d < l.distance {
			break
		}
		if !l.mesh.disposed && l.mesh.geom != nil {
			geom = l.mesh.geom
		}
	}
	return geom
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. If child already has a
// parent, it is removed from that parent first. Panics if child is nil,
// disposed, or an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scene3d: cannot add nil child")
	}
	if n.disposed || child.disposed {
		panic(fmt.Sprintf("scene3d: AddChild with disposed node %q", n.name))
	}
	if isAncestor(child, n) {
		panic("scene3d: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node. Panics if child's parent is not
// this node.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		panic("scene3d: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this node from its parent. No-op for roots.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return len(n.children) }

// --- Disposal ---

// Dispose removes this node from its parent, marks it disposed, and
// recursively disposes all descendants. Idempotent.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	for _, child := range n.children {
		child.parent = nil
		child.dispose()
	}
	n.children = nil
	n.parent = nil
	n.geom = nil
	n.material = nil
	n.lods = nil
}

// IsDisposed reports whether this node has been disposed.
func (n *Node) IsDisposed() bool { return n.disposed }

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
