package scene3d

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/phanxgames/halo"
)

// composeTRS returns the world transform of a child local transform under a
// parent world transform. Scale composes component-wise, so shear introduced
// by rotating under a non-uniform parent scale is not representable; this is
// the usual TRS scene graph simplification.
func composeTRS(parent, local halo.Transform) halo.Transform {
	return halo.Transform{
		Position: parent.Position.Add(parent.Rotation.Rotate(mulVec3(parent.Scale, local.Position))),
		Rotation: parent.Rotation.Mul(local.Rotation),
		Scale:    mulVec3(parent.Scale, local.Scale),
	}
}

// inverseComposeTRS returns the local transform that yields the given world
// transform under the given parent world transform. Parent scale components
// must be non-zero.
func inverseComposeTRS(parent, world halo.Transform) halo.Transform {
	invRot := parent.Rotation.Inverse()
	return halo.Transform{
		Position: divVec3(invRot.Rotate(world.Position.Sub(parent.Position)), parent.Scale),
		Rotation: invRot.Mul(world.Rotation),
		Scale:    divVec3(world.Scale, parent.Scale),
	}
}

func mulVec3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func divVec3(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// --- Transform accessors ---

// LocalTransform returns the node's transform relative to its parent.
func (n *Node) LocalTransform() halo.Transform { return n.local }

// SetLocalTransform replaces the node's local transform.
func (n *Node) SetLocalTransform(t halo.Transform) { n.local = t }

// WorldTransform returns the node's world-space transform, composed from the
// ancestor chain on demand.
func (n *Node) WorldTransform() halo.Transform {
	if n.parent == nil {
		return n.local
	}
	return composeTRS(n.parent.WorldTransform(), n.local)
}

// SetWorldTransform sets the node's local transform such that its world
// transform equals t, wherever the node sits in the hierarchy.
func (n *Node) SetWorldTransform(t halo.Transform) {
	if n.parent == nil {
		n.local = t
		return
	}
	n.local = inverseComposeTRS(n.parent.WorldTransform(), t)
}

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y, z float64) {
	n.local.Position = mgl64.Vec3{x, y, z}
}

// SetScale sets the node's local per-axis scale.
func (n *Node) SetScale(x, y, z float64) {
	n.local.Scale = mgl64.Vec3{x, y, z}
}

// SetRotation sets the node's local rotation.
func (n *Node) SetRotation(q mgl64.Quat) {
	n.local.Rotation = q
}

// SetAxisRotation sets the node's local rotation from an axis and an angle
// in radians.
func (n *Node) SetAxisRotation(axis mgl64.Vec3, angle float64) {
	n.local.Rotation = mgl64.QuatRotate(angle, axis)
}
