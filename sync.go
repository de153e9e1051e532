package halo

// syncTransforms copies the target's world transform onto every duplicate,
// with the thickness factor multiplied into the scale. Explicit per-frame
// copying (rather than parenting the duplicates under the source) keeps the
// outline concentric with the source's own pivot and is robust to
// non-uniform source scale.
//
// LOD variants render at the base mesh's transform, so every duplicate,
// including LOD duplicates, follows the base target.
//
// The thickness multiplies the source's current scale each time; it is never
// compounded onto a previous sync result.
func syncTransforms(target Mesh, dups []*duplicate, thickness float64) {
	if target == nil || target.IsDisposed() {
		return
	}
	t := target.WorldTransform()
	t.Scale = t.Scale.Mul(thickness)
	for _, d := range dups {
		if !d.mesh.IsDisposed() {
			d.mesh.SetWorldTransform(t)
		}
	}
}
