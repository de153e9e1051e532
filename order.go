package halo

// renderOrder assigns render groups so that outline duplicates always draw
// strictly before their source, and records pre-assignment groups so restore
// is exact no matter what other scene mutations happen in between.
//
// Policy: the duplicates take over the source's original group g and the
// source moves to g+1. Drawing the source after its duplicates lets the
// source's interior overdraw the scaled copy, leaving only the rim visible.
// Unrelated scene content keeps its own groups and is unaffected.
type renderOrder struct {
	saved map[uint64]int // source mesh ID -> pre-assignment render group
}

func newRenderOrder() *renderOrder {
	return &renderOrder{saved: make(map[uint64]int)}
}

// assign records source's current render group, moves the source one group
// later, and puts every duplicate on the source's original group. The
// ordering decision is made once per source, not per duplicate, so all LOD
// duplicates share it.
func (r *renderOrder) assign(source Mesh, dups []*duplicate) {
	g := source.RenderGroup()
	r.saved[source.ID()] = g
	source.SetRenderGroup(g + 1)
	for _, d := range dups {
		d.mesh.SetRenderGroup(g)
	}
}

// restore reverts source to its recorded render group and drops the record.
// It reports whether a record existed.
func (r *renderOrder) restore(source Mesh) bool {
	g, ok := r.saved[source.ID()]
	if !ok {
		return false
	}
	delete(r.saved, source.ID())
	source.SetRenderGroup(g)
	return true
}

// forget drops the record for source without touching the mesh. Used when the
// host disposed the source before the outline was cleared.
func (r *renderOrder) forget(source Mesh) {
	delete(r.saved, source.ID())
}
