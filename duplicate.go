package halo

import "fmt"

// duplicate pairs an engine-owned outline mesh with the source mesh whose
// geometry it snapshots. lodIndex records which LOD level of the selection
// target the duplicate mirrors (-1 for the base mesh); hosts that activate
// LOD by distance can recover the pairing through [Engine.OutlineMeshes].
type duplicate struct {
	mesh     Mesh
	source   Mesh
	lodIndex int
}

// duplicateMesh snapshots source's geometry into a new engine-owned scene
// mesh carrying the shared outline material. The geometry is copied by value,
// so later mutation of the source cannot corrupt the outline.
func duplicateMesh(scene Scene, source Mesh, mat Material, lodIndex int) (*duplicate, error) {
	if source.IsDisposed() {
		return nil, fmt.Errorf("halo: duplicate %q: mesh is disposed: %w", source.Name(), ErrInvalidGeometry)
	}
	geom := source.Geometry()
	if geom == nil || geom.VertexCount() == 0 {
		return nil, fmt.Errorf("halo: duplicate %q: %w", source.Name(), ErrInvalidGeometry)
	}
	mesh, err := scene.CreateMesh(source.Name()+".outline", geom.Clone())
	if err != nil {
		return nil, fmt.Errorf("halo: duplicate %q: %w: %v", source.Name(), ErrResourceCreation, err)
	}
	mesh.SetMaterial(mat)
	return &duplicate{mesh: mesh, source: source, lodIndex: lodIndex}, nil
}

// disposeDuplicates disposes every duplicate's mesh. Already disposed meshes
// are skipped.
func disposeDuplicates(dups []*duplicate) {
	for _, d := range dups {
		if !d.mesh.IsDisposed() {
			d.mesh.Dispose()
		}
	}
}
