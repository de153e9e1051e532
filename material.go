package halo

import "fmt"

// outlineRenderBias is the depth nudge applied to the outline material so the
// duplicate's surface never z-fights with the coincident source surface at
// the silhouette boundary.
const outlineRenderBias = 1e-4

// newOutlineMaterial creates the shared silhouette material: flat color,
// lighting disabled, back-face culling disabled so the rim stays visible from
// inside concave silhouettes, plus the render bias above.
func newOutlineMaterial(scene Scene, c Color) (Material, error) {
	m, err := scene.CreateMaterial("halo.outline")
	if err != nil {
		return nil, fmt.Errorf("halo: create outline material: %w: %v", ErrResourceCreation, err)
	}
	m.SetColor(c)
	m.SetUnlit(true)
	m.SetBackFaceCulling(false)
	m.SetRenderBias(outlineRenderBias)
	return m, nil
}
