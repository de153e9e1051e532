package scene3d

import "github.com/phanxgames/halo"

// Material is a solid-color surface description implementing the
// halo.Material capability set. Lit materials are lambert-shaded against the
// camera headlight; unlit materials render flat color.
type Material struct {
	name            string
	color           halo.Color
	unlit           bool
	backFaceCulling bool
	renderBias      float64
	disposed        bool
}

// NewMaterial creates a white, lit, back-face-culled material.
func NewMaterial(name string) *Material {
	return &Material{
		name:            name,
		color:           halo.Color{R: 1, G: 1, B: 1, A: 1},
		backFaceCulling: true,
	}
}

// Name returns the material's name.
func (m *Material) Name() string { return m.name }

// Color returns the material's color.
func (m *Material) Color() halo.Color { return m.color }

// SetColor sets the material's color. Takes effect on the next draw.
func (m *Material) SetColor(c halo.Color) { m.color = c }

// Unlit reports whether the material ignores lighting.
func (m *Material) Unlit() bool { return m.unlit }

// SetUnlit sets whether the material ignores lighting.
func (m *Material) SetUnlit(unlit bool) { m.unlit = unlit }

// BackFaceCulling reports whether back faces are skipped.
func (m *Material) BackFaceCulling() bool { return m.backFaceCulling }

// SetBackFaceCulling sets whether back faces are skipped.
func (m *Material) SetBackFaceCulling(cull bool) { m.backFaceCulling = cull }

// RenderBias returns the depth nudge applied during draw ordering.
func (m *Material) RenderBias() float64 { return m.renderBias }

// SetRenderBias sets the depth nudge applied during draw ordering. Positive
// values push the surface away from the camera, making it draw earlier
// within its render group.
func (m *Material) SetRenderBias(bias float64) { m.renderBias = bias }

// Dispose marks the material unusable. Idempotent.
func (m *Material) Dispose() { m.disposed = true }

// IsDisposed reports whether the material has been disposed.
func (m *Material) IsDisposed() bool { return m.disposed }
