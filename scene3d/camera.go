package scene3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera. Mutate the public fields directly; view
// and projection matrices are recomputed every frame.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical field of view in radians
	Near     float64
	Far      float64
}

// NewCamera creates a camera a short distance back from the origin, looking
// at it.
func NewCamera() *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 2, 6},
		Up:       mgl64.Vec3{0, 1, 0},
		FOV:      math.Pi / 3,
		Near:     0.1,
		Far:      1000,
	}
}

// ViewMatrix returns the world-to-view matrix.
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// ProjMatrix returns the perspective projection matrix for the given
// viewport aspect ratio (width / height).
func (c *Camera) ProjMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Orbit places the camera on a sphere of the given radius around its target,
// at the given yaw and pitch angles in radians.
func (c *Camera) Orbit(yaw, pitch, radius float64) {
	cp := math.Cos(pitch)
	c.Position = c.Target.Add(mgl64.Vec3{
		radius * cp * math.Sin(yaw),
		radius * math.Sin(pitch),
		radius * cp * math.Cos(yaw),
	})
}
