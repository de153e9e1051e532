package halo

import "github.com/go-gl/mathgl/mgl64"

// Geometry holds indexed triangle mesh data in flat GPU-style buffers.
// Positions and Normals are xyz triples; Indices is a triangle list.
// Normals may be empty, in which case renderers derive face normals.
type Geometry struct {
	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the position buffer.
func (g *Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// Clone returns a deep copy of the geometry. The copy shares no backing
// arrays with the original, so later mutation of either side cannot affect
// the other. This is the snapshot unit of the outline engine: a duplicate's
// geometry is fixed at duplication time.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Positions: make([]float32, len(g.Positions)),
		Indices:   make([]uint32, len(g.Indices)),
	}
	copy(c.Positions, g.Positions)
	copy(c.Indices, g.Indices)
	if len(g.Normals) > 0 {
		c.Normals = make([]float32, len(g.Normals))
		copy(c.Normals, g.Normals)
	}
	return c
}

// Bounds returns the axis-aligned bounding box of the position buffer in
// local space. A geometry with no vertices returns two zero vectors.
func (g *Geometry) Bounds() (min, max mgl64.Vec3) {
	if len(g.Positions) < 3 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	min = mgl64.Vec3{float64(g.Positions[0]), float64(g.Positions[1]), float64(g.Positions[2])}
	max = min
	for i := 3; i+2 < len(g.Positions); i += 3 {
		x := float64(g.Positions[i])
		y := float64(g.Positions[i+1])
		z := float64(g.Positions[i+2])
		if x < min[0] {
			min[0] = x
		}
		if x > max[0] {
			max[0] = x
		}
		if y < min[1] {
			min[1] = y
		}
		if y > max[1] {
			max[1] = y
		}
		if z < min[2] {
			min[2] = z
		}
		if z > max[2] {
			max[2] = z
		}
	}
	return min, max
}
