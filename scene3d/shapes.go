package scene3d

import (
	"math"

	"github.com/phanxgames/halo"
)

// Shape generators used by examples and tests. All shapes are centered on
// the local origin and wound counter-clockwise viewed from outside, so face
// normals derived from winding point outward.

// CubeGeometry returns an axis-aligned cube with the given edge length.
// Vertices are duplicated per face so each face carries its own normal.
func CubeGeometry(size float64) *halo.Geometry {
	s := float32(size / 2)
	// Four corners per face, CCW from outside; normals per face.
	faces := [6][4][3]float32{
		{{s, -s, -s}, {s, s, -s}, {s, s, s}, {s, -s, s}},         // +X
		{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}},     // -X
		{{-s, s, -s}, {-s, s, s}, {s, s, s}, {s, s, -s}},         // +Y
		{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}},     // -Y
		{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}},         // +Z
		{{-s, -s, -s}, {-s, s, -s}, {s, s, -s}, {s, -s, -s}},     // -Z
	}
	normals := [6][3]float32{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	}

	g := &halo.Geometry{
		Positions: make([]float32, 0, 6*4*3),
		Normals:   make([]float32, 0, 6*4*3),
		Indices:   make([]uint32, 0, 6*6),
	}
	for f := 0; f < 6; f++ {
		base := uint32(f * 4)
		for v := 0; v < 4; v++ {
			g.Positions = append(g.Positions, faces[f][v][0], faces[f][v][1], faces[f][v][2])
			g.Normals = append(g.Normals, normals[f][0], normals[f][1], normals[f][2])
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return g
}

// SphereGeometry returns a UV sphere with the given radius. rings is the
// number of latitude bands and segments the number of longitude bands; both
// are clamped to a minimum of 3.
func SphereGeometry(radius float64, rings, segments int) *halo.Geometry {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}
	g := &halo.Geometry{
		Positions: make([]float32, 0, (rings+1)*(segments+1)*3),
		Normals:   make([]float32, 0, (rings+1)*(segments+1)*3),
		Indices:   make([]uint32, 0, rings*segments*6),
	}
	for y := 0; y <= rings; y++ {
		phi := math.Pi * float64(y) / float64(rings)
		sp, cp := math.Sincos(phi)
		for x := 0; x <= segments; x++ {
			theta := 2 * math.Pi * float64(x) / float64(segments)
			st, ct := math.Sincos(theta)
			nx, ny, nz := sp*ct, cp, sp*st
			g.Positions = append(g.Positions, float32(nx*radius), float32(ny*radius), float32(nz*radius))
			g.Normals = append(g.Normals, float32(nx), float32(ny), float32(nz))
		}
	}
	stride := uint32(segments + 1)
	for y := 0; y < rings; y++ {
		for x := 0; x < segments; x++ {
			i0 := uint32(y)*stride + uint32(x)
			i1 := i0 + stride
			g.Indices = append(g.Indices,
				i0, i0+1, i1,
				i0+1, i1+1, i1,
			)
		}
	}
	return g
}

// PlaneGeometry returns a square in the XZ plane with the given edge length,
// facing +Y.
func PlaneGeometry(size float64) *halo.Geometry {
	s := float32(size / 2)
	return &halo.Geometry{
		Positions: []float32{
			-s, 0, -s,
			-s, 0, s,
			s, 0, s,
			s, 0, -s,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}
