package scene3d

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/halo"
)

// renderCommand is one mesh's projected triangles, ready for submission.
// Triangles inside a command are already ordered back-to-front.
type renderCommand struct {
	group     int
	depth     float64 // camera distance for back-to-front ordering within a group
	treeOrder int     // stable tiebreak in traversal order
	verts     []ebiten.Vertex
	indices   []uint16
}

// maxTriangles caps a single mesh's triangle count so per-face vertex
// expansion stays within uint16 index range.
const maxTriangles = 21845

// defaultMaterial renders meshes that have no material assigned.
var defaultMaterial = NewMaterial("scene3d.default")

// --- White pixel singleton (no sync.Once — scene3d is single-threaded) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw projects the scene through the camera, sorts by render group then
// depth, and submits triangles to the screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	screen.Fill(toRGBA(s.ClearColor))

	vp := s.camera.ProjMatrix(w / h).Mul4(s.camera.ViewMatrix())

	s.commands = s.commands[:0]
	treeOrder := 0
	s.emit(s.root, halo.IdentityTransform(), vp, w, h, &treeOrder)
	s.sortCommands()

	white := ensureWhitePixel()
	opts := &ebiten.DrawTrianglesOptions{}
	for i := range s.commands {
		cmd := &s.commands[i]
		screen.DrawTriangles(cmd.verts, cmd.indices, white, opts)
	}
}

// emit walks the node tree depth-first, composing world transforms and
// emitting one command per visible mesh. LOD variant nodes never emit on
// their own; their geometry is drawn by the base mesh's command.
func (s *Scene) emit(n *Node, parentWorld halo.Transform, vp mgl64.Mat4, w, h float64, treeOrder *int) {
	if !n.Visible || n.disposed {
		return
	}
	world := composeTRS(parentWorld, n.local)

	if n.typ == NodeTypeMesh && !n.isLOD {
		geom := n.activeGeometry(s.camera.Position)
		if geom != nil && len(geom.Indices) >= 3 {
			*treeOrder++
			if cmd, ok := s.projectMesh(n, geom, world, vp, w, h, *treeOrder); ok {
				s.commands = append(s.commands, cmd)
			}
		}
	}
	for _, child := range n.children {
		s.emit(child, world, vp, w, h, treeOrder)
	}
}

// sortCommands orders commands by render group, then far-to-near, then
// traversal order as a stable tiebreak.
func (s *Scene) sortCommands() {
	sort.SliceStable(s.commands, func(i, j int) bool {
		a, b := &s.commands[i], &s.commands[j]
		if a.group != b.group {
			return a.group < b.group
		}
		if a.depth != b.depth {
			return a.depth > b.depth
		}
		return a.treeOrder < b.treeOrder
	})
}

// projectMesh transforms geom by the mesh's world transform, projects it to
// screen space, shades, culls, and depth-sorts its triangles, and returns
// the resulting command. ok is false when nothing is visible.
func (s *Scene) projectMesh(n *Node, geom *halo.Geometry, world halo.Transform, vp mgl64.Mat4, w, h float64, treeOrder int) (renderCommand, bool) {
	mat := n.material
	if mat == nil || mat.IsDisposed() {
		mat = defaultMaterial
	}
	model := world.Mat4()
	camPos := s.camera.Position

	nv := geom.VertexCount()
	type projVert struct {
		sx, sy float64
		world  mgl64.Vec3
		ok     bool
	}
	pv := make([]projVert, nv)
	for i := 0; i < nv; i++ {
		p := mgl64.Vec3{
			float64(geom.Positions[i*3]),
			float64(geom.Positions[i*3+1]),
			float64(geom.Positions[i*3+2]),
		}
		wp := mgl64.TransformCoordinate(p, model)
		clip := vp.Mul4x1(wp.Vec4(1))
		if clip.W() <= 0 {
			pv[i] = projVert{world: wp}
			continue
		}
		inv := 1 / clip.W()
		pv[i] = projVert{
			sx:    (clip.X()*inv + 1) * 0.5 * w,
			sy:    (1 - clip.Y()*inv) * 0.5 * h,
			world: wp,
			ok:    true,
		}
	}

	numTris := len(geom.Indices) / 3
	if numTris > maxTriangles {
		numTris = maxTriangles
	}

	type tri struct {
		i0, i1, i2 int
		depth      float64
		shade      float64
	}
	tris := make([]tri, 0, numTris)
	cull := mat.BackFaceCulling()
	unlit := mat.Unlit()

	for t := 0; t < numTris; t++ {
		i0 := int(geom.Indices[t*3])
		i1 := int(geom.Indices[t*3+1])
		i2 := int(geom.Indices[t*3+2])
		if i0 >= nv || i1 >= nv || i2 >= nv {
			continue
		}
		if !pv[i0].ok || !pv[i1].ok || !pv[i2].ok {
			continue
		}
		w0, w1, w2 := pv[i0].world, pv[i1].world, pv[i2].world
		centroid := w0.Add(w1).Add(w2).Mul(1.0 / 3.0)
		toCam := camPos.Sub(centroid)

		normal := w1.Sub(w0).Cross(w2.Sub(w0))
		if nl := normal.Len(); nl > 1e-12 {
			normal = normal.Mul(1 / nl)
		} else {
			continue // degenerate
		}
		facing := normal.Dot(toCam)
		if cull && facing <= 0 {
			continue
		}

		shade := 1.0
		if !unlit {
			d := facing / toCam.Len()
			if d < 0 {
				d = -d // double-sided materials light both faces
			}
			shade = 0.3 + 0.7*d
		}
		tris = append(tris, tri{i0: i0, i1: i1, i2: i2, depth: toCam.Len(), shade: shade})
	}
	if len(tris) == 0 {
		return renderCommand{}, false
	}

	// Painter order within the mesh: far triangles first.
	sort.Slice(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	c := mat.Color()
	verts := make([]ebiten.Vertex, 0, len(tris)*3)
	indices := make([]uint16, 0, len(tris)*3)
	meshDepth := 0.0
	for _, t := range tris {
		for _, vi := range [3]int{t.i0, t.i1, t.i2} {
			verts = append(verts, ebiten.Vertex{
				DstX:   float32(pv[vi].sx),
				DstY:   float32(pv[vi].sy),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: float32(c.R * t.shade * c.A),
				ColorG: float32(c.G * t.shade * c.A),
				ColorB: float32(c.B * t.shade * c.A),
				ColorA: float32(c.A),
			})
			indices = append(indices, uint16(len(indices)))
		}
		meshDepth += t.depth
	}
	meshDepth /= float64(len(tris))

	return renderCommand{
		group:     n.renderGroup,
		depth:     meshDepth + mat.RenderBias(),
		treeOrder: treeOrder,
		verts:     verts,
		indices:   indices,
	}, true
}

// toRGBA converts a halo.Color to a color.RGBA for screen fills.
func toRGBA(c halo.Color) color.RGBA {
	clamp := func(f float64) uint8 {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint8(f*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
