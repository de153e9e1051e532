package scene3d

import (
	"testing"

	"github.com/phanxgames/halo"
)

// buildCommands runs the draw pipeline up to (but not including) screen
// submission, so rendering can be asserted without a graphics context.
func buildCommands(s *Scene, w, h float64) []renderCommand {
	vp := s.camera.ProjMatrix(w / h).Mul4(s.camera.ViewMatrix())
	s.commands = s.commands[:0]
	treeOrder := 0
	s.emit(s.root, halo.IdentityTransform(), vp, w, h, &treeOrder)
	s.sortCommands()
	return s.commands
}

func TestDrawOrdersByRenderGroup(t *testing.T) {
	s := NewScene()
	outline, _ := s.CreateMesh("outline", CubeGeometry(1.1))
	source, _ := s.CreateMesh("source", CubeGeometry(1))
	source.SetRenderGroup(1) // source draws after its outline

	cmds := buildCommands(s, 640, 480)
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	if cmds[0].group != outline.RenderGroup() || cmds[1].group != 1 {
		t.Errorf("command groups = [%d %d], want outline group first", cmds[0].group, cmds[1].group)
	}
}

func TestDrawSkipsInvisibleAndLODNodes(t *testing.T) {
	s := NewScene()
	base, _ := s.CreateMesh("base", SphereGeometry(1, 8, 8))
	hidden, _ := s.CreateMesh("hidden", CubeGeometry(1))
	hidden.(*Node).Visible = false

	variant := NewMeshNode("variant", CubeGeometry(1))
	s.Root().AddChild(variant)
	base.(*Node).AddLODLevel(100, variant)

	cmds := buildCommands(s, 640, 480)
	if len(cmds) != 1 {
		t.Errorf("got %d commands, want 1 (base only)", len(cmds))
	}
}

func TestBackFaceCullingHalvesCube(t *testing.T) {
	s := NewScene()
	m, _ := s.CreateMesh("cube", CubeGeometry(1))
	mat, _ := s.CreateMaterial("double")
	mat.SetBackFaceCulling(false)
	m.SetMaterial(mat)

	open := buildCommands(s, 640, 480)
	if len(open) != 1 {
		t.Fatalf("got %d commands, want 1", len(open))
	}
	allTris := len(open[0].indices) / 3
	if allTris != 12 {
		t.Fatalf("double-sided cube drew %d triangles, want 12", allTris)
	}

	mat.SetBackFaceCulling(true)
	culled := buildCommands(s, 640, 480)
	if len(culled) != 1 {
		t.Fatalf("got %d commands, want 1", len(culled))
	}
	if front := len(culled[0].indices) / 3; front >= allTris {
		t.Errorf("culling drew %d of %d triangles, want fewer", front, allTris)
	}
}

func TestLODGeometryDrawnAtBaseTransform(t *testing.T) {
	s := NewScene()
	base, _ := s.CreateMesh("base", SphereGeometry(1, 16, 16))
	variant := NewMeshNode("variant", CubeGeometry(2))
	s.Root().AddChild(variant)
	base.(*Node).AddLODLevel(3, variant)

	// Default camera sits ~6.3 units out, past the activation distance: the
	// cube's 12 triangles substitute for the sphere's.
	cmds := buildCommands(s, 640, 480)
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	if tris := len(cmds[0].indices) / 3; tris > 12 {
		t.Errorf("drew %d triangles, want the cube variant's", tris)
	}
}

func TestRenderBiasShiftsDepthWithinGroup(t *testing.T) {
	s := NewScene()
	a, _ := s.CreateMesh("a", CubeGeometry(1))
	b, _ := s.CreateMesh("b", CubeGeometry(1))
	biased, _ := s.CreateMaterial("biased")
	biased.SetRenderBias(10)
	a.SetMaterial(biased)

	cmds := buildCommands(s, 640, 480)
	if len(cmds) != 2 {
		t.Fatalf("got %d commands, want 2", len(cmds))
	}
	// Same mesh, same spot: the biased one reads as farther and draws first.
	if cmds[0].depth <= cmds[1].depth {
		t.Errorf("depths = [%v %v], biased mesh should sort first", cmds[0].depth, cmds[1].depth)
	}
	_ = b
}

func TestMeshBehindCameraEmitsNothing(t *testing.T) {
	s := NewScene()
	m, _ := s.CreateMesh("behind", CubeGeometry(1))
	m.(*Node).SetPosition(0, 2, 20) // camera looks at origin from +Z

	if cmds := buildCommands(s, 640, 480); len(cmds) != 0 {
		t.Errorf("got %d commands for a mesh behind the camera, want 0", len(cmds))
	}
}
