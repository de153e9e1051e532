// Package scene3d is a minimal retained 3D scene graph implementing the halo
// host capability set, rendered with Ebitengine.
//
// It exists to host the outline engine in examples and tests, not to be a
// complete engine: meshes are flat- or lambert-shaded solid colors, drawing
// is painter-sorted (render group first, then depth) with no depth buffer,
// and there are no textures or lights beyond a camera headlight.
//
// A [Scene] owns a node tree rooted at [Scene.Root] and a [Camera]. Drive it
// from an ebiten.Game:
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
//
// [Scene.Update] fires before-render callbacks (including halo's transform
// sync) so that [Scene.Draw] always submits up-to-date transforms.
package scene3d
