// Package halo renders a selection highlight around a mesh in a 3D editor
// viewport by drawing a slightly scaled, solid-color copy of the mesh behind
// it.
//
// Halo does not own a renderer. It talks to the host scene graph through a
// small capability set ([Scene], [Mesh], [Material]) and works with any host
// that implements it. The scene3d subpackage is a reference host built on
// [Ebitengine], used by the examples and tests.
//
// # Quick start
//
//	engine := halo.NewEngine(scene)
//	engine.SetOutline(mesh) // highlight a mesh
//	engine.SetOutline(nil)  // clear the highlight
//	engine.Dispose()        // release the shared material
//
// Exactly one mesh is outlined at a time. Selecting a new mesh tears the
// previous outline down completely: its duplicates are disposed and the
// previous target's render group is restored to its pre-selection value.
//
// # How the outline is drawn
//
// For the selected mesh and each of its LOD levels, the engine snapshots the
// geometry into a new scene mesh, applies a shared unlit double-sided
// material, and scales the copy by a thickness factor about the source's own
// pivot. The copies are assigned to the source's original render group while
// the source itself is moved one group later, so the source's interior always
// overdraws the copy and only the rim remains visible.
//
// The copies follow the source with an explicit world-transform copy on every
// before-render tick; they are never parented to the source, so non-uniform
// source scale cannot distort the outline.
//
// The geometry copy is a snapshot: if the host mutates the source's vertex
// buffers after selection (skinning, morphing), the outline is stale until
// the mesh is re-selected.
//
// # Live updates
//
// [Engine.UpdateColor] recolors the shared material in place and
// [Engine.UpdateThickness] rescales all active duplicates; neither rebuilds
// geometry. [Pulse] animates the thickness for a breathing highlight, and
// [ParseSettings] loads color/thickness/pulse settings from YAML.
//
// [Ebitengine]: https://ebitengine.org
package halo
