package halo

import "fmt"

// Engine owns the single active selection outline. It orchestrates geometry
// duplication, render-group assignment, and per-frame transform sync against
// a host [Scene], and guarantees that clearing or replacing the selection
// removes every node it created and restores every property it changed.
//
// Engine is not safe for concurrent use; like the host scene graph it must
// be driven from the render thread. Calls are safe both inside and outside a
// frame callback: every method completes synchronously with plain scene-graph
// mutation.
type Engine struct {
	scene    Scene
	order    *renderOrder
	material Material

	color     Color
	thickness float64

	target     Mesh
	dups       []*duplicate
	cancelSync func()
	disposed   bool
}

// NewEngine creates an engine bound to the given host scene, with
// [DefaultColor] and [DefaultThickness]. The shared outline material is
// created lazily on the first selection.
func NewEngine(scene Scene) *Engine {
	return &Engine{
		scene:     scene,
		order:     newRenderOrder(),
		color:     DefaultColor,
		thickness: DefaultThickness,
	}
}

// SetOutline makes target the outlined mesh, replacing any previous outline.
// A nil target clears the outline. Re-selecting the current target is a
// no-op.
//
// One duplicate is built for the target and one for each of its LOD levels.
// A LOD level that fails to duplicate is logged and skipped; if the base mesh
// itself fails, no outline is created, any partial work is rolled back, and
// the engine stays idle. The previous outline is always fully torn down
// first, even when the new target fails.
func (e *Engine) SetOutline(target Mesh) error {
	if !e.guard("SetOutline") {
		return ErrDisposed
	}
	if target == e.target && target != nil {
		return nil
	}
	e.teardown()
	if target == nil {
		return nil
	}

	if err := e.ensureMaterial(); err != nil {
		return err
	}
	base, err := duplicateMesh(e.scene, target, e.material, -1)
	if err != nil {
		return err
	}
	dups := []*duplicate{base}
	for i, lod := range target.LODLevels() {
		d, lodErr := duplicateMesh(e.scene, lod, e.material, i)
		if lodErr != nil {
			warnf("skipping LOD level %d of %q: %v", i, target.Name(), lodErr)
			continue
		}
		dups = append(dups, d)
	}

	e.order.assign(target, dups)
	e.target = target
	e.dups = dups
	e.cancelSync = e.scene.OnBeforeRender(e.syncNow)
	// Position the duplicates now rather than one frame late.
	e.syncNow()
	return nil
}

// Target returns the currently outlined mesh, or nil when no outline is
// active. Editor UI uses this to mirror the selection (e.g. highlighting a
// tree-view row).
func (e *Engine) Target() Mesh {
	return e.target
}

// OutlineMeshes returns the live outline duplicates, base mesh first and LOD
// duplicates following in LOD order. Hosts that activate LOD variants by
// distance can mirror that activation onto the returned meshes. The slice is
// a copy; the meshes themselves remain engine-owned.
func (e *Engine) OutlineMeshes() []Mesh {
	out := make([]Mesh, len(e.dups))
	for i, d := range e.dups {
		out[i] = d.mesh
	}
	return out
}

// Color returns the current outline color.
func (e *Engine) Color() Color {
	return e.color
}

// UpdateColor live-updates the shared outline material without rebuilding
// duplicates. The new color also applies to future selections.
func (e *Engine) UpdateColor(c Color) {
	if !e.guard("UpdateColor") {
		return
	}
	e.color = c
	if e.material != nil && !e.material.IsDisposed() {
		e.material.SetColor(c)
	}
}

// Thickness returns the current uniform outline scale factor.
func (e *Engine) Thickness() float64 {
	return e.thickness
}

// UpdateThickness live-updates the uniform scale factor on all active
// duplicates. The factor is reapplied to the source's current scale, never
// compounded onto a previous value. Factors <= 0 are rejected with a warning.
func (e *Engine) UpdateThickness(factor float64) {
	if !e.guard("UpdateThickness") {
		return
	}
	if factor <= 0 {
		warnf("ignoring non-positive outline thickness %v", factor)
		return
	}
	e.thickness = factor
	e.syncNow()
}

// Dispose clears any active outline and releases the shared material. The
// engine is unusable afterwards; Dispose itself is idempotent.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.teardown()
	if e.material != nil {
		if !e.material.IsDisposed() {
			e.material.Dispose()
		}
		e.material = nil
	}
	e.disposed = true
}

// Disposed reports whether Dispose has been called.
func (e *Engine) Disposed() bool {
	return e.disposed
}

// guard reports whether the engine is still usable. After Dispose, calls
// panic in debug mode and are ignored with a warning otherwise.
func (e *Engine) guard(op string) bool {
	if !e.disposed {
		return true
	}
	if globalDebug {
		panic(fmt.Sprintf("halo debug: %s on disposed engine", op))
	}
	warnf("%s called on disposed engine; ignored", op)
	return false
}

// ensureMaterial creates the shared outline material on first use, or
// recreates it if the host disposed it externally.
func (e *Engine) ensureMaterial() error {
	if e.material != nil && !e.material.IsDisposed() {
		return nil
	}
	m, err := newOutlineMaterial(e.scene, e.color)
	if err != nil {
		return err
	}
	e.material = m
	return nil
}

// syncNow runs one transform sync tick. Registered as the scene's
// before-render callback while an outline is active.
func (e *Engine) syncNow() {
	syncTransforms(e.target, e.dups, e.thickness)
}

// teardown disposes all duplicates and restores the source's render group,
// returning the engine to the idle state. A source the host has already
// disposed is tolerated: its duplicates are still disposed, and the render
// group restore is skipped with a warning.
func (e *Engine) teardown() {
	if e.cancelSync != nil {
		e.cancelSync()
		e.cancelSync = nil
	}
	disposeDuplicates(e.dups)
	e.dups = nil
	if e.target == nil {
		return
	}
	if e.target.IsDisposed() {
		warnf("outline target %q was disposed externally; skipping render group restore", e.target.Name())
		e.order.forget(e.target)
	} else if !e.order.restore(e.target) {
		warnf("no recorded render group for outline target %q", e.target.Name())
	}
	e.target = nil
}
