package halo

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse breathes the outline thickness between the engine's base thickness
// and a peak value, producing an animated highlight. Call Update(dt) each
// frame; the pulse drives [Engine.UpdateThickness] and never touches
// geometry.
//
// There is no global animation manager; callers drive Update themselves. If
// the engine is disposed, the pulse stops on the next Update.
type Pulse struct {
	engine    *Engine
	expand    *gween.Tween
	contract  *gween.Tween
	expanding bool
	base      float64
	Done      bool
}

// NewPulse creates a pulse that oscillates the engine's thickness from its
// current value up to peak and back, taking period seconds for a full cycle.
func NewPulse(e *Engine, peak float64, period float32) *Pulse {
	base := e.Thickness()
	half := period / 2
	return &Pulse{
		engine:    e,
		expand:    gween.New(float32(base), float32(peak), half, ease.InOutSine),
		contract:  gween.New(float32(peak), float32(base), half, ease.InOutSine),
		expanding: true,
		base:      base,
	}
}

// Update advances the pulse by dt seconds and applies the resulting
// thickness to the engine.
func (p *Pulse) Update(dt float32) {
	if p.Done {
		return
	}
	if p.engine.Disposed() {
		p.Done = true
		return
	}
	t := p.contract
	if p.expanding {
		t = p.expand
	}
	v, finished := t.Update(dt)
	p.engine.UpdateThickness(float64(v))
	if finished {
		t.Reset()
		p.expanding = !p.expanding
	}
}

// Stop halts the pulse and restores the engine's base thickness.
func (p *Pulse) Stop() {
	if p.Done {
		return
	}
	p.Done = true
	if !p.engine.Disposed() {
		p.engine.UpdateThickness(p.base)
	}
}
