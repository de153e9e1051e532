package halo

import (
	"errors"
	"testing"
)

func TestOutlineMaterialProperties(t *testing.T) {
	s := newMockScene()
	c := Color{R: 0.2, G: 0.4, B: 0.8, A: 1}

	m, err := newOutlineMaterial(s, c)
	if err != nil {
		t.Fatalf("newOutlineMaterial: %v", err)
	}
	if got := m.Color(); got != c {
		t.Errorf("Color = %v, want %v", got, c)
	}
	if !m.Unlit() {
		t.Error("outline material should be unlit")
	}
	if m.BackFaceCulling() {
		t.Error("outline material should not cull back faces")
	}
	if m.RenderBias() == 0 {
		t.Error("outline material should carry a render bias")
	}
}

func TestOutlineMaterialCreationFailure(t *testing.T) {
	s := newMockScene()
	s.failMaterial = true

	_, err := newOutlineMaterial(s, DefaultColor)
	if !errors.Is(err, ErrResourceCreation) {
		t.Errorf("err = %v, want ErrResourceCreation", err)
	}
}
