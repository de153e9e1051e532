package halo

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// DefaultColor is the highlight color used by a fresh engine (#446BAA).
var DefaultColor = Color{R: 0x44 / 255.0, G: 0x6B / 255.0, B: 0xAA / 255.0, A: 1}

// DefaultThickness is the uniform scale factor applied to outline duplicates
// by a fresh engine. 1.05 yields a rim of roughly 5% of the mesh extent.
const DefaultThickness = 1.05

// ParseColor parses a hex color string of the form "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional and hex digits are case-insensitive. When no
// alpha component is given, alpha is 1.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("halo: parse color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("halo: parse color %q: %w", s, err)
	}
	c := Color{A: 1}
	if len(hex) == 8 {
		c.A = float64(v&0xFF) / 255.0
		v >>= 8
	}
	c.B = float64(v&0xFF) / 255.0
	c.G = float64(v>>8&0xFF) / 255.0
	c.R = float64(v>>16&0xFF) / 255.0
	return c, nil
}

// Hex returns the color formatted as "#RRGGBB" or "#RRGGBBAA" when alpha
// differs from 1. Components are clamped to [0, 1] before conversion.
func (c Color) Hex() string {
	b := func(f float64) uint64 {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint64(f*255 + 0.5)
	}
	if c.A >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", b(c.R), b(c.G), b(c.B))
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", b(c.R), b(c.G), b(c.B), b(c.A))
}

// Error values returned by the engine. All wrapped errors can be tested with
// errors.Is.
var (
	// ErrInvalidGeometry indicates a mesh unsuitable for duplication:
	// missing geometry buffers, zero vertices, or an already disposed mesh.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrResourceCreation indicates the host scene rejected creation of an
	// outline mesh or material.
	ErrResourceCreation = errors.New("resource creation failed")

	// ErrDisposed indicates a call on an engine after Dispose.
	ErrDisposed = errors.New("engine disposed")
)

// globalDebug controls whether API misuse panics instead of logging a
// warning. Halo runs on the host's render thread, so a plain bool suffices.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, calling engine
// methods after Dispose panics with a descriptive message instead of logging
// a warning to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// warnf prints a warning to stderr.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[halo] warning: "+format+"\n", args...)
}
