package halo

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings holds outline appearance options, typically loaded from an editor
// preferences file:
//
//	color: "#446BAA"
//	thickness: 1.05
//	pulse:
//	  enabled: true
//	  peak: 1.12
//	  period: 1.6
type Settings struct {
	Color     string        `yaml:"color"`     // hex highlight color
	Thickness float64       `yaml:"thickness"` // uniform outline scale factor
	Pulse     PulseSettings `yaml:"pulse"`
}

// PulseSettings configures the optional breathing animation.
type PulseSettings struct {
	Enabled bool    `yaml:"enabled"`
	Peak    float64 `yaml:"peak"`   // thickness at the top of the breathe
	Period  float64 `yaml:"period"` // seconds for one full cycle
}

// DefaultSettings returns the settings a fresh engine uses.
func DefaultSettings() Settings {
	return Settings{
		Color:     DefaultColor.Hex(),
		Thickness: DefaultThickness,
		Pulse:     PulseSettings{Peak: 1.12, Period: 1.6},
	}
}

// ParseSettings parses YAML settings. Omitted fields keep their defaults;
// the result is validated before being returned.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("halo: parse settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	if s.Thickness <= 0 {
		return fmt.Errorf("halo: settings: thickness must be positive, got %v", s.Thickness)
	}
	if s.Pulse.Enabled {
		if s.Pulse.Peak <= s.Thickness {
			return fmt.Errorf("halo: settings: pulse peak %v must exceed thickness %v", s.Pulse.Peak, s.Thickness)
		}
		if s.Pulse.Period <= 0 {
			return fmt.Errorf("halo: settings: pulse period must be positive, got %v", s.Pulse.Period)
		}
	}
	return nil
}

// Apply pushes the settings onto a live engine via UpdateColor and
// UpdateThickness. When pulsing is enabled it returns a ready [Pulse] for
// the caller to drive; otherwise the returned pulse is nil.
func (s Settings) Apply(e *Engine) (*Pulse, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	c, _ := ParseColor(s.Color)
	e.UpdateColor(c)
	e.UpdateThickness(s.Thickness)
	if !s.Pulse.Enabled {
		return nil, nil
	}
	return NewPulse(e, s.Pulse.Peak, float32(s.Pulse.Period)), nil
}
