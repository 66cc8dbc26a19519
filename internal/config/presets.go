package config

import "sort"

// Preset names a fixed extraction point along the string.
type Preset struct {
	PointFraction float64
	Description   string
}

var Presets = map[string]Preset{
	"tenth":   {PointFraction: 0.1, Description: "one tenth of the string length"},
	"fifth":   {PointFraction: 0.2, Description: "one fifth of the string length"},
	"quarter": {PointFraction: 0.25, Description: "one quarter, a node of the fourth harmonic"},
	"middle":  {PointFraction: 0.5, Description: "midpoint, a node of every even harmonic"},
}

// GetPreset returns the named preset, or nil if there is none.
func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply sets the extraction point of cfg from the named preset.
func (c *Config) Apply(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.PointFraction = p.PointFraction
	return true
}
