package config

import "sort"

// Presets are named spectral bands [um] for sweeps and plots.
var Presets = map[string]BandConfig{
	"uv":      {Min: 0.25, Max: 0.40},
	"visible": {Min: 0.40, Max: 0.70},
	"nir":     {Min: 0.70, Max: 1.40},
	"telecom": {Min: 1.26, Max: 1.675},
	"mir":     {Min: 2.0, Max: 5.0},
}

// Preset returns the named band, if registered.
func Preset(name string) (BandConfig, bool) {
	band, ok := Presets[name]
	return band, ok
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
