package config

import "sort"

var Presets = map[string]*Config{
	"flat": {
		Model: "reef1d", Dx: 10, Hs: 1.5, Tp: 8, Steps: 10, Reducer: "orbital",
		Bathymetry: []float64{5, 5, 5, 5, 5},
		Canopy:     CanopyConfig{Diameter: DefaultCanDia, Height: DefaultCanHeight, Density: DefaultCanDen},
	},
	"fringing": {
		Model: "reef1d", Dx: 25, Hs: 2.0, Tp: 10, Steps: 20, Reducer: "orbital",
		Bathymetry: []float64{30, 24, 18, 12, 7, 3, 1.5, 1, 1, 0.8},
		Canopy:     CanopyConfig{Diameter: 0.2, Height: 0.3, Density: 25},
	},
	"barrier": {
		Model: "reef1d", Dx: 50, Hs: 2.5, Tp: 12, Steps: 20, Reducer: "orbital",
		Bathymetry: []float64{40, 30, 15, 4, 1, 2, 8, 12, 10, 6, 2, 1},
		Canopy:     CanopyConfig{Diameter: 0.15, Height: 0.25, Density: 20},
	},
	"storm": {
		Model: "reef1d", Dx: 25, Hs: 4.5, Tp: 14, Steps: 5, Reducer: "orbital",
		StormCategory: 3,
		Bathymetry:    []float64{30, 24, 18, 12, 7, 3, 1.5, 1, 1, 0.8},
		Canopy:        CanopyConfig{Diameter: 0.2, Height: 0.3, Density: 25},
	},
	"emergent": {
		Model: "reef1d", Dx: 5, Hs: 1.0, Tp: 6, Steps: 10, Reducer: "orbital",
		Bathymetry: []float64{-1, 0, 3, 6, 9},
		Canopy:     CanopyConfig{Diameter: DefaultCanDia, Height: DefaultCanHeight, Density: DefaultCanDen},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	c.Bathymetry = append([]float64(nil), p.Bathymetry...)
	return &c
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
