package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Diffusivity: 100, DomainSize: 300, Spacing: 0.5, Steps: 5000,
		BoundaryLeft: 500, BoundaryRight: 0,
	},
	"smoke": {
		Diffusivity: 100, DomainSize: 5, Spacing: 0.5, Steps: 5,
		BoundaryLeft: 500, BoundaryRight: 0,
	},
	"gentle": {
		Diffusivity: 10, DomainSize: 300, Spacing: 0.5, Steps: 5000,
		BoundaryLeft: 500, BoundaryRight: 0,
	},
	"fine": {
		Diffusivity: 100, DomainSize: 300, Spacing: 0.1, Steps: 5000,
		BoundaryLeft: 500, BoundaryRight: 0, RecordEvery: 10,
	},
	"coarse": {
		Diffusivity: 100, DomainSize: 300, Spacing: 2.0, Steps: 1000,
		BoundaryLeft: 500, BoundaryRight: 0,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
