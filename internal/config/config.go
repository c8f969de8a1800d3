package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDiffusivity   = 100.0
	DefaultDomainSize    = 300.0
	DefaultSpacing       = 0.5
	DefaultSteps         = 5000
	DefaultBoundaryLeft  = 500.0
	DefaultBoundaryRight = 0.0
)

type Config struct {
	Diffusivity   float64 `yaml:"diffusivity"`
	DomainSize    float64 `yaml:"domain_size"`
	Spacing       float64 `yaml:"spacing"`
	Origin        float64 `yaml:"origin"`
	Steps         int     `yaml:"steps"`
	BoundaryLeft  float64 `yaml:"boundary_left"`
	BoundaryRight float64 `yaml:"boundary_right"`
	RecordEvery   int     `yaml:"record_every"`
	Plot          bool    `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Diffusivity:   DefaultDiffusivity,
		DomainSize:    DefaultDomainSize,
		Spacing:       DefaultSpacing,
		Steps:         DefaultSteps,
		BoundaryLeft:  DefaultBoundaryLeft,
		BoundaryRight: DefaultBoundaryRight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
