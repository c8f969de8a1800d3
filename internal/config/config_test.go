package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Diffusivity != 100 {
		t.Errorf("expected diffusivity 100, got %g", cfg.Diffusivity)
	}
	if cfg.DomainSize != 300 {
		t.Errorf("expected domain size 300, got %g", cfg.DomainSize)
	}
	if cfg.Spacing != 0.5 {
		t.Errorf("expected spacing 0.5, got %g", cfg.Spacing)
	}
	if cfg.Steps != 5000 {
		t.Errorf("expected 5000 steps, got %d", cfg.Steps)
	}
	if cfg.BoundaryLeft != 500 || cfg.BoundaryRight != 0 {
		t.Errorf("expected boundaries 500/0, got %g/%g", cfg.BoundaryLeft, cfg.BoundaryRight)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("smoke")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.DomainSize != 5 || cfg.Steps != 5 {
		t.Errorf("smoke preset: domain %g steps %d", cfg.DomainSize, cfg.Steps)
	}

	// Presets are copies; mutating one must not change the table.
	cfg.Steps = 999
	if GetPreset("smoke").Steps != 5 {
		t.Error("preset table was mutated through a returned copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, p := range presets {
		if p == "smoke" {
			found = true
		}
	}
	if !found {
		t.Error("smoke preset missing from list")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.DomainSize = 42
	cfg.Steps = 7
	cfg.Plot = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.DomainSize != 42 || loaded.Steps != 7 || !loaded.Plot {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	// Fields absent from the file keep defaults.
	if loaded.Diffusivity != DefaultDiffusivity {
		t.Errorf("expected default diffusivity, got %g", loaded.Diffusivity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/run.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
