package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config should parse: %v", err)
	}

	def := Default()
	if cfg.World != def.World {
		t.Errorf("world mismatch: %+v vs %+v", cfg.World, def.World)
	}
	if cfg.Actor != def.Actor {
		t.Errorf("actor mismatch: %+v vs %+v", cfg.Actor, def.Actor)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("obstacles mismatch: %+v vs %+v", cfg.Obstacles, def.Obstacles)
	}
	for _, name := range PresetNames {
		if cfg.Presets[name] != def.Presets[name] {
			t.Errorf("preset %q mismatch: %+v vs %+v", name, cfg.Presets[name], def.Presets[name])
		}
	}
}

func TestPresetValues(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name     string
		gravity  float64
		impulse  float64
		speed    float64
		gap      float64
		interval int
	}{
		{Easy, 0.12, 3.2, 1.0, 170, 180},
		{Medium, 0.15, 3.5, 1.2, 150, 150},
		{Hard, 0.18, 4.0, 1.5, 130, 120},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := cfg.Preset(tc.name)
			if !ok {
				t.Fatalf("preset %q missing", tc.name)
			}
			if p.Name != tc.name {
				t.Errorf("Name = %q, expected %q", p.Name, tc.name)
			}
			if p.Gravity != tc.gravity || p.Impulse != tc.impulse || p.ObstacleSpeed != tc.speed ||
				p.GapHeight != tc.gap || p.SpawnInterval != tc.interval {
				t.Errorf("preset %q = %+v", tc.name, p)
			}
		})
	}

	if _, err := cfg.LookupPreset("insane"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("LookupPreset(unknown) error = %v, expected ErrUnknownPreset", err)
	}
}

func TestLoadCustomOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := `
default_difficulty: hard
presets:
  hard:
    gravity: 0.2
    impulse: 4.5
    obstacle_speed: 2
    gap_height: 120
    spawn_interval: 100
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DefaultDifficulty != Hard {
		t.Errorf("DefaultDifficulty = %q, expected hard", cfg.DefaultDifficulty)
	}
	if cfg.Presets[Hard].SpawnInterval != 100 {
		t.Errorf("hard spawn interval = %d, expected 100", cfg.Presets[Hard].SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Presets[Easy].GapHeight != 170 {
		t.Errorf("easy gap = %v, expected 170", cfg.Presets[Easy].GapHeight)
	}
	if cfg.World.Width != 320 {
		t.Errorf("world width = %v, expected 320", cfg.World.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"bad yaml", "presets: [", "failed to parse"},
		{"zero interval", "presets:\n  easy:\n    gravity: 0.1\n    impulse: 3\n    obstacle_speed: 1\n    gap_height: 100\n    spawn_interval: 0\n", "spawn interval"},
		{"extra preset", "presets:\n  nightmare:\n    gravity: 1\n    impulse: 1\n    obstacle_speed: 1\n    gap_height: 1\n    spawn_interval: 1\n", "nightmare"},
		{"bad default", "default_difficulty: normal\n", "default difficulty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.doc), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q should mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadEmbedded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config invalid: %v", err)
	}
	if cfg.World.GroundY() != 400 {
		t.Errorf("GroundY() = %v, expected 400", cfg.World.GroundY())
	}
}

func TestSelector(t *testing.T) {
	s := NewSelector(Default())

	if s.Selected() != Medium {
		t.Errorf("initial selection = %q, expected medium", s.Selected())
	}

	if !s.Select(Hard) {
		t.Error("Select(hard) should succeed")
	}
	if s.Profile().GapHeight != 130 {
		t.Errorf("hard gap = %v, expected 130", s.Profile().GapHeight)
	}

	if s.Select("nightmare") {
		t.Error("Select(unknown) should report false")
	}
	if s.Selected() != Hard {
		t.Errorf("unknown selection should be ignored, got %q", s.Selected())
	}

	s.Cycle(1)
	if s.Selected() != Easy {
		t.Errorf("Cycle(1) from hard = %q, expected easy", s.Selected())
	}
	s.Cycle(-1)
	if s.Selected() != Hard {
		t.Errorf("Cycle(-1) from easy = %q, expected hard", s.Selected())
	}
}
