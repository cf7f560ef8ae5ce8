package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() without files should return defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".phoenix", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "phoenix.yaml"), []byte("physics:\n  pipe_speed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.PipeSpeed != 3 {
		t.Errorf("PipeSpeed = %v, expected 3 from user config", cfg.Physics.PipeSpeed)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.25\nobstacles:\n  spawn_interval: 80\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.SpawnInterval != 80 {
		t.Errorf("SpawnInterval = %d, expected 80", cfg.Obstacles.SpawnInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.FlapImpulse != Default().Physics.FlapImpulse {
		t.Errorf("FlapImpulse = %v, expected default %v", cfg.Physics.FlapImpulse, Default().Physics.FlapImpulse)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("physics:\n  gravity: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() with negative gravity: expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }, false},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }, false},
		{"downward flap", func(c *Config) { c.Physics.FlapImpulse = 4 }, false},
		{"stalled pipes", func(c *Config) { c.Physics.PipeSpeed = 0 }, false},
		{"zero spawn interval", func(c *Config) { c.Obstacles.SpawnInterval = 0 }, false},
		{"negative margin", func(c *Config) { c.Obstacles.Margin = -1 }, false},
		{"gap does not fit", func(c *Config) { c.Obstacles.Gap = 600 }, false},
		{"gap exactly fits", func(c *Config) { c.Obstacles.Gap = 540 }, true},
		{"player off field", func(c *Config) { c.Player.X = 1000 }, false},
		{"flat player", func(c *Config) { c.Player.Height = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.Physics.PipeSpeed = 2.5

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}

func TestParseEmbeddedReportsErrors(t *testing.T) {
	if _, err := parseEmbedded([]byte("physics:\n  gravity: 0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("parseEmbedded() with invalid data = %v, expected wrapped ErrInvalid", err)
	}
	if _, err := parseEmbedded([]byte("physics: [broken")); err == nil {
		t.Error("parseEmbedded() with malformed YAML should fail")
	}

	cfg, err := parseEmbedded(DefaultYAML())
	if err != nil || cfg != Default() {
		t.Errorf("parseEmbedded(DefaultYAML()) = %+v, %v", cfg, err)
	}
}
