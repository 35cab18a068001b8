package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultShooterConfig() {
		t.Errorf("Embedded YAML differs from DefaultShooterConfig():\n got  %+v\n want %+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  probability: 0.5\nplayer:\n  speed: 8\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Spawn.Probability != 0.5 {
		t.Errorf("Spawn.Probability = %v, expected 0.5", cfg.Spawn.Probability)
	}
	if cfg.Player.Speed != 8 {
		t.Errorf("Player.Speed = %v, expected 8", cfg.Player.Speed)
	}
	// Unset fields keep defaults
	if cfg.Viewport.Width != 600 || cfg.Enemy.Width != 40 {
		t.Errorf("Partial config should keep defaults, got viewport %v enemy %v", cfg.Viewport.Width, cfg.Enemy.Width)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadShooter(filepath.Join(dir, "nope.yaml"))
		if err == nil {
			t.Error("Expected error for missing custom config")
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("viewport: [1, 2"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, _, err := LoadShooter(path); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("viewport:\n  width: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, _, err := LoadShooter(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero viewport", func(c *ShooterConfig) { c.Viewport.Height = 0 }},
		{"negative viewport", func(c *ShooterConfig) { c.Viewport.Width = -600 }},
		{"player wider than viewport", func(c *ShooterConfig) { c.Player.Width = 700 }},
		{"player below viewport", func(c *ShooterConfig) { c.Player.BottomOffset = 10 }},
		{"zero player speed", func(c *ShooterConfig) { c.Player.Speed = 0 }},
		{"zero projectile speed", func(c *ShooterConfig) { c.Projectile.Speed = 0 }},
		{"inverted enemy speeds", func(c *ShooterConfig) { c.Enemy.MinSpeed, c.Enemy.MaxSpeed = 4, 2 }},
		{"saturation above one", func(c *ShooterConfig) { c.Enemy.Saturation = 1.5 }},
		{"spawn probability above one", func(c *ShooterConfig) { c.Spawn.Probability = 1.1 }},
		{"negative spawn probability", func(c *ShooterConfig) { c.Spawn.Probability = -0.1 }},
		{"zero award", func(c *ShooterConfig) { c.Scoring.Award = 0 }},
		{"bad color", func(c *ShooterConfig) { c.Player.Color = "cyan" }},
		{"negative hold", func(c *ShooterConfig) { c.Input.HoldMS = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{"easy", 0.02},
		{"normal", 0.03},
		{"hard", 0.05},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.in)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.in, err)
			}
			cfg := DefaultShooterConfig()
			cfg.Spawn.Probability = 0.9
			ApplyShooterPreset(&cfg, preset)
			if cfg.Spawn.Probability != tc.expected {
				t.Errorf("Spawn.Probability = %v, expected %v", cfg.Spawn.Probability, tc.expected)
			}
		})
	}

	// Empty preset keeps the configured rate
	cfg := DefaultShooterConfig()
	cfg.Spawn.Probability = 0.9
	ApplyShooterPreset(&cfg, "")
	if cfg.Spawn.Probability != 0.9 {
		t.Errorf("Empty preset should not change spawn probability, got %v", cfg.Spawn.Probability)
	}

	if _, err := ParseDifficulty("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParseDifficulty(nightmare) = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Spawn.Probability = 0.07

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Round trip mismatch:\n got  %+v\n want %+v", got, cfg)
	}
}
