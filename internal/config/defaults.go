package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Viewport: ShooterViewport{
			Width:  600,
			Height: 800,
		},
		Player: ShooterPlayer{
			Width:        50,
			Height:       50,
			Speed:        5,
			BottomOffset: 60,
			Color:        "#00f2ff",
			Glow:         15,
		},
		Projectile: ShooterProjectile{
			Radius: 4,
			Speed:  7,
			Color:  "#ffffff",
		},
		Enemy: ShooterEnemy{
			Width:      40,
			Height:     40,
			MinSpeed:   2,
			MaxSpeed:   4,
			Saturation: 0.7,
			Lightness:  0.5,
		},
		Spawn: ShooterSpawn{
			Probability: 0.03,
		},
		Scoring: ShooterScoring{
			Award: 10,
		},
		Background: ShooterBackground{
			Stars: 5,
			Color: "#ffffff",
		},
		Input: ShooterInput{
			HoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
