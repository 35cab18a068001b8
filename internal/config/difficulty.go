package config

import "fmt"

// DifficultyPreset represents a named spawn rate.
// Presets only pick a constant per-tick probability; there is no progression.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI flag value to a preset.
// The empty string means "keep the configured rate".
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// SpawnProbabilityForPreset returns the per-tick spawn probability for a preset.
func SpawnProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.02
	case DifficultyHard:
		return 0.05
	default:
		return 0.03
	}
}

// ApplyShooterPreset overrides the spawn probability for a non-empty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Spawn.Probability = SpawnProbabilityForPreset(preset)
}
