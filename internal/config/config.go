// Package config provides YAML-based game configuration loading and
// validation for the shooter.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ShooterConfig contains all configuration for the shooter.
type ShooterConfig struct {
	Viewport   ShooterViewport   `yaml:"viewport"`
	Player     ShooterPlayer     `yaml:"player"`
	Projectile ShooterProjectile `yaml:"projectile"`
	Enemy      ShooterEnemy      `yaml:"enemy"`
	Spawn      ShooterSpawn      `yaml:"spawn"`
	Scoring    ShooterScoring    `yaml:"scoring"`
	Background ShooterBackground `yaml:"background"`
	Input      ShooterInput      `yaml:"input"`
}

// ShooterViewport defines the logical drawing area.
type ShooterViewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShooterPlayer defines the player's ship.
type ShooterPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // Viewport height minus the ship's y
	Color        string  `yaml:"color"`
	Glow         float64 `yaml:"glow"` // Halo radius, 0 = off
}

// ShooterProjectile defines the player's shots.
type ShooterProjectile struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"`
}

// ShooterEnemy defines descending enemies.
type ShooterEnemy struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MinSpeed   float64 `yaml:"min_speed"`
	MaxSpeed   float64 `yaml:"max_speed"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// ShooterSpawn defines the enemy spawn rate.
type ShooterSpawn struct {
	Probability float64 `yaml:"probability"` // Per-tick chance of one new enemy
}

// ShooterScoring defines score awards.
type ShooterScoring struct {
	Award int `yaml:"award"` // Points per destroyed enemy
}

// ShooterBackground defines the starfield.
type ShooterBackground struct {
	Stars int    `yaml:"stars"`
	Color string `yaml:"color"`
}

// ShooterInput defines input debouncing.
type ShooterInput struct {
	HoldMS int `yaml:"hold_ms"`
}

// HoldWindow returns the move-key hold window as a duration.
func (i ShooterInput) HoldWindow() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.Width > c.Viewport.Width:
		return fmt.Errorf("%w: player width %v exceeds viewport width %v", ErrInvalidConfig, c.Player.Width, c.Viewport.Width)
	case c.Player.BottomOffset < c.Player.Height || c.Player.BottomOffset > c.Viewport.Height:
		return fmt.Errorf("%w: player bottom_offset must be in [height, viewport height]", ErrInvalidConfig)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed must be positive", ErrInvalidConfig)
	case c.Player.Glow < 0:
		return fmt.Errorf("%w: player glow must not be negative", ErrInvalidConfig)
	case c.Projectile.Radius <= 0 || c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile radius and speed must be positive", ErrInvalidConfig)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidConfig)
	case c.Enemy.Width > c.Viewport.Width:
		return fmt.Errorf("%w: enemy width %v exceeds viewport width %v", ErrInvalidConfig, c.Enemy.Width, c.Viewport.Width)
	case c.Enemy.MinSpeed <= 0 || c.Enemy.MaxSpeed < c.Enemy.MinSpeed:
		return fmt.Errorf("%w: enemy speeds must satisfy 0 < min_speed <= max_speed", ErrInvalidConfig)
	case c.Enemy.Saturation < 0 || c.Enemy.Saturation > 1 || c.Enemy.Lightness < 0 || c.Enemy.Lightness > 1:
		return fmt.Errorf("%w: enemy saturation and lightness must be in [0, 1]", ErrInvalidConfig)
	case c.Spawn.Probability < 0 || c.Spawn.Probability > 1:
		return fmt.Errorf("%w: spawn probability %v outside [0, 1]", ErrInvalidConfig, c.Spawn.Probability)
	case c.Scoring.Award <= 0:
		return fmt.Errorf("%w: scoring award must be positive", ErrInvalidConfig)
	case c.Background.Stars < 0:
		return fmt.Errorf("%w: background stars must not be negative", ErrInvalidConfig)
	case c.Input.HoldMS < 0:
		return fmt.Errorf("%w: input hold_ms must not be negative", ErrInvalidConfig)
	}

	for field, s := range map[string]string{
		"player.color":     c.Player.Color,
		"projectile.color": c.Projectile.Color,
		"background.color": c.Background.Color,
	} {
		if _, err := core.ParseColor(s); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
		}
	}
	return nil
}
