package shooter

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// hueStep quantizes enemy hues so the palette stays small.
const hueStep = 5.0

// Enemy is a square descending at a constant speed.
type Enemy struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	Color         core.Color
}

// NewEnemy creates an enemy just above the viewport.
// It draws from rng in a fixed order: x, speed, hue.
func NewEnemy(rng *rand.Rand, cfg config.ShooterConfig) Enemy {
	x := rng.Float64() * (cfg.Viewport.Width - cfg.Enemy.Width)
	speed := cfg.Enemy.MinSpeed + rng.Float64()*(cfg.Enemy.MaxSpeed-cfg.Enemy.MinSpeed)
	hue := math.Floor(rng.Float64()*360/hueStep) * hueStep

	return Enemy{
		X:      x,
		Y:      -cfg.Enemy.Height,
		Width:  cfg.Enemy.Width,
		Height: cfg.Enemy.Height,
		Speed:  speed,
		Color:  core.HSL(hue, cfg.Enemy.Saturation, cfg.Enemy.Lightness),
	}
}

// Advance moves the enemy down by its speed.
func (e *Enemy) Advance() {
	e.Y += e.Speed
}

// IsOffscreen reports whether the enemy's top edge has passed below the viewport.
func (e Enemy) IsOffscreen(viewportH float64) bool {
	return e.Y > viewportH
}

// Bounds returns the collision box.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Draw fills the enemy's bounding box.
func (e Enemy) Draw(dst core.Surface) {
	dst.FillRect(e.Bounds(), e.Color)
}
