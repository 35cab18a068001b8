package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

// Spawner decides once per tick whether a new enemy appears.
type Spawner struct {
	rng *rand.Rand
	cfg config.ShooterConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.ShooterConfig) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Spawn returns a new enemy with the configured probability.
func (s *Spawner) Spawn() (Enemy, bool) {
	if s.rng.Float64() >= s.cfg.Spawn.Probability {
		return Enemy{}, false
	}
	return NewEnemy(s.rng, s.cfg), true
}
