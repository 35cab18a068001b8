package shooter

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// TickResult reports what happened during one simulation tick.
type TickResult struct {
	Destroyed int  // Enemies destroyed by projectiles
	Spawned   bool // A new enemy entered
}

// Snapshot is a read-only copy of the world used for rendering.
type Snapshot struct {
	Score       int
	GameOver    bool
	Ticks       int // Ticks simulated since the last reset
	Player      Player
	Projectiles []Projectile
	Enemies     []Enemy
}

// State owns every entity, the score and the game-over flag.
// All randomness comes from a single seeded source so a run is
// reproducible from its seed and input sequence.
type State struct {
	cfg     config.ShooterConfig
	rng     *rand.Rand
	spawner *Spawner

	player      Player
	projectiles []Projectile
	enemies     []Enemy
	score       int
	gameOver    bool
	tickCount   int

	// Projectiles consumed by a hit this tick, indexed like projectiles
	consumed []bool
}

// NewState creates a fresh world.
func NewState(cfg config.ShooterConfig, seed int64) *State {
	s := &State{
		cfg:         cfg,
		projectiles: make([]Projectile, 0, 16),
		enemies:     make([]Enemy, 0, 16),
	}
	s.Reset(seed)
	return s
}

// Reset discards all entities and returns to the initial state.
func (s *State) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.spawner = NewSpawner(s.rng, s.cfg)
	s.player = NewPlayer(s.cfg)
	s.projectiles = s.projectiles[:0]
	s.enemies = s.enemies[:0]
	s.score = 0
	s.gameOver = false
	s.tickCount = 0
}

// Fire launches a projectile from the player's nose.
// Returns false, without effect, once the game is over.
func (s *State) Fire() bool {
	if s.gameOver {
		return false
	}
	nose := s.player.Nose()
	s.projectiles = append(s.projectiles, Projectile{
		X:      nose.X,
		Y:      nose.Y,
		Radius: s.cfg.Projectile.Radius,
		Speed:  s.cfg.Projectile.Speed,
		Color:  projectileColor(s.cfg),
	})
	return true
}

// Tick advances the world by one frame. It is a no-op once the game is over.
//
// Order: move the player, advance projectiles and drop those off the top,
// advance enemies and resolve collisions, then maybe spawn. Removals are
// marked during the enemy pass and filtered afterwards, so an entity is
// removed at most once and a projectile scores at most one enemy.
// If the player is hit mid-pass the pass still completes, and nothing
// spawns that tick.
func (s *State) Tick(in core.InputFrame) TickResult {
	var res TickResult
	if s.gameOver {
		return res
	}
	s.tickCount++

	if in.Has(core.ActionMoveLeft) {
		s.player.MoveLeft()
	}
	if in.Has(core.ActionMoveRight) {
		s.player.MoveRight()
	}

	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.Advance()
		if !p.IsOffscreen() {
			live = append(live, p)
		}
	}
	s.projectiles = live

	s.consumed = slices.Grow(s.consumed[:0], len(s.projectiles))[:len(s.projectiles)]
	clear(s.consumed)

	playerBox := s.player.Bounds()
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		e.Advance()
		box := e.Bounds()

		remove := false
		if core.RectOverlap(playerBox, box) {
			s.gameOver = true
			remove = true
		}
		for j, p := range s.projectiles {
			if s.consumed[j] || !core.PointInRect(p.X, p.Y, box) {
				continue
			}
			s.consumed[j] = true
			s.score += s.cfg.Scoring.Award
			res.Destroyed++
			remove = true
			break
		}
		if e.IsOffscreen(s.cfg.Viewport.Height) {
			remove = true
		}

		if !remove {
			kept = append(kept, e)
		}
	}
	s.enemies = kept

	if res.Destroyed > 0 {
		live = s.projectiles[:0]
		for j, p := range s.projectiles {
			if !s.consumed[j] {
				live = append(live, p)
			}
		}
		s.projectiles = live
	}

	if !s.gameOver {
		if e, ok := s.spawner.Spawn(); ok {
			s.enemies = append(s.enemies, e)
			res.Spawned = true
		}
	}

	return res
}

// Score returns the current score.
func (s *State) Score() int {
	return s.score
}

// GameOver reports whether the player has been hit.
func (s *State) GameOver() bool {
	return s.gameOver
}

// Snapshot returns a copy of the world.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Score:       s.score,
		GameOver:    s.gameOver,
		Ticks:       s.tickCount,
		Player:      s.player,
		Projectiles: slices.Clone(s.projectiles),
		Enemies:     slices.Clone(s.enemies),
	}
}

func projectileColor(cfg config.ShooterConfig) core.Color {
	c, _ := core.ParseColor(cfg.Projectile.Color)
	return c
}
