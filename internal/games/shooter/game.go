// Package shooter implements a vertical arcade shooter.
// The player moves a ship along the bottom of the viewport and fires
// upward at enemies descending from the top. Touching an enemy ends the run.
package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// starSeedSalt separates the starfield source from the simulation source.
const starSeedSalt = 0x5eed

// Game adapts State to the frame driver: one Step per frame, then Render.
type Game struct {
	cfg      config.ShooterConfig
	state    *State
	renderer *Renderer
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)

func init() {
	registry.Register("shooter", func(cfg config.ShooterConfig) registry.Game {
		return New(cfg)
	})
}

// New creates a shooter game seeded with 0. Reset picks the run's seed.
func New(cfg config.ShooterConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.RuntimeConfig{})
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shooter"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.state == nil {
		g.state = NewState(g.cfg, cfg.Seed)
	} else {
		g.state.Reset(cfg.Seed)
	}

	starColor, _ := core.ParseColor(g.cfg.Background.Color)
	g.renderer = NewRenderer(cfg.Seed^starSeedSalt, g.cfg.Background.Stars, starColor)
}

// Step applies a pending fire press, then advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	fired := false
	if in.Has(core.ActionFire) {
		fired = g.state.Fire()
	}
	res := g.state.Tick(in)

	return core.StepResult{
		State:     g.State(),
		Fired:     fired,
		Destroyed: res.Destroyed,
		Spawned:   res.Spawned,
	}
}

// Render draws the current world onto dst.
func (g *Game) Render(dst core.Surface) {
	g.renderer.Render(dst, g.state.Snapshot())
}

// State returns the current score and game-over flag.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.GameOver(),
	}
}

// Snapshot returns a copy of the world.
func (g *Game) Snapshot() Snapshot {
	return g.state.Snapshot()
}
