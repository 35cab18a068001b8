package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// starSize is the side of a background star in logical units.
const starSize = 1

// Renderer draws snapshots onto a surface.
// The starfield is redrawn at random positions every frame from its own
// source, so rendering never perturbs the simulation.
type Renderer struct {
	rng       *rand.Rand
	stars     int
	starColor core.Color
}

// NewRenderer creates a renderer with a seeded starfield source.
func NewRenderer(seed int64, stars int, starColor core.Color) *Renderer {
	return &Renderer{
		rng:       rand.New(rand.NewSource(seed)),
		stars:     stars,
		starColor: starColor,
	}
}

// Render clears dst and draws the starfield, player, projectiles and enemies.
func (r *Renderer) Render(dst core.Surface, snap Snapshot) {
	dst.Clear()

	w, h := dst.Size()
	for i := 0; i < r.stars; i++ {
		x := r.rng.Float64() * w
		y := r.rng.Float64() * h
		dst.FillRect(core.NewRect(x, y, starSize, starSize), r.starColor)
	}

	snap.Player.Draw(dst)
	for _, p := range snap.Projectiles {
		p.Draw(dst)
	}
	for _, e := range snap.Enemies {
		e.Draw(dst)
	}
}
