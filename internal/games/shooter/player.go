package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship at the bottom of the viewport.
// X is always kept within [0, viewport width - Width].
type Player struct {
	X, Y          float64 // Top-left corner of the bounding box
	Width, Height float64
	Speed         float64 // Horizontal units per tick
	Color         core.Color
	Glow          float64

	maxX float64
}

// NewPlayer places a player horizontally centered near the bottom edge.
func NewPlayer(cfg config.ShooterConfig) Player {
	color, _ := core.ParseColor(cfg.Player.Color)
	return Player{
		X:      cfg.Viewport.Width/2 - cfg.Player.Width/2,
		Y:      cfg.Viewport.Height - cfg.Player.BottomOffset,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		Speed:  cfg.Player.Speed,
		Color:  color,
		Glow:   cfg.Player.Glow,
		maxX:   cfg.Viewport.Width - cfg.Player.Width,
	}
}

// MoveLeft moves the ship left by its speed, stopping at the left edge.
func (p *Player) MoveLeft() {
	p.X = core.ClampF(p.X-p.Speed, 0, p.maxX)
}

// MoveRight moves the ship right by its speed, stopping at the right edge.
func (p *Player) MoveRight() {
	p.X = core.ClampF(p.X+p.Speed, 0, p.maxX)
}

// Bounds returns the collision box.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Nose returns the apex of the ship, where projectiles are launched.
func (p Player) Nose() core.Point {
	return core.Point{X: p.X + p.Width/2, Y: p.Y}
}

// Draw fills the ship as an upward triangle with a glow halo.
func (p Player) Draw(dst core.Surface) {
	dst.SetGlow(p.Glow, p.Color)
	dst.FillPolygon([]core.Point{
		p.Nose(),
		{X: p.X, Y: p.Y + p.Height},
		{X: p.X + p.Width, Y: p.Y + p.Height},
	}, p.Color)
	dst.SetGlow(0, core.ColorDefault)
}
