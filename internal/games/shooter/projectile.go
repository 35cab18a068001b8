package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Projectile is a shot travelling straight up.
type Projectile struct {
	X, Y   float64 // Center
	Radius float64
	Speed  float64
	Color  core.Color
}

// Advance moves the projectile up by its speed.
func (p *Projectile) Advance() {
	p.Y -= p.Speed
}

// IsOffscreen reports whether the projectile has left the top of the viewport.
func (p Projectile) IsOffscreen() bool {
	return p.Y < 0
}

// Draw fills the projectile as a circle.
func (p Projectile) Draw(dst core.Surface) {
	dst.FillCircle(p.X, p.Y, p.Radius, p.Color)
}
