package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex color for a screen cell.
// The empty string means the terminal's default foreground.
type Color string

// Predefined colors for game elements.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorCyan    Color = "#00f2ff"
	ColorRed     Color = "#ff3b3b"
	ColorGray    Color = "#808080"
)

// HSL builds a color from hue in degrees and saturation/lightness in [0, 1].
func HSL(hue, saturation, lightness float64) Color {
	return Color(colorful.Hsl(hue, saturation, lightness).Clamped().Hex())
}

// ParseColor validates a hex color string.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return ColorDefault, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(c.Hex()), nil
}

// Dim returns the color with its lightness scaled by factor.
// Used for glow halos. Unparseable colors are returned unchanged.
func (c Color) Dim(factor float64) Color {
	if c == ColorDefault {
		return c
	}
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	h, s, l := cc.Hsl()
	return HSL(h, s, ClampF(l*factor, 0, 1))
}
