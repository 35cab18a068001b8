package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// styleCache maps hex colors to lipgloss styles.
// Enemy colors are random, so styles are built on first use.
type styleCache map[core.Color]lipgloss.Style

func (c styleCache) style(col core.Color) lipgloss.Style {
	if s, ok := c[col]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if col != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(string(col)))
	}
	c[col] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
