package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// HUD is the text around the canvas: a score header and a game-over banner.
// It satisfies loop.Display.
type HUD struct {
	title    string
	score    int
	gameOver bool

	titleStyle  lipgloss.Style
	scoreStyle  lipgloss.Style
	bannerStyle lipgloss.Style
	hintStyle   lipgloss.Style
}

// NewHUD creates a HUD for the given game title.
func NewHUD(title string) *HUD {
	return &HUD{
		title: title,
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorCyan)),
		scoreStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(core.ColorWhite)),
		bannerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(core.ColorWhite)).
			Background(lipgloss.Color(core.ColorRed)).
			Padding(0, 2),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(core.ColorGray)),
	}
}

// SetScore updates the displayed score.
func (h *HUD) SetScore(score int) {
	h.score = score
}

// SetGameOver shows or hides the game-over banner.
func (h *HUD) SetGameOver(visible bool) {
	h.gameOver = visible
}

// Score returns the displayed score.
func (h *HUD) Score() int {
	return h.score
}

// GameOver reports whether the banner is visible.
func (h *HUD) GameOver() bool {
	return h.gameOver
}

// Header renders the title and score line, centered in width columns.
func (h *HUD) Header(width int) string {
	line := h.titleStyle.Render(h.title) + "  " + h.scoreStyle.Render(fmt.Sprintf("Score: %d", h.score))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

// Banner renders the game-over line, or "" while playing.
func (h *HUD) Banner(width int) string {
	if !h.gameOver {
		return ""
	}
	line := h.bannerStyle.Render("GAME OVER") + " " +
		h.hintStyle.Render(fmt.Sprintf("Score: %d  |  Press R to restart", h.score))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
