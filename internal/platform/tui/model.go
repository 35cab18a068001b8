package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/loop"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// chromeRows is the number of terminal rows used by the header and footer.
const chromeRows = 2

// Options configures a game session.
type Options struct {
	Game    registry.Game
	Runtime core.RuntimeConfig

	// Logical viewport the game draws into
	ViewportW float64
	ViewportH float64

	HoldWindow    time.Duration
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.shooter/screenshots
}

// Model is the Bubble Tea model hosting the frame driver.
type Model struct {
	driver  *loop.Driver
	sched   *frameScheduler
	tracker *core.Tracker
	canvas  *core.Canvas
	hud     *HUD
	keys    KeyMap
	help    help.Model
	styles  styleCache
	logger  *log.Logger

	gameID        string
	tickRate      int
	width         int
	screenshotDir string
	quitting      bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(opts Options) (Model, error) {
	if opts.Game == nil {
		return Model{}, fmt.Errorf("%w: game", loop.ErrMissingDependency)
	}

	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-chromeRows, 1))
	canvas, err := core.NewCanvas(screen, opts.ViewportW, opts.ViewportH)
	if err != nil {
		return Model{}, err
	}

	sched := &frameScheduler{}
	tracker := core.NewTracker(opts.HoldWindow)
	hud := NewHUD(opts.Game.Title())

	driver, err := loop.New(loop.Options{
		Game:      opts.Game,
		Surface:   canvas,
		Display:   hud,
		Input:     tracker,
		Scheduler: sched,
		Logger:    logger,
		Runtime:   cfg,
	})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		driver:        driver,
		sched:         sched,
		tracker:       tracker,
		canvas:        canvas,
		hud:           hud,
		keys:          DefaultKeyMap(),
		help:          h,
		styles:        make(styleCache),
		logger:        logger,
		gameID:        opts.Game.ID(),
		tickRate:      cfg.TickRate,
		width:         cfg.ScreenW,
		screenshotDir: opts.ScreenshotDir,
	}, nil
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.driver.Start()
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionRestart:
		// Only a stopped driver restarts, so no tick is in flight
		if m.driver.Restart() {
			return m, tickCmd(m.tickRate)
		}
	default:
		// Presses while stopped are dropped
		if m.driver.Status() == loop.StatusRunning {
			m.tracker.Press(action)
		}
	}

	return m, nil
}

// handleResize refits the canvas to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.canvas.Resize(max(msg.Width, 1), max(msg.Height-chromeRows, 1))

	// A running game redraws on its next frame
	if m.driver.Status() == loop.StatusStopped {
		m.driver.Redraw()
	}
	return m, nil
}

// handleTick runs the pending frame and keeps ticking while another is scheduled.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if frame := m.sched.take(); frame != nil {
		frame()
	}
	if m.sched.pending() {
		return m, tickCmd(m.tickRate)
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() string {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return ""
		}
		dir = filepath.Join(home, ".shooter", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return ""
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.gameID, timestamp))

	if err := os.WriteFile(path, []byte(m.canvas.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return ""
	}
	m.logger.Info("screenshot saved", "path", path)
	return path
}

// View renders the header, canvas and footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.hud.Banner(m.width)
	if footer == "" {
		footer = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud.Header(m.width),
		RenderScreen(m.canvas.Screen(), m.styles),
		footer,
	)
}

// Run starts the Bubble Tea program for a game session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
