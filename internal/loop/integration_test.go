package loop_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/loop"
)

type queue struct{ next func() }

func (q *queue) Schedule(frame func()) { q.next = frame }

type scoreboard struct {
	score    int
	gameOver bool
}

func (s *scoreboard) SetScore(score int)       { s.score = score }
func (s *scoreboard) SetGameOver(visible bool) { s.gameOver = visible }

func TestRedrawNeverStarted(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	canvas, err := core.NewCanvas(core.NewScreen(60, 40), cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}
	game := shooter.New(cfg)
	d, err := loop.New(loop.Options{
		Game:      game,
		Surface:   canvas,
		Display:   &scoreboard{},
		Input:     core.NewTracker(0),
		Scheduler: &queue{},
		Logger:    log.New(io.Discard),
	})
	if err != nil {
		t.Fatal(err)
	}

	d.Redraw()
	if d.Status() != loop.StatusStopped {
		t.Error("Redraw() should not change the status")
	}
	// An unstarted game is still safe to draw and query
	game.Render(canvas)
	if state := game.State(); state.Score != 0 || state.GameOver {
		t.Errorf("Fresh game state = %+v", state)
	}
}

func TestShooterThroughDriver(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.Probability = 1

	canvas, err := core.NewCanvas(core.NewScreen(60, 40), cfg.Viewport.Width, cfg.Viewport.Height)
	if err != nil {
		t.Fatal(err)
	}
	tracker := core.NewTracker(core.DefaultHoldWindow)
	q := &queue{}
	board := &scoreboard{}

	d, err := loop.New(loop.Options{
		Game:      shooter.New(cfg),
		Surface:   canvas,
		Display:   board,
		Input:     tracker,
		Scheduler: q,
		Logger:    log.New(io.Discard),
		Runtime:   core.RuntimeConfig{TickRate: 60, Seed: 11},
	})
	if err != nil {
		t.Fatal(err)
	}

	d.Start()
	frames := 0
	for q.next != nil && frames < 10000 {
		next := q.next
		q.next = nil
		if frames%10 == 0 {
			tracker.Press(core.ActionFire)
		}
		next()
		frames++
	}

	if d.Status() != loop.StatusStopped || !board.gameOver {
		t.Fatalf("Expected game over within %d frames", frames)
	}
	if board.score%cfg.Scoring.Award != 0 {
		t.Errorf("Score %d is not a multiple of %d", board.score, cfg.Scoring.Award)
	}
	if q.next != nil {
		t.Error("A frame was scheduled after game over")
	}
	if !strings.ContainsRune(canvas.Screen().String(), core.FillGlyph) {
		t.Error("Last frame should have been rendered")
	}
}
