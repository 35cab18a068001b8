// Package loop drives a game one frame at a time.
// It owns the RUNNING/STOPPED lifecycle: while running every frame steps
// the game, renders it, updates the display and schedules the next frame;
// on game over it stops scheduling until a restart.
package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("loop: missing dependency")

// Scheduler requests that frame be called once at the next display refresh.
type Scheduler interface {
	Schedule(frame func())
}

// Display shows the score and the game-over message.
type Display interface {
	SetScore(score int)
	SetGameOver(visible bool)
}

// InputSource supplies the input for each frame.
type InputSource interface {
	Frame() core.InputFrame
	Reset()
}

// Status is the driver lifecycle state.
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures a Driver. Logger and Seeder are optional.
type Options struct {
	Game      registry.Game
	Surface   core.Surface
	Display   Display
	Input     InputSource
	Scheduler Scheduler
	Logger    *log.Logger
	Runtime   core.RuntimeConfig

	// Seeder supplies the seed for each restart. Defaults to the clock.
	Seeder func() int64
}

// Driver runs the frame loop.
type Driver struct {
	game    registry.Game
	surface core.Surface
	display Display
	input   InputSource
	sched   Scheduler
	logger  *log.Logger
	runtime core.RuntimeConfig
	seeder  func() int64

	status  Status
	started bool
	frames  int // Frames since the last start
}

// New creates a stopped driver.
func New(opts Options) (*Driver, error) {
	switch {
	case opts.Game == nil:
		return nil, fmt.Errorf("%w: game", ErrMissingDependency)
	case opts.Surface == nil:
		return nil, fmt.Errorf("%w: surface", ErrMissingDependency)
	case opts.Display == nil:
		return nil, fmt.Errorf("%w: display", ErrMissingDependency)
	case opts.Input == nil:
		return nil, fmt.Errorf("%w: input", ErrMissingDependency)
	case opts.Scheduler == nil:
		return nil, fmt.Errorf("%w: scheduler", ErrMissingDependency)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	seeder := opts.Seeder
	if seeder == nil {
		seeder = func() int64 { return time.Now().UnixNano() }
	}

	return &Driver{
		game:    opts.Game,
		surface: opts.Surface,
		display: opts.Display,
		input:   opts.Input,
		sched:   opts.Scheduler,
		logger:  logger,
		runtime: opts.Runtime,
		seeder:  seeder,
		status:  StatusStopped,
	}, nil
}

// Start resets the game with the configured seed and begins running.
// It is a no-op while already running.
func (d *Driver) Start() {
	if d.status == StatusRunning {
		return
	}
	d.begin()
	d.logger.Info("game started", "game", d.game.ID(), "seed", d.runtime.Seed)
}

// Restart resets the game with a fresh seed and resumes running.
// It only acts while stopped and reports whether it did.
func (d *Driver) Restart() bool {
	if d.status != StatusStopped {
		return false
	}
	d.runtime.Seed = d.seeder()
	d.begin()
	d.logger.Info("game restarted", "game", d.game.ID(), "seed", d.runtime.Seed)
	return true
}

func (d *Driver) begin() {
	d.input.Reset()
	d.game.Reset(d.runtime)
	d.frames = 0
	d.display.SetScore(0)
	d.display.SetGameOver(false)
	d.status = StatusRunning
	d.started = true
	d.sched.Schedule(d.Frame)
}

// Frame runs one iteration: read input, step, render, update the display,
// then schedule the next frame or stop on game over.
func (d *Driver) Frame() {
	if d.status != StatusRunning {
		return
	}
	d.frames++

	res := d.game.Step(d.input.Frame())
	d.game.Render(d.surface)
	d.display.SetScore(res.State.Score)

	if res.Destroyed > 0 {
		d.logger.Debug("enemy destroyed", "count", res.Destroyed, "score", res.State.Score)
	}

	if res.State.GameOver {
		d.status = StatusStopped
		d.display.SetGameOver(true)
		d.logger.Info("game over", "score", res.State.Score, "frames", d.frames)
		return
	}
	d.sched.Schedule(d.Frame)
}

// Redraw renders the current state without advancing it.
// It does nothing before the first Start.
func (d *Driver) Redraw() {
	if !d.started {
		return
	}
	d.game.Render(d.surface)
}

// Status returns the lifecycle state.
func (d *Driver) Status() Status {
	return d.status
}

// Runtime returns the runtime config of the current run.
func (d *Driver) Runtime() core.RuntimeConfig {
	return d.runtime
}
