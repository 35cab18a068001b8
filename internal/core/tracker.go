package core

import "time"

// DefaultHoldWindow is how long a move key counts as held after its last press.
// Terminals report key presses and auto-repeats but no releases, so holds decay.
const DefaultHoldWindow = 180 * time.Millisecond

// Tracker turns a stream of key presses into per-frame input state.
// Level-triggered actions stay held until their hold window lapses or Release
// is called; edge-triggered actions are reported by exactly one Frame call.
type Tracker struct {
	holdFor   time.Duration
	heldUntil map[Action]time.Time
	pressed   map[Action]bool
	now       func() time.Time
}

// NewTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewTracker(holdFor time.Duration) *Tracker {
	if holdFor <= 0 {
		holdFor = DefaultHoldWindow
	}
	return &Tracker{
		holdFor:   holdFor,
		heldUntil: make(map[Action]time.Time),
		pressed:   make(map[Action]bool),
		now:       time.Now,
	}
}

// SetClock replaces the time source. Intended for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

// Press records a key press (or auto-repeat) for the action.
func (t *Tracker) Press(a Action) {
	if a == ActionNone {
		return
	}
	if a.IsEdge() {
		t.pressed[a] = true
		return
	}

	// Switching direction releases the other one immediately
	switch a {
	case ActionMoveLeft:
		delete(t.heldUntil, ActionMoveRight)
	case ActionMoveRight:
		delete(t.heldUntil, ActionMoveLeft)
	}
	t.heldUntil[a] = t.now().Add(t.holdFor)
}

// Reset forgets all held and pending actions.
func (t *Tracker) Reset() {
	clear(t.heldUntil)
	clear(t.pressed)
}

// Frame returns the input for the next tick and consumes pending edges.
func (t *Tracker) Frame() InputFrame {
	frame := NewInputFrame()
	now := t.now()

	for a, until := range t.heldUntil {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(t.heldUntil, a)
		}
	}
	for a := range t.pressed {
		frame.Set(a)
	}
	clear(t.pressed)

	return frame
}
