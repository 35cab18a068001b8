package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker() (*Tracker, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tr := NewTracker(100 * time.Millisecond)
	tr.SetClock(clock.Now)
	return tr, clock
}

func TestTrackerHoldExpires(t *testing.T) {
	tr, clock := newTestTracker()

	tr.Press(ActionMoveLeft)
	if !tr.Frame().Has(ActionMoveLeft) {
		t.Fatal("Move should be held right after press")
	}

	clock.Advance(60 * time.Millisecond)
	if !tr.Frame().Has(ActionMoveLeft) {
		t.Error("Move should still be held inside the hold window")
	}

	// Auto-repeat extends the hold
	tr.Press(ActionMoveLeft)
	clock.Advance(60 * time.Millisecond)
	if !tr.Frame().Has(ActionMoveLeft) {
		t.Error("Auto-repeat should extend the hold")
	}

	clock.Advance(100 * time.Millisecond)
	if tr.Frame().Has(ActionMoveLeft) {
		t.Error("Move should be released once the hold window lapses")
	}
}

func TestTrackerEdgeFiresOnce(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Press(ActionFire)
	tr.Press(ActionFire) // Two presses in one frame still fire once

	if !tr.Frame().Has(ActionFire) {
		t.Fatal("Fire should be reported on the first frame")
	}
	if tr.Frame().Has(ActionFire) {
		t.Error("Fire should not be reported again without a new press")
	}
}

func TestTrackerDirectionSwitch(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Press(ActionMoveLeft)
	tr.Press(ActionMoveRight)

	frame := tr.Frame()
	if frame.Has(ActionMoveLeft) {
		t.Error("Pressing right should release left")
	}
	if !frame.Has(ActionMoveRight) {
		t.Error("Right should be held")
	}
}

func TestTrackerReset(t *testing.T) {
	tr, _ := newTestTracker()

	tr.Press(ActionMoveLeft)
	tr.Press(ActionRestart)
	tr.Reset()
	frame := tr.Frame()
	if frame.Has(ActionMoveLeft) || frame.Has(ActionRestart) {
		t.Error("Reset should forget all input")
	}
}

func TestTrackerIgnoresNone(t *testing.T) {
	tr, _ := newTestTracker()
	tr.Press(ActionNone)
	if len(tr.Frame().Actions) != 0 {
		t.Error("ActionNone should never be reported")
	}
}

func TestActionIsEdge(t *testing.T) {
	tests := []struct {
		action Action
		edge   bool
	}{
		{ActionMoveLeft, false},
		{ActionMoveRight, false},
		{ActionFire, true},
		{ActionRestart, true},
	}
	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			if tc.action.IsEdge() != tc.edge {
				t.Errorf("%s.IsEdge() = %v, expected %v", tc.action, tc.action.IsEdge(), tc.edge)
			}
		})
	}
}
