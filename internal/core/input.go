package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A, H - level-triggered
	ActionMoveRight        // Right arrow, D, L - level-triggered
	ActionFire             // Space, Up, W - edge-triggered
	ActionRestart          // R - edge-triggered, only after game over
)

// String returns the action identifier.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "moveLeft"
	case ActionMoveRight:
		return "moveRight"
	case ActionFire:
		return "fire"
	case ActionRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// IsEdge reports whether the action fires once per press rather than
// continuously while held.
func (a Action) IsEdge() bool {
	return a == ActionFire || a == ActionRestart
}

// InputFrame represents the input state for a single simulation tick.
// For level-triggered actions a true entry means "currently held";
// for edge-triggered actions it means "pressed since the previous frame".
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
