package core

// Action represents a semantic game action, abstracted from physical key presses.
// Platform layers map their own key aliases (arrows, WASD) onto these.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionPause        // P, Escape - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state consumed by one simulation step.
type InputFrame struct {
	// Actions holds the actions currently held (movement) or triggered
	// this frame (pause, quit).
	Actions map[Action]bool

	// Cursor is the pointer position. Drivers fill it in their own space
	// (cells, pixels); the game maps it into arena units.
	Cursor Vec2

	// Clicked is a one-shot edge: true only for the frame in which the
	// pointer was pressed.
	Clicked bool
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

// Click records a pointer press at the given position.
func (f *InputFrame) Click(at Vec2) {
	f.Cursor = at
	f.Clicked = true
}

// ResetClicked clears the click edge. Drivers call it exactly once per
// frame, after the frame has been stepped.
func (f *InputFrame) ResetClicked() {
	f.Clicked = false
}

// Clear resets all actions and the click edge, keeping the cursor.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicked = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Cursor = f.Cursor
	clone.Clicked = f.Clicked
	return clone
}
