package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionPitchUp          // W, Up arrow - raise the nose
	ActionPitchDown        // S, Down arrow - lower the nose
	ActionLaunch           // Space, Enter - start a flight from idle
	ActionRestart          // R - back to the launch pad
	ActionPause            // P - pause/unpause
	ActionHistory          // H - toggle run history
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPitchUp:
		return "PitchUp"
	case ActionPitchDown:
		return "PitchDown"
	case ActionLaunch:
		return "Launch"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionHistory:
		return "History"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for a single simulation tick.
// Edge-triggered actions are collected in Actions; Pitch is the
// continuous stick value in [-1, 1] where positive lowers the nose.
type InputFrame struct {
	Actions map[Action]bool
	Pitch   float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the pitch for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pitch = 0
}
