package core

// Action is a semantic viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up, K - move menu cursor up
	ActionDown           // Down, J - move menu cursor down
	ActionConfirm        // Enter - pick a scenario
	ActionPause          // Space, P - pause/resume playback
	ActionStep           // N, Right - play a single turn while paused
	ActionFaster         // + - raise turns per second
	ActionSlower         // - - lower turns per second
	ActionRestart        // R - replay from turn zero
	ActionCopy           // C - copy the result lines to the clipboard
	ActionBack           // B, Escape - return to the scenario menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionRestart:
		return "Restart"
	case ActionCopy:
		return "Copy"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
