package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-map/internal/core"
)

// KeyMapper translates Bubble Tea key messages to viewer actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key pressed during playback.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "p":
		return core.ActionPause, false
	case "n", "right", "l":
		return core.ActionStep, false
	case "+", "=":
		return core.ActionFaster, false
	case "-", "_":
		return core.ActionSlower, false
	case "r":
		return core.ActionRestart, false
	case "c":
		return core.ActionCopy, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapMenuKey translates a key pressed in a list view.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "w", "up", "k": // vim-style k for up
		return core.ActionUp
	case "s", "down", "j": // vim-style j for down
		return core.ActionDown
	case "enter", " ":
		return core.ActionConfirm
	case "b", "esc":
		return core.ActionBack
	}

	return core.ActionNone
}
