package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-map/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space pauses", runeKey(' '), core.ActionPause, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"n steps", runeKey('n'), core.ActionStep, false},
		{"right steps", tea.KeyMsg{Type: tea.KeyRight}, core.ActionStep, false},
		{"plus speeds up", runeKey('+'), core.ActionFaster, false},
		{"minus slows down", runeKey('-'), core.ActionSlower, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"c copies", runeKey('c'), core.ActionCopy, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tt.msg.String(), quit, tt.quit)
			}
		})
	}
}

func TestMapMenuKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('k'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('j'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{runeKey('q'), core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapMenuKey(tt.msg); got != tt.action {
			t.Errorf("MapMenuKey(%q) = %v, expected %v", tt.msg.String(), got, tt.action)
		}
	}
}
