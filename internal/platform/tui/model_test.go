package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/world"
)

var islandLines = []string{
	"C - 3 - 4",
	"M - 1 - 0",
	"M - 2 - 1",
	"T - 0 - 3 - 2",
	"T - 1 - 3 - 3",
	"A - Lara - 1 - 1 - S - AADADAGGA",
}

func newIslandPlayback(t *testing.T) (PlaybackModel, *world.World) {
	t.Helper()
	w, err := scenario.Parse(islandLines)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TurnRate: 4}
	return NewPlaybackModel("island", w, nil, cfg), w
}

func update(t *testing.T, m PlaybackModel, msg tea.Msg) PlaybackModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PlaybackModel)
	if !ok {
		t.Fatalf("Update returned %T, expected PlaybackModel", next)
	}
	return pm
}

func TestPlaybackStepsToTheEnd(t *testing.T) {
	m, initial := newIslandPlayback(t)

	for i := 0; i < 20 && !m.State().Done; i++ {
		m = update(t, m, runeKey('n'))
	}

	st := m.State()
	if !st.Done {
		t.Fatal("playback should finish within 20 steps")
	}
	if !st.Paused {
		t.Error("stepping should pause playback")
	}

	lara := m.World().AdventurerNamed("Lara")
	if lara.Pos != world.P(0, 3) || lara.Collected != 3 {
		t.Errorf("Lara = %v holding %d, expected (0,3) holding 3", lara.Pos, lara.Collected)
	}

	// The world handed to the viewer is never played.
	if got := initial.AdventurerNamed("Lara").Pos; got != world.P(1, 1) {
		t.Errorf("initial world changed: Lara at %v", got)
	}
}

func TestPlaybackRestart(t *testing.T) {
	m, _ := newIslandPlayback(t)
	treasure := m.State().Treasure

	m = update(t, m, runeKey('n'))
	m = update(t, m, runeKey('n'))
	if m.State().Turn == 0 {
		t.Fatal("expected turns to be played")
	}

	m = update(t, m, runeKey('r'))
	st := m.State()
	if st.Turn != 0 || st.Done || st.Treasure != treasure {
		t.Errorf("after restart state = %+v, expected turn 0 with %d treasure", st, treasure)
	}
	if !st.Paused {
		t.Error("restart should keep the pause state")
	}
}

func TestPlaybackIgnoresStaleTicks(t *testing.T) {
	m, _ := newIslandPlayback(t)

	m = update(t, m, TickMsg{Gen: m.gen + 1})
	if m.State().Turn != 0 {
		t.Errorf("tick from another playback played a turn")
	}

	m = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Turn != 1 {
		t.Errorf("Turn = %d after own tick, expected 1", m.State().Turn)
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Turn != 1 {
		t.Errorf("paused playback should not advance, got turn %d", m.State().Turn)
	}
}

func TestPlaybackSpeedLimits(t *testing.T) {
	m, _ := newIslandPlayback(t)

	for i := 0; i < 10; i++ {
		m = update(t, m, runeKey('-'))
	}
	if m.config.TurnRate != 1 {
		t.Errorf("TurnRate = %d, expected floor of 1", m.config.TurnRate)
	}

	for i := 0; i < maxTurnRate+5; i++ {
		m = update(t, m, runeKey('+'))
	}
	if m.config.TurnRate != maxTurnRate {
		t.Errorf("TurnRate = %d, expected cap of %d", m.config.TurnRate, maxTurnRate)
	}
}

func TestPlaybackBackAndQuit(t *testing.T) {
	m, _ := newIslandPlayback(t)

	back := update(t, m, runeKey('b'))
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("b should request the menu")
	}

	quit := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestPlaybackCopyDisabled(t *testing.T) {
	m, _ := newIslandPlayback(t)
	m = m.WithClipboard(false)

	m = update(t, m, runeKey('c'))
	if !strings.Contains(m.notice, "not available") {
		t.Errorf("notice = %q, expected clipboard refusal", m.notice)
	}
}

func TestPlaybackView(t *testing.T) {
	m, _ := newIslandPlayback(t)
	m = update(t, m, runeKey('n'))

	view := m.View()
	for _, want := range []string{"Treasure Map: island", "Lara", "Turn 1/"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
