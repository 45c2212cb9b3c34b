package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/runner"
	"github.com/vovakirdan/treasure-map/internal/scenario"
	"github.com/vovakirdan/treasure-map/internal/storage"
	"github.com/vovakirdan/treasure-map/internal/world"
)

// Playback limits.
const (
	maxTurnRate = 60
	maxLogLines = 64
	sidebarMin  = 24 // narrowest useful sidebar
)

// PlaybackModel animates a scenario turn by turn.
type PlaybackModel struct {
	name      string
	initial   *world.World // never played; restart clones it
	world     *world.World
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	state     core.PlaybackState
	log       []string
	notice    string
	allowCopy bool
	gen       int64

	saved      bool // whether the finished run has been archived
	quitting   bool
	backToMenu bool
}

// NewPlaybackModel creates a viewer for w, which is left untouched.
// store may be nil.
func NewPlaybackModel(name string, w *world.World, store *storage.Store, cfg core.RuntimeConfig) PlaybackModel {
	if cfg.TurnRate <= 0 {
		cfg.TurnRate = core.DefaultConfig().TurnRate
	}

	m := PlaybackModel{
		name:      name,
		initial:   w,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		allowCopy: true,
		gen:       nextTickGen(),
	}
	m.reset()
	return m
}

// WithClipboard enables or disables copying the result to the local
// clipboard. SSH sessions disable it since the clipboard is the server's.
func (m PlaybackModel) WithClipboard(enabled bool) PlaybackModel {
	m.allowCopy = enabled
	return m
}

func (m *PlaybackModel) reset() {
	m.world = m.initial.Clone()
	m.state = core.PlaybackState{
		Paused:   m.state.Paused,
		Treasure: m.world.TreasureLeft(),
		Done:     m.world.AllFinished(),
	}
	m.log = nil
	m.saved = false
}

// Init starts the tick loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.config.TurnRate, m.gen)
}

// Update handles messages and updates the model state.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlaybackModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	m.notice = ""
	switch action {
	case core.ActionPause:
		m.state.Paused = !m.state.Paused
	case core.ActionStep:
		if !m.state.Done {
			m.state.Paused = true
			m.playTurn()
		}
	case core.ActionFaster:
		m.config.TurnRate = core.Min(m.config.TurnRate+1, maxTurnRate)
	case core.ActionSlower:
		m.config.TurnRate = core.Max(m.config.TurnRate-1, 1)
	case core.ActionRestart:
		m.reset()
	case core.ActionCopy:
		m.copyResult()
	case core.ActionBack:
		m.backToMenu = true
	}

	return m, nil
}

// handleTick plays a turn unless paused or finished.
func (m PlaybackModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.state.Paused && !m.state.Done {
		m.playTurn()
	}
	return m, tickCmd(m.config.TurnRate, m.gen)
}

func (m *PlaybackModel) playTurn() {
	res := m.world.PlayTurn()
	for _, ev := range res.Events {
		m.log = append(m.log, fmt.Sprintf("%d: %s", ev.Turn, runner.Describe(ev)))
	}
	if len(m.log) > maxLogLines {
		m.log = m.log[len(m.log)-maxLogLines:]
	}

	m.state.Turn = m.world.Turn()
	m.state.Treasure = m.world.TreasureLeft()
	m.state.Done = res.Done

	if m.state.Done && !m.saved {
		if m.store != nil {
			//nolint:errcheck // Best-effort archive, playback continues regardless
			m.store.SaveRun(storage.NewRun(m.name, m.world))
		}
		m.saved = true
	}
}

func (m *PlaybackModel) copyResult() {
	if !m.allowCopy {
		m.notice = "clipboard not available in this session"
		return
	}
	text := strings.Join(scenario.Serialize(m.world), "\n") + "\n"
	if err := clipboard.WriteAll(text); err != nil {
		m.notice = "copy failed: " + err.Error()
		return
	}
	m.notice = "result copied to clipboard"
}

// saveScreenshot saves the current screen to a file.
func (m *PlaybackModel) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "screenshot failed: " + err.Error()
		return
	}
	dir := filepath.Join(home, ".treasuremap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.name, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.notice = "screenshot failed: " + err.Error()
		return
	}
	m.notice = "screenshot saved to " + path
}

// draw lays out the map, the sidebar and the help line on the screen.
func (m *PlaybackModel) draw() {
	s := m.screen
	s.Clear()

	b := m.world.Bounds
	frame := core.NewRect(0, 1, b.Width+3, b.Height+3)
	s.DrawTextColored(1, 0, "Treasure Map: "+m.name, core.ColorStatus)
	s.DrawBox(frame, core.ColorFrame)
	world.Render(m.world, s, frame.X+1, frame.Y+1)

	// Sidebar to the right of the map when it fits, below it otherwise.
	sx, sy := frame.Right()+2, frame.Y
	width := s.Width() - sx - 1
	if width < sidebarMin {
		sx, sy = 1, frame.Bottom()+1
		width = s.Width() - 2
	}
	bottom := s.Height() - 3

	status := fmt.Sprintf("Turn %d/%d  Treasure left %d  Speed %d/s",
		m.state.Turn, m.world.MaxScriptLen()+1, m.state.Treasure, m.config.TurnRate)
	s.DrawTextColored(sx, sy, status, core.ColorStatus)
	switch {
	case m.state.Done:
		s.DrawTextColored(sx, sy+1, "FINISHED", core.ColorGreen)
	case m.state.Paused:
		s.DrawTextColored(sx, sy+1, "PAUSED", core.ColorYellow)
	}

	y := sy + 3
	for _, a := range m.world.Adventurers {
		if y > bottom {
			break
		}
		line := fmt.Sprintf("%c %-12s %-9s $%d", a.Facing.Glyph(), a.Name, a.Pos, a.Collected)
		s.DrawTextColored(sx, y, line, core.ColorAdventurer)
		y++
	}
	y++

	// Newest events last, wrapped to the sidebar width.
	var wrapped []string
	for _, l := range m.log {
		wrapped = append(wrapped, strings.Split(wordwrap.String(l, core.Max(width, 10)), "\n")...)
	}
	if room := bottom - y + 1; room > 0 {
		if len(wrapped) > room {
			wrapped = wrapped[len(wrapped)-room:]
		}
		for i, l := range wrapped {
			s.DrawText(sx, y+i, l)
		}
	}

	if m.notice != "" {
		s.DrawTextColored(1, s.Height()-2, m.notice, core.ColorYellow)
	}
	s.DrawTextColored(1, s.Height()-1, "Space: Pause  N: Step  +/-: Speed  R: Restart  C: Copy  B: Back  Q: Quit", core.ColorGray)
}

// View renders the current state to a string for display.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns what the status line shows.
func (m PlaybackModel) State() core.PlaybackState {
	return m.state
}

// World returns the world being played.
func (m PlaybackModel) World() *world.World {
	return m.world
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlaybackModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlaybackModel) BackToMenu() bool {
	return m.backToMenu
}

// RunPlayback starts a full-screen playback of w.
func RunPlayback(name string, w *world.World, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewPlaybackModel(name, w, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
