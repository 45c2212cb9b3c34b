package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/treasure-map/internal/catalog"
	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/world"
)

// Selection is a scenario picked from the menu, already built.
type Selection struct {
	ID    string
	Title string
	World *world.World
}

// MenuModel is the Bubble Tea model for the scenario picker.
type MenuModel struct {
	catalog     *catalog.Catalog
	items       []catalog.Info
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	errText     string // why the last pick could not be opened
	quitting    bool
	selected    *Selection
	openHistory bool // True if user pressed Tab for run history
}

// NewMenuModel creates a new menu model over the catalog.
func NewMenuModel(c *catalog.Catalog, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		catalog:   c,
		items:     c.List(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.openHistory = true
		return m, tea.Quit // Exit menu to show history
	}

	switch m.keyMapper.MapMenuKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.errText = ""

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.errText = ""

	case core.ActionConfirm:
		if len(m.items) == 0 {
			return m, nil
		}
		sel, err := m.open(m.items[m.cursor])
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.selected = sel
		return m, tea.Quit // Exit menu to start playback
	}

	return m, nil
}

func (m MenuModel) open(info catalog.Info) (*Selection, error) {
	e, err := m.catalog.Get(info.ID)
	if err != nil {
		return nil, err
	}
	w, err := e.World()
	if err != nil {
		return nil, err
	}
	return &Selection{ID: e.ID, Title: e.Title, World: w}, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  T R E A S U R E   M A P  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a scenario", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No scenarios found", m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		source := ""
		if item.Source == catalog.SourceDir {
			source = " (file)"
		}
		line := fmt.Sprintf("%s%s%s", cursor, item.Title, source)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString("\n")
		wrapWidth := core.Clamp(m.width-8, 20, 72)
		for _, l := range strings.Split(wordwrap.String(m.errText, wrapWidth), "\n") {
			b.WriteString(centerText(l, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected scenario, or nil if none selected.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsHistory returns true if user requested the run history.
func (m MenuModel) WantsHistory() bool {
	return m.openHistory
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection    *Selection
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(c *catalog.Catalog, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(c, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsHistory():
		result.WantsHistory = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Selection = m.Selected()
	}
	return result, nil
}
