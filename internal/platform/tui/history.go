package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/treasure-map/internal/core"
	"github.com/vovakirdan/treasure-map/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the view list sidebar
	sidebarWidth       = 20  // Width of the view list sidebar
	maxRows            = 100 // Max rows to load
)

// HistoryView selects what the history table shows.
type HistoryView int

const (
	ViewRecentRuns HistoryView = iota
	ViewLeaderboard
)

var historyViewTitles = [...]string{
	ViewRecentRuns:  "Recent runs",
	ViewLeaderboard: "Top adventurers",
}

func (v HistoryView) String() string {
	return historyViewTitles[v]
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing archived runs.
type HistoryModel struct {
	store       *storage.Store
	view        HistoryView
	runs        []storage.Run
	leaders     []storage.AdventurerStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history model starting on the given view.
func NewHistoryModel(store *storage.Store, view HistoryView, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		view:        view,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *HistoryModel) load() {
	m.runs, m.leaders, m.loadErr = nil, nil, nil
	if m.store == nil {
		return
	}
	switch m.view {
	case ViewRecentRuns:
		m.runs, m.loadErr = m.store.RecentRuns(maxRows)
	case ViewLeaderboard:
		m.leaders, m.loadErr = m.store.TopAdventurers(maxRows)
	}
}

func (m *HistoryModel) columns() []table.Column {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	if m.view == ViewLeaderboard {
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: core.Clamp(tableWidth-36, 10, 24)},
			{Title: "Runs", Width: 6},
			{Title: "Treasure", Width: 10},
			{Title: "Best", Width: 6},
		}
	}
	return []table.Column{
		{Title: "Scenario", Width: core.Clamp(tableWidth-50, 10, 20)},
		{Title: "Turns", Width: 6},
		{Title: "Treasure", Width: 10},
		{Title: "Left", Width: 6},
		{Title: "Date", Width: 14},
		{Title: "Run", Width: 8},
	}
}

// createTable creates a new table with columns for the current view.
func (m *HistoryModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded data.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.view {
	case ViewRecentRuns:
		for _, r := range m.runs {
			rows = append(rows, table.Row{
				r.Scenario,
				fmt.Sprintf("%d", r.Turns),
				fmt.Sprintf("%d", r.Collected),
				fmt.Sprintf("%d", r.TreasureLeft),
				r.CreatedAt.Format("Jan 02 15:04"),
				shortID(r.ID),
			})
		}
	case ViewLeaderboard:
		for i, st := range m.leaders {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				st.Name,
				fmt.Sprintf("%d", st.Runs),
				fmt.Sprintf("%d", st.Collected),
				fmt.Sprintf("%d", st.Best),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *HistoryModel) switchView(v HistoryView) {
	m.view = v
	m.load()
	// Columns change between views; rows must be cleared before the swap.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.updateTableRows()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.switchView((m.view + 1) % HistoryView(len(historyViewTitles)))
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			n := HistoryView(len(historyViewTitles))
			m.switchView((m.view + n - 1) % n)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RUN HISTORY - %s", m.view)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the table with a sidebar listing the views.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Views\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, title := range historyViewTitles {
		cursor := "  "
		style := lipgloss.NewStyle()
		if HistoryView(i) == m.view {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the view name above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.view), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an explanation when it's empty.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run archive unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0 && len(m.leaders) == 0:
		return emptyStyle.Render("No runs archived yet.\nPlay a scenario to fill the history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunHistory(store *storage.Store, view HistoryView, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewHistoryModel(store, view, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
