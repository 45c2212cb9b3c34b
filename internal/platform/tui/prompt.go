package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/vovakirdan/treasure-map/internal/scenario"
)

// ErrPromptCancelled is returned when the user leaves the prompt without a path.
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptModel asks for a scenario file path and keeps asking until the path
// passes scenario.CheckInputPath and names an existing file.
type PromptModel struct {
	input     textinput.Model
	extension string
	errText   string
	width     int
	path      string
	cancelled bool
}

// NewPromptModel creates a path prompt accepting files with extension ext.
func NewPromptModel(ext string) PromptModel {
	ti := textinput.New()
	ti.Placeholder = "maps/island" + ext
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Width = 60
	ti.Focus()

	return PromptModel{
		input:     ti,
		extension: ext,
		width:     80,
	}
}

// Init starts the cursor blink.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			path := strings.TrimSpace(m.input.Value())
			if err := scenario.CheckInputPath(path, m.extension); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			if info, err := os.Stat(path); err != nil {
				m.errText = fmt.Sprintf("cannot open %s: %v", path, err)
				return m, nil
			} else if info.IsDir() {
				m.errText = fmt.Sprintf("%s is a directory, please try again", path)
				return m, nil
			}
			m.path = path
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m PromptModel) View() string {
	if m.path != "" || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString("Enter the path of the scenario file (" + m.extension + "):\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(errStyle.Render(wordwrap.String(m.errText, max(m.width-2, 20))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("Enter: run  |  Esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Path returns the accepted path, or "" if none was accepted yet.
func (m PromptModel) Path() string {
	return m.path
}

// RunPrompt asks for a scenario path on the terminal.
func RunPrompt(ext string) (string, error) {
	p := tea.NewProgram(NewPromptModel(ext))

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(PromptModel)
	if !ok || m.Path() == "" {
		return "", ErrPromptCancelled
	}
	return m.Path(), nil
}
