package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type textModel struct {
	input     textinput.Model
	message   string
	value     string
	empty     bool
	done      bool
	cancelled bool
}

func newTextModel(message string) textModel {
	ti := textinput.New()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Focus()

	return textModel{
		input:   ti,
		message: message,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.empty = true
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	m.empty = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.message) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.empty {
		b.WriteString(warnStyle.Render("a value is required") + "\n")
	}
	b.WriteString(helpStyle.Render("enter confirm • esc cancel") + "\n")
	return b.String()
}
