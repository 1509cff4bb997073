package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const maxVisible = 15

type multiSelectModel struct {
	message   string
	options   []string
	cursor    int
	selected  map[int]bool
	done      bool
	cancelled bool
}

func newMultiSelectModel(message string, options []string) multiSelectModel {
	return multiSelectModel{
		message:  message,
		options:  options,
		selected: make(map[int]bool),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "home", "pgup":
		m.cursor = 0
	case "end", "pgdown":
		m.cursor = max(0, len(m.options)-1)
	case " ":
		m.toggle(m.cursor)
	case "a":
		all := len(m.selected) == len(m.options)
		m.selected = make(map[int]bool)
		if !all {
			for i := range m.options {
				m.selected[i] = true
			}
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// toggle copies the selection so that earlier model values stay unchanged.
func (m *multiSelectModel) toggle(idx int) {
	if idx < 0 || idx >= len(m.options) {
		return
	}
	next := make(map[int]bool, len(m.selected)+1)
	for k, v := range m.selected {
		next[k] = v
	}
	if next[idx] {
		delete(next, idx)
	} else {
		next[idx] = true
	}
	m.selected = next
}

func (m multiSelectModel) selectedIndices() []int {
	indices := []int{}
	for i := range m.options {
		if m.selected[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

func (m multiSelectModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d/%d selected)", m.message, len(m.selected), len(m.options))) + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.options))

	if start > 0 {
		b.WriteString(helpStyle.Render("  ↑ more above") + "\n")
	}

	for i := start; i < end; i++ {
		cursor := "  "
		label := optionNormalStyle.Render(m.options[i])
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(m.options[i])
		}

		checkbox := "[ ]"
		if m.selected[i] {
			checkbox = checkStyle.Render("[✓]")
		}

		b.WriteString(cursor + checkbox + " " + label + "\n")
	}

	if end < len(m.options) {
		b.WriteString(helpStyle.Render("  ↓ more below") + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move • space toggle • a all/none • enter confirm • esc cancel") + "\n")
	return b.String()
}
