package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// action is one line of the board: a menu item to prepare or a table to
// reserve.
type action struct {
	label string
	path  string
	body  interface{}
	focus bool
}

var (
	actionStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Width(56)

	focusActionStyle = actionStyle.Copy().
				Bold(true).
				Foreground(lipgloss.Color("#ee6ff8"))
)

func (m action) View() string {
	if m.focus {
		return focusActionStyle.Render(fmt.Sprintf("> %s", m.label))
	}

	return actionStyle.Render(fmt.Sprintf("  %s", m.label))
}

func (m *action) Focus() {
	m.focus = true
}

func (m *action) Blur() {
	m.focus = false
}
