package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusResetDelay = 5 * time.Second

var statusFrame = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder(), true).
	PaddingLeft(1).
	PaddingRight(1).
	Width(60).
	Height(1)

// statusMsg carries the line the API reported, or the error it failed with.
type statusMsg struct {
	status string
	err    error
}

// statusExpiredMsg clears the status it was scheduled for, unless a newer
// status has been shown since.
type statusExpiredMsg struct {
	seq int
}

// StatusBar shows the outcome of the last action for statusResetDelay.
type StatusBar struct {
	line string
	err  error
	seq  int
}

func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.seq++
		m.line, m.err = msg.status, msg.err

		seq := m.seq
		return m, tea.Tick(statusResetDelay, func(time.Time) tea.Msg {
			return statusExpiredMsg{seq: seq}
		})
	case statusExpiredMsg:
		if msg.seq == m.seq {
			m.line, m.err = "", nil
		}
	}

	return m, nil
}

func (m StatusBar) View() string {
	switch {
	case m.err != nil:
		return statusFrame.Copy().BorderForeground(lipgloss.Color("#fc0303")).Render(m.err.Error())
	case m.line != "":
		return statusFrame.Copy().BorderForeground(lipgloss.Color("#ffffff")).Render(m.line)
	}

	return statusFrame.Copy().BorderForeground(lipgloss.Color("#aaaaaa")).Render("")
}
