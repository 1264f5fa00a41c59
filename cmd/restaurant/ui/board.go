package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/temporalio/temporal-restaurant/api"
)

var (
	titleStyle = lipgloss.NewStyle().
			MarginBottom(1).
			Bold(true).
			Underline(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	boardFrame = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(lipgloss.Color("#035afc")).
			PaddingLeft(1).
			PaddingRight(1).
			Width(60)
)

type menuMsg struct {
	menu api.Menu
}

type tablesMsg struct {
	tables api.Tables
}

// Board lists the menu and the tables served by the API. Enter prepares the
// focused item or reserves the focused table; tab switches to the order input.
type Board struct {
	client apiClient

	menu    []action
	tables  []action
	focused int

	order      textinput.Model
	orderFocus bool

	status StatusBar
}

func NewBoard(apiURL string) Board {
	order := textinput.New()
	order.Placeholder = "Order details"

	return Board{
		client: newAPIClient(apiURL),
		order:  order,
	}
}

func (m Board) Init() tea.Cmd {
	return tea.Batch(m.fetchMenu, m.fetchTables)
}

func (m Board) fetchMenu() tea.Msg {
	var menu api.Menu
	if err := m.client.get("/menu", &menu); err != nil {
		log.Printf("Error: %v", err)
		return statusMsg{err: err}
	}

	return menuMsg{menu}
}

func (m Board) fetchTables() tea.Msg {
	var tables api.Tables
	if err := m.client.get("/tables", &tables); err != nil {
		log.Printf("Error: %v", err)
		return statusMsg{err: err}
	}

	return tablesMsg{tables}
}

func (m Board) actions() []*action {
	var out []*action
	for i := range m.menu {
		out = append(out, &m.menu[i])
	}
	for i := range m.tables {
		out = append(out, &m.tables[i])
	}

	return out
}

func (m Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log.Printf("Board: %v", msg)

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.toggleOrderFocus()
		}
		if m.orderFocus {
			if msg.String() == "enter" {
				return m, m.placeOrder(m.order.Value())
			}
			m.order, cmd = m.order.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "up":
			m.move(-1)
		case "down":
			m.move(1)
		case "enter", " ":
			return m, m.runFocused()
		}
	case menuMsg:
		m.menu = nil
		for _, item := range msg.menu.Items {
			m.menu = append(m.menu, action{
				label: fmt.Sprintf("Prepare %s (%s) $%.2f", item.Name, item.Type, item.Price),
				path:  "/menu/items",
				body:  item,
			})
		}
		m.refocus()
	case tablesMsg:
		m.tables = nil
		for _, t := range msg.tables.Tables {
			m.tables = append(m.tables, action{
				label: fmt.Sprintf("Reserve %s table #%d", t.Type, t.Number),
				path:  "/tables/reservations",
				body:  t,
			})
		}
		m.refocus()
	case statusMsg, statusExpiredMsg:
		m.status, cmd = m.status.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Board) move(delta int) {
	actions := m.actions()
	next := m.focused + delta
	if next < 0 || next >= len(actions) {
		return
	}
	m.focused = next
	m.refocus()
}

// refocus keeps exactly one action focused while the list has focus.
func (m *Board) refocus() {
	actions := m.actions()
	if m.focused >= len(actions) {
		m.focused = 0
	}
	for i, a := range actions {
		if i == m.focused && !m.orderFocus {
			a.Focus()
		} else {
			a.Blur()
		}
	}
}

func (m *Board) toggleOrderFocus() tea.Cmd {
	m.orderFocus = !m.orderFocus
	m.refocus()
	if m.orderFocus {
		return m.order.Focus()
	}
	m.order.Blur()
	return nil
}

func (m Board) runFocused() tea.Cmd {
	actions := m.actions()
	if len(actions) == 0 {
		return nil
	}
	a := actions[m.focused]

	return func() tea.Msg {
		line, err := m.client.post(a.path, a.body)
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{status: line.Line}
	}
}

func (m *Board) placeOrder(details string) tea.Cmd {
	m.order.Reset()

	return func() tea.Msg {
		line, err := m.client.post("/orders", api.Order{Details: details})
		if err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{status: line.Line}
	}
}

func (m Board) View() string {
	out := []string{titleStyle.Render("Restaurant")}

	out = append(out, sectionStyle.Render("Menu"))
	for _, a := range m.menu {
		out = append(out, a.View())
	}

	out = append(out, sectionStyle.Render("Tables"))
	for _, a := range m.tables {
		out = append(out, a.View())
	}

	out = append(out, sectionStyle.Render("Order"), m.order.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		boardFrame.Render(lipgloss.JoinVertical(lipgloss.Left, out...)),
		m.status.View(),
	)
}
