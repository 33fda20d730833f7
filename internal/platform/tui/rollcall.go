package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/townsfolk/internal/registry"
)

// Roll call layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the player sidebar
	sidebarWidth       = 24 // Width of the player sidebar
)

// RollCallKeyMap defines the key bindings for the roll call screen.
type RollCallKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPlayer key.Binding
	PrevPlayer key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RollCallKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPlayer, k.PrevPlayer, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RollCallKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextPlayer, k.PrevPlayer, k.Quit},
	}
}

// DefaultRollCallKeyMap returns default key bindings.
func DefaultRollCallKeyMap() RollCallKeyMap {
	return RollCallKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPlayer: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next player"),
		),
		PrevPlayer: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev player"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q", "close"),
		),
	}
}

// RollCallModel lists the townsfolk each player collected, in the order
// they were collected.
type RollCallModel struct {
	headline    string
	tallies     []registry.Tally
	cursor      int // Selected player
	table       table.Model
	help        help.Model
	keys        RollCallKeyMap
	width       int
	height      int
	done        bool
	showSidebar bool
}

// NewRollCallModel creates a roll call for the given tallies.
func NewRollCallModel(headline string, tallies []registry.Tally, width, height int) RollCallModel {
	h := help.New()
	h.ShowAll = false

	m := RollCallModel{
		headline:    headline,
		tallies:     tallies,
		keys:        DefaultRollCallKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *RollCallModel) createTable() table.Model {
	tableWidth := m.width - 6
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	nameWidth := max(16, min(tableWidth-8, 40))

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 5},
			{Title: "Townsperson", Width: nameWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
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

// updateTableRows fills the table with the selected player's townsfolk.
func (m *RollCallModel) updateTableRows() {
	var rows []table.Row
	if m.cursor < len(m.tallies) {
		items := m.tallies[m.cursor].Items
		rows = make([]table.Row, len(items))
		for i, name := range items {
			rows[i] = table.Row{fmt.Sprintf("%d", i+1), name}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the roll call model.
func (m RollCallModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the roll call.
func (m RollCallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPlayer):
			if len(m.tallies) > 0 {
				m.cursor = (m.cursor + 1) % len(m.tallies)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPlayer):
			if len(m.tallies) > 0 {
				m.cursor = (m.cursor - 1 + len(m.tallies)) % len(m.tallies)
				m.updateTableRows()
			}
			return m, nil
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

// View renders the roll call.
func (m RollCallModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "ROLL CALL"
	if m.cursor < len(m.tallies) {
		t := m.tallies[m.cursor]
		title = fmt.Sprintf("ROLL CALL - %s (%d)", t.Player, len(t.Items))
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	if m.headline != "" {
		b.WriteString(centerText(m.headline, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableView := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableView))
	} else {
		b.WriteString(centerText(tableView, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the players with their counts.
func (m RollCallModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Players\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, t := range m.tallies {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sb.WriteString(style.Render(fmt.Sprintf("%s%s: %d", cursor, t.Player, len(t.Items))))
		sb.WriteString("\n")
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m RollCallModel) renderTableContent() string {
	if m.cursor >= len(m.tallies) || len(m.tallies[m.cursor].Items) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nobody collected yet.")
	}
	return m.table.View()
}

// Player returns the index of the player being shown.
func (m RollCallModel) Player() int {
	return m.cursor
}

// Rows returns the rows currently in the table.
func (m RollCallModel) Rows() []table.Row {
	return m.table.Rows()
}

// RunRollCall shows the roll call until the user closes it.
func RunRollCall(headline string, tallies []registry.Tally, width, height int) error {
	p := tea.NewProgram(
		NewRollCallModel(headline, tallies, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
