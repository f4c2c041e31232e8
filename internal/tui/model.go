// Package tui renders the portfolio drawer in a terminal.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reroreo1/portfolio/internal/nav"
	"github.com/reroreo1/portfolio/internal/theme"
)

// Terminals narrower than this show only the active section.
const narrowWidth = 60

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the bubbletea model for the terminal drawer.
type Model struct {
	state  nav.State
	theme  theme.Mode
	width  int
	height int
	// cursor is the highlighted row while the menu is open.
	cursor int
	keys   keyMap
	help   help.Model
}

var _ tea.Model = Model{}

// New returns a model in the initial navigation state.
func New(mode theme.Mode) Model {
	return Model{
		state: nav.Initial(),
		theme: mode,
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

// State returns the current navigation state.
func (m Model) State() nav.State { return m.state }

// Theme returns the current theme.
func (m Model) Theme() theme.Mode { return m.theme }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Menu):
		m = m.dispatch(nav.ToggleMenu{})
		m.cursor = nav.Index(m.state.Active)
		return m, nil
	}

	if m.state.MenuOpen {
		return m.handleMenuKey(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m = m.dispatch(nav.SetActive{ID: nav.Prev(m.state.Active)})
	case key.Matches(msg, m.keys.Right):
		m = m.dispatch(nav.SetActive{ID: nav.Next(m.state.Active)})
	case key.Matches(msg, m.keys.Follow):
		m = m.dispatch(nav.SetActive{ID: nav.Next(m.state.Active)})
	case key.Matches(msg, m.keys.Jump):
		if id, ok := jumpTarget(msg.String()); ok {
			m = m.dispatch(nav.SetActive{ID: id})
		}
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) Model {
	n := nav.Count()
	switch {
	case key.Matches(msg, m.keys.Close):
		return m.dispatch(nav.CloseMenu{})
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % n
	case key.Matches(msg, m.keys.Follow):
		return m.dispatch(nav.SelectFromMenu{ID: nav.Sections()[m.cursor].ID})
	}
	return m
}

func (m Model) dispatch(a nav.Action) Model {
	m.state = nav.Reduce(m.state, a)
	return m
}

// jumpTarget maps the digit keys to sections in display order.
func jumpTarget(k string) (nav.SectionID, bool) {
	if len(k) != 1 || k[0] < '1' {
		return "", false
	}
	i := int(k[0] - '1')
	sections := nav.Sections()
	if i >= len(sections) {
		return "", false
	}
	return sections[i].ID, true
}
