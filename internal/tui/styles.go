package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/reroreo1/portfolio/internal/nav"
	"github.com/reroreo1/portfolio/internal/theme"
)

// styles is the set of lipgloss styles for one theme.
type styles struct {
	Title     lipgloss.Style // owner name and panel headings
	Heading   lipgloss.Style // entry titles inside a panel
	Accent    lipgloss.Style
	Muted     lipgloss.Style
	Tab       lipgloss.Style // collapsed section labels
	Menu      lipgloss.Style
	MenuItem  lipgloss.Style
	MenuFocus lipgloss.Style
	Frame     lipgloss.Style
}

func newStyles(mode theme.Mode) styles {
	p := mode.Palette()
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Highlight)),
		Heading: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Highlight)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Align(lipgloss.Center, lipgloss.Center),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Highlight)).
			Padding(1, 4),
		MenuItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			PaddingLeft(2),
		MenuFocus: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Highlight)).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(p.Highlight)).
			PaddingLeft(1),
		Frame: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)).
			Foreground(lipgloss.Color(p.Text)),
	}
}

// column styles one drawer column at a fixed size.
func column(sec nav.Section, mode theme.Mode, width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		Background(lipgloss.Color(sec.ColorFor(mode.IsDark()))).
		Foreground(lipgloss.Color("#ffffff"))
}
