package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reroreo1/portfolio/internal/content"
	"github.com/reroreo1/portfolio/internal/nav"
)

// columnLayout is one rendered drawer column.
type columnLayout struct {
	Section nav.Section
	Width   int
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// layout sizes the drawer columns for the current width. Narrow terminals get
// the active section alone.
func (m Model) layout() []columnLayout {
	w, _ := m.size()
	if w < narrowWidth {
		sec, _ := nav.Lookup(m.state.Active)
		return []columnLayout{{Section: sec, Width: w}}
	}
	widths := m.state.Columns(w)
	cols := make([]columnLayout, 0, len(widths))
	for i, sec := range nav.Sections() {
		cols = append(cols, columnLayout{Section: sec, Width: widths[i]})
	}
	return cols
}

// View implements tea.Model.
func (m Model) View() string {
	w, h := m.size()
	st := newStyles(m.theme)

	footer := m.help.View(m.keys)
	bodyHeight := h - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.state.MenuOpen {
		body = lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, m.menuView(st))
	} else {
		body = m.drawerView(st, bodyHeight)
	}
	return st.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func (m Model) drawerView(st styles, height int) string {
	var cols []string
	for _, c := range m.layout() {
		style := column(c.Section, m.theme, c.Width, height)
		if m.state.IsActive(c.Section.ID) {
			inner := c.Width - 4
			if inner < 1 {
				inner = 1
			}
			cols = append(cols, style.Padding(1, 2).Render(panelBody(c.Section.ID, inner, st)))
			continue
		}
		cols = append(cols, style.Inherit(st.Tab).Render(vertical(c.Section.EnglishLabel)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) menuView(st styles) string {
	var rows []string
	for i, sec := range nav.Sections() {
		label := sec.EnglishLabel
		if m.state.IsActive(sec.ID) {
			label += " •"
		}
		if i == m.cursor {
			rows = append(rows, st.MenuFocus.Render(label))
			continue
		}
		rows = append(rows, st.MenuItem.Render(label))
	}
	return st.Menu.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// vertical stacks a label one rune per line.
func vertical(label string) string {
	return strings.Join(strings.Split(strings.ToUpper(label), ""), "\n")
}

func panelBody(id nav.SectionID, width int, st styles) string {
	var b strings.Builder
	switch id {
	case nav.Profile:
		b.WriteString(st.Title.Render(content.Owner) + "\n")
		b.WriteString(content.Role + "\n")
		b.WriteString(st.Accent.Render(strings.Join(content.Tagline.Phrases, " · ")) + "\n\n")
		for _, h := range content.Bio {
			b.WriteString(st.Heading.Render(h.Name) + " " + h.Text + "\n\n")
		}
		for _, l := range content.Socials {
			b.WriteString(st.Muted.Render(l.Kind+": ") + l.Label + "\n")
		}
	case nav.Experience:
		b.WriteString(st.Title.Render("Experience & Education") + "\n\n")
		for _, j := range content.Jobs {
			b.WriteString(st.Heading.Render(j.Title) + " " + st.Muted.Render(j.Period) + "\n")
			b.WriteString(j.Company + "\n")
			for _, p := range j.Projects {
				b.WriteString("  " + st.Accent.Render(p.Name) + "\n")
			}
			if len(j.Skills) > 0 {
				b.WriteString("  " + strings.Join(j.Skills, ", ") + "\n")
			}
			b.WriteString("\n")
		}
		for _, s := range content.Schools {
			b.WriteString(st.Heading.Render(s.Title) + " " + st.Muted.Render(s.Period) + "\n")
			b.WriteString(s.School + "\n\n")
		}
	case nav.Projects:
		b.WriteString(st.Title.Render("Projects & Skills") + "\n\n")
		for _, g := range content.SkillGroups {
			b.WriteString(st.Heading.Render(g.Name) + "\n")
			b.WriteString(strings.Join(g.Skills, " · ") + "\n\n")
		}
		b.WriteString(st.Heading.Render("Certificates") + "\n")
		for _, c := range content.Certificates {
			b.WriteString(fmt.Sprintf("%s %s\n", c.Name, st.Muted.Render(fmt.Sprintf("(%s, %d)", c.Issuer, c.Year))))
		}
	case nav.Contact:
		b.WriteString(st.Title.Render("Contact") + "\n\n")
		b.WriteString(content.ContactBlurb + "\n\n")
		for _, l := range content.Channels {
			b.WriteString(st.Muted.Render(l.Kind+": ") + l.Label + "\n")
		}
	}
	next, _ := nav.Lookup(nav.Next(id))
	b.WriteString("\n" + st.Muted.Render("enter → "+next.EnglishLabel))
	return lipgloss.NewStyle().Width(width).Render(b.String())
}
