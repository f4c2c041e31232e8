package content

import (
	"fmt"
	"strings"
)

// PageID names an alternate single-route page.
type PageID string

const (
	Home        PageID = "home"
	About       PageID = "about"
	Work        PageID = "work"
	ContactPage PageID = "contact"
)

// Page is a standalone page rendered outside the drawer.
type Page struct {
	ID           PageID
	Label        string
	EnglishLabel string
	Accent       string
	Paragraphs   []string
	Skills       []string
	Projects     []Project
	// Channels are the ways to get in touch listed on the page.
	Channels []Link
	Links    []PageLink
}

// PageLink is a navigation button on a page.
type PageLink struct {
	Text   string
	Target PageID
}

type Project struct {
	Title        string
	Description  string
	Technologies []string
}

var pages = []Page{
	{
		ID:           Home,
		Label:        "首頁",
		EnglishLabel: "Home",
		Accent:       "#5F85DB",
		Paragraphs:   []string{"Lead Developer at OS Websolutions", "Machine Learning Enthusiast", "Data Science Student"},
		Links: []PageLink{
			{Text: "關於 About", Target: About},
			{Text: "工作 Work", Target: Work},
			{Text: "聯繫 Contact", Target: ContactPage},
		},
	},
	{
		ID:           About,
		Label:        "關於",
		EnglishLabel: "About",
		Accent:       "#ff4d4d",
		Paragraphs: []string{
			"I'm a Lead Developer at OS Websolutions with a passion for building complex systems and data-driven solutions.",
			"With expertise in full-stack development and a growing interest in machine learning and data science, I create elegant solutions to complex problems.",
			"My approach combines technical excellence with a deep understanding of user needs, resulting in applications that are both powerful and intuitive.",
		},
		Skills: []string{"JavaScript", "TypeScript", "React", "Next.js", "Node.js", "Python", "Machine Learning", "Data Science"},
		Links:  []PageLink{{Text: "View My Work →", Target: Work}},
	},
	{
		ID:           Work,
		Label:        "工作",
		EnglishLabel: "Work",
		Accent:       "#4d79ff",
		Projects: []Project{
			{Title: "E-commerce Platform", Description: "A full-featured e-commerce solution with real-time inventory management.", Technologies: []string{"React", "Node.js", "MongoDB"}},
			{Title: "Data Visualization Dashboard", Description: "Interactive dashboard for visualizing complex datasets with filtering capabilities.", Technologies: []string{"D3.js", "React", "Python"}},
			{Title: "Machine Learning Model", Description: "Predictive analytics model for customer behavior analysis.", Technologies: []string{"Python", "TensorFlow", "Pandas"}},
		},
		Links: []PageLink{{Text: "Get In Touch →", Target: ContactPage}},
	},
	{
		ID:           ContactPage,
		Label:        "聯繫",
		EnglishLabel: "Contact",
		Accent:       "#4dff4d",
		Paragraphs:   []string{ContactBlurb},
		Channels: []Link{
			{Label: "contact@rachidezzahraouy.com", Href: "mailto:contact@rachidezzahraouy.com", Kind: "email"},
			LinkedIn,
			{Label: "Morocco", Kind: "location"},
		},
		Links: []PageLink{{Text: "Back to Home", Target: Home}},
	},
}

// Pages returns the alternate pages.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// LookupPage finds a page by id.
func LookupPage(raw string) (Page, error) {
	id := PageID(strings.ToLower(strings.TrimSpace(raw)))
	for _, p := range pages {
		if p.ID == id {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("unknown page %q", raw)
}
