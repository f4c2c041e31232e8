// Package nav holds the drawer's section selector: the fixed set of sections,
// the per-visitor navigation state and the layout shares derived from it.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// SectionID names one of the four drawer sections.
type SectionID string

const (
	Profile    SectionID = "profile"
	Experience SectionID = "experience"
	Projects   SectionID = "projects"
	Contact    SectionID = "contact"
)

// ErrUnknownSection is returned when a string does not name a section.
var ErrUnknownSection = errors.New("unknown section")

// Section is a drawer panel. Sections are defined once and never change.
type Section struct {
	ID           SectionID
	Label        string // Traditional Chinese
	EnglishLabel string
	Color        string
	DarkColor    string
	Position     string
}

var sections = [...]Section{
	{ID: Profile, Label: "簡介", EnglishLabel: "Profile", Color: "#353941", DarkColor: "#353941", Position: "left"},
	{ID: Experience, Label: "經驗", EnglishLabel: "Experience", Color: "#26282B", DarkColor: "#26282B", Position: "center-left"},
	{ID: Projects, Label: "項目", EnglishLabel: "Projects", Color: "#353941", DarkColor: "#353941", Position: "center-right"},
	{ID: Contact, Label: "聯繫", EnglishLabel: "Contact", Color: "#26282B", DarkColor: "#26282B", Position: "right"},
}

// Sections returns the sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections[:])
	return out
}

// Count is the number of sections.
func Count() int { return len(sections) }

// Lookup returns the section for id.
func Lookup(id SectionID) (Section, bool) {
	i := indexOf(id)
	if i < 0 {
		return Section{}, false
	}
	return sections[i], true
}

// Index returns the display position of id, or -1.
func Index(id SectionID) int { return indexOf(id) }

// Valid reports whether id is one of the fixed sections.
func (id SectionID) Valid() bool { return indexOf(id) >= 0 }

func (id SectionID) String() string { return string(id) }

// ParseSectionID parses a section id from a cookie, URL path or query.
func ParseSectionID(s string) (SectionID, error) {
	id := SectionID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return id, nil
}

// Next returns the section a panel's call-to-action leads to. The last
// section wraps back to the first.
func Next(id SectionID) SectionID {
	return step(id, 1)
}

// Prev is the inverse of Next.
func Prev(id SectionID) SectionID {
	return step(id, -1)
}

// ColorFor returns the section's background for the given mode.
func (s Section) ColorFor(dark bool) string {
	if dark {
		return s.DarkColor
	}
	return s.Color
}

func step(id SectionID, delta int) SectionID {
	i := indexOf(id)
	if i < 0 {
		return sections[0].ID
	}
	n := len(sections)
	return sections[((i+delta)%n+n)%n].ID
}

func indexOf(id SectionID) int {
	for i, s := range sections {
		if s.ID == id {
			return i
		}
	}
	return -1
}
