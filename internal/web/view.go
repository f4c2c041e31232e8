package web

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/reroreo1/portfolio/internal/content"
	"github.com/reroreo1/portfolio/internal/locale"
	"github.com/reroreo1/portfolio/internal/nav"
	"github.com/reroreo1/portfolio/internal/theme"
)

// visitor is everything a request knows about the person browsing.
type visitor struct {
	Nav   nav.State
	Theme theme.Mode
	Lang  language.Tag

	// dirtyNav and dirtyTheme mark cookies the response must rewrite.
	dirtyNav   bool
	dirtyTheme bool
}

type sectionView struct {
	nav.Section
	Labels     locale.Labels
	Active     bool
	Width      string
	Background string
	Delay      string
	LabelDelay string
	Duration   string
	Next       nav.Section
	NextLabel  string
}

type appView struct {
	Title     string
	Summary   string
	Initials  string
	Theme     theme.Mode
	NextTheme theme.Mode
	Palette   theme.Palette
	Lang      string
	Chinese   bool
	MenuOpen  bool
	Sections  []sectionView
	Active    sectionView
	Content   contentView
}

// contentView exposes the static portfolio text to templates.
type contentView struct {
	Owner        string
	Role         string
	Tagline      content.Typewriter
	TypeDelayMS  int64
	DeleteMS     int64
	Bio          []content.Highlight
	Socials      []content.Link
	Channels     []content.Link
	Jobs         []content.Job
	Schools      []content.Education
	SkillGroups  []content.SkillGroup
	Certificates []content.Certificate
	ContactBlurb string
}

var portfolioContent = contentView{
	Owner:        content.Owner,
	Role:         content.Role,
	Tagline:      content.Tagline,
	TypeDelayMS:  content.Tagline.TypeDelay.Milliseconds(),
	DeleteMS:     content.Tagline.DeleteSpeed.Milliseconds(),
	Bio:          content.Bio,
	Socials:      content.Socials,
	Channels:     content.Channels,
	Jobs:         content.Jobs,
	Schools:      content.Schools,
	SkillGroups:  content.SkillGroups,
	Certificates: content.Certificates,
	ContactBlurb: content.ContactBlurb,
}

// callToAction is the button text leading from a section to nav.Next.
var callToAction = map[nav.SectionID]string{
	nav.Profile:    "View My Experience",
	nav.Experience: "View My Projects",
	nav.Projects:   "Contact Me",
	nav.Contact:    "Back to Profile",
}

func newAppView(v visitor) appView {
	view := appView{
		Title:     content.Title,
		Summary:   content.Summary,
		Initials:  content.Initials,
		Theme:     v.Theme,
		NextTheme: v.Theme.Toggle(),
		Palette:   v.Theme.Palette(),
		Lang:      v.Lang.String(),
		Chinese:   locale.IsChinese(v.Lang),
		MenuOpen:  v.Nav.MenuOpen,
		Content:   portfolioContent,
	}
	for i, sec := range nav.Sections() {
		sv := newSectionView(sec, i, v)
		view.Sections = append(view.Sections, sv)
		if sv.Active {
			view.Active = sv
		}
	}
	return view
}

func newSectionView(sec nav.Section, index int, v visitor) sectionView {
	motion := nav.Stagger(index)
	next, _ := nav.Lookup(nav.Next(sec.ID))
	return sectionView{
		Section:    sec,
		Labels:     locale.Label(sec, v.Lang),
		Active:     v.Nav.IsActive(sec.ID),
		Width:      v.Nav.WidthFor(sec.ID).String(),
		Background: sec.ColorFor(v.Theme.IsDark()),
		Delay:      seconds(motion.Delay),
		LabelDelay: seconds(motion.LabelDelay),
		Duration:   seconds(motion.Duration),
		Next:       next,
		NextLabel:  callToAction[sec.ID],
	}
}

type pageView struct {
	appView
	Page content.Page
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
