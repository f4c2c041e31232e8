package nav

import (
	"strconv"
	"time"
)

// Share is a section's percentage of the drawer width.
type Share int

const (
	// ActiveShare is the width of the expanded section.
	ActiveShare Share = 88
	// InactiveShare is the width of each collapsed tab.
	InactiveShare Share = 4
)

// MinTabWidth is the narrowest a collapsed column gets in cell layouts.
const MinTabWidth = 3

func (p Share) String() string { return strconv.Itoa(int(p)) + "%" }

// WidthFor returns id's share of the drawer.
func (s State) WidthFor(id SectionID) Share {
	if id == s.Active {
		return ActiveShare
	}
	return InactiveShare
}

// Columns splits total cells across the sections in display order. Collapsed
// columns get their share, but at least MinTabWidth while the active column
// still fits; the active column takes the remainder. A state without a valid
// active section lays out as the initial state.
func (s State) Columns(total int) []int {
	if !s.Active.Valid() {
		s.Active = Initial().Active
	}
	n := len(sections)
	cols := make([]int, n)
	if total <= 0 {
		return cols
	}
	tab := total * int(InactiveShare) / 100
	if tab < MinTabWidth {
		tab = MinTabWidth
	}
	if tab*(n-1) >= total {
		tab = total / n
	}
	active := total
	for i, sec := range sections {
		if sec.ID == s.Active {
			continue
		}
		cols[i] = tab
		active -= tab
	}
	cols[indexOf(s.Active)] = active
	return cols
}

// Motion describes a panel's entry animation.
type Motion struct {
	Delay      time.Duration
	Duration   time.Duration
	LabelDelay time.Duration
	Easing     string
}

const (
	staggerStep   = 150 * time.Millisecond
	panelDuration = 700 * time.Millisecond
	labelOffset   = 300 * time.Millisecond
	panelEasing   = "cubic-bezier(0.16, 1, 0.3, 1)"
)

// Stagger returns the entry animation for the panel at display index i.
func Stagger(i int) Motion {
	if i < 0 {
		i = 0
	}
	delay := time.Duration(i) * staggerStep
	return Motion{
		Delay:      delay,
		Duration:   panelDuration,
		LabelDelay: delay + labelOffset,
		Easing:     panelEasing,
	}
}
