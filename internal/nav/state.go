package nav

import (
	"fmt"
	"strings"
)

// State is one visitor's navigation state. It is a value; transitions return
// a new State through Reduce.
type State struct {
	Active   SectionID
	MenuOpen bool
}

// Initial is the state a new visitor starts in.
func Initial() State {
	return State{Active: Profile}
}

// Action is a user interaction that changes navigation state.
type Action interface {
	apply(State) State
}

// SetActive makes ID the active section.
type SetActive struct{ ID SectionID }

// ToggleMenu flips the small-viewport overlay menu.
type ToggleMenu struct{}

// CloseMenu closes the overlay menu.
type CloseMenu struct{}

// SelectFromMenu activates ID and closes the overlay menu, as a tap on a menu
// entry does.
type SelectFromMenu struct{ ID SectionID }

func (a SetActive) apply(s State) State {
	if !a.ID.Valid() {
		return s
	}
	s.Active = a.ID
	return s
}

func (ToggleMenu) apply(s State) State {
	s.MenuOpen = !s.MenuOpen
	return s
}

func (CloseMenu) apply(s State) State {
	s.MenuOpen = false
	return s
}

func (a SelectFromMenu) apply(s State) State {
	return CloseMenu{}.apply(SetActive{ID: a.ID}.apply(s))
}

// Reduce applies a to s. A nil action returns s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// SetActive is shorthand for Reduce(s, SetActive{id}).
func (s State) SetActive(id SectionID) State { return Reduce(s, SetActive{ID: id}) }

// ToggleMenu is shorthand for Reduce(s, ToggleMenu{}).
func (s State) ToggleMenu() State { return Reduce(s, ToggleMenu{}) }

// CloseMenu is shorthand for Reduce(s, CloseMenu{}).
func (s State) CloseMenu() State { return Reduce(s, CloseMenu{}) }

// IsActive reports whether id is the active section.
func (s State) IsActive(id SectionID) bool { return s.Active == id }

const menuSuffix = ".menu"

// Encode returns the compact cookie form: "<id>" or "<id>.menu".
func (s State) Encode() string {
	if s.MenuOpen {
		return string(s.Active) + menuSuffix
	}
	return string(s.Active)
}

// DecodeState parses the output of Encode.
func DecodeState(raw string) (State, error) {
	raw = strings.TrimSpace(raw)
	open := strings.HasSuffix(raw, menuSuffix)
	id, err := ParseSectionID(strings.TrimSuffix(raw, menuSuffix))
	if err != nil {
		return Initial(), fmt.Errorf("decode state: %w", err)
	}
	return State{Active: id, MenuOpen: open}, nil
}
