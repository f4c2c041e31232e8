// Package theme defines the light/dark presentation mode. A Mode is passed
// explicitly to whatever renders with it; there is no process-wide theme.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the presentation mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Default is the mode a new visitor sees.
const Default = Light

// ErrUnknownMode is returned by Parse for anything but light or dark.
var ErrUnknownMode = errors.New("unknown theme mode")

// Parse reads a mode from a cookie or query value.
func Parse(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark:
		return m, nil
	default:
		return Default, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool { return m == Dark }

func (m Mode) String() string { return string(m) }

// Palette is the set of colors a mode renders with.
type Palette struct {
	Background string
	Text       string
	Accent     string
	Highlight  string
	Muted      string
}

var palettes = map[Mode]Palette{
	Light: {Background: "#ffffff", Text: "#000000", Accent: "#5F85DB", Highlight: "#90B8F8", Muted: "#9ca3af"},
	Dark:  {Background: "#000000", Text: "#ffffff", Accent: "#5F85DB", Highlight: "#90B8F8", Muted: "#6b7280"},
}

// Palette returns the colors for m. Unknown modes get the default palette.
func (m Mode) Palette() Palette {
	if p, ok := palettes[m]; ok {
		return p
	}
	return palettes[Default]
}
