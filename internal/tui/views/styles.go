// internal/tui/views/styles.go
package views

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Nerd Font glyphs
const (
	iconHeader    = "\uf108"     // desktop
	iconTime      = "\uf017"     // clock
	iconUptime    = "\uf0aa"     // arrow-circle-up
	iconBoot      = "\uf011"     // power-off
	iconUsers     = "\uf0c0"     // users
	iconLoad      = "\uf0e4"     // tachometer
	iconContainer = "\U000f01a7" // cube-outline
	iconNative    = "\uf17c"     // tux
)

// palette is the fixed color scheme, built on its own renderer so that
// turning color off never depends on what stdout is connected to
type palette struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	missing lipgloss.Style
	box     lipgloss.Style

	green    lipgloss.Style
	yellow   lipgloss.Style
	red      lipgloss.Style
	critical lipgloss.Style
	cyan     lipgloss.Style
	magenta  lipgloss.Style
	blue     lipgloss.Style
}

func newPalette(color bool) palette {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}

	return palette{
		title:   fg("14"),
		label:   r.NewStyle().Foreground(lipgloss.Color("7")),
		value:   fg("15"),
		missing: r.NewStyle().Faint(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1),

		green:    fg("10"),
		yellow:   fg("11"),
		red:      fg("9"),
		critical: fg("1"),
		cyan:     fg("14"),
		magenta:  fg("13"),
		blue:     fg("12"),
	}
}

// loadStyle colors a load average: <1 green, <2 yellow, <4 red, above dark red
func (p palette) loadStyle(load float64) lipgloss.Style {
	switch {
	case load < 1.0:
		return p.green
	case load < 2.0:
		return p.yellow
	case load < 4.0:
		return p.red
	default:
		return p.critical
	}
}

// icon prefixes a glyph when icons are enabled
func (o Options) icon(style lipgloss.Style, glyph string) string {
	if !o.Icons {
		return ""
	}
	return style.Render(glyph) + " "
}
