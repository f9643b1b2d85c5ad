package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// styles for everything around the dashboard box
type styles struct {
	graphTitle lipgloss.Style
	graphAxis  lipgloss.Style
	spark      lipgloss.Style
	status     lipgloss.Style
	help       lipgloss.Style
}

// newStyles builds the styles on their own renderer so --no-color
// holds even when stdout is a color terminal
func newStyles(color bool) styles {
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		graphTitle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE")),

		graphAxis: r.NewStyle().Foreground(lipgloss.Color("#6C7086")),

		spark: r.NewStyle().Foreground(lipgloss.Color("#89B4FA")),

		status: r.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),

		help: r.NewStyle().Foreground(lipgloss.Color("#A6ADC8")).Padding(1, 0),
	}
}
