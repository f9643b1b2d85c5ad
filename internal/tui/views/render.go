// internal/tui/views/render.go
package views

import (
	"fmt"
	"strings"

	"github.com/rusenback/sysuptime/internal/model"
)

// Format selects one of the output layouts
type Format int

const (
	Dashboard Format = iota
	Standard
	Pretty
	Raw
	Since
)

func (f Format) String() string {
	switch f {
	case Dashboard:
		return "dashboard"
	case Standard:
		return "standard"
	case Pretty:
		return "pretty"
	case Raw:
		return "raw"
	case Since:
		return "since"
	default:
		return "unknown"
	}
}

// Options control decoration only; they never change which values are shown
type Options struct {
	Color bool
	Icons bool

	// ShowContainer adds container annotations to the one-line formats
	ShowContainer bool
}

// notAvailable replaces any value that could not be read
const notAvailable = "N/A"

// Render formats a sample in the chosen layout
func Render(f Format, m model.Metrics, opts Options) string {
	switch f {
	case Standard:
		return RenderStandard(m, opts)
	case Pretty:
		return RenderPretty(m, opts)
	case Raw:
		return RenderRaw(m)
	case Since:
		return RenderSince(m, opts)
	default:
		return RenderDashboard(m, opts)
	}
}

func formatLoads(l model.LoadAverages) [3]string {
	return [3]string{
		fmt.Sprintf("%.2f", l.One),
		fmt.Sprintf("%.2f", l.Five),
		fmt.Sprintf("%.2f", l.Fifteen),
	}
}

// renderDuration is FormatDuration with every unit colored separately
func renderDuration(p palette, seconds uint64) string {
	s := model.Split(seconds)

	var parts []string
	if s.Days > 0 {
		parts = append(parts, p.cyan.Render(fmt.Sprint(s.Days))+"d")
	}
	if s.Hours > 0 {
		parts = append(parts, p.green.Render(fmt.Sprint(s.Hours))+"h")
	}
	if s.Minutes > 0 {
		parts = append(parts, p.yellow.Render(fmt.Sprint(s.Minutes))+"m")
	}
	if s.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, p.magenta.Render(fmt.Sprint(s.Seconds))+"s")
	}

	return strings.Join(parts, " ")
}
