// internal/tui/views/dashboard.go
package views

import (
	"fmt"
	"strings"

	"github.com/rusenback/sysuptime/internal/model"
)

// RenderDashboard renderöi boksin jossa jokainen mittari on omalla rivillään
func RenderDashboard(m model.Metrics, opts Options) string {
	p := newPalette(opts.Color)

	row := func(glyph, label, value string) string {
		return opts.icon(p.blue, glyph) + p.label.Render(fmt.Sprintf("%-8s", label)) + value
	}

	var rows []string
	rows = append(rows,
		opts.icon(p.title, iconHeader)+p.title.Render("SYSTEM UPTIME"),
		"",
		row(iconTime, "Time:", p.value.Render(m.SampledAt.Format("15:04:05 MST"))),
	)

	// Uptime
	if m.Uptime.OK() {
		rows = append(rows, row(iconUptime, "Uptime:", renderDuration(p, m.Uptime.Value)))
	} else {
		rows = append(rows, row(iconUptime, "Uptime:", p.missing.Render(notAvailable)))
	}

	// Boot
	if boot, ok := m.BootTime(); ok {
		rows = append(rows, row(iconBoot, "Boot:", p.value.Render(boot.Format(model.BootTimeLayout))))
	} else {
		rows = append(rows, row(iconBoot, "Boot:", p.missing.Render(notAvailable)))
	}

	// Users
	if m.Users.OK() {
		rows = append(rows, row(iconUsers, "Users:", p.cyan.Render(fmt.Sprint(m.Users.Value))))
	} else {
		rows = append(rows, row(iconUsers, "Users:", p.missing.Render(notAvailable)))
	}

	// Load
	if m.Load.OK() {
		loads := formatLoads(m.Load.Value)
		values := []float64{m.Load.Value.One, m.Load.Value.Five, m.Load.Value.Fifteen}
		colored := make([]string, len(loads))
		for i, l := range loads {
			colored[i] = p.loadStyle(values[i]).Render(l)
		}
		rows = append(rows, row(iconLoad, "Load:", strings.Join(colored, ", ")))
	} else {
		rows = append(rows, row(iconLoad, "Load:", p.missing.Render(notAvailable)))
	}

	if m.InContainer {
		rows = append(rows, "", renderContainerLine(p, m, opts))
	}

	return p.box.Render(strings.Join(rows, "\n"))
}

func renderContainerLine(p palette, m model.Metrics, opts Options) string {
	line := opts.icon(p.magenta, iconContainer) + p.magenta.Render("Container")

	if secs, ok := m.ContainerUptime(); ok {
		line += p.label.Render(" up ") + renderDuration(p, secs)
		if m.Container.ID != "" {
			line += p.label.Render(" (" + m.Container.ID + ")")
		}
	}

	return line
}
