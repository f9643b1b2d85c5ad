// internal/tui/views/oneline.go
package views

import (
	"fmt"
	"strings"

	"github.com/rusenback/sysuptime/internal/model"
)

// RenderStandard mimics the classic uptime line:
// " 14:05:09 up 2 days,  3:07,  2 users,  load average: 0.52, 0.61, 0.70"
func RenderStandard(m model.Metrics, opts Options) string {
	p := newPalette(opts.Color)
	inContainer := opts.ShowContainer && m.InContainer

	var b strings.Builder
	b.WriteString(opts.icon(p.cyan, iconUptime))
	if inContainer {
		b.WriteString(opts.icon(p.magenta, iconContainer))
	}
	b.WriteString(p.value.Render(m.SampledAt.Format("15:04:05")))

	b.WriteString(" up ")
	if m.Uptime.OK() {
		b.WriteString(classicUptime(p, m.Uptime.Value))
	} else {
		b.WriteString(p.missing.Render(notAvailable))
	}
	if inContainer {
		b.WriteString(" (container)")
	}

	b.WriteString(",  ")
	if m.Users.OK() {
		n := m.Users.Value
		b.WriteString(p.green.Render(fmt.Sprintf("%d user%s", n, model.Plural(n))))
	} else {
		b.WriteString(p.missing.Render(notAvailable) + " users")
	}

	b.WriteString(",  load average: ")
	if m.Load.OK() {
		loads := formatLoads(m.Load.Value)
		b.WriteString(strings.Join(loads[:], ", "))
	} else {
		b.WriteString(p.missing.Render(notAvailable))
	}

	return b.String()
}

// classicUptime formats like procps: "3 days,  4:05" or "27 min"
func classicUptime(p palette, seconds uint64) string {
	s := model.Split(seconds)

	var b strings.Builder
	if s.Days > 0 {
		fmt.Fprintf(&b, "%s day%s, ", p.yellow.Render(fmt.Sprint(s.Days)), model.Plural(s.Days))
	}
	if s.Hours > 0 {
		b.WriteString(p.yellow.Render(fmt.Sprintf("%2d:%02d", s.Hours, s.Minutes)))
	} else {
		b.WriteString(p.yellow.Render(fmt.Sprint(s.Minutes)) + " min")
	}

	return b.String()
}

// RenderPretty writes the uptime as a sentence: "up 2 days, 3 hours, 5 minutes"
func RenderPretty(m model.Metrics, opts Options) string {
	p := newPalette(opts.Color)

	var b strings.Builder
	b.WriteString(opts.icon(p.cyan, iconUptime))
	b.WriteString("up ")

	switch {
	case !m.Uptime.OK():
		b.WriteString(p.missing.Render(notAvailable))
	case m.Uptime.Value < 60:
		b.WriteString("less than a minute")
	default:
		s := model.Split(m.Uptime.Value)
		var clauses []string
		for _, unit := range []struct {
			n    uint64
			name string
		}{
			{s.Days, "day"},
			{s.Hours, "hour"},
			{s.Minutes, "minute"},
		} {
			if unit.n == 0 {
				continue
			}
			clauses = append(clauses,
				fmt.Sprintf("%s %s%s", p.yellow.Render(fmt.Sprint(unit.n)), unit.name, model.Plural(unit.n)))
		}
		b.WriteString(strings.Join(clauses, ", "))
	}

	if opts.ShowContainer && m.InContainer {
		b.WriteString(" (container)")
	}

	return b.String()
}

// RenderSince prints only the boot timestamp
func RenderSince(m model.Metrics, opts Options) string {
	p := newPalette(opts.Color)

	var icon string
	if m.InContainer {
		icon = opts.icon(p.cyan, iconContainer)
	} else {
		icon = opts.icon(p.green, iconNative)
	}

	boot, ok := m.BootTime()
	if !ok {
		return icon + p.missing.Render(notAvailable)
	}
	return icon + p.value.Render(boot.Format(model.BootTimeLayout))
}

// RenderRaw prints "uptime_seconds load1 load5 load15 users container_flag".
// Never colored, never decorated; unreadable values are N/A so the field count stays 6.
func RenderRaw(m model.Metrics) string {
	fields := make([]string, 0, 6)

	if m.Uptime.OK() {
		fields = append(fields, fmt.Sprint(m.Uptime.Value))
	} else {
		fields = append(fields, notAvailable)
	}

	if m.Load.OK() {
		loads := formatLoads(m.Load.Value)
		fields = append(fields, loads[:]...)
	} else {
		fields = append(fields, notAvailable, notAvailable, notAvailable)
	}

	if m.Users.OK() {
		fields = append(fields, fmt.Sprint(m.Users.Value))
	} else {
		fields = append(fields, notAvailable)
	}

	if m.InContainer {
		fields = append(fields, "1")
	} else {
		fields = append(fields, "0")
	}

	return strings.Join(fields, " ")
}
