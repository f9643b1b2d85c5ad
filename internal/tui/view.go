package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/sysuptime/internal/tui/views"
)

// View renders the TUI interface
func (m Model) View() string {
	content := m.renderContent()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderContent stacks the dashboard, the load graph and the status lines
func (m Model) renderContent() string {
	if !m.loaded {
		return "Loading..."
	}

	dashboard := views.RenderDashboard(m.metrics, m.opts)
	graph := renderLoadGraph(m.styles, m.loadHistory, m.maxDataPoints, m.interval)

	status := fmt.Sprintf("Updated %s, every %s", m.refreshed.Format("15:04:05"), m.interval)
	if m.message != "" {
		status = m.message
	}

	help := "[r] refresh  [q] quit"

	return lipgloss.JoinVertical(lipgloss.Left,
		dashboard,
		"",
		graph,
		"",
		m.styles.status.Render(status),
		m.styles.help.Render(help),
	)
}
