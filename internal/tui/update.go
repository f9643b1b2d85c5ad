package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "r":
			m.message = "Refreshing..."
			return m, collectMetrics(m.collect)
		}

	case tickMsg:
		return m, tea.Batch(collectMetrics(m.collect), tickCmd(m.interval))

	case metricsMsg:
		m.metrics = msg.metrics
		m.loaded = true
		m.refreshed = msg.metrics.SampledAt
		m.message = ""
		if msg.metrics.AllFailed() {
			m.message = "Error: " + msg.metrics.Err().Error()
		}
		if msg.metrics.Load.OK() {
			m.loadHistory = pushSample(m.loadHistory, msg.metrics.Load.Value.One, m.maxDataPoints)
		}
	}

	return m, nil
}
