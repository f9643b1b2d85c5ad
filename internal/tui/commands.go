package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd creates a command that sends a tick message every interval
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectMetrics creates a command to sample the host in the background
func collectMetrics(collect CollectFunc) tea.Cmd {
	return func() tea.Msg {
		return metricsMsg{metrics: collect()}
	}
}
