package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/sysuptime/internal/model"
	"github.com/rusenback/sysuptime/internal/tui/views"
)

// MinInterval keeps the refresh loop from spinning
const MinInterval = 500 * time.Millisecond

// Config configures the live dashboard
type Config struct {
	Interval time.Duration
	Options  views.Options
}

func DefaultConfig() Config {
	return Config{
		Interval: 2 * time.Second,
		Options:  views.Options{Color: true, Icons: true},
	}
}

// CollectFunc takes one sample of the host
type CollectFunc func() model.Metrics

// Model represents the live dashboard state
type Model struct {
	collect  CollectFunc
	interval time.Duration
	opts     views.Options
	styles   styles

	metrics   model.Metrics
	loaded    bool
	refreshed time.Time
	message   string
	width     int
	height    int

	// 1 minute load samples taken while watching, oldest first
	loadHistory   []float64
	maxDataPoints int
}

// Message types for Bubbletea update loop
type tickMsg time.Time

type metricsMsg struct {
	metrics model.Metrics
}

// NewModel creates a new TUI model
func NewModel(collect CollectFunc, cfg Config) Model {
	interval := cfg.Interval
	if interval < MinInterval {
		interval = MinInterval
	}

	return Model{
		collect:       collect,
		interval:      interval,
		opts:          cfg.Options,
		styles:        newStyles(cfg.Options.Color),
		maxDataPoints: 40,
	}
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	return tea.Batch(collectMetrics(m.collect), tickCmd(m.interval))
}
