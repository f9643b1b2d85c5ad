package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/sysuptime/internal/docker"
	"github.com/rusenback/sysuptime/internal/model"
	"github.com/rusenback/sysuptime/internal/system"
	"github.com/rusenback/sysuptime/internal/tui"
	"github.com/rusenback/sysuptime/internal/tui/views"
	"github.com/rusenback/sysuptime/internal/version"
	"github.com/spf13/cobra"
)

var (
	errNoMetrics   = errors.New("failed to read any system metrics")
	errWatchFormat = errors.New("--watch only shows the dashboard")
)

// app holds everything a run needs, so tests can swap the host out
type app struct {
	reader     *system.Reader
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	probe      func(ctx context.Context, id string) (*model.ContainerRuntime, error)
	isTerminal bool
}

type flags struct {
	standard    bool
	pretty      bool
	raw         bool
	since       bool
	interactive bool
	container   bool

	watch    bool
	interval time.Duration
	noColor  bool
	noIcons  bool
	debug    bool
}

// format picks the first requested layout in a fixed order
func (f flags) format() views.Format {
	switch {
	case f.standard:
		return views.Standard
	case f.pretty:
		return views.Pretty
	case f.raw:
		return views.Raw
	case f.since:
		return views.Since
	default:
		return views.Dashboard
	}
}

func newRootCmd(a *app) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "sysuptime",
		Short:         "Colorful uptime: how long the system has been running",
		Long:          "Show uptime, load averages, logged in users and boot time\nas a dashboard, the classic uptime line, or raw values.",
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context(), f)
		},
	}

	fs := cmd.Flags()
	fs.BoolVar(&f.standard, "standard", false, "Show standard uptime format (like original uptime)")
	fs.BoolVarP(&f.pretty, "pretty", "p", false, "Show uptime in pretty human-readable format")
	fs.BoolVarP(&f.raw, "raw", "r", false, "Show uptime values in raw machine-readable format")
	fs.BoolVarP(&f.since, "since", "s", false, "Show system boot timestamp")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "Show colorful dashboard (default)")
	fs.BoolVarP(&f.container, "container", "c", false, "Show container uptime indicators")
	fs.BoolVarP(&f.watch, "watch", "w", false, "Keep the dashboard open and refresh it")
	fs.DurationVar(&f.interval, "interval", tui.DefaultConfig().Interval, "Refresh interval for --watch")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colors")
	fs.BoolVar(&f.noIcons, "no-icons", false, "Disable Nerd Font icons")
	fs.BoolVar(&f.debug, "debug", false, "Log why metrics could not be read")

	return cmd
}

func (a *app) run(ctx context.Context, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.watch && f.format() != views.Dashboard {
		return fmt.Errorf("%w: got --%s", errWatchFormat, f.format())
	}
	setupLogging(a.stderr, f.debug)

	opts := views.Options{
		Color:         a.isTerminal && !f.noColor,
		Icons:         !f.noIcons,
		ShowContainer: f.container,
	}

	if f.watch {
		return a.watch(ctx, f, opts)
	}

	m := a.collect(ctx, f.container)
	if m.AllFailed() {
		return fmt.Errorf("%w: %v", errNoMetrics, m.Err())
	}

	_, err := fmt.Fprintln(a.stdout, views.Render(f.format(), m, opts))
	return err
}

func (a *app) watch(ctx context.Context, f flags, opts views.Options) error {
	cfg := tui.Config{Interval: f.interval, Options: opts}
	collect := a.watchCollector(ctx, f.container)

	// the alternate screen owns the terminal until the program exits
	flush := bufferLogs(a.stderr, f.debug)
	defer flush()

	p := tea.NewProgram(tui.NewModel(collect, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// collect samples the host and, when asked, the engine about our container
func (a *app) collect(ctx context.Context, withContainer bool) model.Metrics {
	m := a.reader.Collect(ctx, a.now())
	if withContainer && m.InContainer {
		m.Container = a.containerRuntime(ctx)
	}
	return m
}

// watchCollector asks the engine once up front; a container's start time
// does not change while it runs
func (a *app) watchCollector(ctx context.Context, withContainer bool) tui.CollectFunc {
	var rt *model.ContainerRuntime
	if withContainer && a.reader.DetectContainer() {
		rt = a.containerRuntime(ctx)
	}

	return func() model.Metrics {
		m := a.reader.Collect(ctx, a.now())
		if m.InContainer {
			m.Container = rt
		}
		return m
	}
}

func (a *app) containerRuntime(ctx context.Context) *model.ContainerRuntime {
	if a.probe == nil {
		return nil
	}
	rt, err := a.probe(ctx, a.reader.ContainerID())
	if err != nil {
		slog.Debug("container runtime unavailable", "err", err)
		return nil
	}
	return rt
}

// dockerProbe asks the local engine when our container started
func dockerProbe(ctx context.Context, id string) (*model.ContainerRuntime, error) {
	client, err := docker.NewClient(ctx, docker.DefaultConfig())
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return docker.Runtime(ctx, client, id)
}

func setupLogging(w io.Writer, debug bool) {
	lvl := slog.LevelWarn
	if debug {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
}

// bufferLogs holds log output until flush is called
func bufferLogs(w io.Writer, debug bool) (flush func()) {
	var buf bytes.Buffer
	setupLogging(&buf, debug)

	return func() {
		setupLogging(w, debug)
		if buf.Len() > 0 {
			_, _ = w.Write(buf.Bytes())
		}
	}
}
