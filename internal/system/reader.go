package system

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rusenback/sysuptime/internal/model"
	"github.com/shirou/gopsutil/v4/host"
)

// Reader samples uptime, load, sessions and container hints from the host
type Reader struct {
	// Root is prefixed to every path read, "/" on a real system
	Root string

	// Sessions lists utmp entries; defaults to gopsutil's reader
	Sessions func(ctx context.Context) ([]host.UserStat, error)

	// Hostname is the last resort container id
	Hostname func() (string, error)
}

// NewReader returns a Reader for the running host
func NewReader() *Reader {
	return &Reader{
		Root:     "/",
		Sessions: host.UsersWithContext,
		Hostname: os.Hostname,
	}
}

func (r *Reader) path(rel string) string {
	root := r.Root
	if root == "" {
		root = "/"
	}
	return filepath.Join(root, rel)
}

func (r *Reader) readFile(field, rel string) ([]byte, error) {
	p := r.path(rel)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, &ReadError{Field: field, Path: p, Err: err}
	}
	return data, nil
}

// ReadUserCount counts distinct active login sessions.
// A session is a (user, terminal) pair of a USER_PROCESS utmp record.
func (r *Reader) ReadUserCount(ctx context.Context) (int, error) {
	if r.Sessions == nil {
		return 0, &ReadError{Field: "users", Err: os.ErrNotExist}
	}

	sessions, err := r.Sessions(ctx)
	if err != nil {
		return 0, &ReadError{Field: "users", Path: "utmp", Err: err}
	}

	type session struct{ user, terminal string }
	seen := make(map[session]struct{}, len(sessions))
	for _, s := range sessions {
		if s.User == "" {
			continue
		}
		seen[session{s.User, s.Terminal}] = struct{}{}
	}

	return len(seen), nil
}

// Collect reads every metric once. Failures are kept per field.
func (r *Reader) Collect(ctx context.Context, now time.Time) model.Metrics {
	m := model.Metrics{SampledAt: now}

	if secs, err := r.ReadUptime(ctx); err != nil {
		slog.Debug("uptime unavailable", "err", err)
		m.Uptime = model.Failed[uint64](err)
	} else {
		m.Uptime = model.Ok(secs)
	}

	if loads, err := r.ReadLoadAverages(ctx); err != nil {
		slog.Debug("load averages unavailable", "err", err)
		m.Load = model.Failed[model.LoadAverages](err)
	} else {
		m.Load = model.Ok(loads)
	}

	if users, err := r.ReadUserCount(ctx); err != nil {
		slog.Debug("user count unavailable", "err", err)
		m.Users = model.Failed[int](err)
	} else {
		m.Users = model.Ok(users)
	}

	m.InContainer = r.DetectContainer()

	return m
}
