//go:build linux

package system

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/rusenback/sysuptime/internal/model"
	"github.com/shirou/gopsutil/v4/host"
)

func TestReadUptimeMissing(t *testing.T) {
	r := &Reader{Root: t.TempDir()}

	_, err := r.ReadUptime(context.Background())
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatalf("ReadUptime() error = %v, want *ReadError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadUptime() error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestCollect(t *testing.T) {
	root := writeTree(t, map[string]string{
		"proc/uptime":  "1630.45 1500.02\n",
		"proc/loadavg": "1.26 1.66 1.39 3/512 12345\n",
		".dockerenv":   "",
	})
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	r := &Reader{Root: root, Sessions: sessions(host.UserStat{User: "alice", Terminal: "pts/0"})}
	m := r.Collect(context.Background(), now)

	if !m.Uptime.OK() || m.Uptime.Value != 1630 {
		t.Errorf("Uptime = %+v, want 1630", m.Uptime)
	}
	want := model.LoadAverages{One: 1.26, Five: 1.66, Fifteen: 1.39}
	if !m.Load.OK() || m.Load.Value != want {
		t.Errorf("Load = %+v, want %+v", m.Load, want)
	}
	if !m.Users.OK() || m.Users.Value != 1 {
		t.Errorf("Users = %+v, want 1", m.Users)
	}
	if !m.InContainer {
		t.Error("InContainer = false with /.dockerenv present")
	}
	if !m.SampledAt.Equal(now) {
		t.Errorf("SampledAt = %v, want %v", m.SampledAt, now)
	}
}

func TestCollectPartialFailure(t *testing.T) {
	root := writeTree(t, map[string]string{
		"proc/uptime":  "100.00 90.00\n",
		"proc/loadavg": "1.26\n",
	})

	r := &Reader{
		Root: root,
		Sessions: func(context.Context) ([]host.UserStat, error) {
			return nil, os.ErrNotExist
		},
	}
	m := r.Collect(context.Background(), time.Now())

	if !m.Uptime.OK() {
		t.Errorf("Uptime failed: %v", m.Uptime.Err)
	}

	var perr *ParseError
	if !errors.As(m.Load.Err, &perr) {
		t.Errorf("Load.Err = %v, want *ParseError", m.Load.Err)
	}

	var rerr *ReadError
	if !errors.As(m.Users.Err, &rerr) {
		t.Errorf("Users.Err = %v, want *ReadError", m.Users.Err)
	}

	if m.AllFailed() {
		t.Error("AllFailed() = true with uptime available")
	}
}

func TestCollectNothingReadable(t *testing.T) {
	r := &Reader{Root: t.TempDir()}
	m := r.Collect(context.Background(), time.Now())

	if !m.AllFailed() {
		t.Errorf("AllFailed() = false, metrics: %+v", m)
	}
}
