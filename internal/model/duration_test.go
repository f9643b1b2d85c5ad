package model

import (
	"errors"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  uint64
		expected string
	}{
		{0, "0s"},
		{1, "1s"},
		{59, "59s"},
		{60, "1m"},
		{90, "1m 30s"},
		{3600, "1h"},
		{3661, "1h 1m 1s"},
		{86400, "1d"},
		{90061, "1d 1h 1m 1s"},
		{86401, "1d 1s"},
		{1630, "27m 10s"},
	}

	for _, tt := range tests {
		result := FormatDuration(tt.seconds)
		if result != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, result, tt.expected)
		}
	}
}

func TestSplit(t *testing.T) {
	got := Split(2*86400 + 3*3600 + 4*60 + 5)
	want := Span{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}
	if got != want {
		t.Errorf("Split() = %+v, want %+v", got, want)
	}
}

func TestPlural(t *testing.T) {
	if Plural(1) != "" {
		t.Errorf("Plural(1) = %q, want empty", Plural(1))
	}
	if Plural(0) != "s" || Plural(uint64(2)) != "s" {
		t.Error("Plural should return \"s\" for counts other than one")
	}
}

func TestBootTime(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	m := Metrics{Uptime: Ok[uint64](3661), SampledAt: now}

	boot, ok := m.BootTime()
	if !ok {
		t.Fatal("BootTime() reported failure for a valid uptime")
	}

	want := "2026-10-19 10:58:59 +0200"
	if got := boot.Format(BootTimeLayout); got != want {
		t.Errorf("BootTime() = %q, want %q", got, want)
	}

	m.Uptime = Failed[uint64](errors.New("boom"))
	if _, ok := m.BootTime(); ok {
		t.Error("BootTime() should fail when uptime is missing")
	}
}

func TestContainerUptime(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	m := Metrics{SampledAt: now}

	if _, ok := m.ContainerUptime(); ok {
		t.Error("ContainerUptime() should be unknown without runtime info")
	}

	m.Container = &ContainerRuntime{ID: "abc", StartedAt: now.Add(-90 * time.Second)}
	secs, ok := m.ContainerUptime()
	if !ok || secs != 90 {
		t.Errorf("ContainerUptime() = %d, %v, want 90, true", secs, ok)
	}
}

func TestAllFailed(t *testing.T) {
	errRead := errors.New("unreadable")

	m := Metrics{
		Uptime: Failed[uint64](errRead),
		Load:   Failed[LoadAverages](errRead),
		Users:  Failed[int](errRead),
	}
	if !m.AllFailed() {
		t.Error("AllFailed() = false with every field failed")
	}
	if !errors.Is(m.Err(), errRead) {
		t.Errorf("Err() = %v, want it to wrap %v", m.Err(), errRead)
	}

	m.Users = Ok(0)
	if m.AllFailed() {
		t.Error("AllFailed() = true while users were read")
	}
}
