// internal/model/metrics.go
package model

import (
	"errors"
	"time"
)

// Field holds one sampled value or the error that prevented reading it
type Field[T any] struct {
	Value T
	Err   error
}

// OK reports whether the value was read successfully
func (f Field[T]) OK() bool {
	return f.Err == nil
}

// Ok wraps a successfully read value
func Ok[T any](v T) Field[T] {
	return Field[T]{Value: v}
}

// Failed wraps a read failure
func Failed[T any](err error) Field[T] {
	return Field[T]{Err: err}
}

// LoadAverages are the 1, 5 and 15 minute run-queue averages
type LoadAverages struct {
	One     float64
	Five    float64
	Fifteen float64
}

// ContainerRuntime describes the container we run in, as reported by the engine
type ContainerRuntime struct {
	ID        string
	StartedAt time.Time
}

// Metrics is a single sample of the host state
type Metrics struct {
	Uptime      Field[uint64] // seconds since boot
	Load        Field[LoadAverages]
	Users       Field[int]
	InContainer bool

	// Container is only set when the engine could be asked about us
	Container *ContainerRuntime

	SampledAt time.Time
}

// BootTime is SampledAt minus the uptime, in SampledAt's location
func (m Metrics) BootTime() (time.Time, bool) {
	if !m.Uptime.OK() {
		return time.Time{}, false
	}
	return m.SampledAt.Add(-time.Duration(m.Uptime.Value) * time.Second), true
}

// ContainerUptime returns how long the container has been running
func (m Metrics) ContainerUptime() (uint64, bool) {
	if m.Container == nil || m.Container.StartedAt.IsZero() {
		return 0, false
	}
	d := m.SampledAt.Sub(m.Container.StartedAt)
	if d < 0 {
		return 0, true
	}
	return uint64(d / time.Second), true
}

// AllFailed reports whether no metric could be read at all
func (m Metrics) AllFailed() bool {
	return !m.Uptime.OK() && !m.Load.OK() && !m.Users.OK()
}

// Err joins the errors of all failed fields
func (m Metrics) Err() error {
	return errors.Join(m.Uptime.Err, m.Load.Err, m.Users.Err)
}
