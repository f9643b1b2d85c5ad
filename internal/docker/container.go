// internal/docker/container.go
package docker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rusenback/sysuptime/internal/model"
)

var errNotRunning = errors.New("container has no start time")

// ContainerStartedAt returns when the container's current run began
func (c *Client) ContainerStartedAt(ctx context.Context, id string) (time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	info, err := c.cli.ContainerInspect(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	if info.ContainerJSONBase == nil || info.State == nil {
		return time.Time{}, errNotRunning
	}

	return parseStartedAt(info.State.StartedAt)
}

// parseStartedAt parses the engine timestamp, e.g. 2024-01-15T10:30:45.123456789Z.
// Never started containers report the zero time.
func parseStartedAt(s string) (time.Time, error) {
	if s == "" || strings.HasPrefix(s, "0001-01-01") {
		return time.Time{}, errNotRunning
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start time %q: %w", s, err)
	}
	return t, nil
}

// Runtime looks up the container we run in
func Runtime(ctx context.Context, insp Inspector, id string) (*model.ContainerRuntime, error) {
	if id == "" {
		return nil, errors.New("container id unknown")
	}

	started, err := insp.ContainerStartedAt(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inspect container %s: %w", id, err)
	}

	return &model.ContainerRuntime{ID: shortID(id), StartedAt: started}, nil
}

// shortID trims an id to the 12 characters docker prints
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
