// internal/docker/interface.go
package docker

import (
	"context"
	"time"
)

// Inspector allows mocking the engine in tests
type Inspector interface {
	ContainerStartedAt(ctx context.Context, id string) (time.Time, error)
	Close() error
}

// Varmista että Client toteuttaa interfacen
var _ Inspector = (*Client)(nil)
