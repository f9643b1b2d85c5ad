package docker

import (
	"context"
	"time"

	"github.com/docker/docker/client"
)

// Config sisältää Docker client konfiguraation
type Config struct {
	Host    string
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:    "unix:///var/run/docker.sock",
		Timeout: 2 * time.Second,
	}
}

// Client wraps the engine API client
type Client struct {
	cli     *client.Client
	timeout time.Duration
}

// NewClient connects to the engine and pings it once.
// Inside most containers the socket is not mounted and this fails fast.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	cli, err := client.NewClientWithOpts(
		client.WithHost(cfg.Host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if _, err := cli.Ping(pingCtx); err != nil {
		cli.Close()
		return nil, err
	}

	return &Client{
		cli:     cli,
		timeout: cfg.Timeout,
	}, nil
}

// Close sulkee yhteyden
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}
