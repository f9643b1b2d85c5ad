//go:build linux

package system

import (
	"context"

	"github.com/rusenback/sysuptime/internal/model"
)

// ReadUptime returns whole seconds since boot from /proc/uptime
func (r *Reader) ReadUptime(_ context.Context) (uint64, error) {
	data, err := r.readFile("uptime", "proc/uptime")
	if err != nil {
		return 0, err
	}
	return ParseUptime(data)
}

// ReadLoadAverages returns the 1/5/15 minute load from /proc/loadavg
func (r *Reader) ReadLoadAverages(_ context.Context) (model.LoadAverages, error) {
	data, err := r.readFile("load averages", "proc/loadavg")
	if err != nil {
		return model.LoadAverages{}, err
	}
	return ParseLoadAverages(data)
}
