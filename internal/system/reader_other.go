//go:build !linux

package system

import (
	"context"

	"github.com/rusenback/sysuptime/internal/model"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
)

// ReadUptime asks the platform for seconds since boot; there is no /proc here
func (r *Reader) ReadUptime(ctx context.Context) (uint64, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, &ReadError{Field: "uptime", Err: err}
	}
	return secs, nil
}

// ReadLoadAverages asks the platform for the 1/5/15 minute load
func (r *Reader) ReadLoadAverages(ctx context.Context) (model.LoadAverages, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return model.LoadAverages{}, &ReadError{Field: "load averages", Err: err}
	}
	return model.LoadAverages{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}
