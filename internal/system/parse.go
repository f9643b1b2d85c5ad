package system

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rusenback/sysuptime/internal/model"
)

var (
	errNoFields   = errors.New("no fields")
	errOutOfRange = errors.New("value out of range")
)

// maxUptimeSeconds is the longest uptime that still fits a time.Duration
const maxUptimeSeconds = math.MaxInt64 / int64(time.Second)

// ParseUptime reads the first field of /proc/uptime, e.g. "1630.45 1500.02",
// and truncates it to whole seconds
func ParseUptime(data []byte) (uint64, error) {
	content := strings.TrimSpace(string(data))
	fields := strings.Fields(content)
	if len(fields) < 1 {
		return 0, &ParseError{Field: "uptime", Input: content, Err: errNoFields}
	}

	secs, err := parseNonNegative(fields[0])
	if err != nil {
		return 0, &ParseError{Field: "uptime", Input: content, Err: err}
	}
	if secs > float64(maxUptimeSeconds) {
		return 0, &ParseError{Field: "uptime", Input: content, Err: errOutOfRange}
	}

	return uint64(secs), nil
}

// ParseLoadAverages reads the three leading fields of /proc/loadavg,
// e.g. "1.26 1.66 1.39 3/512 12345". Trailing fields are ignored.
func ParseLoadAverages(data []byte) (model.LoadAverages, error) {
	content := strings.TrimSpace(string(data))
	fields := strings.Fields(content)
	if len(fields) < 3 {
		return model.LoadAverages{}, &ParseError{
			Field: "load averages",
			Input: content,
			Err:   fmt.Errorf("expected 3 fields, got %d", len(fields)),
		}
	}

	var loads [3]float64
	for i := range loads {
		v, err := parseNonNegative(fields[i])
		if err != nil {
			return model.LoadAverages{}, &ParseError{Field: "load averages", Input: content, Err: err}
		}
		loads[i] = v
	}

	return model.LoadAverages{One: loads[0], Five: loads[1], Fifteen: loads[2]}, nil
}

func parseNonNegative(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errOutOfRange
	}
	return v, nil
}
