// internal/model/duration.go
package model

import (
	"fmt"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// BootTimeLayout is how boot timestamps are printed everywhere
const BootTimeLayout = "2006-01-02 15:04:05 -0700"

// Span is a duration split into calendar-free units
type Span struct {
	Days    uint64
	Hours   uint64
	Minutes uint64
	Seconds uint64
}

// Split decomposes seconds into days, hours, minutes and seconds
func Split(seconds uint64) Span {
	return Span{
		Days:    seconds / secondsPerDay,
		Hours:   seconds % secondsPerDay / secondsPerHour,
		Minutes: seconds % secondsPerHour / secondsPerMinute,
		Seconds: seconds % secondsPerMinute,
	}
}

// FormatDuration renders seconds as "1d 2h 3m 4s", skipping zero units
func FormatDuration(seconds uint64) string {
	s := Split(seconds)

	var parts []string
	if s.Days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", s.Days))
	}
	if s.Hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", s.Hours))
	}
	if s.Minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", s.Minutes))
	}
	if s.Seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s.Seconds))
	}

	return strings.Join(parts, " ")
}

// Plural returns "" for one and "s" otherwise
func Plural[T ~int | ~uint64](n T) string {
	if n == 1 {
		return ""
	}
	return "s"
}
