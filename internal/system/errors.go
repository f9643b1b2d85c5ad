package system

import "fmt"

// ReadError means a metric source was missing or unreadable
type ReadError struct {
	Field string
	Path  string
	Err   error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("read %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("read %s from %s: %v", e.Field, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError means a metric source was readable but its content was malformed
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
