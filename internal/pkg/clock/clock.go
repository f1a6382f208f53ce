// Package clock provides time sources for the planner
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real reads the system clock in UTC
type Real struct{}

// Now returns the current UTC time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a clock backed by the system time
func New() Clock {
	return &Real{}
}

// Fixed always reports the same instant. Useful for tests and offline runs.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (f *Fixed) Now() time.Time {
	return f.At
}
