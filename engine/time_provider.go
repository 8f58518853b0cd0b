package engine

import "time"

// Clock is a source of wall-clock time for the loop driver
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}
