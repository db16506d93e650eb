package domain

import "time"

// Clock supplies the current time to domain operations so that date-window
// checks and modification stamps are deterministic under test.
type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
	// Today returns the current date at UTC midnight.
	Today() time.Time
}

type systemClock struct{}

// NewSystemClock returns a Clock backed by the wall clock.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	return DateOnly(time.Now().UTC())
}

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant.UTC()
}

func (c FixedClock) Today() time.Time {
	return DateOnly(c.Instant.UTC())
}

// DateOnly truncates t to its calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
