package clock

import "time"

// Clock abstracts "now" so the booking and report services can be
// exercised against a fixed instant in tests.  The system clock keeps
// the server's local zone because the daily report window is defined
// in local time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type fixedClock struct {
	now time.Time
}

// NewFixed returns a clock pinned to the given instant.  The zone of t
// is preserved so tests can pick the report window deliberately.
func NewFixed(t time.Time) Clock {
	return fixedClock{now: t}
}

func (f fixedClock) Now() time.Time {
	return f.now
}
