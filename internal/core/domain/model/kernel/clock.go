package kernel

import "time"

// Clock abstracts the ambient wall clock. Time-window eligibility checks
// (cancellation grace, admin contest window) must read "now" at the moment of
// each request, so every component that needs the current time takes a Clock
// instead of calling time.Now directly. Tests substitute a fixed clock to
// simulate elapsed time deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock reading the real wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
