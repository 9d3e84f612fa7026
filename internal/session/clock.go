package session

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the monotonic wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Timer is a handle to repeating scheduled work.
type Timer interface {
	Stop()
}

// Scheduler registers a callback that repeats every d until stopped.
// Callbacks must run on the same goroutine that drives the Session.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

type manualScheduler struct{}

func (manualScheduler) Every(time.Duration, func()) Timer {
	return stoppedTimer{}
}

type stoppedTimer struct{}

func (stoppedTimer) Stop() {}
