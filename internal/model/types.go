// Package model defines shared data structures.
package model

import "time"

// Config defines typing test settings.
type Config struct {
	Words        int
	PoolsPath    string
	TickInterval time.Duration
}

// State is the lifecycle state of a typing session.
type State int

const (
	// StateIdle means no start time is recorded.
	StateIdle State = iota
	// StateRunning means the clock is running from the first keystroke.
	StateRunning
	// StateFinished means results were submitted and the clock stopped.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Results captures the scored outcome of a session.
type Results struct {
	Elapsed        time.Duration
	ElapsedSeconds float64
	WPM            int
	Accuracy       int
	Mistakes       int
}

// LiveMetrics is the subset of results shown while typing.
// Mistakes are not reported until submission.
type LiveMetrics struct {
	ElapsedSeconds float64
	WPM            int
	Accuracy       int
}
