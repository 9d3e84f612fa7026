package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTeaSchedulerRepeatsUntilStopped(t *testing.T) {
	s := newTeaScheduler()
	calls := 0
	timer := s.Every(10*time.Millisecond, func() { calls++ })

	assert.NotNil(t, s.flush())
	assert.Nil(t, s.flush(), "pending commands are flushed once")

	assert.NotNil(t, s.handle(tickMsg{id: 1}))
	assert.NotNil(t, s.handle(tickMsg{id: 1}))
	assert.Equal(t, 2, calls)

	timer.Stop()
	assert.Nil(t, s.handle(tickMsg{id: 1}))
	assert.Equal(t, 2, calls)
	assert.Zero(t, s.active())
}

func TestTeaSchedulerStopInsideCallback(t *testing.T) {
	s := newTeaScheduler()
	var timer interface{ Stop() }
	timer = s.Every(time.Millisecond, func() { timer.Stop() })

	assert.Nil(t, s.handle(tickMsg{id: 1}), "no reschedule after stopping inside the callback")
}

func TestTeaSchedulerUnknownID(t *testing.T) {
	s := newTeaScheduler()
	assert.Nil(t, s.handle(tickMsg{id: 42}))
}
