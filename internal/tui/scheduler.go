package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typespeed/internal/session"
)

// tickMsg is delivered when a scheduled timer period elapses.
type tickMsg struct {
	id int
}

// teaScheduler runs session timers as tea.Tick commands so callbacks stay
// on the update loop. Ticks for stopped timers are dropped.
type teaScheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	id     int
	every  time.Duration
	fn     func()
	parent *teaScheduler
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: map[int]*teaTimer{}}
}

// Every implements session.Scheduler. The first tick command is queued
// until the next flush.
func (s *teaScheduler) Every(d time.Duration, fn func()) session.Timer {
	s.nextID++
	t := &teaTimer{id: s.nextID, every: d, fn: fn, parent: s}
	s.timers[t.id] = t
	s.pending = append(s.pending, t.cmd())
	return t
}

func (s *teaScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) handle(msg tickMsg) tea.Cmd {
	t, ok := s.timers[msg.id]
	if !ok {
		return nil
	}
	t.fn()
	if _, ok := s.timers[msg.id]; !ok {
		return nil
	}
	return t.cmd()
}

func (s *teaScheduler) active() int {
	return len(s.timers)
}

func (t *teaTimer) Stop() {
	delete(t.parent.timers, t.id)
}

func (t *teaTimer) cmd() tea.Cmd {
	id := t.id
	return tea.Tick(t.every, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}
