// Package session implements the typing test lifecycle.
package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/typespeed/internal/generator"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/stats"
)

// DefaultTickInterval is the live metrics refresh period.
const DefaultTickInterval = 100 * time.Millisecond

// TickHandler receives live metrics on every scheduled tick.
type TickHandler func(model.LiveMetrics)

// Option configures a Session.
type Option func(*Session)

// WithWords sets the number of words per reference text.
func WithWords(n int) Option {
	return func(s *Session) { s.words = n }
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithScheduler sets the scheduler used for live ticks. Without one, no
// ticks are scheduled and the caller polls Tick.
func WithScheduler(sc Scheduler) Option {
	return func(s *Session) { s.scheduler = sc }
}

// WithTickInterval sets the live tick period.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) { s.tickInterval = d }
}

// WithTickHandler sets the receiver of scheduled live metrics.
func WithTickHandler(h TickHandler) Option {
	return func(s *Session) { s.onTick = h }
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session owns one typing test: its reference text, the typed input, the
// start time and the live tick handle. It is not safe for concurrent use.
type Session struct {
	gen          *generator.Generator
	pools        [][]string
	words        int
	clock        Clock
	scheduler    Scheduler
	tickInterval time.Duration
	onTick       TickHandler
	logger       *slog.Logger

	id        string
	state     model.State
	reference string
	typed     string
	startedAt time.Time
	ticker    Timer
	last      model.Results
}

// New returns an idle Session with a freshly generated reference text.
func New(gen *generator.Generator, pools [][]string, opts ...Option) (*Session, error) {
	s := &Session{
		gen:          gen,
		pools:        pools,
		words:        generator.DefaultWords,
		clock:        SystemClock,
		scheduler:    manualScheduler{},
		tickInterval: DefaultTickInterval,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := generator.CheckCount(s.pools, s.words); err != nil {
		return nil, err
	}
	if _, err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// ID identifies the current test; it changes on every reset.
func (s *Session) ID() string { return s.id }

// State returns the lifecycle state.
func (s *Session) State() model.State { return s.state }

// Reference returns the text the user must reproduce.
func (s *Session) Reference() string { return s.reference }

// Typed returns the last input reported through InputChanged.
func (s *Session) Typed() string { return s.typed }

// LastResults returns the submitted results, if the session is finished.
func (s *Session) LastResults() (model.Results, bool) {
	if s.state != model.StateFinished {
		return model.Results{}, false
	}
	return s.last, true
}

// InputChanged records the current input. The first input of an idle
// session starts the clock and the live tick. Input is ignored once the
// session is finished.
func (s *Session) InputChanged(text string) model.LiveMetrics {
	if s.state == model.StateFinished {
		return stats.Live(s.last)
	}
	s.typed = text
	if s.state == model.StateIdle {
		s.start()
	}
	return s.Tick()
}

// Tick recomputes live metrics for the current instant. Outside of a
// running session it reports zeros.
func (s *Session) Tick() model.LiveMetrics {
	if s.state != model.StateRunning {
		return model.LiveMetrics{}
	}
	return stats.Live(s.score())
}

// Submit finishes a running session and returns the final results. The
// second return is false, and nothing changes, when the session is not
// running.
func (s *Session) Submit() (model.Results, bool) {
	if s.state != model.StateRunning {
		return model.Results{}, false
	}
	s.stopTicker()
	s.last = s.score()
	s.state = model.StateFinished
	s.logger.Debug("session finished",
		"session", s.id,
		"elapsed", s.last.Elapsed,
		"wpm", s.last.WPM,
		"accuracy", s.last.Accuracy,
		"mistakes", s.last.Mistakes,
	)
	return s.last, true
}

// Reset abandons the current test from any state and prepares a new
// reference text. Every reset gets a new id. On error the previous text
// is kept and the session is still idle.
func (s *Session) Reset() (string, error) {
	s.stopTicker()
	s.state = model.StateIdle
	s.typed = ""
	s.startedAt = time.Time{}
	s.last = model.Results{}
	s.id = uuid.NewString()

	// New checked the word count, so this only fails if the caller
	// shrank the pools afterwards.
	text, err := s.gen.Generate(s.pools, s.words)
	if err != nil {
		s.logger.Debug("session reset failed", "session", s.id, "error", err)
		return s.reference, fmt.Errorf("failed to generate text: %w", err)
	}
	s.reference = text
	s.logger.Debug("session reset", "session", s.id, "words", s.words)
	return s.reference, nil
}

func (s *Session) start() {
	s.startedAt = s.clock.Now()
	s.state = model.StateRunning
	s.ticker = s.scheduler.Every(s.tickInterval, s.handleTick)
	s.logger.Debug("session started", "session", s.id)
}

func (s *Session) handleTick() {
	if s.state != model.StateRunning {
		return
	}
	if s.onTick != nil {
		s.onTick(s.Tick())
	}
}

func (s *Session) stopTicker() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

func (s *Session) score() model.Results {
	return stats.Score(s.reference, s.typed, s.clock.Now().Sub(s.startedAt))
}
