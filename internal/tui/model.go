// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typespeed/internal/generator"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/session"
	"github.com/verte-zerg/typespeed/internal/stats"
)

const (
	minContentWidth = 20
	inputHeight     = 3
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *session.Session
	sched   *teaScheduler
	logger  *slog.Logger

	input textarea.Model
	help  help.Model
	keys  KeyMap

	width  int
	height int

	live model.LiveMetrics
	err  error
}

// NewModel constructs a typing TUI model around a new session. Extra
// session options are applied after the ones derived from cfg.
func NewModel(cfg model.Config, gen *generator.Generator, pools [][]string, logger *slog.Logger, opts ...session.Option) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		sched:  newTeaScheduler(),
		logger: logger,
		help:   help.New(),
		keys:   Keys,
	}

	sessionOpts := []session.Option{
		session.WithWords(cfg.Words),
		session.WithScheduler(m.sched),
		session.WithTickHandler(m.setLive),
		session.WithLogger(logger),
	}
	if cfg.TickInterval > 0 {
		sessionOpts = append(sessionOpts, session.WithTickInterval(cfg.TickInterval))
	}
	s, err := session.New(gen, pools, append(sessionOpts, opts...)...)
	if err != nil {
		return nil, err
	}
	m.session = s
	m.input = newInput()
	return m, nil
}

func newInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.KeyMap.Paste.SetEnabled(false)
	ta.Focus()
	return ta
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(m.contentWidth() - inputBoxStyle.GetHorizontalFrameSize())
		return m, nil
	case tickMsg:
		return m, m.sched.handle(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, m.updateInput(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.session.State() == model.StateFinished {
		if key.Matches(msg, m.keys.TryAgain) {
			m.reset()
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case msg.Paste:
		m.logger.Debug("ignored pasted input", "session", m.session.ID(), "runes", len(msg.Runes))
		return m, nil
	}

	return m, m.updateInput(msg)
}

// updateInput forwards msg to the text field and reports any resulting
// change to the session, whatever kind of message caused it.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.live = m.session.InputChanged(after)
	}
	return tea.Batch(cmd, m.sched.flush())
}

func (m *Model) submit() {
	if _, ok := m.session.Submit(); !ok {
		return
	}
	m.input.Blur()
}

func (m *Model) reset() {
	if _, err := m.session.Reset(); err != nil {
		m.logger.Error("reset failed", "error", err)
		m.err = err
	} else {
		m.err = nil
	}
	m.live = model.LiveMetrics{}
	m.input.Reset()
	m.input.Focus()
}

func (m *Model) setLive(live model.LiveMetrics) {
	m.live = live
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	reference := lipgloss.NewStyle().Width(width).Render(m.renderReference(width))

	sections := []string{
		titleStyle.Render("typespeed"),
		"",
		reference,
		"",
		inputBoxStyle.Render(m.input.View()),
		m.renderMetrics(),
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	}
	if results, ok := m.session.LastResults(); ok {
		sections = append(sections, "", m.renderDialog(results))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) contentWidth() int {
	width := int(float64(m.width) * 0.70)
	if width < minContentWidth {
		width = minContentWidth
	}
	return width
}

func (m *Model) renderReference(width int) string {
	styled := buildStyledRunes([]rune(m.session.Reference()), []rune(m.session.Typed()))
	return wrapStyledRunes(styled, width)
}

// renderMetrics mirrors the live display: mistakes stay hidden until the
// session is submitted.
func (m *Model) renderMetrics() string {
	seconds := stats.FormatSeconds(m.live.ElapsedSeconds)
	wpm := fmt.Sprintf("%d", m.live.WPM)
	accuracy := stats.FormatAccuracy(m.live.Accuracy)
	mistakes := stats.PendingMistakes
	if results, ok := m.session.LastResults(); ok {
		seconds = stats.FormatSeconds(results.ElapsedSeconds)
		wpm = fmt.Sprintf("%d", results.WPM)
		accuracy = stats.FormatAccuracy(results.Accuracy)
		mistakes = fmt.Sprintf("%d", results.Mistakes)
	}
	segments := []string{
		metric("Time", seconds+"s"),
		metric("WPM", wpm),
		metric("Accuracy", accuracy),
		metric("Mistakes", mistakes),
	}
	return strings.Join(segments, "  ")
}

func metric(label, value string) string {
	return metricLabelStyle.Render(label+" ") + metricValueStyle.Render(value)
}

func (m *Model) renderDialog(results model.Results) string {
	lines := append([]string{titleStyle.Render("Results"), ""}, stats.ResultLines(results)...)
	lines = append(lines, "", m.help.ShortHelpView(m.keys.dialogHelp()))
	return dialogStyle.Render(strings.Join(lines, "\n"))
}
