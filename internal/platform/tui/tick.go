// Package tui hosts the game in a terminal through Bubble Tea.
// It provides the drawing surface, the frame scheduler and the name entry UI,
// locally or per SSH session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg delivers a requested frame. Gen identifies the request it answers.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// frameScheduler implements game.Scheduler on top of tea.Tick.
// It keeps one pending callback; a newer request or cancel makes older
// TickMsgs stale so they never run a callback twice or out of round.
type frameScheduler struct {
	interval time.Duration
	gen      uint64
	pending  func()
	cmd      tea.Cmd
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	return &frameScheduler{interval: interval}
}

// RequestFrame schedules fn for the next frame.
func (s *frameScheduler) RequestFrame(fn func()) {
	s.gen++
	gen := s.gen
	s.pending = fn
	s.cmd = tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// take returns the command for the latest request, once.
func (s *frameScheduler) take() tea.Cmd {
	cmd := s.cmd
	s.cmd = nil
	return cmd
}

// fire runs the pending callback if msg answers the latest request.
func (s *frameScheduler) fire(msg TickMsg) bool {
	if msg.Gen != s.gen || s.pending == nil {
		return false
	}
	fn := s.pending
	s.pending = nil
	fn()
	return true
}

// cancel drops the pending callback and invalidates in-flight ticks.
func (s *frameScheduler) cancel() {
	s.gen++
	s.pending = nil
	s.cmd = nil
}
