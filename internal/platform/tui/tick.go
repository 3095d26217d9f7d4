// Package tui provides the Bubble Tea front-end for pong.
// It drives the frame loop from tick messages, maps the mouse and keyboard
// onto the player paddle, and shows the results panel between matches.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameScheduler hands frames requested by the loop driver to the Bubble
// Tea runtime. At most one tick message is in flight at a time.
type frameScheduler struct {
	next     func()
	inFlight bool
}

// RequestFrame stores fn to run on the next tick message.
func (s *frameScheduler) RequestFrame(fn func()) {
	s.next = fn
}

// cmd returns a tick command if a frame is waiting and none is in flight.
func (s *frameScheduler) cmd(tickRate int) tea.Cmd {
	if s.next == nil || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tickCmd(tickRate)
}

// fire runs the waiting frame. Called when a tick message arrives.
func (s *frameScheduler) fire() {
	s.inFlight = false
	fn := s.next
	s.next = nil
	if fn != nil {
		fn()
	}
}
