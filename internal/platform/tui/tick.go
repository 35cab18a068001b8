// Package tui provides the Bubble Tea integration for the shooter.
// It hosts the frame driver, maps keys to actions, and draws the
// canvas with a score header and game-over banner.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to run a scheduled frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameScheduler holds at most one pending frame until the next tick.
// It satisfies loop.Scheduler.
type frameScheduler struct {
	next func()
}

// Schedule sets the frame to run on the next tick.
func (s *frameScheduler) Schedule(frame func()) {
	s.next = frame
}

// take removes and returns the pending frame, or nil.
func (s *frameScheduler) take() func() {
	f := s.next
	s.next = nil
	return f
}

func (s *frameScheduler) pending() bool {
	return s.next != nil
}
