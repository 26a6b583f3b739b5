package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/carousel"
)

// timerFiredMsg carries a banner timer callback onto the event loop.
type timerFiredMsg struct {
	fire func()
}

// loopClock is a carousel.Clock whose callbacks run inside Update instead
// of on timer goroutines. Until a program is attached, callbacks run
// directly.
type loopClock struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ carousel.Clock = (*loopClock)(nil)

func (c *loopClock) AfterFunc(d time.Duration, f func()) carousel.Timer {
	return time.AfterFunc(d, func() { c.deliver(f) })
}

// attach routes later callbacks through send, normally tea.Program.Send.
func (c *loopClock) attach(send func(tea.Msg)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.send = send
}

func (c *loopClock) deliver(f func()) {
	c.mu.Lock()
	send := c.send
	c.mu.Unlock()

	if send == nil {
		f()
		return
	}
	send(timerFiredMsg{fire: f})
}
