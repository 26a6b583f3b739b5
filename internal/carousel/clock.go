package carousel

import "time"

// Timer is a pending one-shot wake-up that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock creates the timers a Scheduler owns. Tests and the TUI supply their
// own implementations; SystemClock is the plain time.AfterFunc version.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock runs callbacks on their own goroutines via time.AfterFunc.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// slot holds at most one live timer. Every arm or stop bumps the
// generation, so a callback that was already in flight when its timer was
// replaced or cancelled can recognise itself as stale.
type slot struct {
	timer Timer
	gen   uint64
}

func (s *slot) arm(clock Clock, d time.Duration, fire func(gen uint64)) {
	s.stop()
	gen := s.gen
	s.timer = clock.AfterFunc(d, func() { fire(gen) })
}

func (s *slot) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *slot) live() bool {
	return s.timer != nil
}

// claim reports whether a firing with the given generation is the current
// one and, if so, marks the slot empty.
func (s *slot) claim(gen uint64) bool {
	if s.timer == nil || s.gen != gen {
		return false
	}
	s.timer = nil
	s.gen++
	return true
}
