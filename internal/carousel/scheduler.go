package carousel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultWindow is how many leading items the banner cycles through.
	DefaultWindow = 6

	// DefaultAdvanceEvery is the auto-advance period.
	DefaultAdvanceEvery = 5 * time.Second

	// DefaultPauseFor is the cool-down after a user navigation before
	// auto-advance resumes. It must exceed the advance period.
	DefaultPauseFor = 8 * time.Second
)

// ErrPauseTooShort is returned when the pause window does not outlast the
// advance period, which would let an auto-advance land right after a
// manual navigation.
var ErrPauseTooShort = errors.New("pause window must exceed advance period")

// Phase distinguishes a banner with nothing to show from one cycling items.
type Phase int

const (
	Empty Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "empty"
}

// View is the read-only state handed to the renderer.
type View[T any] struct {
	Phase  Phase
	Item   T // zero value when Phase is Empty
	Index  int
	Total  int
	Paused bool
}

// IsEmpty reports whether there is no current item.
func (v View[T]) IsEmpty() bool {
	return v.Phase == Empty
}

// Options configure a Scheduler. Zero values take the package defaults.
type Options[T any] struct {
	Window       int
	AdvanceEvery time.Duration
	PauseFor     time.Duration
	Clock        Clock
	Logger       *slog.Logger

	// OnChange, when set, receives the new view after every state change.
	// It is called without the scheduler lock held.
	OnChange func(View[T])
}

// Scheduler drives an auto-advancing carousel over the first Window items
// of an externally supplied list. It owns two timer slots: the advance
// timer, live only while unpaused with a non-empty window, and the
// pause-expiry timer, of which at most one is pending.
type Scheduler[T any] struct {
	mu sync.Mutex

	window       int
	advanceEvery time.Duration
	pauseFor     time.Duration
	clock        Clock
	logger       *slog.Logger
	onChange     func(View[T])

	items  []T
	index  int
	paused bool
	closed bool

	advance slot
	resume  slot
}

// New builds a Scheduler with an empty working window. No timer runs until
// the first non-empty Update.
func New[T any](opts Options[T]) (*Scheduler[T], error) {
	s := &Scheduler[T]{
		window:       opts.Window,
		advanceEvery: opts.AdvanceEvery,
		pauseFor:     opts.PauseFor,
		clock:        opts.Clock,
		logger:       opts.Logger,
		onChange:     opts.OnChange,
	}
	if s.window <= 0 {
		s.window = DefaultWindow
	}
	if s.advanceEvery <= 0 {
		s.advanceEvery = DefaultAdvanceEvery
	}
	if s.pauseFor <= 0 {
		s.pauseFor = DefaultPauseFor
	}
	if s.pauseFor <= s.advanceEvery {
		return nil, fmt.Errorf("%w: pause %s, advance %s", ErrPauseTooShort, s.pauseFor, s.advanceEvery)
	}
	if s.clock == nil {
		s.clock = SystemClock
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s, nil
}

// Update replaces the working window with the first Window entries of
// items. The current index is clamped to the new length so a shrinking
// list never leaves it pointing past the end. A running advance timer
// keeps its phase; an empty window stops it.
func (s *Scheduler[T]) Update(items []T) {
	s.mutate(func() bool {
		n := min(len(items), s.window)
		s.items = append(s.items[:0:0], items[:n]...)

		if s.index >= n {
			clamped := max(n-1, 0)
			if n > 0 {
				s.logger.Debug("clamped banner index after list shrink",
					"from", s.index, "to", clamped, "total", n)
			}
			s.index = clamped
		}

		if n == 0 {
			s.advance.stop()
		} else {
			s.armAdvanceLocked()
		}
		return true
	})
}

// Advance moves to the following item, wrapping past the end. It never
// pauses; the auto-advance timer calls it on every tick.
func (s *Scheduler[T]) Advance() {
	s.mutate(func() bool {
		return s.stepLocked(1)
	})
}

// Next moves forward one item and starts the pause window.
func (s *Scheduler[T]) Next() {
	s.mutate(func() bool {
		if !s.stepLocked(1) {
			return false
		}
		s.pauseLocked()
		return true
	})
}

// Previous moves back one item, wrapping to the last, and starts the pause
// window.
func (s *Scheduler[T]) Previous() {
	s.mutate(func() bool {
		if !s.stepLocked(-1) {
			return false
		}
		s.pauseLocked()
		return true
	})
}

// GoTo jumps straight to index i and starts the pause window. Indices
// outside the window are clamped to the nearest valid one.
func (s *Scheduler[T]) GoTo(i int) {
	s.mutate(func() bool {
		n := len(s.items)
		if s.closed || n == 0 {
			return false
		}
		target := min(max(i, 0), n-1)
		if target != i {
			s.logger.Warn("banner index out of range, clamping",
				"requested", i, "clamped", target, "total", n)
		}
		s.index = target
		s.pauseLocked()
		return true
	})
}

// Close cancels both timers. Any timer callback still in flight becomes a
// no-op, as does every later call. Close is idempotent.
func (s *Scheduler[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.advance.stop()
	s.resume.stop()
}

// View returns the current state.
func (s *Scheduler[T]) View() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Window returns a copy of the items currently being cycled.
func (s *Scheduler[T]) Window() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.items...)
}

// mutate runs fn under the lock and, if it reports a change, hands the
// resulting view to the OnChange hook once the lock is released.
func (s *Scheduler[T]) mutate(fn func() bool) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	changed := fn()
	view := s.viewLocked()
	hook := s.onChange
	s.mu.Unlock()

	if changed && hook != nil {
		hook(view)
	}
}

func (s *Scheduler[T]) viewLocked() View[T] {
	v := View[T]{Total: len(s.items), Paused: s.paused}
	if len(s.items) == 0 {
		return v
	}
	v.Phase = Active
	v.Index = s.index
	v.Item = s.items[s.index]
	return v
}

func (s *Scheduler[T]) stepLocked(delta int) bool {
	n := len(s.items)
	if n == 0 {
		return false
	}
	s.index = ((s.index+delta)%n + n) % n
	return true
}

// pauseLocked suspends auto-advance and restarts the cool-down. The previous
// pause-expiry timer is cancelled before the new one is armed, so an older
// expiry can never clear the flag early.
func (s *Scheduler[T]) pauseLocked() {
	s.paused = true
	s.advance.stop()
	s.resume.arm(s.clock, s.pauseFor, s.onResume)
}

func (s *Scheduler[T]) armAdvanceLocked() {
	if s.closed || s.paused || len(s.items) == 0 || s.advance.live() {
		return
	}
	s.advance.arm(s.clock, s.advanceEvery, s.onAdvance)
}

func (s *Scheduler[T]) onAdvance(gen uint64) {
	s.mutate(func() bool {
		if !s.advance.claim(gen) {
			return false
		}
		changed := s.stepLocked(1)
		s.armAdvanceLocked()
		return changed
	})
}

func (s *Scheduler[T]) onResume(gen uint64) {
	s.mutate(func() bool {
		if !s.resume.claim(gen) {
			return false
		}
		s.paused = false
		s.armAdvanceLocked()
		return true
	})
}
