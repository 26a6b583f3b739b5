package carousel

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, opts Options[string]) (*Scheduler[string], *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	opts.Clock = clock
	s, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, clock
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}

func TestNew_RejectsPauseNotLongerThanAdvance(t *testing.T) {
	_, err := New(Options[string]{AdvanceEvery: 5 * time.Second, PauseFor: 5 * time.Second})
	require.ErrorIs(t, err, ErrPauseTooShort)

	_, err = New(Options[string]{AdvanceEvery: 10 * time.Second})
	require.ErrorIs(t, err, ErrPauseTooShort, "default pause of 8s is shorter than a 10s advance")
}

func TestNew_Defaults(t *testing.T) {
	s, err := New(Options[string]{})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, DefaultWindow, s.window)
	assert.Equal(t, DefaultAdvanceEvery, s.advanceEvery)
	assert.Equal(t, DefaultPauseFor, s.pauseFor)
	assert.True(t, s.View().IsEmpty())
}

func TestAdvance_CyclesThroughWindowAndWraps(t *testing.T) {
	for length := 1; length <= DefaultWindow; length++ {
		s, _ := newTestScheduler(t, Options[string]{})
		s.Update(letters(length))

		for step := 1; step <= 2*length; step++ {
			s.Advance()
			assert.Equal(t, step%length, s.View().Index, "length %d step %d", length, step)
		}
		assert.Equal(t, 0, s.View().Index, "index returns to start after full cycles")
		assert.False(t, s.View().Paused, "advance must never pause")
	}
}

func TestPrevious_FromFirstWrapsToLast(t *testing.T) {
	s, _ := newTestScheduler(t, Options[string]{})
	s.Update(letters(4))

	s.Previous()
	v := s.View()
	assert.Equal(t, 3, v.Index)
	assert.Equal(t, "D", v.Item)

	s.Next()
	assert.Equal(t, 0, s.View().Index, "next from last wraps to first")
}

func TestScenario_AdvanceThreeTimesThenPrevious(t *testing.T) {
	s, _ := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})
	require.Equal(t, "A", s.View().Item)

	var seen []string
	for range 3 {
		s.Advance()
		seen = append(seen, s.View().Item)
	}
	assert.Equal(t, []string{"B", "C", "A"}, seen)

	s.Previous()
	v := s.View()
	assert.Equal(t, "C", v.Item)
	assert.True(t, v.Paused)
}

func TestAutoAdvance_TicksOncePerPeriod(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})

	clock.Add(DefaultAdvanceEvery - time.Millisecond)
	assert.Equal(t, 0, s.View().Index)

	clock.Add(time.Millisecond)
	assert.Equal(t, 1, s.View().Index)

	clock.Add(DefaultAdvanceEvery)
	assert.Equal(t, 2, s.View().Index)

	clock.Add(DefaultAdvanceEvery)
	assert.Equal(t, 0, s.View().Index)
	assert.Len(t, clock.active(), 1, "exactly one advance timer stays armed")
}

func TestNavigation_PausesForFullCoolDown(t *testing.T) {
	tests := []struct {
		name string
		nav  func(*Scheduler[string])
		want int
	}{
		{"next", (*Scheduler[string]).Next, 1},
		{"previous", (*Scheduler[string]).Previous, 2},
		{"goto", func(s *Scheduler[string]) { s.GoTo(2) }, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newTestScheduler(t, Options[string]{})
			s.Update([]string{"A", "B", "C"})

			tt.nav(s)
			require.True(t, s.View().Paused)
			require.Equal(t, tt.want, s.View().Index)

			clock.Add(DefaultPauseFor - time.Millisecond)
			assert.True(t, s.View().Paused, "still paused just before expiry")
			assert.Equal(t, tt.want, s.View().Index, "no auto advance during pause")

			clock.Add(time.Millisecond)
			assert.False(t, s.View().Paused)
			assert.Equal(t, tt.want, s.View().Index, "resuming does not advance by itself")

			clock.Add(DefaultAdvanceEvery)
			assert.Equal(t, (tt.want+1)%3, s.View().Index, "auto advance resumes a full period after unpausing")
		})
	}
}

func TestPause_RestartsCoolDownAndKeepsSingleExpiry(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update(letters(5))

	s.Next()
	clock.Add(6 * time.Second)
	s.Previous()
	assert.Len(t, clock.active(), 1, "only the new pause-expiry timer is pending")

	// The first expiry would have landed at 8s; the replacement lands at 14s.
	clock.Add(7 * time.Second)
	assert.True(t, s.View().Paused)

	clock.Add(time.Second)
	assert.False(t, s.View().Paused)
}

func TestPause_WinsOverInFlightAdvance(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})
	tick := clock.last()

	s.Next()
	require.Equal(t, 1, s.View().Index)

	// The advance timer had already fired when the navigation came in.
	tick.f()
	assert.Equal(t, 1, s.View().Index, "stale tick must not advance")
	assert.True(t, s.View().Paused)
}

func TestPause_StaleExpiryDoesNotResumeEarly(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})

	s.Next()
	first := clock.last()
	s.Next()

	first.f()
	assert.True(t, s.View().Paused, "replaced expiry must be ignored")
	assert.False(t, s.advance.live())
}

func TestAutoAdvance_NeverFiresWhilePaused(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var inClock bool
	var lastIndex int
	var violations int

	clock := &fakeClock{}
	s, err := New(Options[string]{
		Clock: clock,
		OnChange: func(v View[string]) {
			if inClock && v.Paused && v.Index != lastIndex {
				violations++
			}
			lastIndex = v.Index
		},
	})
	require.NoError(t, err)
	defer s.Close()

	s.Update(letters(6))
	for step := range 500 {
		switch rng.Intn(6) {
		case 0:
			s.Next()
		case 1:
			s.Previous()
		case 2:
			s.GoTo(rng.Intn(6))
		case 3:
			s.Update(letters(rng.Intn(7)))
		default:
			inClock = true
			clock.Add(time.Duration(rng.Intn(4000)) * time.Millisecond)
			inClock = false
		}

		s.mu.Lock()
		shouldRun := !s.paused && len(s.items) > 0
		running := s.advance.live()
		s.mu.Unlock()
		require.Equal(t, shouldRun, running, "advance timer liveness at step %d", step)
	}
	assert.Zero(t, violations)
}

func TestUpdate_EmptyListArmsNoTimer(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})

	s.Update(nil)
	v := s.View()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, "", v.Item)
	assert.Zero(t, v.Total)
	assert.Empty(t, clock.active())

	s.Update([]string{"A", "B"})
	assert.Len(t, clock.active(), 1)

	s.Update([]string{})
	assert.True(t, s.View().IsEmpty())
	assert.Empty(t, clock.active(), "emptying the list tears down the advance timer")

	clock.Add(time.Minute)
	assert.True(t, s.View().IsEmpty())
}

func TestUpdate_ClampsIndexWhenWindowShrinks(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		start     int
		wantIndex int
	}{
		{"six to three from last", 6, 3, 5, 2},
		{"six to three within range", 6, 3, 1, 1},
		{"four to one", 4, 1, 3, 0},
		{"grow keeps index", 2, 6, 1, 1},
		{"shrink to empty", 5, 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScheduler(t, Options[string]{})
			s.Update(letters(tt.from))
			s.GoTo(tt.start)

			s.Update(letters(tt.to))
			v := s.View()
			assert.Equal(t, tt.wantIndex, v.Index)
			if tt.to > 0 {
				assert.Less(t, v.Index, v.Total)
				assert.Equal(t, letters(tt.to)[tt.wantIndex], v.Item)
			}
		})
	}
}

func TestUpdate_LimitsWindowAndCopiesInput(t *testing.T) {
	s, _ := newTestScheduler(t, Options[string]{})
	items := letters(10)
	s.Update(items)

	assert.Equal(t, 6, s.View().Total)
	items[0] = "Z"
	assert.Equal(t, "A", s.View().Item, "scheduler keeps its own snapshot")
	assert.Equal(t, letters(6), s.Window())
}

func TestUpdate_KeepsAdvancePhase(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})

	clock.Add(3 * time.Second)
	s.Update([]string{"A", "B", "C", "D"})
	clock.Add(2 * time.Second)
	assert.Equal(t, 1, s.View().Index, "refresh does not restart the advance period")
}

func TestUpdate_WhilePausedDoesNotArmAdvance(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})
	s.Next()

	s.Update([]string{"A", "B", "C", "D"})
	assert.False(t, s.advance.live())
	assert.Len(t, clock.active(), 1, "only the pause-expiry timer")
}

func TestNavigation_OnEmptyWindowIsNoop(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})

	s.Next()
	s.Previous()
	s.GoTo(3)
	s.Advance()

	v := s.View()
	assert.True(t, v.IsEmpty())
	assert.False(t, v.Paused)
	assert.Empty(t, clock.timers)
}

func TestGoTo_ClampsOutOfRange(t *testing.T) {
	s, _ := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})

	s.GoTo(10)
	assert.Equal(t, 2, s.View().Index)

	s.GoTo(-3)
	assert.Equal(t, 0, s.View().Index)
	assert.True(t, s.View().Paused)
}

func TestClose_CancelsBothTimers(t *testing.T) {
	s, clock := newTestScheduler(t, Options[string]{})
	s.Update([]string{"A", "B", "C"})
	tick := clock.last()
	s.Next()
	expiry := clock.last()

	s.Close()
	assert.Empty(t, clock.active())

	tick.f()
	expiry.f()
	s.Next()
	s.Update(letters(6))

	v := s.View()
	assert.Equal(t, 1, v.Index)
	assert.True(t, v.Paused, "no mutation after close")
	assert.Equal(t, 3, v.Total)

	s.Close()
}

func TestOnChange_ReceivesEveryTransition(t *testing.T) {
	clock := &fakeClock{}
	var views []View[string]
	s, err := New(Options[string]{
		Clock:    clock,
		OnChange: func(v View[string]) { views = append(views, v) },
	})
	require.NoError(t, err)
	defer s.Close()

	s.Update([]string{"A", "B"})
	clock.Add(DefaultAdvanceEvery)
	s.Previous()
	clock.Add(DefaultPauseFor)

	require.Len(t, views, 4)
	assert.Equal(t, Active, views[0].Phase)
	assert.Equal(t, "B", views[1].Item)
	assert.Equal(t, "A", views[2].Item)
	assert.True(t, views[2].Paused)
	assert.False(t, views[3].Paused)
}

func TestSystemClock_AdvancesAndCloses(t *testing.T) {
	var changes atomic.Int32
	s, err := New(Options[string]{
		AdvanceEvery: 10 * time.Millisecond,
		PauseFor:     30 * time.Millisecond,
		OnChange:     func(View[string]) { changes.Add(1) },
	})
	require.NoError(t, err)

	s.Update([]string{"A", "B", "C"})
	require.Eventually(t, func() bool { return s.View().Index != 0 }, time.Second, 5*time.Millisecond)

	s.Close()
	// A callback that released the lock just before Close may still be
	// delivering its hook.
	time.Sleep(20 * time.Millisecond)
	settled := changes.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, changes.Load(), "no callbacks after close")
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "active", Active.String())
}
