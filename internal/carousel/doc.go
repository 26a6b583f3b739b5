// Package carousel implements the auto-advancing banner scheduler.
//
// # Overview
//
// A Scheduler cycles through the first few items of a list supplied by a
// data collaborator (the trending poller) and exposes the current item to a
// renderer. It advances on a fixed period, and any user navigation
// (Next, Previous, GoTo) suspends auto-advance for a cool-down that is
// always longer than the advance period.
//
// # State Machine
//
//	            Update(non-empty)            Next/Previous/GoTo
//	┌───────┐ ─────────────────> ┌────────┐ ───────────────────> ┌────────┐
//	│ Empty │                    │ Active │                      │ Paused │
//	└───────┘ <───────────────── └────────┘ <─────────────────── └────────┘
//	            Update(empty)       ↺ advance    pause expired
//
// The scheduler owns exactly two timer slots:
//
//   - advance: live only while unpaused, open and holding a non-empty
//     window. Re-armed after every tick.
//   - resume: the pause-expiry timer. Each navigation cancels the pending
//     one before arming a replacement.
//
// # Stale Timers
//
// Every slot carries a generation counter. A timer callback that fires
// after its slot was re-armed or stopped sees a different generation and
// does nothing. This is what lets a navigation win over an advance tick
// that was already in flight, and what keeps an old pause-expiry from
// resuming auto-advance early.
//
// # Clamp Policy
//
// When Update shrinks the window below the current index, the index is
// clamped to the last valid position. GoTo clamps out-of-range requests
// and logs a warning instead of panicking.
//
// # Clocks
//
// Timers are created through the Clock interface. SystemClock uses
// time.AfterFunc, whose callbacks run on their own goroutines; the
// scheduler's mutex makes that safe. The TUI supplies a clock that
// delivers callbacks as Bubble Tea messages so they run on the program's
// event loop alongside key handling.
package carousel
