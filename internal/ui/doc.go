// Package ui provides the terminal user interface for marquee.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds all view state and is
// updated only on the program's event loop. Data arrives by polling
// state.Store on a tick; the pollers in package app keep the store fresh.
//
// The promotional banner is a carousel.Scheduler. Its timers are created
// through loopClock, which turns each timer callback into a timerFiredMsg
// so banner state changes run inside Update, serialized with key handling.
//
// # Views
//
//   - Home: the auto-advancing banner and the top-ten row
//   - Notifications: the feed, newest first, with unread markers
//   - Legal: the scrollable legal notice
//
// The details modal and the help overlay draw over any view.
//
// # Key Bindings
//
//   - ←/h →/l: Previous / next slide (pauses auto-advance)
//   - 1-9: Jump to a slide
//   - enter/i: Details for the current slide
//   - f: Cycle the top-ten filter
//   - n, L, esc: Notifications, legal, home
//   - a: Mark all notifications read
//   - T: Cycle theme
//   - r: Refresh now
//   - ?: Help
//   - q or Ctrl+C: Exit
//
// Theme and filter choices are written to prefs.toml as they change.
package ui
