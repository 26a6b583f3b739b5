// Package app provides the orchestration layer for marquee.
//
// # Overview
//
// This package wires together configuration, logging, the catalog client,
// read-state persistence, polling and the UI. It serves as the composition
// root where all dependencies are initialized and connected. The CLI
// subcommands reuse Bootstrap so they see the same configuration and
// database as the TUI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/marquee/config.toml
//	       ├─────> logging.Open()       Append to <data_dir>/marquee.log
//	       ├─────> catalog.NewClient()  HTTP client for the catalog API
//	       ├─────> readstate.Open()     SQLite read marks (memory if locked)
//	       ├─────> StartPollers()       Trending + notifications feeds
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Background Poller Loop (one per feed):
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> feed.Refresh()                     │
//	│  │    └─> store.UpdateTrending() etc.   │
//	│  └─> wait interval, backoff or trigger  │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// Each feed refreshes once at startup and then on its own interval
// (trending hourly, notifications every five minutes by default). After a
// failure the next attempt is scheduled from a 15 second retry base,
// doubling per consecutive failure and never exceeding the feed interval
// or ten minutes. The UI's refresh key fires the returned trigger, which
// short-circuits the wait.
//
// # Error Handling
//
// Fatal errors (returned from Bootstrap/Run):
//   - Configuration file invalid
//   - Log file or data directory cannot be created
//   - Catalog client misconfigured (bad notifications_url)
//   - Read-state database unusable for reasons other than locking
//
// Recoverable errors (logged, polling continues):
//   - Fetch failures, timeouts, bad status codes
//   - Database held by another marquee process
package app
