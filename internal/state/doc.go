// Package state provides thread-safe state management for the marquee application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// trending list and notifications between the background pollers and the
// UI. It acts as the coordination point where polling updates meet UI
// rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producers (Pollers):                 Consumer (UI):
//	┌──────────────────────────┐        ┌──────────────────┐
//	│ FetchTrending()          │        │                  │
//	│   → UpdateTrending()     │───────→│ store.Snapshot() │
//	│ FetchNotifications()     │ (mutex)│      ↓           │
//	│   → UpdateNotifications()│        │  render UI       │
//	└──────────────────────────┘        └──────────────────┘
//
// The Store mediates between these independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest catalog data
//   - Uses sync.RWMutex for concurrent access
//   - One writer per feed (pollers), multiple readers (UI refresh loop, CLI)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains both lists plus a FeedStatus per feed
//   - Returned by value with defensive copies
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - UpdateTrending/UpdateNotifications: write lock (exclusive access)
//   - Snapshot(): read lock (concurrent reads allowed)
//
// The lock is held only during copy operations, never during network I/O
// or rendering.
//
// # Update Semantics
//
// Each feed follows the same rule:
//
//	// Success: replace the list, clear the error
//	store.UpdateTrending(items, nil)
//	→ Trending = items
//	→ TrendingFeed.Loaded = true
//	→ TrendingFeed.LastError = nil
//	→ TrendingFeed.ConsecutiveFailures = 0
//
//	// Failure: keep the old list, record the error
//	store.UpdateTrending(nil, err)
//	→ Trending = <unchanged>
//	→ TrendingFeed.LastError = err
//	→ TrendingFeed.ConsecutiveFailures++
//
// The UI therefore keeps showing the last good banner while the header
// reports the failure. IsOffline() turns true after two consecutive
// trending failures; notification failures never mark the app offline.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// For tests:
//   - No initialization required
//   - Thread-safe from first use
//   - Snapshot() returns zero Snapshot if never updated
//   - FeedStatus.Loaded distinguishes "empty list" from "never fetched"
//   - Updates are atomic and immediately visible
//
// # Design Rationale
//
// Channels or pub/sub would let the UI react to each poll, but the UI
// already refreshes on its own tick and the data changes hourly. A mutex
// and full snapshot replacement keep this package trivial.
package state
