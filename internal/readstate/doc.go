// Package readstate remembers which notifications have been read.
//
// Store keeps the marks in a SQLite table (modernc.org/sqlite, no cgo)
// under the data directory:
//
//	read_notifications(id TEXT PRIMARY KEY, read_at INTEGER)
//
// Only one process may own the database. Open takes a gofrs/flock lock on
// <db>.lock and returns ErrLocked when another marquee instance already
// holds it; callers then fall back to Memory, which keeps marks until the
// process exits.
package readstate
