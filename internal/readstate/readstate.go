package readstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/five82/marquee/internal/catalog"
)

// Tracker records which notifications the user has seen.
type Tracker interface {
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, ids []string) error
	ReadSet(ctx context.Context) (map[string]bool, error)
	Close() error
}

var (
	_ Tracker = (*Store)(nil)
	_ Tracker = (*Memory)(nil)
)

// ErrLocked means another marquee process holds the database.
var ErrLocked = errors.New("read-state database is in use by another process")

var errEmptyID = errors.New("notification id is empty")

const schema = `
CREATE TABLE IF NOT EXISTS read_notifications (
	id      TEXT PRIMARY KEY,
	read_at INTEGER NOT NULL
)`

// Store persists read marks in SQLite. A sibling .lock file keeps a second
// process from writing to the same database.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	now  func() time.Time
}

// Open creates or opens the database at path. It returns ErrLocked without
// touching the database when another process holds the lock.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock database: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{"PRAGMA busy_timeout = 5000", "PRAGMA journal_mode = WAL", schema} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("prepare database: %w", err)
		}
	}

	return &Store{db: db, lock: lock, now: time.Now}, nil
}

// MarkRead records id as read. Marking an already read id keeps its
// original timestamp.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errEmptyID
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO read_notifications (id, read_at) VALUES (?, ?)`,
		id, s.now().Unix()); err != nil {
		return fmt.Errorf("mark read %q: %w", id, err)
	}
	return nil
}

// MarkAllRead records every id in one transaction.
func (s *Store) MarkAllRead(ctx context.Context, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin mark all: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO read_notifications (id, read_at) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare mark all: %w", err)
	}
	defer stmt.Close()

	at := s.now().Unix()
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, id, at); err != nil {
			return fmt.Errorf("mark read %q: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mark all: %w", err)
	}
	return nil
}

// ReadSet returns every id marked read.
func (s *Store) ReadSet(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM read_notifications`)
	if err != nil {
		return nil, fmt.Errorf("query read set: %w", err)
	}
	defer rows.Close()

	read := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan read set: %w", err)
		}
		read[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate read set: %w", err)
	}
	return read, nil
}

// Close releases the database and the lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	dbErr := s.db.Close()
	lockErr := s.lock.Unlock()
	if dbErr != nil {
		return fmt.Errorf("close database: %w", dbErr)
	}
	if lockErr != nil {
		return fmt.Errorf("release lock: %w", lockErr)
	}
	return nil
}

// Memory keeps read marks for the life of the process only. It backs the
// UI when the database is locked by another instance.
type Memory struct {
	mu   sync.Mutex
	read map[string]bool
}

// NewMemory returns an empty in-memory tracker.
func NewMemory() *Memory {
	return &Memory{read: make(map[string]bool)}
}

func (m *Memory) MarkRead(_ context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.read[id] = true
	return nil
}

func (m *Memory) MarkAllRead(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			m.read[id] = true
		}
	}
	return nil
}

func (m *Memory) ReadSet(context.Context) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool, len(m.read))
	for id := range m.read {
		out[id] = true
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }

// UnreadCount counts notifications whose id is not in read.
func UnreadCount(items []catalog.Notification, read map[string]bool) int {
	n := 0
	for _, item := range items {
		if !read[item.ID] {
			n++
		}
	}
	return n
}

// IDs collects the ids of items, for MarkAllRead.
func IDs(items []catalog.Notification) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}
