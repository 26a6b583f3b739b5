package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/marquee/internal/catalog"
)

// FeedStatus records the health of one polled feed.
type FeedStatus struct {
	Loaded              bool // at least one successful poll
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Trending      []catalog.Title
	Notifications []catalog.Notification

	TrendingFeed      FeedStatus
	NotificationsFeed FeedStatus
}

// IsOffline returns true when the trending feed has failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.TrendingFeed.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// UpdateTrending replaces the trending list. When err is non-nil the
// previous list is kept and the error recorded.
func (s *Store) UpdateTrending(items []catalog.Title, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recordFailure(&s.snapshot.TrendingFeed, err) {
		return
	}
	s.snapshot.Trending = cloneSlice(items)
}

// UpdateNotifications replaces the notifications list, with the same error
// semantics as UpdateTrending.
func (s *Store) UpdateNotifications(items []catalog.Notification, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recordFailure(&s.snapshot.NotificationsFeed, err) {
		return
	}
	s.snapshot.Notifications = cloneSlice(items)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Trending = cloneSlice(s.snapshot.Trending)
	snap.Notifications = cloneSlice(s.snapshot.Notifications)
	snap.TrendingFeed.LastError = cloneErr(s.snapshot.TrendingFeed.LastError)
	snap.NotificationsFeed.LastError = cloneErr(s.snapshot.NotificationsFeed.LastError)
	return snap
}

// recordFailure updates feed bookkeeping and reports whether err was set.
func recordFailure(feed *FeedStatus, err error) bool {
	feed.LastUpdated = time.Now()
	if err != nil {
		feed.LastError = err
		feed.ConsecutiveFailures++
		return true
	}
	feed.Loaded = true
	feed.LastError = nil
	feed.ConsecutiveFailures = 0
	return false
}

func cloneErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w", err)
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
