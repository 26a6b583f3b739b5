package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

const (
	// retryBase is the first retry delay after a failed refresh.
	retryBase = 15 * time.Second
	// maxBackoff caps the retry delay regardless of the feed interval.
	maxBackoff = 10 * time.Minute
)

// Feed is one periodically refreshed data source.
type Feed struct {
	Name     string
	Interval time.Duration
	Refresh  func(ctx context.Context) error
}

// Trigger asks a poller to refresh now. It never blocks; requests made
// while one is already pending collapse into it.
type Trigger func()

// StartPoller launches a background goroutine that runs feed.Refresh
// immediately and then every feed.Interval. After a failure the next
// attempt comes sooner, backing off from retryBase. It returns immediately.
func StartPoller(ctx context.Context, feed Feed, logger *slog.Logger) Trigger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "poller", "feed", feed.Name)

	requests := make(chan struct{}, 1)
	go func() {
		failures := 0
		for {
			started := time.Now()
			if err := feed.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				failures++
				logger.Warn("refresh failed", "error", err, "failures", failures)
			} else {
				if failures > 0 {
					logger.Info("refresh recovered", "after_failures", failures)
				}
				failures = 0
				logger.Debug("refresh complete", "took", time.Since(started))
			}

			timer := time.NewTimer(calculateBackoff(failures, feed.Interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			case <-requests:
				timer.Stop()
				logger.Debug("refresh requested")
			}
		}
	}()

	return func() {
		select {
		case requests <- struct{}{}:
		default:
		}
	}
}

// calculateBackoff returns how long to wait before the next refresh. With
// no failures that is the feed interval; otherwise retryBase doubled per
// extra failure, never longer than the interval or maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	wait := retryBase
	for i := 1; i < failures && wait < maxBackoff; i++ {
		wait *= 2
	}
	return min(wait, maxBackoff, interval)
}

// trendingFeed refreshes the trending list into store.
func trendingFeed(client catalog.Fetcher, store *state.Store, every time.Duration) Feed {
	return Feed{
		Name:     "trending",
		Interval: every,
		Refresh: func(ctx context.Context) error {
			items, err := client.FetchTrending(ctx)
			store.UpdateTrending(items, err)
			return err
		},
	}
}

// notificationsFeed refreshes the notifications list into store.
func notificationsFeed(client catalog.Fetcher, store *state.Store, every time.Duration) Feed {
	return Feed{
		Name:     "notifications",
		Interval: every,
		Refresh: func(ctx context.Context) error {
			items, err := client.FetchNotifications(ctx)
			if err == nil {
				items = catalog.SortNewestFirst(items)
			}
			store.UpdateNotifications(items, err)
			return err
		},
	}
}
