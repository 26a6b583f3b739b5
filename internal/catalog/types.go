package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Title is one trending movie or show as returned by the catalog API.
type Title struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	MediaType    string  `json:"media_type"`
	BackdropPath string  `json:"backdrop_path"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
}

// DisplayName returns the movie title, falling back to the show name.
func (t Title) DisplayName() string {
	if name := strings.TrimSpace(t.Title); name != "" {
		return name
	}
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Title #%d", t.ID)
}

// MediaKind returns "movie" or "tv"; untyped entries are treated as movies.
func (t Title) MediaKind() string {
	kind := strings.ToLower(strings.TrimSpace(t.MediaType))
	if kind == "" {
		return "movie"
	}
	return kind
}

// WatchPath is the site route that plays the title.
func (t Title) WatchPath() string {
	return fmt.Sprintf("/%s/%d/watch", t.MediaKind(), t.ID)
}

// Released returns the release or first-air date, zero when unknown.
func (t Title) Released() time.Time {
	for _, value := range []string{t.ReleaseDate, t.FirstAirDate} {
		if parsed, err := time.Parse(dateLayout, strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Year returns the release year as a string, or "" when unknown.
func (t Title) Year() string {
	released := t.Released()
	if released.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d", released.Year())
}

type trendingResponse struct {
	Page       int     `json:"page"`
	Results    []Title `json:"results"`
	TotalPages int     `json:"total_pages"`
}

// Notification is an entry in the notifications feed.
type Notification struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp int64            `json:"timestamp"` // unix milliseconds
	Data      NotificationData `json:"data"`
}

// NotificationData links a notification to a title.
type NotificationData struct {
	MovieID   int64  `json:"movieId"`
	MediaType string `json:"mediaType"`
}

// Time converts the millisecond timestamp.
func (n Notification) Time() time.Time {
	if n.Timestamp <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(n.Timestamp)
}

// Icon returns the glyph shown next to the notification.
func (n Notification) Icon() string {
	switch n.Type {
	case "new_content":
		return "🎬"
	case "watch_progress":
		return "▶"
	case "system":
		return "🔔"
	default:
		return "📌"
	}
}

// WatchPath returns the linked title's route, or "" when there is none.
func (n Notification) WatchPath() string {
	if n.Data.MovieID <= 0 {
		return ""
	}
	kind := strings.TrimSpace(n.Data.MediaType)
	if kind == "" {
		kind = "movie"
	}
	return fmt.Sprintf("/%s/%d/watch", kind, n.Data.MovieID)
}

// SortNewestFirst returns a copy of items ordered by descending timestamp.
func SortNewestFirst(items []Notification) []Notification {
	sorted := make([]Notification, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})
	return sorted
}

// notificationFeed accepts either a bare array or an {"items": [...]} object.
type notificationFeed []Notification

func (f *notificationFeed) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []Notification
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*f = items
		return nil
	}
	var wrapped struct {
		Items []Notification `json:"items"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*f = wrapped.Items
	return nil
}
