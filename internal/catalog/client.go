package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher is implemented by *Client and by test doubles.
type Fetcher interface {
	FetchTrending(ctx context.Context) ([]Title, error)
	FetchNotifications(ctx context.Context) ([]Notification, error)
}

var _ Fetcher = (*Client)(nil)

// ErrNotificationsDisabled is returned when no notifications feed is configured.
var ErrNotificationsDisabled = errors.New("notifications feed not configured")

const (
	defaultAPIBase   = "https://api.themoviedb.org/3"
	defaultImageBase = "https://image.tmdb.org/t/p"
	defaultUserAgent = "marquee/0.1"
	placeholderImage = "/placeholder.jpg"
	requestTimeout   = 10 * time.Second
)

// Options configure a Client.
type Options struct {
	APIBase          string
	APIKey           string
	ImageBase        string
	NotificationsURL string
	UserAgent        string
	HTTPClient       *http.Client
}

// Client talks to the catalog HTTP API.
type Client struct {
	baseURL       *url.URL
	imageBase     string
	notifications *url.URL
	apiKey        string
	http          *http.Client
	userAgent     string
}

// NewClient validates the configured endpoints and builds a Client.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.APIBase, defaultAPIBase)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		imageBase: strings.TrimRight(strings.TrimSpace(opts.ImageBase), "/"),
		apiKey:    strings.TrimSpace(opts.APIKey),
		http:      opts.HTTPClient,
		userAgent: strings.TrimSpace(opts.UserAgent),
	}
	if c.imageBase == "" {
		c.imageBase = defaultImageBase
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: requestTimeout}
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if raw := strings.TrimSpace(opts.NotificationsURL); raw != "" {
		feed, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse notifications_url %q: %w", raw, err)
		}
		if feed.Scheme == "" || feed.Host == "" {
			return nil, fmt.Errorf("parse notifications_url %q: missing scheme or host", raw)
		}
		c.notifications = feed
	}
	return c, nil
}

// NotificationsEnabled reports whether a notifications feed is configured.
func (c *Client) NotificationsEnabled() bool {
	return c != nil && c.notifications != nil
}

// FetchTrending retrieves this week's trending movies and shows.
func (c *Client) FetchTrending(ctx context.Context) ([]Title, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	u := *c.baseURL
	u.Path += "/trending/all/week"
	if c.apiKey != "" {
		q := u.Query()
		q.Set("api_key", c.apiKey)
		u.RawQuery = q.Encode()
	}
	var payload trendingResponse
	if err := c.doURL(ctx, http.MethodGet, &u, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchNotifications retrieves the notifications feed.
func (c *Client) FetchNotifications(ctx context.Context) ([]Notification, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if c.notifications == nil {
		return nil, ErrNotificationsDisabled
	}
	var payload notificationFeed
	if err := c.doURL(ctx, http.MethodGet, c.notifications, &payload); err != nil {
		return nil, err
	}
	return []Notification(payload), nil
}

// ImageURL builds an image link for a backdrop or poster path at the given
// size ("original", "w780", ...). Missing paths use the placeholder.
func (c *Client) ImageURL(path, size string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = placeholderImage
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	size = strings.TrimSpace(size)
	if size == "" {
		size = "original"
	}
	base := defaultImageBase
	if c != nil && c.imageBase != "" {
		base = c.imageBase
	}
	return base + "/" + size + path
}

func (c *Client) doURL(ctx context.Context, method string, u *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Only the path is reported so the api_key never lands in logs.
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", u.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
