// Package catalog is the HTTP client for the media catalog API.
//
// It fetches the weekly trending list (TMDB-compatible
// /trending/all/week endpoint) and an optional notifications feed, and
// defines the Title and Notification types the rest of marquee works with.
// Every request carries a User-Agent and a fresh X-Request-ID so server
// logs can be correlated with marquee's own log.
package catalog
