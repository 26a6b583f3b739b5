package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/five82/marquee/internal/readstate"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.TrendingFeed.Loaded {
		return m.renderConnectingHeader(styles, bg)
	}

	return styles.Header.Width(m.width).Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the state before the first successful fetch.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	if err := m.snapshot.TrendingFeed.LastError; err != nil {
		parts := []string{
			bg.Render("marquee", styles.Logo),
			bg.Render("CATALOG "+classifyConnectionError(err), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		}
		if last := m.snapshot.TrendingFeed.LastUpdated; !last.IsZero() {
			parts = append(parts, bg.Render(last.Format("15:04:05"), styles.MutedText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, 2))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("marquee", styles.Logo) + bg.Spaces(2) +
			bg.Render("Fetching trending titles...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	snap := m.snapshot

	var parts []string

	// Logo
	parts = append(parts, bg.Render("marquee", styles.Logo))

	// Connection indicator
	if snap.IsOffline() {
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	} else {
		parts = append(parts, bg.Render("● LIVE", styles.SuccessText))
	}

	// Trending count
	parts = append(parts,
		bg.Render("Trending:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(snap.Trending)), styles.Text),
	)

	// Unread badge
	if snap.NotificationsFeed.Loaded {
		unread := readstate.UnreadCount(snap.Notifications, m.read)
		unreadStyle := styles.MutedText
		if unread > 0 {
			unreadStyle = styles.WarningText.Bold(true)
		}
		label := "Unread:"
		if compact {
			label = "🔔"
		}
		parts = append(parts,
			bg.Render(label, styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", unread), unreadStyle),
		)
	}

	// Last successful trending refresh
	if ts := formatTimestamp(snap.TrendingFeed.LastUpdated, time.Now()); ts != "" {
		parts = append(parts, bg.Render(ts, styles.MutedText))
	}

	// Feed errors keep the last good data on screen
	maxErr := 60
	if compact {
		maxErr = 30
	}
	if err := snap.TrendingFeed.LastError; err != nil {
		parts = append(parts,
			bg.Render("TRENDING", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(err.Error(), maxErr), styles.DangerText),
		)
	}
	if err := snap.NotificationsFeed.LastError; err != nil {
		parts = append(parts,
			bg.Render("NOTIFY", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(err.Error(), maxErr), styles.WarningText),
		)
	}

	// Transient error display (prefs, read-state)
	if m.errorMsg != "" {
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(m.errorMsg, styles.WarningText),
		)
	}

	return bg.Join(parts, 2)
}

// formatTimestamp formats an update time with a relative indicator.
func formatTimestamp(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.Sub(t) < time.Minute {
		return t.Format("15:04:05") + " (now)"
	}
	return t.Format("15:04:05") + " (" + humanize.RelTime(t, now, "ago", "from now") + ")"
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	case strings.Contains(msg, "status 401"), strings.Contains(msg, "status 403"):
		return "UNAUTHORIZED"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewNotifications:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Read"},
			{"a", "Read all"},
			{"esc", "Home"},
			{"L", "Legal"},
			{"?", "More"},
		}
	case ViewLegal:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"esc", "Home"},
			{"n", "Notifications"},
			{"?", "More"},
		}
	default: // ViewHome
		commands = []cmd{
			{"←/→", "Slide"},
			{"1-9", "Jump"},
			{"enter", "Details"},
			{"f", m.filterLabel()}, // Shows current filter state
			{"n", "Notifications"},
			{"L", "Legal"},
			{"r", "Refresh"},
			{"?", "More"},
		}
	}

	colon := bg.Text(":")

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, 2))
}
