package ui

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/readstate"
)

// handleNotificationsKey processes keyboard input for the notifications view.
func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.snapshot.Notifications
	count := len(items)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedNote < count-1 {
			m.selectedNote++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedNote > 0 {
			m.selectedNote--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedNote = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedNote = count - 1

	case key.Matches(msg, m.keys.Open):
		note := items[m.selectedNote]
		if title, ok := m.findTitle(note.Data.MovieID); ok {
			m.detail = &title
		}
		if m.read[note.ID] {
			return m, nil
		}
		m.read = withRead(m.read, note.ID)
		return m, markReadCmd(m.ctx, m.reads, note.ID)

	case key.Matches(msg, m.keys.ReadAll):
		if readstate.UnreadCount(items, m.read) == 0 {
			return m, nil
		}
		ids := readstate.IDs(items)
		m.read = withRead(m.read, ids...)
		return m, markReadCmd(m.ctx, m.reads, ids...)
	}

	return m, nil
}

// withRead returns a copy of read with ids added. Model values are copied
// by Bubble Tea, so the map is never mutated in place.
func withRead(read map[string]bool, ids ...string) map[string]bool {
	out := make(map[string]bool, len(read)+len(ids))
	maps.Copy(out, read)
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// findTitle looks a notification's linked title up in the trending list.
func (m Model) findTitle(id int64) (catalog.Title, bool) {
	if id <= 0 {
		return catalog.Title{}, false
	}
	for _, item := range m.snapshot.Trending {
		if item.ID == id {
			return item, true
		}
	}
	return catalog.Title{}, false
}

// renderNotifications renders the notification list, newest first.
func (m Model) renderNotifications() string {
	styles := m.theme.Styles()
	feed := m.snapshot.NotificationsFeed
	items := m.snapshot.Notifications
	unread := readstate.UnreadCount(items, m.read)
	title := fmt.Sprintf("Notifications · %d unread", unread)

	var body string
	switch {
	case !feed.Loaded && feed.LastError != nil:
		body = " " + styles.DangerText.Render("Notifications unavailable: "+truncate(feed.LastError.Error(), m.width-40))
	case !feed.Loaded:
		body = " " + styles.MutedText.Render("No notifications feed configured or not yet loaded.")
	case len(items) == 0:
		body = " " + styles.MutedText.Render("You're all caught up.")
	default:
		body = m.notificationLines(items, m.width-4, time.Now())
	}

	return m.renderTitledBox(title, body, m.width, m.contentHeight(), true)
}

func (m Model) notificationLines(items []catalog.Notification, width int, now time.Time) string {
	styles := m.theme.Styles()
	boxRows := max(m.contentHeight()-2, 1)
	perItem := 3

	// Keep the selection visible.
	visible := max(boxRows/perItem, 1)
	start := 0
	if m.selectedNote >= visible {
		start = m.selectedNote - visible + 1
	}
	end := min(start+visible, len(items))

	var lines []string
	for i := start; i < end; i++ {
		n := items[i]
		unread := !m.read[n.ID]

		marker := "  "
		if unread {
			marker = styles.AccentText.Render("● ")
		}
		when := ""
		if t := n.Time(); !t.IsZero() {
			when = humanize.RelTime(t, now, "ago", "from now")
		}

		heading := n.Icon() + " " + truncate(n.Title, width-len(when)-12)
		headStyle := styles.MutedText
		if unread {
			headStyle = styles.Text.Bold(true)
		}
		if i == m.selectedNote {
			headStyle = styles.Selected.Bold(unread)
		}

		lines = append(lines,
			marker+headStyle.Render(heading)+"  "+styles.FaintText.Render(when),
			"    "+styles.MutedText.Render(truncate(n.Message, width-6)),
		)

		detail := styles.BadgeStyle(n.Type).Render(titleCase(n.Type))
		if path := n.WatchPath(); path != "" {
			detail += " " + styles.FaintText.Render(path)
		}
		lines = append(lines, "    "+detail)
	}

	return strings.Join(lines, "\n")
}
