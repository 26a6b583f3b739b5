package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/marquee/internal/catalog"
)

const detailWidth = 72

// renderDetail renders the details modal for a title.
func (m Model) renderDetail(item catalog.Title) string {
	styles := m.theme.Styles()
	width := min(detailWidth, max(m.width-4, 20))
	inner := width - 6 // border + padding

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(truncate(item.DisplayName(), inner)))
	b.WriteString("\n")
	b.WriteString(m.titleMeta(item, styles))
	b.WriteString("\n\n")

	overview := strings.TrimSpace(item.Overview)
	if overview == "" {
		b.WriteString(styles.FaintText.Render("No synopsis available."))
	} else {
		maxLines := max(m.height-16, 3)
		b.WriteString(styles.Text.Render(strings.Join(wrapLines(overview, inner, maxLines), "\n")))
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(styles.MutedText.Render(padRight(label, 11)))
		b.WriteString(styles.Text.Render(truncateMiddle(value, inner-11)))
		b.WriteString("\n")
	}
	if released := item.Released(); !released.IsZero() {
		row("Released", released.Format("Jan 2, 2006"))
	}
	if item.VoteCount > 0 {
		row("Votes", fmt.Sprintf("%.1f from %s", item.VoteAverage, humanize.Comma(int64(item.VoteCount))))
	}
	if item.Popularity > 0 {
		row("Popularity", humanize.FormatFloat("#,###.#", item.Popularity))
	}
	row("Watch", item.WatchPath())
	if m.images != nil {
		row("Backdrop", m.images.ImageURL(item.BackdropPath, "original"))
		row("Poster", m.images.ImageURL(item.PosterPath, "w500"))
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width - 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
