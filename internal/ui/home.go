package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/carousel"
	"github.com/five82/marquee/internal/catalog"
)

// heroHeight is the banner box height in the stacked layout.
const heroHeight = 14

// renderHome renders the banner and the top-ten row.
func (m Model) renderHome() string {
	contentHeight := m.contentHeight()

	if m.width >= LayoutSideBySideWidth {
		heroWidth := m.width * 65 / 100
		rowWidth := m.width - heroWidth
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTitledBox("Featured", m.heroContent(heroWidth-4), heroWidth, contentHeight, true),
			m.renderTitledBox(m.topTenTitle(), m.topTenContent(rowWidth-4), rowWidth, contentHeight, false),
		)
	}

	hero := min(heroHeight, contentHeight)
	rest := contentHeight - hero
	out := m.renderTitledBox("Featured", m.heroContent(m.width-4), m.width, hero, true)
	if rest >= 3 {
		out += "\n" + m.renderTitledBox(m.topTenTitle(), m.topTenContent(m.width-4), m.width, rest, false)
	}
	return out
}

// heroContent renders the current banner slide.
func (m Model) heroContent(width int) string {
	styles := m.theme.Styles()
	v := m.banner.View()

	if v.IsEmpty() {
		return m.emptyHeroMessage(styles)
	}

	item := v.Item
	var lines []string

	lines = append(lines, " "+styles.AccentText.Bold(true).Render(truncate(item.DisplayName(), width-2)))
	lines = append(lines, " "+m.titleMeta(item, styles))
	lines = append(lines, "")

	for _, l := range wrapLines(item.Overview, width-2, OverviewLines) {
		lines = append(lines, " "+styles.Text.Render(l))
	}
	if strings.TrimSpace(item.Overview) == "" {
		lines = append(lines, " "+styles.FaintText.Render("No synopsis available."))
	}
	lines = append(lines, "")

	lines = append(lines, " "+styles.SuccessText.Render("▶ Watch")+"  "+styles.MutedText.Render(item.WatchPath()))
	if m.images != nil {
		lines = append(lines, " "+styles.FaintText.Render(truncateMiddle(m.images.ImageURL(item.BackdropPath, "original"), width-2)))
	}
	lines = append(lines, "")
	lines = append(lines, " "+m.renderDots(v, styles))

	return strings.Join(lines, "\n")
}

func (m Model) emptyHeroMessage(styles Styles) string {
	feed := m.snapshot.TrendingFeed
	switch {
	case feed.LastError != nil && len(m.snapshot.Trending) == 0:
		return " " + styles.DangerText.Render("Trending unavailable: "+classifyConnectionError(feed.LastError)) +
			"\n " + styles.MutedText.Render("Press r to retry.")
	case feed.Loaded:
		return " " + styles.MutedText.Render("Nothing is trending right now.")
	default:
		return " " + styles.MutedText.Render("Loading trending titles...")
	}
}

// renderDots renders the slide indicator with position and pause marker.
func (m Model) renderDots(v carousel.View[catalog.Title], styles Styles) string {
	dots := m.dots
	dots.ActiveDot = styles.AccentText.Render("●")
	dots.InactiveDot = styles.FaintText.Render("○")
	dots.SetTotalPages(v.Total)
	dots.Page = v.Index

	out := dots.View() + "  " + styles.MutedText.Render(fmt.Sprintf("%d/%d", v.Index+1, v.Total))
	if v.Paused {
		out += "  " + styles.WarningText.Render("⏸ paused")
	}
	return out
}

// titleMeta renders "2024 · MOVIE · ★ 7.8".
func (m Model) titleMeta(item catalog.Title, styles Styles) string {
	var parts []string
	if year := item.Year(); year != "" {
		parts = append(parts, styles.MutedText.Render(year))
	}
	parts = append(parts, styles.BadgeStyle(item.MediaKind()).Render(strings.ToUpper(item.MediaKind())))
	if item.VoteAverage > 0 {
		rating := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.KindColors["rating"]))
		parts = append(parts, rating.Render(fmt.Sprintf("★ %.1f", item.VoteAverage)))
	}
	return strings.Join(parts, styles.FaintText.Render(" · "))
}

func (m Model) topTenTitle() string {
	return "Top 10 · " + m.filterLabel()
}

// topTen returns up to TopTenSize trending titles matching the filter.
func (m Model) topTen() []catalog.Title {
	var out []catalog.Title
	for _, item := range m.snapshot.Trending {
		if len(out) == TopTenSize {
			break
		}
		switch m.filterMode {
		case FilterMovies:
			if item.MediaKind() != "movie" {
				continue
			}
		case FilterShows:
			if item.MediaKind() != "tv" {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// topTenContent renders the numbered row, highlighting the banner's title.
func (m Model) topTenContent(width int) string {
	styles := m.theme.Styles()
	items := m.topTen()
	if len(items) == 0 {
		return " " + styles.MutedText.Render("No "+strings.ToLower(m.filterLabel())+" titles trending.")
	}

	current := m.banner.View()
	lines := make([]string, 0, len(items))
	for i, item := range items {
		rank := styles.Logo.Render(fmt.Sprintf("%2d", i+1))
		name := item.DisplayName()
		if year := item.Year(); year != "" {
			name += " (" + year + ")"
		}
		name = padRight(truncate(name, width-10), width-10)

		style := styles.Text
		if !current.IsEmpty() && current.Item.ID == item.ID {
			style = styles.Selected
		}
		lines = append(lines, " "+rank+"  "+style.Render(name)+" "+styles.BadgeStyle(item.MediaKind()).Render(item.MediaKind()))
	}
	return strings.Join(lines, "\n")
}
