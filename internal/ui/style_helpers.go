package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle paints text onto a fixed background color. Rendering segments
// separately with lipgloss leaves unpainted gaps at every reset, so every
// space and separator on a bar or box line goes through one BgStyle.
type BgStyle struct {
	bg    lipgloss.Color
	fill  lipgloss.Style
	space string
}

// NewBgStyle returns a painter for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	fill := lipgloss.NewStyle().Background(bg)
	return BgStyle{bg: bg, fill: fill, space: fill.Render(" ")}
}

// Render draws text in style over the background, spaces included.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	painted := style.Background(b.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = painted.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space is one painted space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return b.fill.Render(strings.Repeat(" ", n))
}

// Text paints unstyled text such as separators.
func (b BgStyle) Text(s string) string {
	return b.fill.Render(s)
}

// Join places gap painted spaces between rendered parts.
func (b BgStyle) Join(parts []string, gap int) string {
	return strings.Join(parts, b.Spaces(gap))
}

// Fill pads rendered content out to width.
func (b BgStyle) Fill(content string, width int) string {
	return b.fill.Width(width).Render(content)
}

// Color returns the background color.
func (b BgStyle) Color() lipgloss.Color {
	return b.bg
}
