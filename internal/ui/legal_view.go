package ui

import (
	"fmt"

	"github.com/five82/marquee/internal/legal"
)

// updateLegalViewport sizes the legal viewport to the content area and
// rewraps the document for the new width.
func (m *Model) updateLegalViewport() {
	m.legalViewport.Width = max(m.width-2, 1)
	m.legalViewport.Height = max(m.contentHeight()-2, 1)
	m.legalViewport.SetContent(legal.Render(max(m.width-4, 20)))
}

// renderLegal renders the scrollable legal notice.
func (m Model) renderLegal() string {
	title := "Legal"
	if pct := m.legalViewport.ScrollPercent(); !m.legalViewport.AtTop() {
		title = fmt.Sprintf("Legal · %3.0f%%", pct*100)
	}
	return m.renderTitledBox(title, m.legalViewport.View(), m.width, m.contentHeight(), true)
}
