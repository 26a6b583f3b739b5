// Package legal holds the disclaimer text shown by the legal view and by
// `marquee legal`.
package legal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Section is one titled block of the legal page.
type Section struct {
	Heading    string
	Paragraphs []string
	Bullets    []string
}

// Document returns the page sections in display order.
func Document() []Section {
	return []Section{
		{
			Heading: "Disclaimer",
			Paragraphs: []string{
				"marquee does not host any files. All content is provided by third-party services.",
			},
			Bullets: []string{
				"marquee is a content browser that only links to third-party services and providers.",
				"We do not host, upload, or distribute any videos, films, or media files.",
				"All media shown in marquee is hosted by external services that are not affiliated with marquee.",
				"Legal concerns regarding content should be directed to the respective hosts and providers.",
				"marquee is not liable for content provided by third-party video services or their hosting.",
			},
		},
		{
			Heading: "Terms of Use",
			Bullets: []string{
				"By using marquee you acknowledge that we have no control over content displayed through third-party services.",
				"You are solely responsible for ensuring your use of third-party services complies with applicable laws and regulations.",
				"marquee may modify, suspend, or discontinue any part of the service at any time without notice.",
			},
		},
		{
			Heading: "Copyright",
			Paragraphs: []string{
				"If you believe your copyrighted work has been linked without authorization, please contact the hosting service directly. marquee does not host or remove content on third-party services.",
				"As a content aggregator, marquee relies on the safe harbor provisions of the Digital Millennium Copyright Act (DMCA) and similar regulations worldwide.",
			},
		},
		{
			Heading: "Limitation of Liability",
			Paragraphs: []string{
				"marquee, its maintainers, and licensors shall not be liable for any direct, indirect, incidental, special, consequential, or exemplary damages resulting from:",
			},
			Bullets: []string{
				"Your use of or inability to use the service",
				"Any content accessed through third-party services",
				"Unauthorized access to or alteration of your data",
				"Statements or conduct of any third party",
				"Redirects or damages caused by advertisements on linked sites",
			},
		},
		{
			Heading: "Advertisements",
			Paragraphs: []string{
				"Linked services may display advertisements from third-party providers. marquee is not responsible for redirects, damages, or actions that result from engaging with them.",
			},
		},
	}
}

// Render lays the document out as plain text wrapped to width columns.
// A non-positive width disables wrapping.
func Render(width int) string {
	var b strings.Builder
	for i, sec := range Document() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sec.Heading)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("─", len([]rune(sec.Heading))))
		b.WriteString("\n")
		for _, p := range sec.Paragraphs {
			b.WriteString(wrap(p, width))
			b.WriteString("\n")
		}
		for _, item := range sec.Bullets {
			b.WriteString(hanging(item, width, "  • ", "    "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}

func hanging(s string, width int, first, rest string) string {
	inner := width - len([]rune(first))
	if width <= 0 || inner < 10 {
		return first + s
	}
	lines := strings.Split(ansi.Wordwrap(s, inner, ""), "\n")
	for i := range lines {
		if i == 0 {
			lines[i] = first + lines[i]
		} else {
			lines[i] = rest + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
