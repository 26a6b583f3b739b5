package legal

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDocument_SectionsHaveContent(t *testing.T) {
	doc := Document()
	if len(doc) == 0 {
		t.Fatal("Document() returned no sections")
	}
	for _, sec := range doc {
		if strings.TrimSpace(sec.Heading) == "" {
			t.Errorf("section without heading: %+v", sec)
		}
		if len(sec.Paragraphs) == 0 && len(sec.Bullets) == 0 {
			t.Errorf("section %q has no body", sec.Heading)
		}
	}
}

func TestRender_WrapsToWidth(t *testing.T) {
	const width = 40
	out := Render(width)

	for _, sec := range Document() {
		if !strings.Contains(out, sec.Heading+"\n") {
			t.Errorf("Render() missing heading %q", sec.Heading)
		}
	}
	for i, line := range strings.Split(out, "\n") {
		if n := utf8.RuneCountInString(line); n > width {
			t.Errorf("line %d is %d runes wide, want <= %d: %q", i, n, width, line)
		}
	}
	if !strings.Contains(out, "  • marquee is a content browser") {
		t.Errorf("Render() should prefix bullets, got:\n%s", out)
	}
	if !strings.Contains(out, "\n    ") {
		t.Errorf("wrapped bullets should use a hanging indent, got:\n%s", out)
	}
}

func TestRender_NoWidthKeepsParagraphsWhole(t *testing.T) {
	out := Render(0)
	want := Document()[2].Paragraphs[0]
	if !strings.Contains(out, want+"\n") {
		t.Errorf("Render(0) should keep paragraph on one line: %q", want)
	}
}
