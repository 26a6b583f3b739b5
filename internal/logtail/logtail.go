package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns the whole file. A missing file yields no
// lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

var (
	textLevel = regexp.MustCompile(`\blevel=([A-Za-z]+)`)
	jsonLevel = regexp.MustCompile(`"level"\s*:\s*"([A-Za-z]+)"`)
)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// Level extracts the slog level from a text or JSON log line, upper-cased.
// Lines without a level (stack traces, wrapped output) return "".
func Level(line string) string {
	if m := textLevel.FindStringSubmatch(line); m != nil {
		return strings.ToUpper(m[1])
	}
	if m := jsonLevel.FindStringSubmatch(line); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

// Filter keeps lines at or above min. Lines without a level follow the
// verdict of the line before them so continuation output stays attached.
func Filter(lines []string, min string) []string {
	threshold, ok := levelRank[strings.ToUpper(strings.TrimSpace(min))]
	if !ok || threshold == 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	keep := false
	for _, line := range lines {
		if lvl := Level(line); lvl != "" {
			keep = levelRank[lvl] >= threshold
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}

var levelStyles = map[string]lipgloss.Style{
	"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
	"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")),
	"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
}

// ColorizeLine tints a log line by its level. Lines without a level are
// returned unchanged.
func ColorizeLine(line string) string {
	style, ok := levelStyles[Level(line)]
	if !ok {
		return line
	}
	return style.Render(line)
}

// ColorizeLines applies ColorizeLine to each line.
func ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line)
	}
	return out
}
