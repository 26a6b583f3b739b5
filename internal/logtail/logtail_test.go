package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty line", "", ""},
		{"text info", `time=2026-01-02T10:00:00Z level=INFO msg="poll complete" app=marquee`, "INFO"},
		{"text warn", `time=2026-01-02T10:00:00Z level=WARN msg="banner index out of range"`, "WARN"},
		{"json error", `{"time":"2026-01-02T10:00:00Z","level":"ERROR","msg":"fetch failed"}`, "ERROR"},
		{"json spaced", `{"level" : "debug","msg":"x"}`, "DEBUG"},
		{"continuation", "    goroutine 1 [running]:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.input); got != tt.want {
				t.Errorf("Level() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		"level=DEBUG msg=a",
		"level=INFO msg=b",
		"level=WARN msg=c",
		"  detail for c",
		"level=INFO msg=d",
		"  detail for d",
		"level=ERROR msg=e",
	}

	tests := []struct {
		name string
		min  string
		want []string
	}{
		{"empty keeps all", "", lines},
		{"debug keeps all", "debug", lines},
		{"unknown keeps all", "loud", lines},
		{"info", "info", lines[1:]},
		{"warn", "WARN", []string{"level=WARN msg=c", "  detail for c", "level=ERROR msg=e"}},
		{"error", "error", []string{"level=ERROR msg=e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(lines, tt.min)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorizeLines_KeepsText(t *testing.T) {
	input := []string{
		"level=INFO msg=started",
		"plain continuation",
		`{"level":"ERROR","msg":"fetch failed"}`,
	}

	result := ColorizeLines(input)
	if len(result) != len(input) {
		t.Fatalf("ColorizeLines() returned %d lines, want %d", len(result), len(input))
	}
	for i, line := range result {
		if !strings.Contains(line, strings.TrimSpace(input[i])) {
			t.Errorf("ColorizeLines()[%d] = %q, want it to contain %q", i, line, input[i])
		}
	}
	if result[1] != input[1] {
		t.Errorf("line without level changed: %q", result[1])
	}
}
