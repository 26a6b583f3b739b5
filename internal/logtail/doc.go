// Package logtail reads, filters and colorizes the marquee log file.
//
// # Overview
//
// marquee writes slog output to <data_dir>/marquee.log because the TUI owns
// the terminal. The `marquee logs` command uses this package to print the
// tail of that file.
//
// # Reading Log Files
//
// Read keeps the last maxLines in a ring buffer, so memory stays
// O(maxLines) however large the file grows:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// A non-positive maxLines reads the whole file. Missing files return nil,
// nil.
//
// # Levels and Filtering
//
// Level understands both handler formats the logging package can emit:
//
//	time=2026-01-02T10:00:00Z level=WARN msg="banner index out of range"
//	{"time":"2026-01-02T10:00:00Z","level":"WARN","msg":"..."}
//
// Filter drops lines below a minimum level. Lines without a level belong
// to the entry above them.
//
// # Colorization
//
// ColorizeLine renders a whole line in its level's lipgloss color. When
// stdout is not a terminal lipgloss strips the styling, so piped output
// stays plain.
package logtail
