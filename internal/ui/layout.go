package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutSideBySideWidth is the minimum width to place the top-ten row
	// beside the hero instead of below it.
	LayoutSideBySideWidth = 140
)

// Content limits.
const (
	// TopTenSize is how many trending titles the numbered row shows.
	TopTenSize = 10

	// OverviewLines caps the hero synopsis.
	OverviewLines = 4
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the store.
	DefaultUIInterval = time.Second

	// ReadStateTimeout bounds read-state database calls made from the UI.
	ReadStateTimeout = 2 * time.Second
)
