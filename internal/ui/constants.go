package ui

// Sizes shared by the player view and its components.
const (
	// MinProgressBarWidth is the narrowest seek bar still worth drawing.
	MinProgressBarWidth = 5

	// CoverCols and CoverRows size the cover art thumbnail in cells.
	CoverCols = 24
	CoverRows = 12

	// MinCoverWidth is the terminal width below which the cover is hidden.
	MinCoverWidth = 72
)
