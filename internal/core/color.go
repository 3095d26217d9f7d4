package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI codes by the platform renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorCyan
	ColorYellow
	ColorRed
	ColorGreen
)
