package core

// Color is a foreground color for a screen cell, mapped to ANSI colors by
// the terminal layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGray
)
