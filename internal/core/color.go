package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Map element colors.
const (
	ColorTerrain    = ColorGray
	ColorMountain   = ColorOrange
	ColorTreasure   = ColorBrightYellow
	ColorAdventurer = ColorBrightCyan
	ColorFrame      = ColorBlue
	ColorStatus     = ColorWhite
)
