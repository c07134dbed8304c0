package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Colors used by the flight renderer.
const (
	ColorCraft      = ColorBrightYellow
	ColorRing       = ColorCyan
	ColorRingPassed = ColorGreen
	ColorRingHit    = ColorBrightRed
	ColorRingMissed = ColorGray
	ColorGround     = ColorOrange
	ColorHUD        = ColorWhite
)
