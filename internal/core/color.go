package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the terminal host.
type Color uint8

// Palette used by the phoenix sprites, barriers and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
	ColorDim
)
