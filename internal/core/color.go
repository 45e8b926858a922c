package core

// Color is a foreground color for a screen cell. The terminal host maps
// each value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange     // treat sticks
	ColorDarkOrange // treat stick stripes and caps
	ColorSand       // ground
	ColorGray       // the cat
	ColorPink       // tongue
	ColorSky        // backdrop accents
)
