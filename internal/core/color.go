package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// candyColors gives each candy value 1..10 its own color.
var candyColors = [...]Color{
	ColorRed,
	ColorGreen,
	ColorYellow,
	ColorBlue,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// CandyColor returns the color of candy value v. Empty cells and values
// past the palette are gray.
func CandyColor(v uint) Color {
	if v == 0 || v > uint(len(candyColors)) {
		return ColorGray
	}
	return candyColors[v-1]
}
