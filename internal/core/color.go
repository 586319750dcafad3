package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors for board elements.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tileColors cycles through the palette as tile values double.
var tileColors = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorOrange,        // 8
	ColorBrightRed,     // 16
	ColorRed,           // 32
	ColorBrightMagenta, // 64
	ColorYellow,        // 128
	ColorBrightYellow,  // 256
	ColorGreen,         // 512
	ColorBrightGreen,   // 1024
	ColorBrightCyan,    // 2048
	ColorCyan,          // 4096
	ColorBrightBlue,    // 8192
	ColorBlue,          // 16384+
}

// TileColor returns the display color for a tile value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	exp := 0
	for v := value; v > 2; v >>= 1 {
		exp++
	}
	if exp >= len(tileColors) {
		return tileColors[len(tileColors)-1]
	}
	return tileColors[exp]
}
