package core

import "image/color"

// Color represents a fill or foreground color for a drawn shape or cell.
// Frontends map these to ANSI colors (terminal) or RGBA (window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)

// palette holds the RGBA value of each color for pixel surfaces.
var palette = [...]color.RGBA{
	ColorDefault:     {0xee, 0xee, 0xee, 0xff},
	ColorRed:         {0xcc, 0x33, 0x33, 0xff},
	ColorGreen:       {0x33, 0xaa, 0x44, 0xff},
	ColorYellow:      {0xdd, 0xbb, 0x22, 0xff},
	ColorBlue:        {0x22, 0x55, 0xcc, 0xff},
	ColorMagenta:     {0xaa, 0x33, 0xaa, 0xff},
	ColorCyan:        {0x22, 0xaa, 0xbb, 0xff},
	ColorWhite:       {0xdd, 0xdd, 0xdd, 0xff},
	ColorBrightBlue:  {0x00, 0x95, 0xdd, 0xff},
	ColorBrightWhite: {0xff, 0xff, 0xff, 0xff},
	ColorGray:        {0x80, 0x80, 0x80, 0xff},
}

// RGBA returns the color for pixel surfaces. Unknown colors map to the
// default.
func (c Color) RGBA() color.RGBA {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[ColorDefault]
}
