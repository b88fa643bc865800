package avatar

import (
	"image/color"
)

// Pair is a placeholder background/foreground color pair.
type Pair struct {
	Bg string
	Fg string
}

// palette is the fixed ordered color palette for placeholder avatars. A
// conversation's explicit color assignment or its identity hash indexes into
// this table.
var palette = []Pair{
	{Bg: "#e17076", Fg: "#ffffff"},
	{Bg: "#faa774", Fg: "#ffffff"},
	{Bg: "#a695e7", Fg: "#ffffff"},
	{Bg: "#7bc862", Fg: "#ffffff"},
	{Bg: "#6ec9cb", Fg: "#ffffff"},
	{Bg: "#65aadd", Fg: "#ffffff"},
	{Bg: "#ee7aae", Fg: "#ffffff"},
	{Bg: "#8d9ab5", Fg: "#ffffff"},
}

// defaultPair is used when a color key falls outside the palette.
var defaultPair = Pair{Bg: "#d2d2dc", Fg: "#4f4f6d"}

// PaletteSize returns the number of entries in the fixed palette.
func PaletteSize() int { return len(palette) }

// Lookup maps a color key to its palette pair, falling back to the default
// pair for unrecognized keys.
func Lookup(colorKey int) Pair {
	if colorKey < 0 || colorKey >= len(palette) {
		return defaultPair
	}
	return palette[colorKey]
}

// parseHex parses a #rrggbb color. Invalid input yields opaque black, which
// is good enough for a placeholder that should never carry invalid palette
// data in the first place.
func parseHex(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	hex := func(b byte) uint8 {
		switch {
		case b >= '0' && b <= '9':
			return b - '0'
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10
		}
		return 0
	}
	c.R = hex(s[1])<<4 | hex(s[2])
	c.G = hex(s[3])<<4 | hex(s[4])
	c.B = hex(s[5])<<4 | hex(s[6])
	return c
}
