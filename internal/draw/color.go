package draw

import (
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value. The zero Color means "no pixel".
type Color uint32

const colorSet = 1 << 24

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// ParseColor reads a "#RRGGBB" string. Returns false for anything else.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return colorSet | Color(v), true
}

// MustColor is ParseColor for known-good literals; invalid input yields white.
func MustColor(s string) Color {
	c, ok := ParseColor(s)
	if !ok {
		return RGB(255, 255, 255)
	}
	return c
}

// IsSet reports whether c is a real color.
func (c Color) IsSet() bool { return c&colorSet != 0 }

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Scale darkens c by f in [0,1], standing in for alpha on a black background.
func (c Color) Scale(f float64) Color {
	if !c.IsSet() {
		return c
	}
	f = min(max(f, 0), 1)
	r, g, b := c.Components()
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}

// appendFg appends the truecolor foreground escape for c.
func appendFg(buf []byte, c Color) []byte {
	r, g, b := c.Components()
	buf = append(buf, "\033[38;2;"...)
	return appendRGB(buf, r, g, b)
}

// appendBg appends the truecolor background escape for c, or the default
// background when c is unset.
func appendBg(buf []byte, c Color) []byte {
	if !c.IsSet() {
		return append(buf, "\033[49m"...)
	}
	r, g, b := c.Components()
	buf = append(buf, "\033[48;2;"...)
	return appendRGB(buf, r, g, b)
}

func appendRGB(buf []byte, r, g, b uint8) []byte {
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}

// resetStyle restores default terminal colors.
const resetStyle = "\033[0m"
