// Package graphics provides the small value types animated by Lumen:
// colors and 2D offsets.
package graphics

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return Color(uint32(a*maxByte+0.5)<<24 | uint32(c)&0x00FFFFFF)
}

// Colorful converts the color to a go-colorful color, dropping alpha.
// Use it for interpolation in a perceptual color space.
func (c Color) Colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

// FromColorful converts a go-colorful color to an opaque Color.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// String returns the color as #RRGGBB or #RRGGBBAA hex.
func (c Color) String() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%06x%02x", uint32(c)&0x00FFFFFF, uint8(c>>24))
}

// ParseColor interprets s as a color. Accepted forms are #RGB, #RRGGBB and
// #RRGGBBAA hex, or an SVG 1.1 color name such as "cornflowerblue"
// (case-insensitive).
func ParseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (Color, error) {
	digits := s[1:]
	n, err := hexNibbles(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b, a uint8
	a = 0xFF
	switch len(digits) {
	case 3:
		r = uint8(n>>8&0xF) * 0x11
		g = uint8(n>>4&0xF) * 0x11
		b = uint8(n&0xF) * 0x11
	case 8:
		a = uint8(n)
		n >>= 8
		fallthrough
	case 6:
		r = uint8(n >> 16)
		g = uint8(n >> 8)
		b = uint8(n)
	default:
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	return RGBA(r, g, b, a), nil
}

func hexNibbles(s string) (uint32, error) {
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		var v uint32
		switch {
		case c >= '0' && c <= '9':
			v = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = uint32(c-'A') + 10
		default:
			return 0, fmt.Errorf("bad hex digit %q", c)
		}
		n = n<<4 | v
	}
	return n, nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
