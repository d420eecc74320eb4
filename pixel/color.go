package pixel

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseHex parses a "#rrggbb" or "#rgb" color. The result is opaque.
func ParseHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("pixel: parse %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for compiled-in catalogues.
func MustParseHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb". Alpha is not encoded.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Luminance returns the perceptual luminance 0.299R + 0.587G + 0.114B
// in the range [0, 255].
func (c Color) Luminance() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Darken subtracts step from each color channel, clamping at 0.
// A negative step lightens, clamping at 255. Alpha is preserved.
func (c Color) Darken(step int) Color {
	return Color{
		R: clampChannel(int(c.R) - step),
		G: clampChannel(int(c.G) - step),
		B: clampChannel(int(c.B) - step),
		A: c.A,
	}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("%s/%d", c.Hex(), c.A)
}

// clampChannel restricts v to [0, 255].
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)
