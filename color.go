package gradient

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an 8-bit per channel RGB color. It is a plain value
// type; two colors are equal when all three channels match.
type Color struct {
	R uint8 `json:"r,omitempty" yaml:"r,omitempty"` // Red channel component
	G uint8 `json:"g,omitempty" yaml:"g,omitempty"` // Green channel component
	B uint8 `json:"b,omitempty" yaml:"b,omitempty"` // Blue channel component
}

// RGB creates a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a "#rrggbb" or "#rgb" string into a Color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()

	return Color{R: r, G: g, B: b}, nil
}

// MustHex parses a hex string and panics on failure.
// Intended for declaring stop lists as literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic("gradient: " + err.Error())
	}

	return c
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful converts the color to a colorful.Color with float channels in [0,1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// RGBA implements the image/color Color interface. Alpha is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xffff
}

// FromColor narrows any image/color Color to 8-bit RGB, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()

	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
