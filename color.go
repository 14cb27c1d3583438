package ggplot

import (
	"image/color"
	"math"
)

// RGBA represents a normalized color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface (alpha-premultiplied, 16 bits).
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA quantizes the color to 8 bits per channel.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// BackendColor is the color representation of the drawing protocol:
// 8-bit RGB plus a separate alpha fraction in [0, 1].
type BackendColor struct {
	RGB   [3]uint8
	Alpha float64
}

// Color returns c, so that a BackendColor can be used as a [BackendStyle].
func (c BackendColor) Color() BackendColor { return c }

// StrokeWidth returns 1, the stroke width of a bare color style.
func (c BackendColor) StrokeWidth() float64 { return 1 }

// Normalize converts a protocol color to the normalized float model.
// Each RGB channel is divided by 255; alpha is passed through unchanged.
func Normalize(c BackendColor) RGBA {
	return RGBA{
		R: float64(c.RGB[0]) / 255.0,
		G: float64(c.RGB[1]) / 255.0,
		B: float64(c.RGB[2]) / 255.0,
		A: c.Alpha,
	}
}

// Denormalize converts a normalized color back to the protocol model,
// rounding each RGB channel to the nearest 8-bit value. Alpha is clamped
// to [0, 1].
func Denormalize(c RGBA) BackendColor {
	return BackendColor{
		RGB:   [3]uint8{quantize(c.R), quantize(c.G), quantize(c.B)},
		Alpha: clamp01(c.A),
	}
}

// Hex parses a protocol color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without a
// leading '#'. The second return value is false for malformed input.
func Hex(hex string) (BackendColor, bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return BackendColor{Alpha: 1}, false
	}

	return BackendColor{
		RGB:   [3]uint8{uint8(r), uint8(g), uint8(b)}, //nolint:gosec // at most 0xff
		Alpha: float64(a) / 255,
	}, true
}

// parseHex accumulates hex digits of s into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func quantize(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common protocol colors.
var (
	Black       = BackendColor{RGB: [3]uint8{0, 0, 0}, Alpha: 1}
	White       = BackendColor{RGB: [3]uint8{255, 255, 255}, Alpha: 1}
	Red         = BackendColor{RGB: [3]uint8{255, 0, 0}, Alpha: 1}
	Green       = BackendColor{RGB: [3]uint8{0, 255, 0}, Alpha: 1}
	Blue        = BackendColor{RGB: [3]uint8{0, 0, 255}, Alpha: 1}
	Transparent = BackendColor{}
)
