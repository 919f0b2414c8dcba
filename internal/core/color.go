package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSL builds a colour from CSS-style hue (degrees), saturation and lightness (0..1).
func HSL(h, s, l float64) colorful.Color {
	return colorful.Hsl(h, s, l).Clamped()
}

// Hex parses a "#rrggbb" colour, falling back to black on malformed input.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// WithAlpha returns c with the given opacity (0..1).
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(ClampF(alpha, 0, 1)*255 + 0.5)}
}

// Over composites src over dst and returns the opaque result.
func Over(dst colorful.Color, src color.Color) colorful.Color {
	_, _, _, a := src.RGBA()
	if a == 0 {
		return dst
	}
	if a == 0xffff {
		c, _ := colorful.MakeColor(src)
		return c
	}
	// Un-premultiply to get the straight colour, then blend by coverage.
	nrgba := color.NRGBAModel.Convert(src).(color.NRGBA)
	straight := colorful.Color{
		R: float64(nrgba.R) / 255,
		G: float64(nrgba.G) / 255,
		B: float64(nrgba.B) / 255,
	}
	return dst.BlendRgb(straight, float64(a)/0xffff).Clamped()
}
