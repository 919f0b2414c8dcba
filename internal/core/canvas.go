package core

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a fixed-size 2D pixel drawing surface.
// All coordinates are in pixels. Implementations decide how finely they rasterize;
// the game only ever issues these primitive commands.
type Canvas interface {
	// Size returns the canvas width and height in pixels.
	Size() (w, h int)

	// Fill paints the whole canvas with a solid colour.
	Fill(c color.Color)

	// FillRect paints a rectangle with a solid colour.
	FillRect(r Rect, c color.Color)

	// FillRectGradient paints a rectangle with a linear gradient.
	FillRectGradient(r Rect, g Gradient)

	// StrokeRect outlines a rectangle with a line of the given width.
	StrokeRect(r Rect, c color.Color, width float64)

	// FillPolygon fills a closed convex polygon.
	FillPolygon(pts []Vec, c color.Color)

	// StrokePolygon outlines a closed polygon with a line of the given width.
	StrokePolygon(pts []Vec, c color.Color, width float64)
}

// Gradient is a two-stop linear gradient from From (Start colour) to To (End colour).
type Gradient struct {
	From, To   Vec
	Start, End colorful.Color
}

// NewDiagonalGradient returns a gradient running from the top-left to the
// bottom-right corner of r.
func NewDiagonalGradient(r Rect, start, end colorful.Color) Gradient {
	return Gradient{
		From:  Vec{X: r.X, Y: r.Y},
		To:    Vec{X: r.Right(), Y: r.Bottom()},
		Start: start,
		End:   end,
	}
}

// T returns the normalised position of p along the gradient axis, clamped to [0, 1].
func (g Gradient) T(p Vec) float64 {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	t := ((p.X-g.From.X)*dx + (p.Y-g.From.Y)*dy) / lenSq
	return ClampF(t, 0, 1)
}

// At returns the gradient colour at p.
func (g Gradient) At(p Vec) colorful.Color {
	return g.Start.BlendRgb(g.End, g.T(p)).Clamped()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
