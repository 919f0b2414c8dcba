package core

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Raster is a Canvas that samples drawing commands into a coarse grid of
// colour pixels. Each raster pixel covers a block of canvas pixels and takes the
// colour of whatever covers its centre point. Terminals use it to show a pixel
// canvas with a handful of character cells.
type Raster struct {
	width, height int // Logical canvas size in pixels
	cols, rows    int // Raster resolution
	pix           []colorful.Color
}

// NewRaster creates a raster of cols x rows pixels standing in for a
// width x height canvas.
func NewRaster(width, height, cols, rows int) *Raster {
	r := &Raster{
		width:  width,
		height: height,
		cols:   max(cols, 0),
		rows:   max(rows, 0),
	}
	r.pix = make([]colorful.Color, r.cols*r.rows)
	return r
}

// Size returns the logical canvas size.
func (r *Raster) Size() (w, h int) {
	return r.width, r.height
}

// Cols returns the raster width in pixels.
func (r *Raster) Cols() int {
	return r.cols
}

// Rows returns the raster height in pixels.
func (r *Raster) Rows() int {
	return r.rows
}

// At returns the colour of a raster pixel. Out-of-bounds reads return black.
func (r *Raster) At(col, row int) colorful.Color {
	if col < 0 || col >= r.cols || row < 0 || row >= r.rows {
		return colorful.Color{}
	}
	return r.pix[row*r.cols+col]
}

// center returns the canvas-space sample point of a raster pixel.
func (r *Raster) center(col, row int) Vec {
	sx := float64(r.width) / float64(r.cols)
	sy := float64(r.height) / float64(r.rows)
	return Vec{X: (float64(col) + 0.5) * sx, Y: (float64(row) + 0.5) * sy}
}

// paint composites c over every pixel whose centre satisfies hit.
func (r *Raster) paint(hit func(p Vec) bool, shade func(p Vec) color.Color) {
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			p := r.center(col, row)
			if !hit(p) {
				continue
			}
			i := row*r.cols + col
			r.pix[i] = Over(r.pix[i], shade(p))
		}
	}
}

// Fill paints the whole canvas.
func (r *Raster) Fill(c color.Color) {
	for i := range r.pix {
		r.pix[i] = Over(r.pix[i], c)
	}
}

// FillRect paints a solid rectangle.
func (r *Raster) FillRect(rect Rect, c color.Color) {
	r.paint(rect.Contains, func(Vec) color.Color { return c })
}

// FillRectGradient paints a rectangle with a linear gradient.
func (r *Raster) FillRectGradient(rect Rect, g Gradient) {
	r.paint(rect.Contains, func(p Vec) color.Color { return g.At(p) })
}

// StrokeRect outlines a rectangle; the line is centred on the rectangle edge.
func (r *Raster) StrokeRect(rect Rect, c color.Color, width float64) {
	outer := rect.Inset(-width / 2)
	inner := rect.Inset(width / 2)
	r.paint(func(p Vec) bool {
		return outer.Contains(p) && !inner.Contains(p)
	}, func(Vec) color.Color { return c })
}

// FillPolygon fills a convex polygon; points on the boundary count as inside.
func (r *Raster) FillPolygon(pts []Vec, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r.paint(func(p Vec) bool { return insideConvex(pts, p) }, func(Vec) color.Color { return c })
}

// StrokePolygon outlines a closed polygon.
func (r *Raster) StrokePolygon(pts []Vec, c color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	half := width / 2
	r.paint(func(p Vec) bool {
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if distToSegment(p, a, b) <= half {
				return true
			}
		}
		return false
	}, func(Vec) color.Color { return c })
}

// insideConvex reports whether p lies inside or on a convex polygon of either winding.
func insideConvex(pts []Vec, p Vec) bool {
	var pos, neg bool
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// distToSegment returns the distance from p to the segment ab.
func distToSegment(p, a, b Vec) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ClampF(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/lenSq, 0, 1)
	}
	cx, cy := a.X+t*dx, a.Y+t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}
