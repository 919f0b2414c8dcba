// Package gui provides the ebiten window frontend for the snake game.
package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-snake/internal/core"
)

var whiteImage *ebiten.Image

// whiteSubImage returns a 1x1 white source for vertex-coloured triangles.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Canvas is a core.Canvas backed by an offscreen ebiten image.
type Canvas struct {
	img      *ebiten.Image
	w, h     int
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas creates a w x h pixel canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: ebiten.NewImage(w, h), w: w, h: h}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (w, h int) {
	return c.w, c.h
}

// Fill paints the whole canvas.
func (c *Canvas) Fill(col color.Color) {
	c.img.Fill(col)
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, col color.Color) {
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col, true)
}

// FillRectGradient paints a rectangle with per-corner colours from g.
// A linear gradient is affine, so two vertex-coloured triangles reproduce it exactly.
func (c *Canvas) FillRectGradient(r core.Rect, g core.Gradient) {
	corners := []core.Vec{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.X, Y: r.Bottom()},
	}
	c.vertices = c.vertices[:0]
	for _, p := range corners {
		c.vertices = append(c.vertices, vertex(p, g.At(p)))
	}
	c.indices = append(c.indices[:0], 0, 1, 2, 0, 2, 3)
	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeRect outlines a rectangle.
func (c *Canvas) StrokeRect(r core.Rect, col color.Color, width float64) {
	vector.StrokeRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), col, true)
}

// FillPolygon fills a closed polygon.
func (c *Canvas) FillPolygon(pts []core.Vec, col color.Color) {
	if len(pts) < 3 {
		return
	}
	path := polygonPath(pts)
	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.drawPath(col)
}

// StrokePolygon outlines a closed polygon.
func (c *Canvas) StrokePolygon(pts []core.Vec, col color.Color, width float64) {
	if len(pts) < 2 {
		return
	}
	path := polygonPath(pts)
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	})
	c.drawPath(col)
}

// drawPath draws the pending path triangles in a solid colour.
func (c *Canvas) drawPath(col color.Color) {
	r, g, b, a := straight(col)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	c.img.DrawTriangles(c.vertices, c.indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func polygonPath(pts []core.Vec) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

// vertex builds a vertex at p with the given colour.
func vertex(p core.Vec, col color.Color) ebiten.Vertex {
	r, g, b, a := straight(col)
	return ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   1,
		SrcY:   1,
		ColorR: r,
		ColorG: g,
		ColorB: b,
		ColorA: a,
	}
}

// straight returns the non-premultiplied components of col in [0, 1],
// the form vertex colours use by default.
func straight(col color.Color) (r, g, b, a float32) {
	c := color.NRGBA64Model.Convert(col).(color.NRGBA64)
	return float32(c.R) / 0xffff, float32(c.G) / 0xffff, float32(c.B) / 0xffff, float32(c.A) / 0xffff
}
