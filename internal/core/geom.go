// Package core provides fundamental types shared by the game logic and its frontends:
// grid geometry, the drawing surface contract, key parsing and frame gating.
// It has no terminal or window dependencies so game logic stays pure and testable.
package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid is returned for non-positive canvas or cell sizes.
	ErrInvalidGrid = errors.New("core: grid sizes must be positive")
	// ErrUnevenGrid is returned when the canvas is not a whole number of cells.
	ErrUnevenGrid = errors.New("core: canvas size is not a multiple of cell size")
)

// Cell is a discrete board coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Vec is a point in pixel space.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Contains returns true if p lies inside the rectangle (right/bottom edges exclusive).
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Grid maps a square pixel canvas onto a square board of cells.
type Grid struct {
	CanvasSize int // Canvas width and height in pixels
	CellSize   int // Cell edge in pixels
}

// NewGrid validates the sizes and returns the grid.
func NewGrid(canvasSize, cellSize int) (Grid, error) {
	if canvasSize <= 0 || cellSize <= 0 {
		return Grid{}, fmt.Errorf("%w: canvas=%d cell=%d", ErrInvalidGrid, canvasSize, cellSize)
	}
	if canvasSize%cellSize != 0 {
		return Grid{}, fmt.Errorf("%w: canvas=%d cell=%d", ErrUnevenGrid, canvasSize, cellSize)
	}
	return Grid{CanvasSize: canvasSize, CellSize: cellSize}, nil
}

// TileCount returns the number of cells along each axis.
func (g Grid) TileCount() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.CanvasSize / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	n := g.TileCount()
	return n * n
}

// Contains reports whether c lies in [0, tileCount) on both axes.
func (g Grid) Contains(c Cell) bool {
	n := g.TileCount()
	return c.X >= 0 && c.X < n && c.Y >= 0 && c.Y < n
}

// CellToPixel returns the top-left pixel of a cell.
func (g Grid) CellToPixel(c Cell) (px, py int) {
	return c.X * g.CellSize, c.Y * g.CellSize
}

// CellRect returns the pixel rectangle covered by a cell.
func (g Grid) CellRect(c Cell) Rect {
	px, py := g.CellToPixel(c)
	s := float64(g.CellSize)
	return NewRect(float64(px), float64(py), s, s)
}
