package core

import (
	"strings"
)

// halfBlock shows the foreground colour in the top half of a cell and the
// background colour in the bottom half.
const halfBlock = '▀'

// ScreenCell is one character cell of the screen with optional colours.
// Colours are "#rrggbb" strings; empty means the terminal default.
type ScreenCell struct {
	Rune rune
	FG   string
	BG   string
}

// Screen is a 2D character buffer for terminal output.
// It decouples game rendering from the terminal: text and rasterized canvases
// are composed here and the platform turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]ScreenCell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]ScreenCell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]ScreenCell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ScreenCell{Rune: ' '}
		}
	}
}

// Set places a rune at the given position, keeping the cell colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces a whole cell. Out-of-bounds coordinates are ignored.
func (s *Screen) SetCell(x, y int, c ScreenCell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) ScreenCell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ScreenCell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, "", "")
}

// DrawStyledText writes coloured text starting at (x, y).
func (s *Screen) DrawStyledText(x, y int, text, fg, bg string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, ScreenCell{Rune: r, FG: fg, BG: bg})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters and blanks its interior.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1
	for yy := y; yy <= bottom; yy++ {
		for xx := x; xx <= right; xx++ {
			top, bot := yy == y, yy == bottom
			left, rgt := xx == x, xx == right
			switch {
			case top && left:
				s.SetCell(xx, yy, ScreenCell{Rune: '┌'})
			case top && rgt:
				s.SetCell(xx, yy, ScreenCell{Rune: '┐'})
			case bot && left:
				s.SetCell(xx, yy, ScreenCell{Rune: '└'})
			case bot && rgt:
				s.SetCell(xx, yy, ScreenCell{Rune: '┘'})
			case top || bot:
				s.SetCell(xx, yy, ScreenCell{Rune: '─'})
			case left || rgt:
				s.SetCell(xx, yy, ScreenCell{Rune: '│'})
			default:
				s.SetCell(xx, yy, ScreenCell{Rune: ' '})
			}
		}
	}
}

// DrawRaster copies a raster onto the screen with its top-left at (x, y).
// Each character cell shows two vertically stacked raster pixels, so a raster
// of c x r pixels occupies c columns and ceil(r/2) lines.
func (s *Screen) DrawRaster(x, y int, r *Raster) {
	for row := 0; row < r.Rows(); row += 2 {
		for col := 0; col < r.Cols(); col++ {
			top := r.At(col, row)
			cell := ScreenCell{Rune: halfBlock, FG: top.Hex()}
			if row+1 < r.Rows() {
				cell.BG = r.At(col, row+1).Hex()
			}
			s.SetCell(x+col, y+row/2, cell)
		}
	}
}

// String converts the screen buffer to plain text, dropping colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
