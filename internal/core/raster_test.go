package core

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	red   = colorful.Color{R: 1}
	green = colorful.Color{G: 1}
	blue  = colorful.Color{B: 1}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func TestRasterFillRect(t *testing.T) {
	r := NewRaster(40, 40, 4, 4)
	r.FillRect(NewRect(0, 0, 20, 20), red)

	tests := []struct {
		col, row int
		want     string
	}{
		{0, 0, "#ff0000"},
		{1, 0, "#ff0000"},
		{0, 1, "#ff0000"},
		{1, 1, "#ff0000"},
		{2, 1, "#000000"},
		{3, 3, "#000000"},
	}
	for _, tc := range tests {
		if got := r.At(tc.col, tc.row).Hex(); got != tc.want {
			t.Errorf("At(%d, %d) = %s, expected %s", tc.col, tc.row, got, tc.want)
		}
	}

	if w, h := r.Size(); w != 40 || h != 40 {
		t.Errorf("Size() = %dx%d, expected 40x40", w, h)
	}
	if r.At(-1, 0).Hex() != "#000000" || r.At(4, 0).Hex() != "#000000" {
		t.Error("out of bounds At should return black")
	}
}

func TestRasterFill(t *testing.T) {
	r := NewRaster(40, 40, 4, 4)
	r.FillRect(NewRect(0, 0, 40, 40), red)
	r.Fill(blue)

	for row := 0; row < r.Rows(); row++ {
		for col := 0; col < r.Cols(); col++ {
			if got := r.At(col, row).Hex(); got != "#0000ff" {
				t.Fatalf("At(%d, %d) = %s after Fill, expected #0000ff", col, row, got)
			}
		}
	}
}

func TestRasterGradient(t *testing.T) {
	r := NewRaster(20, 10, 2, 1)
	g := Gradient{
		From:  Vec{0, 0},
		To:    Vec{20, 0},
		Start: colorful.Color{},
		End:   white,
	}
	r.FillRectGradient(NewRect(0, 0, 20, 10), g)

	if got := r.At(0, 0).Hex(); got != "#404040" {
		t.Errorf("left pixel = %s, expected #404040", got)
	}
	if got := r.At(1, 0).Hex(); got != "#bfbfbf" {
		t.Errorf("right pixel = %s, expected #bfbfbf", got)
	}
}

func TestGradientT(t *testing.T) {
	g := NewDiagonalGradient(NewRect(0, 0, 10, 10), red, blue)

	tests := []struct {
		p    Vec
		want float64
	}{
		{Vec{0, 0}, 0},
		{Vec{10, 10}, 1},
		{Vec{5, 5}, 0.5},
		{Vec{10, 0}, 0.5},
		{Vec{-10, -10}, 0},
		{Vec{30, 30}, 1},
	}
	for _, tc := range tests {
		if got := g.T(tc.p); got != tc.want {
			t.Errorf("T(%v) = %v, expected %v", tc.p, got, tc.want)
		}
	}

	degenerate := Gradient{Start: red, End: blue}
	if got := degenerate.At(Vec{3, 3}).Hex(); got != "#ff0000" {
		t.Errorf("zero-length gradient should use the start colour, got %s", got)
	}
}

func TestRasterPolygon(t *testing.T) {
	r := NewRaster(40, 40, 4, 4)
	diamond := []Vec{{20, 0}, {40, 20}, {20, 40}, {0, 20}}
	r.FillPolygon(diamond, red)

	if got := r.At(0, 0).Hex(); got != "#000000" {
		t.Errorf("corner pixel = %s, expected untouched", got)
	}
	if got := r.At(1, 1).Hex(); got != "#ff0000" {
		t.Errorf("inner pixel = %s, expected #ff0000", got)
	}
	// (5,15) lies exactly on the left-top edge; boundaries count as inside.
	if got := r.At(0, 1).Hex(); got != "#ff0000" {
		t.Errorf("edge pixel = %s, expected #ff0000", got)
	}

	r.StrokePolygon(diamond, green, 2)
	if got := r.At(0, 1).Hex(); got != "#00ff00" {
		t.Errorf("stroked edge pixel = %s, expected #00ff00", got)
	}
	if got := r.At(1, 1).Hex(); got != "#ff0000" {
		t.Errorf("interior pixel should keep its fill, got %s", got)
	}

	// Degenerate polygons draw nothing.
	r2 := NewRaster(40, 40, 4, 4)
	r2.FillPolygon(diamond[:2], red)
	if got := r2.At(1, 1).Hex(); got != "#000000" {
		t.Errorf("two-point polygon should not fill, got %s", got)
	}
}

func TestRasterStrokeRect(t *testing.T) {
	r := NewRaster(40, 40, 4, 4)
	r.StrokeRect(NewRect(0, 0, 40, 40), red, 20)

	if got := r.At(0, 0).Hex(); got != "#ff0000" {
		t.Errorf("border pixel = %s, expected #ff0000", got)
	}
	if got := r.At(3, 3).Hex(); got != "#ff0000" {
		t.Errorf("border pixel = %s, expected #ff0000", got)
	}
	if got := r.At(1, 1).Hex(); got != "#000000" {
		t.Errorf("interior pixel = %s, expected untouched", got)
	}
}

func TestRasterTranslucent(t *testing.T) {
	r := NewRaster(10, 10, 1, 1)
	r.Fill(white)
	r.FillRect(NewRect(0, 0, 10, 10), WithAlpha(colorful.Color{}, 0.5))

	c := r.At(0, 0)
	if c.R < 0.45 || c.R > 0.55 || c.R != c.G || c.G != c.B {
		t.Errorf("half black over white = %v, expected mid grey", c)
	}

	r.FillRect(NewRect(0, 0, 10, 10), WithAlpha(red, 0))
	if r.At(0, 0) != c {
		t.Error("fully transparent fill should not change the pixel")
	}
}
