package snake

import (
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Palette.
var (
	Background = core.Hex("#0d1a2b")

	headStart = core.HSL(0, 1.0, 0.7)
	headEnd   = core.HSL(0, 1.0, 0.5)
	bodyStart = core.HSL(10, 0.8, 0.7)
	bodyEnd   = core.HSL(10, 0.8, 0.5)

	segmentOutline = core.WithAlpha(core.HSL(0, 0, 1), 0.2)
)

const (
	segmentInset     = 1
	segmentLineWidth = 1
	foodLineWidth    = 2
)

// Render draws the current state onto c.
func (g *Game) Render(c core.Canvas) {
	Render(c, g.grid, &g.state)
}

// Render draws s onto c: background, then food, then every snake segment.
func Render(c core.Canvas, grid core.Grid, s *State) {
	c.Fill(Background)
	drawFood(c, grid, s.Food)
	for i, seg := range s.Snake {
		drawSegment(c, grid, seg, i == 0)
	}
}

// FoodDiamond returns the corners of the food diamond for a cell:
// top, right, bottom, left.
func FoodDiamond(grid core.Grid, cell core.Cell) []core.Vec {
	r := grid.CellRect(cell)
	mid := r.Center()
	return []core.Vec{
		{X: mid.X, Y: r.Y},
		{X: r.Right(), Y: mid.Y},
		{X: mid.X, Y: r.Bottom()},
		{X: r.X, Y: mid.Y},
	}
}

func drawFood(c core.Canvas, grid core.Grid, f Food) {
	pts := FoodDiamond(grid, f.Cell)
	c.FillPolygon(pts, f.FillColor())
	c.StrokePolygon(pts, f.StrokeColor(), foodLineWidth)
}

func drawSegment(c core.Canvas, grid core.Grid, cell core.Cell, head bool) {
	r := grid.CellRect(cell).Inset(segmentInset)
	start, end := bodyStart, bodyEnd
	if head {
		start, end = headStart, headEnd
	}
	c.FillRectGradient(r, core.NewDiagonalGradient(r, start, end))
	c.StrokeRect(r, segmentOutline, segmentLineWidth)
}
