package snake

import (
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Velocity is the per-tick movement of the head in cells.
type Velocity struct {
	X, Y int
}

var (
	Neutral = Velocity{}      // Not moving yet
	Up      = Velocity{0, -1} // Toward row 0
	Down    = Velocity{0, 1}
	Left    = Velocity{-1, 0}
	Right   = Velocity{1, 0}
)

// Opposite returns the reverse direction. Neutral is its own opposite.
func (v Velocity) Opposite() Velocity {
	return Velocity{X: -v.X, Y: -v.Y}
}

// IsNeutral reports whether the snake is standing still.
func (v Velocity) IsNeutral() bool {
	return v == Neutral
}

func (v Velocity) String() string {
	switch v {
	case Neutral:
		return "neutral"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Food is the single food item: a cell and the hue it is drawn with.
type Food struct {
	Cell core.Cell
	Hue  float64 // Degrees in [0, 360)
}

// FillColor returns the diamond fill colour.
func (f Food) FillColor() colorful.Color {
	return core.HSL(f.Hue, 0.8, 0.6)
}

// StrokeColor returns the lighter outline colour.
func (f Food) StrokeColor() colorful.Color {
	return core.HSL(f.Hue, 1.0, 0.85)
}

// State is the complete mutable state of one game.
type State struct {
	Snake    []core.Cell // Head at index 0
	Food     Food
	Velocity Velocity
	Score    int
	Speed    int // Ticks per second
	Paused   bool
}

// Head returns the head cell.
func (s State) Head() core.Cell {
	return s.Snake[0]
}

// Occupies reports whether any snake segment is on c.
func (s State) Occupies(c core.Cell) bool {
	return slices.Contains(s.Snake, c)
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Snake = slices.Clone(s.Snake)
	return c
}
