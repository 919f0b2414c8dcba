package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// minTiles is the smallest board edge that leaves room for food beside the snake.
const minTiles = 2

// ErrInvalidConfig is returned by Validate for values the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Grid returns the board grid described by the config.
func (c SnakeConfig) Grid() (core.Grid, error) {
	g, err := core.NewGrid(c.Board.CanvasSize, c.Board.CellSize)
	if err != nil {
		return core.Grid{}, fmt.Errorf("config: board: %w", err)
	}
	return g, nil
}

// Start returns the snake start cell.
func (c SnakeConfig) Start() core.Cell {
	return core.Cell{X: c.Board.StartX, Y: c.Board.StartY}
}

// InitialFood returns the food cell of a fresh game.
func (c SnakeConfig) InitialFood() core.Cell {
	return core.Cell{X: c.Board.FoodX, Y: c.Board.FoodY}
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	g, err := c.Grid()
	if err != nil {
		return err
	}
	if g.TileCount() < minTiles {
		return fmt.Errorf("%w: board must be at least %dx%d cells, got %dx%d", ErrInvalidConfig, minTiles, minTiles, g.TileCount(), g.TileCount())
	}
	if !g.Contains(c.Start()) {
		return fmt.Errorf("%w: start cell %v outside %dx%d board", ErrInvalidConfig, c.Start(), g.TileCount(), g.TileCount())
	}
	if !g.Contains(c.InitialFood()) {
		return fmt.Errorf("%w: food cell %v outside %dx%d board", ErrInvalidConfig, c.InitialFood(), g.TileCount(), g.TileCount())
	}
	if c.Speed.Initial <= 0 {
		return fmt.Errorf("%w: speed.initial must be positive, got %d", ErrInvalidConfig, c.Speed.Initial)
	}
	if c.Speed.Step < 0 {
		return fmt.Errorf("%w: speed.step must not be negative, got %d", ErrInvalidConfig, c.Speed.Step)
	}
	if c.Speed.Every <= 0 {
		return fmt.Errorf("%w: speed.every must be positive, got %d", ErrInvalidConfig, c.Speed.Every)
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("%w: display.frame_rate must be positive, got %d", ErrInvalidConfig, c.Display.FrameRate)
	}
	if c.Display.Subdivisions <= 0 || c.Display.WindowScale <= 0 {
		return fmt.Errorf("%w: display.subdivisions and display.window_scale must be positive", ErrInvalidConfig)
	}
	return nil
}
