package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			CanvasSize: 400,
			CellSize:   20,
			StartX:     10,
			StartY:     10,
			FoodX:      15,
			FoodY:      15,
		},
		Speed: SnakeSpeed{
			Initial: 8,
			Step:    1,
			Every:   3,
		},
		Display: SnakeDisplay{
			FrameRate:    60,
			Subdivisions: 2,
			WindowScale:  1,
		},
	}
}
