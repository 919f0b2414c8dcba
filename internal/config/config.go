// Package config provides YAML-based configuration loading and
// difficulty presets for the snake game.
package config

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   SnakeBoard   `yaml:"board"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Display SnakeDisplay `yaml:"display"`
	Seed    int64        `yaml:"seed"` // 0 seeds from the clock
}

// SnakeBoard defines the canvas and grid geometry.
type SnakeBoard struct {
	CanvasSize int `yaml:"canvas_size"` // Canvas edge in pixels
	CellSize   int `yaml:"cell_size"`   // Cell edge in pixels, must divide canvas_size
	StartX     int `yaml:"start_x"`     // Snake start cell after every reset
	StartY     int `yaml:"start_y"`
	FoodX      int `yaml:"food_x"` // First food cell of a fresh game
	FoodY      int `yaml:"food_y"`
}

// SnakeSpeed defines the linear speed-up in ticks per second.
type SnakeSpeed struct {
	Initial int `yaml:"initial"`
	Step    int `yaml:"step"`  // Added every Every points
	Every   int `yaml:"every"` // Score interval between speed-ups
}

// SnakeDisplay defines frontend presentation parameters.
type SnakeDisplay struct {
	FrameRate    int `yaml:"frame_rate"`   // Frame callbacks per second
	Subdivisions int `yaml:"subdivisions"` // Terminal raster pixels per cell edge
	WindowScale  int `yaml:"window_scale"` // Window size multiplier over the canvas
}
