package tui

import (
	"context"

	"github.com/vovakirdan/neon-snake/internal/registry"
)

// Frontend plays the game in the current terminal.
type Frontend struct{}

func init() {
	registry.Register("terminal", func() registry.Frontend {
		return &Frontend{}
	})
}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return "terminal"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Terminal (Bubble Tea)"
}

// Run plays in the current terminal until the player quits.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	return Run(ctx, opts)
}
