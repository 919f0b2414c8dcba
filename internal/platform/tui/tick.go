// Package tui provides the Bubble Tea frontend for the snake game.
// It owns the terminal frame loop, key bindings, HUD and game-over modal,
// and hosts independent games over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one frame callback carrying the time it fired.
type FrameMsg time.Time

// Time returns the frame timestamp.
func (f FrameMsg) Time() time.Time {
	return time.Time(f)
}

// frameCmd schedules the next frame callback at the given frame rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(frameRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
