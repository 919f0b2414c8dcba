package snake

import "fmt"

// HUD records what the game reports through Display and Notifier so a
// frontend can draw it. GameOver only raises the alert; the frontend keeps
// the game suspended until Dismiss is called.
type HUD struct {
	Score int
	Speed int

	Over       bool // Game-over alert is showing
	FinalScore int
	Games      int // Finished games
}

// ShowScore implements Display.
func (h *HUD) ShowScore(score int) {
	h.Score = score
}

// ShowSpeed implements Display.
func (h *HUD) ShowSpeed(speed int) {
	h.Speed = speed
}

// GameOver implements Notifier.
func (h *HUD) GameOver(score int) {
	h.Over = true
	h.FinalScore = score
	h.Games++
}

// Dismiss closes the game-over alert.
func (h *HUD) Dismiss() {
	h.Over = false
}

// ScoreText returns the score line.
func (h *HUD) ScoreText() string {
	return fmt.Sprintf("SCORE: %d", h.Score)
}

// SpeedText returns the speed line.
func (h *HUD) SpeedText() string {
	return fmt.Sprintf("SPEED: %d FPS", h.Speed)
}

// AlertLines returns the game-over alert text.
func (h *HUD) AlertLines() []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", h.FinalScore),
		"Press Enter to restart",
	}
}
