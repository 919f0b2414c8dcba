package snake

import "github.com/vovakirdan/neon-snake/internal/core"

var keyVelocity = map[core.Key]Velocity{
	core.KeyUp:    Up,
	core.KeyDown:  Down,
	core.KeyLeft:  Left,
	core.KeyRight: Right,
}

// HandleKey applies one key press and reports whether it changed anything.
// Direction keys are ignored when they would reverse the snake; the pause key
// toggles pause. Input never touches the snake, food or score.
func (g *Game) HandleKey(k core.Key) bool {
	if k == core.KeyPause {
		g.state.Paused = !g.state.Paused
		return true
	}
	if !k.IsDirection() {
		return false
	}
	v := keyVelocity[k]
	cur := g.state.Velocity
	if !cur.IsNeutral() && v == cur.Opposite() {
		return false
	}
	if v == cur {
		return false
	}
	g.state.Velocity = v
	return true
}

// HandleKeyName parses a key name and applies it.
func (g *Game) HandleKeyName(name string) bool {
	return g.HandleKey(core.ParseKey(name))
}
