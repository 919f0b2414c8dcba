// Package snake implements the grid snake game: state, the update rule,
// input handling, food placement and rendering onto a core.Canvas.
// It has no frontend dependencies; frontends drive it through Frame and HandleKey.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Display receives score and speed whenever they change and on reset.
type Display interface {
	ShowScore(score int)
	ShowSpeed(speed int)
}

// Notifier is told about a finished game before the state resets.
// GameOver is synchronous; the game does not continue until it returns.
type Notifier interface {
	GameOver(score int)
}

// Option configures a Game.
type Option func(*Game)

// WithDisplay attaches the score and speed sink.
func WithDisplay(d Display) Option {
	return func(g *Game) { g.display = d }
}

// WithNotifier attaches the game-over sink.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

// WithSeed overrides the seed from the config.
func WithSeed(seed int64) Option {
	return func(g *Game) { g.seed = seed }
}

// Game owns the state of one snake game.
type Game struct {
	cfg   config.SnakeConfig
	grid  core.Grid
	seed  int64
	rng   *rand.Rand
	state State
	gate  core.FrameGate
	ticks uint64
	last  Event

	display  Display
	notifier Notifier
}

// New validates cfg and starts a fresh game.
// A zero seed is replaced with one taken from the clock.
func New(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{cfg: cfg, grid: grid, seed: cfg.Seed}
	for _, opt := range opts {
		opt(g)
	}
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(g.seed))

	g.Reset()
	// A fresh game starts with food on the configured cell.
	if first := cfg.InitialFood(); !g.state.Occupies(first) {
		g.state.Food.Cell = first
	}
	return g, nil
}

// Frame is the per-frame callback. now must come from a monotonic clock.
// When the frame is due the game updates and, if c is not nil, renders.
func (g *Game) Frame(now time.Duration, c core.Canvas) core.FrameAction {
	act := g.gate.Frame(now, g.state.Speed, g.state.Paused)
	if act != core.FrameTick {
		return act
	}
	g.last = g.Update()
	if c != nil {
		g.Render(c)
	}
	return act
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return g.state.Clone()
}

// SetState replaces the current state. Used to set up positions in tests
// and tools; the caller is responsible for its invariants.
func (g *Game) SetState(s State) {
	g.state = s.Clone()
}

// Grid returns the board grid.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Seed returns the seed the game's random source was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// Speed returns the current ticks per second.
func (g *Game) Speed() int {
	return g.state.Speed
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.state.Paused
}

// LastEvent returns the event of the most recent tick run by Frame.
func (g *Game) LastEvent() Event {
	return g.last
}

func (g *Game) showScore() {
	if g.display != nil {
		g.display.ShowScore(g.state.Score)
	}
}

func (g *Game) showSpeed() {
	if g.display != nil {
		g.display.ShowSpeed(g.state.Speed)
	}
}
