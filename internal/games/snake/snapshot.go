package snake

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	Speed    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Velocity Velocity
	FoodX    int
	FoodY    int
	FoodHue  float64
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.state.Head()
	return Snapshot{
		Tick:     g.ticks,
		Score:    g.state.Score,
		Speed:    g.state.Speed,
		SnakeLen: len(g.state.Snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Velocity: g.state.Velocity,
		FoodX:    g.state.Food.Cell.X,
		FoodY:    g.state.Food.Cell.Y,
		FoodHue:  g.state.Food.Hue,
		Paused:   g.state.Paused,
	}
}
