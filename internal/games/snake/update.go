package snake

import "github.com/vovakirdan/neon-snake/internal/core"

// maxFoodSamples bounds the random probes before food placement falls back
// to choosing among the enumerated free cells.
const maxFoodSamples = 64

// Event describes what a single Update did.
type Event int

const (
	EventIdle      Event = iota // Velocity is neutral, nothing moved
	EventMoved                  // Moved one cell without eating
	EventAte                    // Ate the food and grew by one
	EventHitWall                // Head left the board; game reset
	EventHitSelf                // Head ran into the body; game reset
	EventBoardFull              // Ate the last free cell; game reset
)

func (e Event) String() string {
	switch e {
	case EventIdle:
		return "idle"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventHitWall:
		return "hit_wall"
	case EventHitSelf:
		return "hit_self"
	case EventBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Ended reports whether the event finished the game.
func (e Event) Ended() bool {
	return e == EventHitWall || e == EventHitSelf || e == EventBoardFull
}

// Update advances the snake by one cell.
// The snake always grows at the head and loses its tail unless it just ate.
func (g *Game) Update() Event {
	s := &g.state
	g.ticks++

	head := s.Head().Add(s.Velocity.X, s.Velocity.Y)

	if !g.grid.Contains(head) {
		g.GameOver()
		return EventHitWall
	}
	// Compare against the body before the move, tail included.
	for _, seg := range s.Snake[1:] {
		if seg == head {
			g.GameOver()
			return EventHitSelf
		}
	}

	s.Snake = append(s.Snake, core.Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = head

	if head != s.Food.Cell {
		s.Snake = s.Snake[:len(s.Snake)-1]
		if s.Velocity.IsNeutral() {
			return EventIdle
		}
		return EventMoved
	}

	s.Score++
	g.showScore()
	if s.Score%g.cfg.Speed.Every == 0 && g.cfg.Speed.Step != 0 {
		s.Speed += g.cfg.Speed.Step
		g.showSpeed()
	}
	if !g.GenerateFood() {
		g.GameOver()
		return EventBoardFull
	}
	return EventAte
}

// GenerateFood moves the food to a random free cell with a fresh hue.
// It returns false, leaving the food untouched, when the snake covers the board.
func (g *Game) GenerateFood() bool {
	if len(g.state.Snake) >= g.grid.Cells() {
		return false
	}
	n := g.grid.TileCount()

	for range maxFoodSamples {
		c := core.Cell{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.state.Occupies(c) {
			g.placeFood(c)
			return true
		}
	}

	free := g.freeCells()
	if len(free) == 0 {
		return false
	}
	g.placeFood(free[g.rng.Intn(len(free))])
	return true
}

func (g *Game) placeFood(c core.Cell) {
	g.state.Food = Food{Cell: c, Hue: g.rng.Float64() * 360}
}

// freeCells lists every cell not covered by the snake, row by row.
func (g *Game) freeCells() []core.Cell {
	n := g.grid.TileCount()
	taken := make(map[core.Cell]bool, len(g.state.Snake))
	for _, seg := range g.state.Snake {
		taken[seg] = true
	}
	free := make([]core.Cell, 0, g.grid.Cells()-len(taken))
	for y := range n {
		for x := range n {
			c := core.Cell{X: x, Y: y}
			if !taken[c] {
				free = append(free, c)
			}
		}
	}
	return free
}

// GameOver pauses, reports the final score and starts over.
// The notifier is synchronous: Reset runs only after it returns.
func (g *Game) GameOver() {
	g.state.Paused = true
	if g.notifier != nil {
		g.notifier.GameOver(g.state.Score)
	}
	g.Reset()
}

// Reset reinitialises the whole state to a fresh game.
func (g *Game) Reset() {
	g.state = State{
		Snake:    []core.Cell{g.cfg.Start()},
		Velocity: Neutral,
		Speed:    g.cfg.Speed.Initial,
	}
	g.GenerateFood()
	g.showScore()
	g.showSpeed()
}
