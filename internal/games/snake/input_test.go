package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestHandleKeyReversalGuard(t *testing.T) {
	tests := []struct {
		name string
		cur  Velocity
		key  core.Key
		want Velocity
	}{
		{"neutral accepts up", Neutral, core.KeyUp, Up},
		{"neutral accepts down", Neutral, core.KeyDown, Down},
		{"neutral accepts left", Neutral, core.KeyLeft, Left},
		{"neutral accepts right", Neutral, core.KeyRight, Right},
		{"right ignores left", Right, core.KeyLeft, Right},
		{"left ignores right", Left, core.KeyRight, Left},
		{"up ignores down", Up, core.KeyDown, Up},
		{"down ignores up", Down, core.KeyUp, Down},
		{"right turns up", Right, core.KeyUp, Up},
		{"up turns left", Up, core.KeyLeft, Left},
		{"left turns down", Left, core.KeyDown, Down},
		{"down turns right", Down, core.KeyRight, Right},
		{"unknown key", Right, core.KeyNone, Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.state.Velocity = tc.cur
			g.HandleKey(tc.key)
			if g.state.Velocity != tc.want {
				t.Errorf("velocity = %v, expected %v", g.state.Velocity, tc.want)
			}
		})
	}
}

func TestHandleKeyNeverReverses(t *testing.T) {
	velocities := []Velocity{Neutral, Up, Down, Left, Right}
	keys := []core.Key{core.KeyNone, core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight, core.KeyPause}

	for _, v := range velocities {
		for _, k := range keys {
			g := newTestGame(t)
			g.state.Velocity = v
			g.HandleKey(k)
			if got := g.state.Velocity; !v.IsNeutral() && got == v.Opposite() {
				t.Errorf("%v + %v reversed to %v", v, k, got)
			}
		}
	}
}

func TestHandleKeyPauseToggle(t *testing.T) {
	g := newTestGame(t)

	if !g.HandleKey(core.KeyPause) || !g.Paused() {
		t.Fatal("pause key should pause")
	}
	if !g.HandleKey(core.KeyPause) || g.Paused() {
		t.Fatal("second pause key should resume")
	}
}

func TestHandleKeyLeavesEntitiesAlone(t *testing.T) {
	g := newTestGame(t)
	g.SetState(State{Snake: cells(4, 4, 4, 5), Velocity: Up, Food: Food{Cell: core.Cell{X: 9, Y: 9}, Hue: 10}, Score: 3, Speed: 9})
	before := g.State()

	for _, name := range []string{"ArrowLeft", "right", " ", "space", "Enter", "q", "ArrowDown"} {
		g.HandleKeyName(name)
	}

	after := g.State()
	if !slices.Equal(after.Snake, before.Snake) || after.Food != before.Food || after.Score != before.Score || after.Speed != before.Speed {
		t.Errorf("input changed entities: %+v -> %+v", before, after)
	}
}

func TestHandleKeyNameIgnoresUnknown(t *testing.T) {
	g := newTestGame(t)
	for _, name := range []string{"", "Enter", "w", "Escape", "arrowup"} {
		if g.HandleKeyName(name) {
			t.Errorf("HandleKeyName(%q) reported a change", name)
		}
	}
	if g.State().Velocity != Neutral || g.Paused() {
		t.Error("unknown keys changed the state")
	}
}

func TestVelocityOpposite(t *testing.T) {
	pairs := [][2]Velocity{{Up, Down}, {Left, Right}, {Neutral, Neutral}}
	for _, p := range pairs {
		if p[0].Opposite() != p[1] || p[1].Opposite() != p[0] {
			t.Errorf("%v and %v should be opposites", p[0], p[1])
		}
	}
}
