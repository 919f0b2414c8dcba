package core

import "time"

// FrameAction tells the frontend what a frame callback did.
type FrameAction int

const (
	FrameSkip   FrameAction = iota // Too early for the next tick
	FrameTick                      // Tick accepted: update and render ran
	FramePaused                    // Paused: nothing ran
)

// String returns a human-readable name for the action.
func (a FrameAction) String() string {
	switch a {
	case FrameSkip:
		return "skip"
	case FrameTick:
		return "tick"
	case FramePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// FrameGate rate-limits a variable-rate frame callback down to a fixed logical
// tick rate. Frames arrive as often as the display refreshes; a tick is accepted
// only once at least 1/tps seconds have passed since the last accepted tick.
type FrameGate struct {
	last time.Duration
}

// Frame decides what to do with the frame arriving at now.
// now must come from a monotonic clock. When the frame is accepted the
// baseline moves to now.
func (g *FrameGate) Frame(now time.Duration, tps int, paused bool) FrameAction {
	if paused {
		return FramePaused
	}
	if tps <= 0 || now-g.last < time.Second/time.Duration(tps) {
		return FrameSkip
	}
	g.last = now
	return FrameTick
}

// Last returns the time of the last accepted tick.
func (g *FrameGate) Last() time.Duration {
	return g.last
}

// Clock is a monotonic time source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures time since it was created using the monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// Since converts a timestamp taken from time.Now into clock time.
func (c *MonotonicClock) Since(t time.Time) time.Duration {
	return t.Sub(c.start)
}
