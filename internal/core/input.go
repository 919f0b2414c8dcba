package core

// Key is a semantic game key, abstracted from the physical key source.
// Frontends translate their native key events into Keys so the game works
// with the same five inputs everywhere.
type Key int

const (
	KeyNone  Key = iota
	KeyUp        // Up arrow
	KeyDown      // Down arrow
	KeyLeft      // Left arrow
	KeyRight     // Right arrow
	KeyPause     // Space - pause/unpause
)

// keyNames maps key names from every supported source to Keys:
// browser-style names, Bubble Tea key strings and ebiten key names.
var keyNames = map[string]Key{
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"up":         KeyUp,
	"down":       KeyDown,
	"left":       KeyLeft,
	"right":      KeyRight,
	" ":          KeyPause,
	"space":      KeyPause,
	"Space":      KeyPause,
}

// ParseKey returns the Key for a key name, or KeyNone if the name is not recognised.
func ParseKey(name string) Key {
	return keyNames[name]
}

// IsDirection reports whether k is one of the four arrow keys.
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPause:
		return "Pause"
	default:
		return "Unknown"
	}
}
