package gui

import (
	"context"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
	"github.com/vovakirdan/neon-snake/internal/registry"
)

const (
	hudHeight  = 20 // Pixels above the board for score and speed
	glyphW     = 6  // Debug font cell size
	glyphH     = 16
	hudPadding = 4
)

var (
	hudBackground = color.RGBA{R: 0x08, G: 0x10, B: 0x1c, A: 0xff}
	overlayShade  = color.RGBA{A: 0xb0}
)

// Window is an ebiten.Game running one snake game.
// Update is the frame callback; the board image is redrawn only on ticks.
type Window struct {
	ctx       context.Context
	game      *snake.Game
	logger    *log.Logger
	sessionID string

	clock  core.Clock
	canvas *Canvas
	hud    *snake.HUD
	keys   []ebiten.Key
}

// NewWindow creates the window state for a fresh game.
func NewWindow(ctx context.Context, opts registry.Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hud := &snake.HUD{}
	game, err := snake.New(opts.Config, snake.WithDisplay(hud), snake.WithNotifier(hud))
	if err != nil {
		return nil, err
	}

	size := opts.Config.Board.CanvasSize
	w := &Window{
		ctx:       ctx,
		game:      game,
		logger:    logger,
		sessionID: opts.SessionID,
		clock:     core.NewMonotonicClock(),
		canvas:    NewCanvas(size, size),
		hud:       hud,
	}
	game.Render(w.canvas)

	logger.Info("game started", "session", w.sessionID, "seed", game.Seed(), "tiles", game.Grid().TileCount())
	return w, nil
}

// KeyFor maps an ebiten key to a game key by its name.
func KeyFor(k ebiten.Key) core.Key {
	return core.ParseKey(k.String())
}

// Update is called once per frame.
func (w *Window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		w.logger.Info("game closed", "session", w.sessionID, "score", w.game.Score(), "games", w.hud.Games)
		return ebiten.Termination
	}

	// The game-over alert holds the game until it is confirmed.
	if w.hud.Over {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
			w.hud.Dismiss()
		}
		return nil
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		if gk := KeyFor(k); gk != core.KeyNone {
			w.game.HandleKey(gk)
		}
	}

	speed := w.game.Speed()
	if w.game.Frame(w.clock.Now(), w.canvas) != core.FrameTick {
		return nil
	}
	if ev := w.game.LastEvent(); ev.Ended() {
		w.logger.Info("game over", "session", w.sessionID, "score", w.hud.FinalScore, "cause", ev)
	} else if w.game.Speed() != speed {
		w.logger.Debug("speed up", "session", w.sessionID, "speed", w.game.Speed(), "score", w.game.Score())
	}
	return nil
}

// Draw blits the last rendered board and draws the HUD and overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	width, _ := w.canvas.Size()
	screen.Fill(hudBackground)

	ebitenutil.DebugPrintAt(screen, w.hud.ScoreText(), hudPadding, 2)
	speed := w.hud.SpeedText()
	ebitenutil.DebugPrintAt(screen, speed, width-hudPadding-len(speed)*glyphW, 2)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(w.canvas.Image(), op)

	switch {
	case w.hud.Over:
		w.drawOverlay(screen, w.hud.AlertLines()...)
	case w.game.Paused():
		w.drawOverlay(screen, "PAUSED", "Press space to resume")
	}
}

// drawOverlay shades the board and centres text lines on it.
func (w *Window) drawOverlay(screen *ebiten.Image, lines ...string) {
	width, height := w.canvas.Size()
	vector.DrawFilledRect(screen, 0, hudHeight, float32(width), float32(height), overlayShade, false)

	top := hudHeight + (height-len(lines)*glyphH)/2
	for i, l := range lines {
		x := (width - len(l)*glyphW) / 2
		ebitenutil.DebugPrintAt(screen, l, x, top+i*glyphH)
	}
}

// Layout returns the logical screen size: the board plus the HUD strip.
func (w *Window) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	width, height := w.canvas.Size()
	return width, height + hudHeight
}

// Frontend plays the game in a desktop window.
type Frontend struct{}

func init() {
	registry.Register("window", func() registry.Frontend {
		return &Frontend{}
	})
}

// ID returns the frontend identifier.
func (f *Frontend) ID() string {
	return "window"
}

// Title returns the display name.
func (f *Frontend) Title() string {
	return "Window (Ebiten)"
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	w, err := NewWindow(ctx, opts)
	if err != nil {
		return err
	}

	sw, sh := w.Layout(0, 0)
	scale := opts.Config.Display.WindowScale
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(sw*scale, sh*scale)
	ebiten.SetTPS(opts.Config.Display.FrameRate)

	return ebiten.RunGame(w)
}
