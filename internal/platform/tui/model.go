package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/games/snake"
	"github.com/vovakirdan/neon-snake/internal/registry"
)

// Screen colours.
const (
	hudColor    = "#e6f1ff"
	frameColor  = "#00e5ff"
	alertColor  = "#ff4d6d"
	noticeColor = "#ffd166"
)

// Model is the Bubble Tea model for one snake game.
type Model struct {
	game      *snake.Game
	cfg       config.SnakeConfig
	logger    *log.Logger
	sessionID string

	clock   *core.MonotonicClock
	raster  *core.Raster
	screen  *core.Screen
	painter *Painter
	hud     *snake.HUD
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates a model running a fresh game.
// A nil renderer uses the default lipgloss renderer.
func NewModel(opts registry.Options, renderer *lipgloss.Renderer) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	hud := &snake.HUD{}
	game, err := snake.New(opts.Config, snake.WithDisplay(hud), snake.WithNotifier(hud))
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Config
	cols := game.Grid().TileCount() * cfg.Display.Subdivisions
	canvas := cfg.Board.CanvasSize
	rt := core.DefaultConfig()

	m := Model{
		game:      game,
		cfg:       cfg,
		logger:    logger,
		sessionID: opts.SessionID,
		clock:     core.NewMonotonicClock(),
		raster:    core.NewRaster(canvas, canvas, cols, cols),
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH-1),
		painter:   NewPainter(renderer),
		hud:       hud,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		width:     rt.ScreenW,
		height:    rt.ScreenH,
	}
	m.game.Render(m.raster)
	m.compose()

	logger.Info("game started", "session", m.sessionID, "seed", game.Seed(), "tiles", game.Grid().TileCount())
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("snake"), frameCmd(m.cfg.Display.FrameRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.logger.Info("game closed", "session", m.sessionID, "score", m.game.Score(), "games", m.hud.Games)
		return m, tea.Quit
	}

	// The game-over modal swallows everything until it is confirmed.
	if m.hud.Over {
		if key.Matches(msg, m.keys.Confirm) {
			m.hud.Dismiss()
			m.compose()
		}
		return m, nil
	}

	k := m.keys.GameKey(msg)
	if k == core.KeyNone {
		return m, nil
	}
	if m.game.HandleKey(k) && k == core.KeyPause {
		m.logger.Debug("pause toggled", "session", m.sessionID, "paused", m.game.Paused())
	}
	m.compose()
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	m.compose()
	return m, nil
}

// handleFrame runs one frame callback. Frames keep arriving while the game
// is paused, the modal is open or the window is too small; only the game
// step is skipped.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	next := frameCmd(m.cfg.Display.FrameRate)
	if m.hud.Over || m.tooSmall() {
		return m, next
	}

	speed := m.game.Speed()
	if m.game.Frame(m.clock.Since(msg.Time()), m.raster) != core.FrameTick {
		return m, next
	}

	if ev := m.game.LastEvent(); ev.Ended() {
		m.logger.Info("game over", "session", m.sessionID, "score", m.hud.FinalScore, "cause", ev)
	} else if m.game.Speed() != speed {
		m.logger.Debug("speed up", "session", m.sessionID, "speed", m.game.Speed(), "score", m.game.Score())
	}
	m.compose()
	return m, next
}

// boardSize returns the character size of the framed board.
func (m Model) boardSize() (w, h int) {
	return m.raster.Cols() + 2, (m.raster.Rows()+1)/2 + 2
}

// tooSmall reports whether the board, HUD and help line do not fit.
func (m Model) tooSmall() bool {
	bw, bh := m.boardSize()
	return m.width < bw || m.height < bh+2
}

// compose redraws the screen buffer from the last rendered frame and the HUD.
func (m Model) compose() {
	s := m.screen
	s.Clear()

	if m.tooSmall() {
		bw, bh := m.boardSize()
		s.DrawTextCentered(s.Height()/2-1, "Window too small")
		s.DrawTextCentered(s.Height()/2+1, fmt.Sprintf("Need %dx%d, have %dx%d", bw, bh+2, m.width, m.height))
		return
	}

	bw, bh := m.boardSize()
	x0 := (s.Width() - bw) / 2

	speed := m.hud.SpeedText()
	s.DrawStyledText(x0, 0, m.hud.ScoreText(), hudColor, "")
	s.DrawStyledText(x0+bw-len(speed), 0, speed, hudColor, "")

	drawFrame(s, x0, 1, bw, bh, frameColor)
	s.DrawRaster(x0+1, 2, m.raster)

	switch {
	case m.hud.Over:
		m.drawModal(x0, bw, bh, alertColor, m.hud.AlertLines()...)
	case m.game.Paused():
		m.drawModal(x0, bw, bh, noticeColor, "PAUSED", "Press space to resume")
	}
}

// drawModal draws a centered box over the board.
func (m Model) drawModal(x0, bw, bh int, color string, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w, h := inner+4, len(lines)+2
	x := x0 + (bw-w)/2
	y := 1 + (bh-h)/2

	drawFrame(m.screen, x, y, w, h, color)
	for i, l := range lines {
		lx := x + (w-len([]rune(l)))/2
		m.screen.DrawStyledText(lx, y+1+i, l, color, "")
	}
}

// drawFrame draws a coloured box.
func drawFrame(s *core.Screen, x, y, w, h int, color string) {
	s.DrawBox(x, y, w, h)
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if yy == y || yy == y+h-1 || xx == x || xx == x+w-1 {
				c := s.GetCell(xx, yy)
				c.FG = color
				s.SetCell(xx, yy, c)
			}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, opts registry.Options) error {
	model, err := NewModel(opts, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
