package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/registry"
)

var (
	flagFrontend   string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on the chosen frontend.

Controls:
  Arrows     - Steer
  Space      - Pause/resume
  Enter      - Dismiss the game over alert
  Q/Ctrl+C   - Quit (Q/Esc in the window)

Difficulty options:
  easy   - Start at 5 frames per second
  normal - Start at 8 frames per second
  hard   - Start at 12 frames per second

Examples:
  snake play
  snake play --difficulty easy
  snake play --frontend window
  snake play --seed 42 --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "terminal", "Frontend to play on (see 'snake frontends')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagFrontend) {
		return fmt.Errorf("unknown frontend %q, run 'snake frontends' to see available frontends", flagFrontend)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal frontend owns stdout, so its logs only go to --log-file.
	var logOut io.Writer = os.Stderr
	if flagFrontend == "terminal" {
		logOut = io.Discard
		warnTerminalSize(cfg)
	}
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := registry.Options{
		Config:    cfg,
		Logger:    logger,
		SessionID: uuid.NewString(),
	}
	if err := frontend.Run(ctx, opts); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// warnTerminalSize prints a hint when the board will not fit the terminal.
func warnTerminalSize(cfg config.SnakeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	side := cfg.Board.CanvasSize / cfg.Board.CellSize * cfg.Display.Subdivisions
	needW, needH := side+2, (side+1)/2+4
	if w < needW || h < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n", w, h, needW, needH)
	}
}
