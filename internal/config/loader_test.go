package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestLoadSnakeEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadSnakeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("speed:\n  initial: 10\nseed: 42\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Speed.Initial != 10 {
		t.Errorf("Speed.Initial = %d, expected 10", cfg.Speed.Initial)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", cfg.Seed)
	}
	// Keys missing from the file keep their defaults
	if cfg.Board.CanvasSize != 400 || cfg.Speed.Every != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	t.Chdir(work)

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, "snake.yaml"), []byte("speed:\n  initial: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Speed.Initial != 6 {
		t.Errorf("local config not used, Speed.Initial = %d", cfg.Speed.Initial)
	}

	user := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, "snake.yaml"), []byte("speed:\n  initial: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg.Speed.Initial != 7 {
		t.Errorf("user config should win over local, Speed.Initial = %d", cfg.Speed.Initial)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *SnakeConfig)
		wantErr error
	}{
		{"default", func(c *SnakeConfig) {}, nil},
		{"uneven grid", func(c *SnakeConfig) { c.Board.CellSize = 30 }, core.ErrUnevenGrid},
		{"zero cell", func(c *SnakeConfig) { c.Board.CellSize = 0 }, core.ErrInvalidGrid},
		{"single cell board", func(c *SnakeConfig) {
			c.Board.CanvasSize = 20
			c.Board.StartX, c.Board.StartY = 0, 0
			c.Board.FoodX, c.Board.FoodY = 0, 0
		}, ErrInvalidConfig},
		{"two by two board", func(c *SnakeConfig) {
			c.Board.CanvasSize = 40
			c.Board.StartX, c.Board.StartY = 0, 0
			c.Board.FoodX, c.Board.FoodY = 1, 1
		}, nil},
		{"start outside", func(c *SnakeConfig) { c.Board.StartX = 20 }, ErrInvalidConfig},
		{"food outside", func(c *SnakeConfig) { c.Board.FoodY = -1 }, ErrInvalidConfig},
		{"zero speed", func(c *SnakeConfig) { c.Speed.Initial = 0 }, ErrInvalidConfig},
		{"negative step", func(c *SnakeConfig) { c.Speed.Step = -1 }, ErrInvalidConfig},
		{"zero every", func(c *SnakeConfig) { c.Speed.Every = 0 }, ErrInvalidConfig},
		{"zero frame rate", func(c *SnakeConfig) { c.Display.FrameRate = 0 }, ErrInvalidConfig},
		{"zero subdivisions", func(c *SnakeConfig) { c.Display.Subdivisions = 0 }, ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		in        string
		want      DifficultyPreset
		wantSpeed int
		wantErr   bool
	}{
		{"", "", 8, false},
		{"easy", DifficultyEasy, 5, false},
		{"normal", DifficultyNormal, 8, false},
		{"hard", DifficultyHard, 12, false},
		{"insane", "", 8, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseDifficultyPreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDifficultyPreset(%q) error = %v", tc.in, err)
			}
			if p != tc.want {
				t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.in, p, tc.want)
			}

			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, p)
			if cfg.Speed.Initial != tc.wantSpeed {
				t.Errorf("Speed.Initial = %d, expected %d", cfg.Speed.Initial, tc.wantSpeed)
			}
			if cfg.Speed.Step != 1 || cfg.Speed.Every != 3 {
				t.Error("presets must not change the speed-up curve")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := DefaultSnakeConfig().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("round trip = %+v", cfg)
	}
}
