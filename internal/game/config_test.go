package game

import (
	"errors"
	"flag"
	"testing"
	"time"

	"snake/internal/entities"
	"snake/internal/grid"
)

func TestDefaultConfigMatchesClassicLayout(t *testing.T) {
	cfg := DefaultConfig()
	g, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if g.TileCount != 20 || g.CellSize != 20 {
		t.Fatalf("grid = %+v", g)
	}
	if cfg.MoveInterval != 200*time.Millisecond {
		t.Fatalf("interval = %v", cfg.MoveInterval)
	}
	if cfg.HaltOnGameOver || cfg.SelfCollision {
		t.Fatalf("optional rules should default off")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SNAKE_DISABLE_AUDIO", "1")
	t.Setenv("SNAKE_SOUNDS_DIR", "/tmp/sounds")
	t.Setenv("SNAKE_SEED", "1234")
	cfg := ConfigFromEnv()
	if cfg.Audio || cfg.SoundsDir != "/tmp/sounds" || cfg.Seed != 1234 {
		t.Fatalf("env not applied: %+v", cfg)
	}

	t.Setenv("SNAKE_SEED", "not-a-number")
	if cfg := ConfigFromEnv(); cfg.Seed != 0 {
		t.Fatalf("malformed seed should be ignored, got %d", cfg.Seed)
	}
}

func TestConfigGridValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"bad geometry", func(c *Config) { c.CanvasSize = 410 }, grid.ErrInvalidGeometry},
		{"zero interval", func(c *Config) { c.MoveInterval = 0 }, ErrInvalidConfig},
		{"snake outside", func(c *Config) { c.StartSnake = entities.Position{X: -1, Y: 0} }, ErrInvalidConfig},
		{"food outside", func(c *Config) { c.StartFood = entities.Position{X: 0, Y: 20} }, ErrInvalidConfig},
		{"diagonal start", func(c *Config) { c.StartDirection = entities.Direction{DX: 1, DY: 1} }, ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := cfg.Grid(); !errors.Is(err, tc.target) {
				t.Fatalf("err = %v, want %v", err, tc.target)
			}
		})
	}
}

func TestConfigFromEnvAudioSwitches(t *testing.T) {
	tests := []struct {
		name    string
		enable  string
		disable string
		want    bool
	}{
		{name: "unset", want: true},
		{name: "enable off", enable: "0", want: false},
		{name: "enable on", enable: "1", want: true},
		{name: "disable", disable: "1", want: false},
		{name: "disable wins", enable: "1", disable: "1", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("SNAKE_ENABLE_AUDIO", tc.enable)
			t.Setenv("SNAKE_DISABLE_AUDIO", tc.disable)
			if got := ConfigFromEnv().Audio; got != tc.want {
				t.Fatalf("Audio = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SNAKE_DISABLE_AUDIO", "1")

	cfg := ConfigFromEnv()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	apply := cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-mute=false", "-interval=50ms", "-seed=9", "-self-collision"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	apply()
	if !cfg.Audio {
		t.Fatalf("-mute=false should enable audio over SNAKE_DISABLE_AUDIO")
	}
	if cfg.MoveInterval != 50*time.Millisecond || cfg.Seed != 9 || !cfg.SelfCollision {
		t.Fatalf("flags not applied: %+v", cfg)
	}

	// Without -mute the environment setting stands.
	cfg = ConfigFromEnv()
	fs = flag.NewFlagSet("snake", flag.ContinueOnError)
	apply = cfg.BindFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}
	apply()
	if cfg.Audio {
		t.Fatalf("audio should stay off from the environment")
	}
}
