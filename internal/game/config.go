package game

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"snake/internal/entities"
	"snake/internal/grid"
)

const (
	defaultCellSize     = 20
	defaultCanvasSize   = 400
	defaultMoveInterval = 200 * time.Millisecond
	defaultSoundsDir    = "assets/sounds"
)

var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the build-time constants of a game. DefaultConfig matches the
// classic browser layout: a 20x20 field of 20px cells stepping every 200ms.
type Config struct {
	CellSize       int
	CanvasSize     int
	MoveInterval   time.Duration
	StartSnake     entities.Position
	StartFood      entities.Position
	StartDirection entities.Direction

	// HaltOnGameOver stops ticking after a crash until Restart is called.
	HaltOnGameOver bool
	// SelfCollision ends the round when the head runs into the body.
	SelfCollision bool

	// Seed for food placement; 0 seeds from the clock.
	Seed      uint64
	Audio     bool
	SoundsDir string
}

func DefaultConfig() Config {
	return Config{
		CellSize:       defaultCellSize,
		CanvasSize:     defaultCanvasSize,
		MoveInterval:   defaultMoveInterval,
		StartSnake:     entities.Position{X: 10, Y: 10},
		StartFood:      entities.Position{X: 5, Y: 5},
		StartDirection: entities.DirNone,
		Audio:          true,
		SoundsDir:      defaultSoundsDir,
	}
}

// ConfigFromEnv applies SNAKE_* environment overrides on top of DefaultConfig.
// Malformed values are ignored. SNAKE_DISABLE_AUDIO=1 wins over SNAKE_ENABLE_AUDIO.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	switch os.Getenv("SNAKE_ENABLE_AUDIO") {
	case "1":
		cfg.Audio = true
	case "0":
		cfg.Audio = false
	}
	if os.Getenv("SNAKE_DISABLE_AUDIO") == "1" {
		cfg.Audio = false
	}
	if dir := os.Getenv("SNAKE_SOUNDS_DIR"); dir != "" {
		cfg.SoundsDir = dir
	}
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if seed, err := strconv.ParseUint(s, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}

// BindFlags registers the flags shared by every frontend, defaulting to the
// current values of c. Call the returned func after fs.Parse.
func (c *Config) BindFlags(fs *flag.FlagSet) func() {
	fs.DurationVar(&c.MoveInterval, "interval", c.MoveInterval, "time between snake steps")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "food placement seed (0 = random)")
	fs.BoolVar(&c.HaltOnGameOver, "halt-on-game-over", c.HaltOnGameOver, "stop the game after a crash until restarted")
	fs.BoolVar(&c.SelfCollision, "self-collision", c.SelfCollision, "end the game when the snake runs into itself")
	mute := fs.Bool("mute", !c.Audio, "disable sound")
	return func() { c.Audio = !*mute }
}

// Grid validates the geometry and start cells and returns the playing field.
func (c Config) Grid() (*grid.Grid, error) {
	g, err := grid.New(c.CanvasSize, c.CellSize)
	if err != nil {
		return nil, err
	}
	if c.MoveInterval <= 0 {
		return nil, fmt.Errorf("move interval %v: %w", c.MoveInterval, ErrInvalidConfig)
	}
	if !g.Contains(c.StartSnake) {
		return nil, fmt.Errorf("start cell %v outside %dx%d field: %w", c.StartSnake, g.TileCount, g.TileCount, ErrInvalidConfig)
	}
	if !g.Contains(c.StartFood) {
		return nil, fmt.Errorf("food cell %v outside %dx%d field: %w", c.StartFood, g.TileCount, g.TileCount, ErrInvalidConfig)
	}
	switch c.StartDirection {
	case entities.DirNone, entities.DirUp, entities.DirDown, entities.DirLeft, entities.DirRight:
	default:
		return nil, fmt.Errorf("start direction %v: %w", c.StartDirection, ErrInvalidConfig)
	}
	return g, nil
}
