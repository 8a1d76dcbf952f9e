// Package game holds the snake rules and the fixed-tick loop that drives them.
package game

import (
	"io"
	"log"
	"time"

	"snake/internal/entities"
	"snake/internal/grid"

	"golang.org/x/exp/rand"
)

// Sounder plays the eat cue. Implementations must not block.
type Sounder interface {
	PlayEat()
}

type silent struct{}

func (silent) PlayEat() {}

type Outcome int

const (
	Moved Outcome = iota
	Ate
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// TickResult describes one update. For Crashed, Score is the final score of
// the round that just ended; otherwise it is the current score.
type TickResult struct {
	Outcome Outcome
	Score   int
}

// Engine owns the game state and applies the per-tick rules. It is not safe
// for concurrent use; frontends drive it from a single goroutine.
type Engine struct {
	cfg   Config
	grid  *grid.Grid
	state State
	rng   *rand.Rand
	sound Sounder
	log   *log.Logger
	round int
}

func NewEngine(cfg Config, sound Sounder, logger *log.Logger) (*Engine, error) {
	g, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if sound == nil {
		sound = silent{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	e := &Engine{
		cfg:   cfg,
		grid:  g,
		rng:   rand.New(rand.NewSource(seed)),
		sound: sound,
		log:   logger,
	}
	e.state.Reset(cfg)
	return e, nil
}

func (e *Engine) Config() Config   { return e.cfg }
func (e *Engine) Grid() *grid.Grid { return e.grid }
func (e *Engine) Round() int       { return e.round }
func (e *Engine) Score() int       { return e.state.Score }
func (e *Engine) State() State     { return e.state.Snapshot() }

func (e *Engine) Direction() entities.Direction { return e.state.Direction }

// Reset restores the start configuration in place.
func (e *Engine) Reset() {
	e.state.Reset(e.cfg)
}

// Steer applies a candidate direction unless it runs along the axis the snake
// is already moving on. The last accepted candidate before a tick wins.
func (e *Engine) Steer(d entities.Direction) bool {
	if !CanSteer(e.state.Direction, d) {
		return false
	}
	e.state.Direction = d
	return true
}

// Step runs one logical tick.
func (e *Engine) Step() TickResult {
	next := e.state.Snake.Head().Step(e.state.Direction)

	if !e.grid.Contains(next) {
		return e.gameOver("wall", next)
	}

	ate := next == e.state.Food
	if e.hitsSelf(next, ate) {
		return e.gameOver("self", next)
	}
	if ate {
		e.eatFood()
	}
	e.state.Snake.Advance(next, ate)

	if ate {
		return TickResult{Outcome: Ate, Score: e.state.Score}
	}
	return TickResult{Outcome: Moved, Score: e.state.Score}
}

func (e *Engine) gameOver(cause string, at entities.Position) TickResult {
	final := e.state.Score
	e.round++
	e.log.Printf("round %d over (%s at %d,%d, length %d): %s",
		e.round, cause, at.X, at.Y, e.state.Snake.Len(), GameOverMessage(final))
	e.Reset()
	return TickResult{Outcome: Crashed, Score: final}
}
