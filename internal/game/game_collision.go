package game

import "snake/internal/entities"

func (e *Engine) eatFood() {
	e.sound.PlayEat()
	// The new cell may land on the snake; that is a valid state.
	e.state.Food = e.grid.RandomCell(e.rng)
	e.state.Score++
}

// hitsSelf is only consulted when SelfCollision is enabled. A stationary snake
// never collides, and the tail cell is free unless the snake is growing.
func (e *Engine) hitsSelf(next entities.Position, grow bool) bool {
	if !e.cfg.SelfCollision || e.state.Direction == entities.DirNone {
		return false
	}
	rest := e.state.Snake
	if !grow {
		rest.Body = rest.Body[:len(rest.Body)-1]
	}
	return rest.Occupies(next)
}
