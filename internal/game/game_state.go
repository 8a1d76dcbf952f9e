package game

import (
	"fmt"

	"snake/internal/entities"
)

const gameOverFormat = "Game Over! Your score is: %d"

// State is everything that changes during play.
type State struct {
	Snake     entities.Snake
	Direction entities.Direction
	Food      entities.Position
	Score     int
}

// Reset overwrites s with the start configuration.
func (s *State) Reset(cfg Config) {
	s.Snake.Body = append(s.Snake.Body[:0], cfg.StartSnake)
	s.Direction = cfg.StartDirection
	s.Food = cfg.StartFood
	s.Score = 0
}

// Snapshot returns a copy that shares no memory with s.
func (s State) Snapshot() State {
	s.Snake = s.Snake.Clone()
	return s
}

// Notice is the game-over message shown to the player.
type Notice struct {
	Score   int
	Message string
}

func GameOverMessage(score int) string {
	return fmt.Sprintf(gameOverFormat, score)
}

func newNotice(score int) *Notice {
	return &Notice{Score: score, Message: GameOverMessage(score)}
}
